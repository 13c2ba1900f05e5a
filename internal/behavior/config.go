package behavior

// #region config

// Config holds the tuning constants for behavioral adaptation. These are
// hand-tuned heuristics, not invariants; keep them adjustable.
type Config struct {
	// Compliance estimation.
	WindowSize   int     `yaml:"window_size"`    // rolling outcome window cap
	RecencyBlend float64 `yaml:"recency_blend"`  // weight of the window rate vs lifetime rate

	// Strictness evolution.
	EscalateCompliance    float64 `yaml:"escalate_compliance"`     // min compliance to escalate
	EscalateMaxOverride   float64 `yaml:"escalate_max_override"`   // max override frequency to escalate
	EscalateSessionRate   float64 `yaml:"escalate_session_rate"`   // min session success to escalate
	DeescalateCompliance  float64 `yaml:"deescalate_compliance"`   // compliance below this de-escalates
	DeescalateOverride    float64 `yaml:"deescalate_override"`     // override frequency above this de-escalates
	CooldownDays          int     `yaml:"cooldown_days"`           // min days between escalations
	HighResistanceCeiling int     `yaml:"high_resistance_ceiling"` // level cap when AR ≥ HighResistance
	MidResistanceCeiling  int     `yaml:"mid_resistance_ceiling"`  // level cap when AR ≥ MidResistance
	HighResistance        float64 `yaml:"high_resistance"`
	MidResistance         float64 `yaml:"mid_resistance"`
	RateAlpha             float64 `yaml:"rate_alpha"` // EMA step for the rolling rates

	// Fatigue.
	DismissalBase    float64 `yaml:"dismissal_base"`     // fatigue added on first dismissal
	DismissalRamp    float64 `yaml:"dismissal_ramp"`     // extra fatigue per consecutive dismissal
	DailyDecayFactor float64 `yaml:"daily_decay_factor"` // fatigue multiplier at day rollover

	// Throttle bands.
	SevereFatigue   float64 `yaml:"severe_fatigue"`
	SevereConsec    int     `yaml:"severe_consec"`
	ModerateFatigue float64 `yaml:"moderate_fatigue"`
	ModerateConsec  int     `yaml:"moderate_consec"`
	MildFatigue     float64 `yaml:"mild_fatigue"`
	MildConsec      int     `yaml:"mild_consec"`

	// Tone effectiveness.
	ToneAlpha float64 `yaml:"tone_alpha"` // EMA step per tone outcome
}

// DefaultConfig returns the hand-tuned defaults.
func DefaultConfig() Config {
	return Config{
		WindowSize:   10,
		RecencyBlend: 0.3,

		EscalateCompliance:    0.80,
		EscalateMaxOverride:   0.20,
		EscalateSessionRate:   0.70,
		DeescalateCompliance:  0.40,
		DeescalateOverride:    0.50,
		CooldownDays:          7,
		HighResistanceCeiling: 3,
		MidResistanceCeiling:  4,
		HighResistance:        0.8,
		MidResistance:         0.6,
		RateAlpha:             0.15,

		DismissalBase:    0.10,
		DismissalRamp:    0.04,
		DailyDecayFactor: 0.5,

		SevereFatigue:   0.85,
		SevereConsec:    5,
		ModerateFatigue: 0.60,
		ModerateConsec:  3,
		MildFatigue:     0.35,
		MildConsec:      2,

		ToneAlpha: 0.3,
	}
}

// #endregion
