package decision

// #region config

// Config holds the tuning constants for contextual decisions.
type Config struct {
	// Intervention suitability fusion weights.
	ConflictWeight    float64 `yaml:"conflict_weight"`
	DistractionWeight float64 `yaml:"distraction_weight"`
	ReadinessWeight   float64 `yaml:"readiness_weight"`
	SessionBonus      float64 `yaml:"session_bonus"`

	// Score band edges for the recommended intervention type.
	SoftDelayBand float64 `yaml:"soft_delay_band"` // score ≥ this ⇒ at least soft delay
	HardBlockBand float64 `yaml:"hard_block_band"` // score ≥ this ⇒ hard block

	// Hard override: readiness below this always delays.
	DelayReadinessFloor float64 `yaml:"delay_readiness_floor"`

	// Authority-resistant users never receive a hard block.
	HardBlockResistanceCeiling float64 `yaml:"hard_block_resistance_ceiling"`

	// Stress proxy weights; HRVNeutral substitutes for an absent HRV signal.
	HRVWeight           float64 `yaml:"hrv_weight"`
	FragmentationWeight float64 `yaml:"fragmentation_weight"`
	HRVNeutral          float64 `yaml:"hrv_neutral"`

	// Recovery decision-table edges.
	HighSensitivity float64 `yaml:"high_sensitivity"`
	HighStress      float64 `yaml:"high_stress"`
}

// DefaultConfig returns the hand-tuned defaults.
func DefaultConfig() Config {
	return Config{
		ConflictWeight:    0.40,
		DistractionWeight: 0.35,
		ReadinessWeight:   0.25,
		SessionBonus:      0.10,

		SoftDelayBand: 0.40,
		HardBlockBand: 0.70,

		DelayReadinessFloor: 0.25,

		HardBlockResistanceCeiling: 0.70,

		HRVWeight:           0.6,
		FragmentationWeight: 0.4,
		HRVNeutral:          0.5,

		HighSensitivity: 0.6,
		HighStress:      0.6,
	}
}

// #endregion
