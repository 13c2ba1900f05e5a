package state

// #region imports
import (
	"time"

	"github.com/haldenlab/focusloop/go-engine/internal/profile"
)

// #endregion

// #region schema-version

// SchemaVersion is the current snapshot payload schema. Bump when the
// PersonalizationState layout changes; the store migrates older payloads
// forward on load.
const SchemaVersion = 1

// #endregion

// #region direction

// Direction records which way the last strictness adjustment went.
type Direction string

const (
	DirectionEscalate   Direction = "escalate"
	DirectionDeescalate Direction = "de_escalate"
	DirectionHold       Direction = "hold"
)

// #endregion

// #region trend

// Trend labels the direction of the user's recent attention capacity.
type Trend string

const (
	TrendImproving Trend = "improving"
	TrendStable    Trend = "stable"
	TrendDeclining Trend = "declining"
)

// #endregion

// #region compliance-tracker

// ComplianceTracker estimates the follow-through probability for one
// intervention type. Invariant: 0 ≤ Probability ≤ 1, Attempts ≥ Successes ≥ 0.
type ComplianceTracker struct {
	Successes   int       `json:"successes"`
	Attempts    int       `json:"attempts"`
	Probability float64   `json:"probability"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Prior is the seeded follow-through probability from onboarding. It
	// anchors the smoothed estimate so the first real outcomes move it from
	// the seed instead of snapping to raw counts.
	Prior float64 `json:"prior,omitempty"`

	// Window holds the most recent outcomes (true = success), capped by
	// config, for recency sensitivity on top of the lifetime counts.
	Window []bool `json:"window,omitempty"`
}

// #endregion

// #region strictness-state

// StrictnessState tracks the current intervention aggressiveness level.
// Invariant: Level in [1,5]; at most one level change per adjustment.
type StrictnessState struct {
	Level         int `json:"level"`
	BaselineLevel int `json:"baseline_level"`

	ComplianceRate     float64 `json:"compliance_rate"`
	OverrideFrequency  float64 `json:"override_frequency"`
	SessionSuccessRate float64 `json:"session_success_rate"`

	LastChangeAt  time.Time `json:"last_change_at"`
	LastDirection Direction `json:"last_direction"`
}

// #endregion

// #region fatigue-state

// FatigueState accumulates nudge-dismissal resistance. The two daily
// counters reset exactly once per calendar-day rollover.
type FatigueState struct {
	Score                 float64   `json:"score"`
	NudgesToday           int       `json:"nudges_today"`
	DismissalsToday       int       `json:"dismissals_today"`
	ConsecutiveDismissals int       `json:"consecutive_dismissals"`
	LastNudgeAt           time.Time `json:"last_nudge_at"`
}

// #endregion

// #region attention-state

// SessionRecord is one completed focus session.
type SessionRecord struct {
	Duration   time.Duration `json:"duration"`
	Planned    time.Duration `json:"planned"`
	Successful bool          `json:"successful"`
	At         time.Time     `json:"at"`
}

// AttentionState learns a personalized recommended session length.
// Invariant: Recommended never drops below the 10-minute floor.
type AttentionState struct {
	Expected    time.Duration `json:"expected"`
	Recommended time.Duration `json:"recommended"`

	SuccessRate      float64         `json:"success_rate"`
	History          []SessionRecord `json:"history,omitempty"`
	Trend            Trend           `json:"trend"`
	GrowthMultiplier float64         `json:"growth_multiplier"`
}

// #endregion

// #region habit-state

// HabitState tracks day-level focus streaks and weekly volume.
type HabitState struct {
	CurrentStreak     int       `json:"current_streak"`
	LongestStreak     int       `json:"longest_streak"`
	LastQualifyingDay time.Time `json:"last_qualifying_day"`
	TotalQualifying   int       `json:"total_qualifying"`

	// TodayMinutes accumulates focus minutes recorded for TodayDate, so
	// split sessions cross the qualifying bar together.
	TodayMinutes int       `json:"today_minutes"`
	TodayDate    time.Time `json:"today_date"`

	// WeeklyMinutes accumulates focus minutes per weekday, indexed by
	// time.Weekday (Sunday = 0).
	WeeklyMinutes [7]int `json:"weekly_minutes"`
}

// #endregion

// #region personalization-state

// PersonalizationState is the complete per-user control state. Every
// transition produces a new value (copy-on-write), never an in-place edit,
// so history can be replayed or audited.
type PersonalizationState struct {
	// Derived once from the static profile at initialization and cached.
	ImpulsivityIndex      float64                                 `json:"impulsivity_index"`
	GoalDrive             float64                                 `json:"goal_drive"`
	AuthorityResistance   float64                                 `json:"authority_resistance"`
	EmotionalSensitivity  float64                                 `json:"emotional_sensitivity"`
	InterventionTolerance float64                                 `json:"intervention_tolerance"`
	UninstallRisk         float64                                 `json:"uninstall_risk"`
	PreferredTone         profile.Tone                            `json:"preferred_tone"`
	DistractionWeights    map[profile.DistractionCategory]float64 `json:"distraction_weights,omitempty"`

	Compliance map[profile.InterventionType]ComplianceTracker `json:"compliance"`
	Strictness StrictnessState                                `json:"strictness"`
	Fatigue    FatigueState                                   `json:"fatigue"`

	ToneEffectiveness map[profile.Tone]float64 `json:"tone_effectiveness"`

	Attention AttentionState `json:"attention"`
	Habit     HabitState     `json:"habit"`

	Interactions int `json:"interactions"`
}

// #endregion

// #region clone

// Clone returns a deep copy. Maps and slices are the only reference fields;
// everything else copies by value.
func (s PersonalizationState) Clone() PersonalizationState {
	out := s

	out.DistractionWeights = make(map[profile.DistractionCategory]float64, len(s.DistractionWeights))
	for k, v := range s.DistractionWeights {
		out.DistractionWeights[k] = v
	}

	out.Compliance = make(map[profile.InterventionType]ComplianceTracker, len(s.Compliance))
	for k, v := range s.Compliance {
		v.Window = append([]bool(nil), v.Window...)
		out.Compliance[k] = v
	}

	out.ToneEffectiveness = make(map[profile.Tone]float64, len(s.ToneEffectiveness))
	for k, v := range s.ToneEffectiveness {
		out.ToneEffectiveness[k] = v
	}

	out.Attention.History = append([]SessionRecord(nil), s.Attention.History...)

	return out
}

// #endregion
