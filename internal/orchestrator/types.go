package orchestrator

// #region imports
import (
	"time"

	"github.com/haldenlab/focusloop/go-engine/internal/behavior"
	"github.com/haldenlab/focusloop/go-engine/internal/decision"
	"github.com/haldenlab/focusloop/go-engine/internal/profile"
	"github.com/haldenlab/focusloop/go-engine/internal/state"
)

// #endregion

// #region compliance-event

// ComplianceEvent records the user's reaction to one delivered nudge.
type ComplianceEvent struct {
	Type       profile.InterventionType `json:"type"`
	Tone       profile.Tone             `json:"tone"`
	Successful bool                     `json:"successful"`
	Override   bool                     `json:"override"`
	At         time.Time                `json:"at"`
}

// #endregion

// #region session-event

// SessionEvent records one completed focus session.
type SessionEvent struct {
	Duration   time.Duration `json:"duration"`
	Planned    time.Duration `json:"planned"`
	Successful bool          `json:"successful"`
	At         time.Time     `json:"at"`
}

// #endregion

// #region daily-event

// DailyEvent is the bare calendar-day rollover trigger.
type DailyEvent struct {
	Date time.Time `json:"date"`
}

// #endregion

// #region outcome

// Outcome describes what one transition did, for provenance logging and
// replay assertions. It replaces the original system's listener side-channel
// with an explicit return value the caller forwards.
type Outcome struct {
	Trigger  string `json:"trigger"` // "init" | "compliance" | "session" | "daily"
	Decision string `json:"decision"`
	Reason   string `json:"reason"`
}

// #endregion

// #region personalization-profile

// PersonalizationProfile is the derived, read-only view consumers use to
// select copy, tone, and session defaults, and to decide whether to nudge.
// Never persisted; recomputed from state plus a fresh context snapshot.
type PersonalizationProfile struct {
	StrictnessLevel    int                      `json:"strictness_level"`
	Tone               profile.Tone             `json:"tone"`
	Policy             decision.Policy          `json:"policy"`
	RecommendedSession time.Duration            `json:"recommended_session"`
	Recovery           decision.Recovery        `json:"recovery"`
	HabitSuggestions   []string                 `json:"habit_suggestions,omitempty"`

	ComplianceMatrix map[profile.InterventionType]float64 `json:"compliance_matrix"`

	UninstallRisk      float64           `json:"uninstall_risk"`
	AttentionTrend     state.Trend       `json:"attention_trend"`
	SuitabilityScore   float64           `json:"suitability_score"`
	FatigueLevel       float64           `json:"fatigue_level"`
	ThrottleSeverity   behavior.Severity `json:"throttle_severity"`
	CognitiveReadiness float64           `json:"cognitive_readiness"`
	CurrentStreak      int               `json:"current_streak"`
}

// #endregion
