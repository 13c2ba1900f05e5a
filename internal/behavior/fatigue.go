package behavior

// #region imports
import (
	"time"

	"github.com/haldenlab/focusloop/go-engine/internal/state"
)

// #endregion

// #region severity

// Severity bands the throttle decision derived from fatigue.
type Severity string

const (
	SeverityNone     Severity = "none"
	SeverityMild     Severity = "mild"
	SeverityModerate Severity = "moderate"
	SeveritySevere   Severity = "severe"
)

// #endregion

// #region record-nudge

// RecordNudge registers one delivered nudge. A dismissal raises the fatigue
// score, more steeply as consecutive dismissals accumulate; any non-dismissal
// resets the consecutive counter.
func RecordNudge(f state.FatigueState, dismissed bool, now time.Time, cfg Config) state.FatigueState {
	out := f
	out.NudgesToday++
	out.LastNudgeAt = now

	if !dismissed {
		out.ConsecutiveDismissals = 0
		return out
	}

	out.DismissalsToday++
	out.ConsecutiveDismissals++
	out.Score += cfg.DismissalBase + cfg.DismissalRamp*float64(out.ConsecutiveDismissals-1)
	if out.Score > 1 {
		out.Score = 1
	}
	return out
}

// #endregion

// #region throttle

// Throttle maps fatigue state to a delivery severity. Anything above
// SeverityNone tells the caller to suppress or delay the next intervention.
func Throttle(f state.FatigueState, cfg Config) Severity {
	switch {
	case f.Score >= cfg.SevereFatigue || f.ConsecutiveDismissals >= cfg.SevereConsec:
		return SeveritySevere
	case f.Score >= cfg.ModerateFatigue || f.ConsecutiveDismissals >= cfg.ModerateConsec:
		return SeverityModerate
	case f.Score >= cfg.MildFatigue || f.ConsecutiveDismissals >= cfg.MildConsec:
		return SeverityMild
	default:
		return SeverityNone
	}
}

// #endregion

// #region daily-decay

// DecayFatigue runs at the calendar-day rollover: both daily counters reset
// to zero and the fatigue score decays toward zero. Repeated triggers on the
// same day are safe — the counters are already zero and the score keeps
// shrinking monotonically.
func DecayFatigue(f state.FatigueState, cfg Config) state.FatigueState {
	out := f
	out.NudgesToday = 0
	out.DismissalsToday = 0
	out.Score *= cfg.DailyDecayFactor
	if out.Score < 0 {
		out.Score = 0
	}
	return out
}

// #endregion
