package habit

// #region imports
import (
	"time"

	"github.com/haldenlab/focusloop/go-engine/internal/state"
)

// #endregion

// #region config

// Config holds the tuning constants for habit tracking.
type Config struct {
	QualifyingMinutes int `yaml:"qualifying_minutes"` // focus minutes for a day to count
	MaxSuggestions    int `yaml:"max_suggestions"`    // ≤3 habit suggestions surfaced
}

// DefaultConfig returns the hand-tuned defaults.
func DefaultConfig() Config {
	return Config{
		QualifyingMinutes: 25,
		MaxSuggestions:    3,
	}
}

// #endregion

// #region record-day

// RecordFocusMinutes accumulates focus minutes for the given day into the
// day total and the weekly buffer and, when the day's total crosses the
// qualifying bar, extends or restarts the streak. Split sessions add up: two
// short sessions on one day qualify it together. A qualifying day exactly one
// calendar day after the last one extends the streak; anything else restarts
// it at 1.
func RecordFocusMinutes(h state.HabitState, day time.Time, minutes int, cfg Config) state.HabitState {
	if minutes < 0 {
		minutes = 0
	}

	out := h
	d := truncateDay(day)
	if !sameDay(out.TodayDate, d) {
		out.TodayDate = d
		out.TodayMinutes = 0
	}
	out.TodayMinutes += minutes
	out.WeeklyMinutes[int(d.Weekday())] += minutes

	if out.TodayMinutes < cfg.QualifyingMinutes {
		return out
	}
	if sameDay(out.LastQualifyingDay, d) {
		// Already counted today.
		return out
	}

	switch daysBetween(out.LastQualifyingDay, d) {
	case 1:
		out.CurrentStreak++
	default:
		out.CurrentStreak = 1
	}
	out.LastQualifyingDay = d
	out.TotalQualifying++

	if out.CurrentStreak > out.LongestStreak {
		out.LongestStreak = out.CurrentStreak
	}
	return out
}

// CheckBreak zeroes the current streak when two or more days have passed
// without a qualifying day. The longest streak is untouched.
func CheckBreak(h state.HabitState, today time.Time) state.HabitState {
	out := h
	if out.CurrentStreak == 0 || out.LastQualifyingDay.IsZero() {
		return out
	}
	if daysBetween(out.LastQualifyingDay, truncateDay(today)) >= 2 {
		out.CurrentStreak = 0
	}
	return out
}

// ResetWeek clears the weekly minutes buffer; intended for the start of a
// new tracking week.
func ResetWeek(h state.HabitState) state.HabitState {
	out := h
	out.WeeklyMinutes = [7]int{}
	return out
}

// #endregion

// #region day-helpers

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func sameDay(a, b time.Time) bool {
	return !a.IsZero() && truncateDay(a).Equal(truncateDay(b))
}

// daysBetween counts whole calendar days from a to b; a zero `a` reads as
// "never", which the callers treat as a restart.
func daysBetween(a, b time.Time) int {
	if a.IsZero() {
		return -1
	}
	return int(truncateDay(b).Sub(truncateDay(a)) / (24 * time.Hour))
}

// #endregion
