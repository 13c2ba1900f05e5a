package habit

import (
	"testing"
	"time"

	"github.com/haldenlab/focusloop/go-engine/internal/profile"
	"github.com/haldenlab/focusloop/go-engine/internal/state"
)

func day(offset int) time.Time {
	base := time.Date(2026, 4, 6, 10, 0, 0, 0, time.UTC) // a Monday
	return base.AddDate(0, 0, offset)
}

func TestThreeConsecutiveDaysYieldStreakOfThree(t *testing.T) {
	cfg := DefaultConfig()
	h := state.HabitState{}

	for i := 0; i < 3; i++ {
		h = RecordFocusMinutes(h, day(i), 30, cfg)
	}

	if h.CurrentStreak != 3 {
		t.Fatalf("expected streak 3, got %d", h.CurrentStreak)
	}
	if h.LongestStreak != 3 {
		t.Fatalf("expected longest 3, got %d", h.LongestStreak)
	}
	if h.TotalQualifying != 3 {
		t.Fatalf("expected 3 qualifying days, got %d", h.TotalQualifying)
	}
}

func TestGapBreaksStreakButKeepsLongest(t *testing.T) {
	cfg := DefaultConfig()
	h := state.HabitState{}

	for i := 0; i < 3; i++ {
		h = RecordFocusMinutes(h, day(i), 30, cfg)
	}

	// Two idle days later the break check zeroes the current streak.
	h = CheckBreak(h, day(4))

	if h.CurrentStreak != 0 {
		t.Fatalf("gap of ≥2 days should reset streak to 0, got %d", h.CurrentStreak)
	}
	if h.LongestStreak != 3 {
		t.Fatalf("longest streak must survive the break, got %d", h.LongestStreak)
	}
}

func TestQualifyingAfterGapRestartsAtOne(t *testing.T) {
	cfg := DefaultConfig()
	h := state.HabitState{}

	h = RecordFocusMinutes(h, day(0), 30, cfg)
	h = RecordFocusMinutes(h, day(3), 30, cfg)

	if h.CurrentStreak != 1 {
		t.Fatalf("a qualifying day after a gap should restart at 1, got %d", h.CurrentStreak)
	}
}

func TestSplitSessionsQualifyTogether(t *testing.T) {
	cfg := DefaultConfig()
	h := state.HabitState{}

	// Neither session alone reaches the bar; the day total does.
	h = RecordFocusMinutes(h, day(0), 15, cfg)
	if h.CurrentStreak != 0 {
		t.Fatalf("15 minutes alone should not qualify, got streak %d", h.CurrentStreak)
	}
	h = RecordFocusMinutes(h, day(0), 15, cfg)

	if h.CurrentStreak != 1 {
		t.Fatalf("day with 30 accumulated minutes should qualify, got streak %d", h.CurrentStreak)
	}
	if h.TotalQualifying != 1 {
		t.Fatalf("expected 1 qualifying day, got %d", h.TotalQualifying)
	}

	// More minutes on the same day still count only once.
	h = RecordFocusMinutes(h, day(0), 15, cfg)
	if h.TotalQualifying != 1 || h.CurrentStreak != 1 {
		t.Fatalf("same day double-counted: streak %d, qualifying %d", h.CurrentStreak, h.TotalQualifying)
	}

	// The next day starts its own total.
	h = RecordFocusMinutes(h, day(1), 15, cfg)
	if h.CurrentStreak != 1 {
		t.Fatalf("yesterday's minutes leaked into today: streak %d", h.CurrentStreak)
	}
	h = RecordFocusMinutes(h, day(1), 10, cfg)
	if h.CurrentStreak != 2 {
		t.Fatalf("day total 25 should extend the streak, got %d", h.CurrentStreak)
	}
}

func TestSameDayCountsOnce(t *testing.T) {
	cfg := DefaultConfig()
	h := state.HabitState{}

	h = RecordFocusMinutes(h, day(0), 30, cfg)
	h = RecordFocusMinutes(h, day(0), 45, cfg)

	if h.CurrentStreak != 1 {
		t.Fatalf("same day should count once, got streak %d", h.CurrentStreak)
	}
	if h.TotalQualifying != 1 {
		t.Fatalf("same day should count once, got %d qualifying", h.TotalQualifying)
	}
	// Minutes still accumulate.
	if h.WeeklyMinutes[int(time.Monday)] != 75 {
		t.Fatalf("expected 75 weekly minutes on Monday, got %d", h.WeeklyMinutes[int(time.Monday)])
	}
}

func TestShortDayDoesNotQualify(t *testing.T) {
	cfg := DefaultConfig()
	h := state.HabitState{}

	h = RecordFocusMinutes(h, day(0), 10, cfg)

	if h.CurrentStreak != 0 {
		t.Fatalf("10 minutes should not qualify, got streak %d", h.CurrentStreak)
	}
	if h.WeeklyMinutes[int(time.Monday)] != 10 {
		t.Fatal("minutes should still accumulate in the weekly buffer")
	}
}

func TestSuggestionsCappedAndRanked(t *testing.T) {
	weights := map[profile.DistractionCategory]float64{
		profile.DistractionSocialMedia: 1.0,
		profile.DistractionGaming:      0.4,
	}

	got := Suggestions(weights, 3)
	if len(got) != 3 {
		t.Fatalf("expected 3 suggestions, got %d", len(got))
	}
	// All three come from the dominant category.
	for i, s := range got {
		if s != suggestionTable[profile.DistractionSocialMedia][i] {
			t.Fatalf("suggestion %d should come from the dominant category", i)
		}
	}

	if Suggestions(nil, 3) != nil {
		t.Fatal("no weights should yield no suggestions")
	}
}

func TestRecoveryProtocolTable(t *testing.T) {
	got := RecoveryProtocol(TriggerRapidSwitching, true, true)
	if got == "" {
		t.Fatal("protocol table should cover all sensitivity/stress combinations")
	}
	if got == RecoveryProtocol(TriggerLongSession, true, true) {
		t.Fatal("switching and long-session triggers should differ")
	}

	// Unknown triggers fall back rather than panic.
	if RecoveryProtocol(TriggerType("unknown"), false, false) == "" {
		t.Fatal("unknown trigger should fall back to the long-session table")
	}
}
