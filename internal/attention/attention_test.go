package attention

import (
	"testing"
	"time"

	"github.com/haldenlab/focusloop/go-engine/internal/state"
)

func session(minutes int, ok bool) state.SessionRecord {
	return state.SessionRecord{
		Duration:   time.Duration(minutes) * time.Minute,
		Planned:    time.Duration(minutes) * time.Minute,
		Successful: ok,
		At:         time.Now(),
	}
}

func TestRecommendedNeverBelowFloor(t *testing.T) {
	cfg := DefaultConfig()
	a := state.AttentionState{Expected: 12 * time.Minute, Recommended: 12 * time.Minute, GrowthMultiplier: 1}

	// A long run of short failures keeps shrinking the target.
	for i := 0; i < 30; i++ {
		a = RecordSession(a, session(3, false), cfg)
		if a.Recommended < cfg.MinRecommended {
			t.Fatalf("recommended %s dropped below the floor %s", a.Recommended, cfg.MinRecommended)
		}
	}
}

func TestHistoryBounded(t *testing.T) {
	cfg := DefaultConfig()
	a := state.AttentionState{Expected: 30 * time.Minute}

	for i := 0; i < 3*cfg.HistoryCap; i++ {
		a = RecordSession(a, session(25, true), cfg)
	}
	if len(a.History) != cfg.HistoryCap {
		t.Fatalf("history length %d, cap %d", len(a.History), cfg.HistoryCap)
	}
}

func TestTrendImproving(t *testing.T) {
	cfg := DefaultConfig()
	a := state.AttentionState{Expected: 30 * time.Minute}

	for i := 0; i < cfg.TrendWindow; i++ {
		a = RecordSession(a, session(20, false), cfg)
	}
	for i := 0; i < cfg.TrendWindow; i++ {
		a = RecordSession(a, session(30, true), cfg)
	}

	if a.Trend != state.TrendImproving {
		t.Fatalf("expected improving trend, got %s", a.Trend)
	}
}

func TestTrendDecliningShrinksTarget(t *testing.T) {
	cfg := DefaultConfig()
	a := state.AttentionState{Expected: 40 * time.Minute}

	for i := 0; i < cfg.TrendWindow; i++ {
		a = RecordSession(a, session(40, true), cfg)
	}
	for i := 0; i < cfg.TrendWindow; i++ {
		a = RecordSession(a, session(10, false), cfg)
	}

	if a.Trend != state.TrendDeclining {
		t.Fatalf("expected declining trend, got %s", a.Trend)
	}
	if a.GrowthMultiplier >= 1.0 {
		t.Fatalf("declining trend should shrink the target, multiplier %.2f", a.GrowthMultiplier)
	}
	if a.Recommended >= a.Expected {
		t.Fatal("recommended should sit below expected while declining")
	}
}

func TestSustainedSuccessGrowsTarget(t *testing.T) {
	cfg := DefaultConfig()
	a := state.AttentionState{Expected: 30 * time.Minute}

	for i := 0; i < 2*cfg.TrendWindow; i++ {
		a = RecordSession(a, session(30, true), cfg)
	}

	if a.GrowthMultiplier <= 1.0 {
		t.Fatalf("sustained success should grow the target, multiplier %.2f", a.GrowthMultiplier)
	}
	if a.Recommended <= a.Expected {
		t.Fatal("recommended should sit above expected on sustained success")
	}
}

func TestNegativeDurationTreatedAsZero(t *testing.T) {
	cfg := DefaultConfig()
	a := state.AttentionState{Expected: 30 * time.Minute}

	a = RecordSession(a, state.SessionRecord{Duration: -5 * time.Minute}, cfg)
	if a.History[0].Duration != 0 {
		t.Fatalf("negative duration should clamp to zero, got %s", a.History[0].Duration)
	}
}
