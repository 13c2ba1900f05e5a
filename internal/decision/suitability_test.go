package decision

import (
	"testing"

	"github.com/haldenlab/focusloop/go-engine/internal/profile"
)

func TestDelayOverrideBeatsEverySignal(t *testing.T) {
	cfg := DefaultConfig()

	// Maximal pressure to intervene, but the user is depleted.
	ctx := profile.Context{
		CognitiveReadiness:   0.1,
		GoalConflictSeverity: 1.0,
		DistractionSeverity:  1.0,
		SessionActive:        true,
		Stress:               -1,
		HRV:                  -1,
	}

	suit := ComputeInterventionSuitability(ctx, 5, cfg)
	if !suit.ShouldDelay {
		t.Fatal("readiness below the floor must carry the delay flag")
	}
}

func TestSuitabilityBands(t *testing.T) {
	cfg := DefaultConfig()

	low := profile.Context{CognitiveReadiness: 0.4, GoalConflictSeverity: 0.1, DistractionSeverity: 0.1, Stress: -1, HRV: -1}
	if got := ComputeInterventionSuitability(low, 5, cfg); got.Recommended != profile.InterventionReflective {
		t.Fatalf("low score should recommend reflective, got %s (score %.2f)", got.Recommended, got.Score)
	}

	mid := profile.Context{CognitiveReadiness: 0.5, GoalConflictSeverity: 0.6, DistractionSeverity: 0.5, Stress: -1, HRV: -1}
	if got := ComputeInterventionSuitability(mid, 5, cfg); got.Recommended != profile.InterventionSoftDelay {
		t.Fatalf("mid score should recommend soft delay, got %s (score %.2f)", got.Recommended, got.Score)
	}

	high := profile.Context{CognitiveReadiness: 0.9, GoalConflictSeverity: 0.9, DistractionSeverity: 0.9, SessionActive: true, Stress: -1, HRV: -1}
	if got := ComputeInterventionSuitability(high, 5, cfg); got.Recommended != profile.InterventionHardBlock {
		t.Fatalf("high score should recommend hard block, got %s (score %.2f)", got.Recommended, got.Score)
	}
}

func TestScoreStaysInRange(t *testing.T) {
	cfg := DefaultConfig()
	for _, ctx := range []profile.Context{
		{Stress: -1, HRV: -1},
		{CognitiveReadiness: 1, GoalConflictSeverity: 1, DistractionSeverity: 1, SessionActive: true, Stress: -1, HRV: -1},
		{CognitiveReadiness: 5, GoalConflictSeverity: -2, DistractionSeverity: 3, Stress: -1, HRV: -1},
	} {
		suit := ComputeInterventionSuitability(ctx, 3, cfg)
		if suit.Score < 0 || suit.Score > 1 {
			t.Fatalf("score %.4f outside [0,1]", suit.Score)
		}
	}
}

func TestLowStrictnessCapsRecommendation(t *testing.T) {
	cfg := DefaultConfig()
	high := profile.Context{CognitiveReadiness: 0.9, GoalConflictSeverity: 0.9, DistractionSeverity: 0.9, SessionActive: true, Stress: -1, HRV: -1}

	if got := ComputeInterventionSuitability(high, 2, cfg); got.Recommended == profile.InterventionHardBlock {
		t.Fatal("level 2 must never recommend a hard block")
	}
	if got := ComputeInterventionSuitability(high, 1, cfg); got.Recommended != profile.InterventionReflective {
		t.Fatalf("level 1 should cap at reflective, got %s", got.Recommended)
	}
}
