package decision

// #region imports
import (
	"fmt"

	"github.com/haldenlab/focusloop/go-engine/internal/profile"
)

// #endregion

// #region suitability

// Suitability is the output of the intervention-suitability fusion.
type Suitability struct {
	Score       float64
	Recommended profile.InterventionType
	ShouldDelay bool
	Reason      string
}

// ComputeInterventionSuitability fuses goal-conflict severity, distraction
// severity, and cognitive readiness into a single score in [0,1], with a
// bonus when a focus session is already active, and picks the recommended
// intervention type by score band capped by the current strictness level.
//
// Hard override first: critically low readiness always carries the delay
// flag regardless of the other signals — depleted users recover before
// being nudged.
func ComputeInterventionSuitability(ctx profile.Context, strictnessLevel int, cfg Config) Suitability {
	ctx = ctx.Normalized()

	if ctx.CognitiveReadiness < cfg.DelayReadinessFloor {
		return Suitability{
			Score:       0,
			Recommended: profile.InterventionReflective,
			ShouldDelay: true,
			Reason:      fmt.Sprintf("cognitive readiness %.2f below floor %.2f", ctx.CognitiveReadiness, cfg.DelayReadinessFloor),
		}
	}

	score := cfg.ConflictWeight*ctx.GoalConflictSeverity +
		cfg.DistractionWeight*ctx.DistractionSeverity +
		cfg.ReadinessWeight*ctx.CognitiveReadiness
	if ctx.SessionActive {
		score += cfg.SessionBonus
	}
	score = profile.Clamp01(score)

	recommended := bandToType(score, cfg)
	recommended = capByStrictness(recommended, strictnessLevel)

	return Suitability{
		Score:       score,
		Recommended: recommended,
		Reason:      fmt.Sprintf("fused score %.2f at strictness %d", score, strictnessLevel),
	}
}

// bandToType maps the fused score onto a recommended intervention type.
func bandToType(score float64, cfg Config) profile.InterventionType {
	switch {
	case score >= cfg.HardBlockBand:
		return profile.InterventionHardBlock
	case score >= cfg.SoftDelayBand:
		return profile.InterventionSoftDelay
	default:
		return profile.InterventionReflective
	}
}

// capByStrictness limits the recommendation to what the current strictness
// level permits: levels 1–2 never hard-block, level 1 never soft-delays.
func capByStrictness(t profile.InterventionType, level int) profile.InterventionType {
	if level <= 2 && t == profile.InterventionHardBlock {
		t = profile.InterventionSoftDelay
	}
	if level <= 1 && t == profile.InterventionSoftDelay {
		t = profile.InterventionReflective
	}
	return t
}

// #endregion
