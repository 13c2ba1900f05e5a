package behavior

// #region imports
import (
	"time"

	"github.com/haldenlab/focusloop/go-engine/internal/state"
)

// #endregion

// #region update-compliance

// neutralPrior anchors unseeded trackers at a coin flip, which reduces the
// smoothing below to plain add-one Laplace.
const neutralPrior = 0.5

// UpdateCompliance records one intervention outcome on a tracker and returns
// the new tracker. Probability is a prior-anchored lifetime success rate
// blended with the same rate over the recent window, so a short run of recent
// outcomes moves the estimate faster than the lifetime counts alone. The
// tracker's seeded prior acts as two pseudo-observations, so the estimate
// starts at the seed and stays monotone from there: a success never lowers
// the probability, a failure never raises it.
func UpdateCompliance(t state.ComplianceTracker, success bool, now time.Time, cfg Config) state.ComplianceTracker {
	out := t
	out.Attempts++
	if success {
		out.Successes++
	}
	out.UpdatedAt = now

	out.Window = append(append([]bool(nil), t.Window...), success)
	if cfg.WindowSize > 0 && len(out.Window) > cfg.WindowSize {
		out.Window = out.Window[len(out.Window)-cfg.WindowSize:]
	}

	prior := t.Prior
	if prior <= 0 {
		// Non-positive reads as unseeded.
		prior = neutralPrior
	}

	lifetime := priorRate(out.Successes, out.Attempts, prior)

	wSucc := 0
	for _, ok := range out.Window {
		if ok {
			wSucc++
		}
	}
	recent := priorRate(wSucc, len(out.Window), prior)

	blend := cfg.RecencyBlend
	out.Probability = (1-blend)*lifetime + blend*recent

	return out
}

// priorRate is the smoothed success rate (s + 2·prior)/(a + 2): Laplace
// smoothing with the two pseudo-counts placed at the prior instead of at the
// coin flip, so an empty history evaluates to the prior itself.
func priorRate(successes, attempts int, prior float64) float64 {
	return (float64(successes) + 2*prior) / float64(attempts+2)
}

// #endregion
