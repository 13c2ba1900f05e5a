package decision

// #region imports
import (
	"github.com/haldenlab/focusloop/go-engine/internal/profile"
)

// #endregion

// #region stress-proxy

// StressProxy derives a stress estimate from the context. A caller-supplied
// proxy wins; otherwise low HRV combined with fragmented attention implies
// elevated stress. An absent HRV signal degrades to a neutral default rather
// than an error.
func StressProxy(ctx profile.Context, cfg Config) float64 {
	ctx = ctx.Normalized()
	if ctx.Stress >= 0 {
		return ctx.Stress
	}

	hrv := ctx.HRV
	if hrv < 0 {
		hrv = cfg.HRVNeutral
	}

	return profile.Clamp01(cfg.HRVWeight*(1-hrv) + cfg.FragmentationWeight*ctx.Fragmentation)
}

// #endregion
