package behavior

// #region imports
import (
	"github.com/haldenlab/focusloop/go-engine/internal/profile"
)

// #endregion

// #region update-tone

// UpdateToneEffectiveness moves one tone's effectiveness toward 1 on success
// or 0 on failure via an exponential moving average, returning a new map.
func UpdateToneEffectiveness(m map[profile.Tone]float64, tone profile.Tone, success bool, cfg Config) map[profile.Tone]float64 {
	out := make(map[profile.Tone]float64, len(m)+1)
	for k, v := range m {
		out[k] = v
	}

	prev, ok := out[tone]
	if !ok {
		prev = 0.5
	}
	out[tone] = ema(prev, boolTo01(success), cfg.ToneAlpha)
	return out
}

// #endregion

// #region best-tone

// BestTone returns the arg-max tone by effectiveness, defaulting to the
// incumbent on ties or an empty map.
func BestTone(m map[profile.Tone]float64, incumbent profile.Tone) profile.Tone {
	best := incumbent
	bestScore := m[incumbent]
	for _, tone := range profile.AllTones {
		score, ok := m[tone]
		if !ok {
			continue
		}
		if score > bestScore {
			best, bestScore = tone, score
		}
	}
	return best
}

// #endregion
