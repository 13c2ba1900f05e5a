package attention

// #region imports
import (
	"time"

	"github.com/haldenlab/focusloop/go-engine/internal/state"
)

// #endregion

// #region config

// Config holds the tuning constants for attention evolution.
type Config struct {
	HistoryCap     int     `yaml:"history_cap"`     // bounded session history
	TrendWindow    int     `yaml:"trend_window"`    // sessions per trend sub-window
	TrendThreshold float64 `yaml:"trend_threshold"` // recent-vs-prior delta to call a trend
	HighSuccess    float64 `yaml:"high_success"`    // sustained success rate for growth
	LowSuccess     float64 `yaml:"low_success"`     // sustained failure rate for shrink
	GrowthUp       float64 `yaml:"growth_up"`       // multiplier when improving
	GrowthDown     float64 `yaml:"growth_down"`     // multiplier when declining
	DurationAlpha  float64 `yaml:"duration_alpha"`  // EMA step for expected duration

	MinRecommended time.Duration `yaml:"min_recommended"` // hard floor
}

// DefaultConfig returns the hand-tuned defaults.
func DefaultConfig() Config {
	return Config{
		HistoryCap:     20,
		TrendWindow:    5,
		TrendThreshold: 0.15,
		HighSuccess:    0.75,
		LowSuccess:     0.40,
		GrowthUp:       1.10,
		GrowthDown:     0.90,
		DurationAlpha:  0.2,
		MinRecommended: 10 * time.Minute,
	}
}

// #endregion

// #region record-session

// RecordSession appends a completed session to the bounded history and
// rederives success rate, trend, growth multiplier, and the recommended
// session length. Negative durations are treated as zero.
func RecordSession(a state.AttentionState, rec state.SessionRecord, cfg Config) state.AttentionState {
	if rec.Duration < 0 {
		rec.Duration = 0
	}

	out := a
	out.History = append(append([]state.SessionRecord(nil), a.History...), rec)
	if cfg.HistoryCap > 0 && len(out.History) > cfg.HistoryCap {
		out.History = out.History[len(out.History)-cfg.HistoryCap:]
	}

	out.SuccessRate = successRate(out.History)
	out.Trend = classifyTrend(out.History, cfg)
	out.GrowthMultiplier = growthMultiplier(out.Trend, out.SuccessRate, cfg)

	// Expected duration tracks actual successful sessions; failures leave
	// it alone so one abandoned session doesn't drag the target down.
	if rec.Successful {
		out.Expected = emaDuration(out.Expected, rec.Duration, cfg.DurationAlpha)
	}

	recommended := time.Duration(float64(out.Expected) * out.GrowthMultiplier)
	if recommended < cfg.MinRecommended {
		recommended = cfg.MinRecommended
	}
	out.Recommended = recommended

	return out
}

// #endregion

// #region helpers

func successRate(history []state.SessionRecord) float64 {
	if len(history) == 0 {
		return 0
	}
	n := 0
	for _, s := range history {
		if s.Successful {
			n++
		}
	}
	return float64(n) / float64(len(history))
}

// classifyTrend compares the success rate of the most recent sub-window
// against the one before it. Too little history reads as stable.
func classifyTrend(history []state.SessionRecord, cfg Config) state.Trend {
	w := cfg.TrendWindow
	if w <= 0 || len(history) < 2*w {
		return state.TrendStable
	}

	recent := successRate(history[len(history)-w:])
	prior := successRate(history[len(history)-2*w : len(history)-w])

	switch {
	case recent-prior > cfg.TrendThreshold:
		return state.TrendImproving
	case prior-recent > cfg.TrendThreshold:
		return state.TrendDeclining
	default:
		return state.TrendStable
	}
}

// growthMultiplier expands the target on sustained high success and shrinks
// it on sustained low success or a declining trend; everything else holds.
func growthMultiplier(trend state.Trend, rate float64, cfg Config) float64 {
	switch {
	case rate <= cfg.LowSuccess || trend == state.TrendDeclining:
		return cfg.GrowthDown
	case rate >= cfg.HighSuccess && trend != state.TrendDeclining:
		return cfg.GrowthUp
	default:
		return 1.0
	}
}

func emaDuration(prev, sample time.Duration, alpha float64) time.Duration {
	if prev <= 0 {
		return sample
	}
	return time.Duration((1-alpha)*float64(prev) + alpha*float64(sample))
}

// #endregion
