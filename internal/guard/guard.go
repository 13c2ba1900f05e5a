package guard

// #region imports
import (
	"fmt"

	"github.com/haldenlab/focusloop/go-engine/internal/state"
)

// #endregion

// #region violation

// ViolationType enumerates the conditions treated as programmer errors.
type ViolationType string

const (
	ViolationStrictnessRange  ViolationType = "strictness_out_of_range"
	ViolationProbabilityRange ViolationType = "probability_out_of_range"
	ViolationNegativeCounts   ViolationType = "negative_counts"
	ViolationNegativeDuration ViolationType = "negative_duration"
	ViolationFatigueRange     ViolationType = "fatigue_out_of_range"
)

// Violation is one detected invariant breach.
type Violation struct {
	Type   ViolationType
	Reason string
}

// #endregion

// #region check

// Check scans a state for invariant breaches. These are the only conditions
// the engine treats as programmer errors: out-of-range strictness, a
// compliance probability outside [0,1], negative counters or durations.
func Check(s state.PersonalizationState) []Violation {
	var out []Violation

	if s.Strictness.Level < 1 || s.Strictness.Level > 5 {
		out = append(out, Violation{
			Type:   ViolationStrictnessRange,
			Reason: fmt.Sprintf("strictness level %d outside [1,5]", s.Strictness.Level),
		})
	}

	for t, c := range s.Compliance {
		if c.Probability < 0 || c.Probability > 1 {
			out = append(out, Violation{
				Type:   ViolationProbabilityRange,
				Reason: fmt.Sprintf("%s probability %.4f outside [0,1]", t, c.Probability),
			})
		}
		if c.Successes < 0 || c.Attempts < c.Successes {
			out = append(out, Violation{
				Type:   ViolationNegativeCounts,
				Reason: fmt.Sprintf("%s counts invalid: successes=%d attempts=%d", t, c.Successes, c.Attempts),
			})
		}
	}

	if s.Fatigue.Score < 0 || s.Fatigue.Score > 1 {
		out = append(out, Violation{
			Type:   ViolationFatigueRange,
			Reason: fmt.Sprintf("fatigue score %.4f outside [0,1]", s.Fatigue.Score),
		})
	}

	if s.Attention.Expected < 0 || s.Attention.Recommended < 0 {
		out = append(out, Violation{
			Type:   ViolationNegativeDuration,
			Reason: "negative attention duration",
		})
	}
	for _, rec := range s.Attention.History {
		if rec.Duration < 0 {
			out = append(out, Violation{
				Type:   ViolationNegativeDuration,
				Reason: "negative session duration in history",
			})
			break
		}
	}

	return out
}

// #endregion

// #region clamp

// Clamp returns a copy with every invariant forced back into range. In
// production the engine degrades gracefully: a slightly wrong recommendation
// beats a crash in a user-facing experience.
func Clamp(s state.PersonalizationState) state.PersonalizationState {
	out := s.Clone()

	if out.Strictness.Level < 1 {
		out.Strictness.Level = 1
	}
	if out.Strictness.Level > 5 {
		out.Strictness.Level = 5
	}

	for t, c := range out.Compliance {
		if c.Probability < 0 {
			c.Probability = 0
		}
		if c.Probability > 1 {
			c.Probability = 1
		}
		if c.Successes < 0 {
			c.Successes = 0
		}
		if c.Attempts < c.Successes {
			c.Attempts = c.Successes
		}
		out.Compliance[t] = c
	}

	if out.Fatigue.Score < 0 {
		out.Fatigue.Score = 0
	}
	if out.Fatigue.Score > 1 {
		out.Fatigue.Score = 1
	}

	if out.Attention.Expected < 0 {
		out.Attention.Expected = 0
	}
	if out.Attention.Recommended < 0 {
		out.Attention.Recommended = 0
	}

	return out
}

// #endregion
