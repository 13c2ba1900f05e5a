package guard

import (
	"testing"
	"time"

	"github.com/haldenlab/focusloop/go-engine/internal/profile"
	"github.com/haldenlab/focusloop/go-engine/internal/state"
)

func validState() state.PersonalizationState {
	return state.PersonalizationState{
		Strictness: state.StrictnessState{Level: 3},
		Compliance: map[profile.InterventionType]state.ComplianceTracker{
			profile.InterventionReflective: {Successes: 2, Attempts: 4, Probability: 0.5},
		},
		Fatigue: state.FatigueState{Score: 0.3},
		Attention: state.AttentionState{
			Expected:    30 * time.Minute,
			Recommended: 30 * time.Minute,
		},
	}
}

func TestCheckPassesValidState(t *testing.T) {
	if v := Check(validState()); len(v) != 0 {
		t.Fatalf("valid state flagged: %v", v)
	}
}

func TestCheckFlagsEachViolation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*state.PersonalizationState)
		want   ViolationType
	}{
		{"strictness low", func(s *state.PersonalizationState) { s.Strictness.Level = 0 }, ViolationStrictnessRange},
		{"strictness high", func(s *state.PersonalizationState) { s.Strictness.Level = 6 }, ViolationStrictnessRange},
		{"probability", func(s *state.PersonalizationState) {
			c := s.Compliance[profile.InterventionReflective]
			c.Probability = 1.2
			s.Compliance[profile.InterventionReflective] = c
		}, ViolationProbabilityRange},
		{"counts", func(s *state.PersonalizationState) {
			c := s.Compliance[profile.InterventionReflective]
			c.Successes = 5
			c.Attempts = 3
			s.Compliance[profile.InterventionReflective] = c
		}, ViolationNegativeCounts},
		{"fatigue", func(s *state.PersonalizationState) { s.Fatigue.Score = -0.1 }, ViolationFatigueRange},
		{"duration", func(s *state.PersonalizationState) { s.Attention.Recommended = -time.Minute }, ViolationNegativeDuration},
		{"history duration", func(s *state.PersonalizationState) {
			s.Attention.History = []state.SessionRecord{{Duration: -time.Second}}
		}, ViolationNegativeDuration},
	}

	for _, tc := range cases {
		st := validState()
		tc.mutate(&st)
		violations := Check(st)
		if len(violations) == 0 {
			t.Fatalf("%s: violation not detected", tc.name)
		}
		found := false
		for _, v := range violations {
			if v.Type == tc.want {
				found = true
			}
		}
		if !found {
			t.Fatalf("%s: got %v, want type %s", tc.name, violations, tc.want)
		}
	}
}

func TestClampRestoresInvariants(t *testing.T) {
	st := validState()
	st.Strictness.Level = 9
	st.Fatigue.Score = 1.7
	st.Attention.Expected = -time.Minute
	c := st.Compliance[profile.InterventionReflective]
	c.Probability = -0.2
	c.Successes = 5
	c.Attempts = 3
	st.Compliance[profile.InterventionReflective] = c

	got := Clamp(st)
	if v := Check(got); len(v) != 0 {
		t.Fatalf("clamped state still invalid: %v", v)
	}
	if got.Strictness.Level != 5 {
		t.Fatalf("level = %d, want 5", got.Strictness.Level)
	}
	if got.Fatigue.Score != 1 {
		t.Fatalf("fatigue = %v, want 1", got.Fatigue.Score)
	}

	// Clamp works on a copy.
	if st.Strictness.Level != 9 {
		t.Fatal("input state was mutated")
	}
}
