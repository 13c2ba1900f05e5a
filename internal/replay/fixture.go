package replay

// #region imports
import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/haldenlab/focusloop/go-engine/internal/baseline"
	"github.com/haldenlab/focusloop/go-engine/internal/config"
	"github.com/haldenlab/focusloop/go-engine/internal/profile"
	"github.com/haldenlab/focusloop/go-engine/internal/state"
)

// #endregion

// #region fixture-types

// Fixture is the top-level JSON structure for a replay fixture: a static
// profile to seed from (or a literal starting state), the recorded events,
// and per-event expectations.
type Fixture struct {
	Description string `json:"description"`

	// Profile seeds the starting state via the baseline initializer when
	// StartState is absent.
	Profile    *profile.StaticProfile      `json:"profile,omitempty"`
	StartState *state.PersonalizationState `json:"start_state,omitempty"`

	StartAt string `json:"start_at"` // RFC3339; baseline init timestamp

	Events   []Event           `json:"events"`
	Expected []ExpectedOutcome `json:"expected,omitempty"`
}

// ExpectedOutcome pins the strictness level, fatigue band, or streak an
// event should leave behind. Zero-valued fields are not asserted.
type ExpectedOutcome struct {
	EventID    string  `json:"event_id"`
	Decision   string  `json:"decision,omitempty"`
	Strictness int     `json:"strictness,omitempty"`
	Streak     int     `json:"streak,omitempty"`
	MaxFatigue float64 `json:"max_fatigue,omitempty"`
}

// #endregion fixture-types

// #region fixture-loader

// LoadFixture reads and parses a JSON fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	return &f, nil
}

// StartingState resolves the fixture's initial state: a literal state wins,
// otherwise the profile is run through the baseline initializer.
func (f *Fixture) StartingState(cfg config.EngineConfig) (state.PersonalizationState, error) {
	if f.StartState != nil {
		return f.StartState.Clone(), nil
	}
	if f.Profile == nil {
		return state.PersonalizationState{}, fmt.Errorf("fixture needs profile or start_state")
	}
	at, err := parseStartAt(f.StartAt)
	if err != nil {
		return state.PersonalizationState{}, err
	}
	return baseline.Initialize(*f.Profile, at), nil
}

func parseStartAt(s string) (time.Time, error) {
	if s == "" {
		return time.Now().UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse start_at: %w", err)
	}
	return t, nil
}

// Verify checks replay results against the fixture's expectations.
func (f *Fixture) Verify(results []StepResult) []string {
	byID := make(map[string]StepResult, len(results))
	for _, r := range results {
		byID[r.EventID] = r
	}

	var failures []string
	for _, exp := range f.Expected {
		r, ok := byID[exp.EventID]
		if !ok {
			failures = append(failures, fmt.Sprintf("%s: no result", exp.EventID))
			continue
		}
		if exp.Decision != "" && r.Outcome.Decision != exp.Decision {
			failures = append(failures, fmt.Sprintf("%s: decision %s, want %s", exp.EventID, r.Outcome.Decision, exp.Decision))
		}
		if exp.Strictness != 0 && r.Strict != exp.Strictness {
			failures = append(failures, fmt.Sprintf("%s: strictness %d, want %d", exp.EventID, r.Strict, exp.Strictness))
		}
		if exp.Streak != 0 && r.Streak != exp.Streak {
			failures = append(failures, fmt.Sprintf("%s: streak %d, want %d", exp.EventID, r.Streak, exp.Streak))
		}
		if exp.MaxFatigue != 0 && r.Fatigue > exp.MaxFatigue {
			failures = append(failures, fmt.Sprintf("%s: fatigue %.2f over cap %.2f", exp.EventID, r.Fatigue, exp.MaxFatigue))
		}
	}
	return failures
}

// #endregion fixture-loader
