package replay

// #region imports
import (
	"github.com/haldenlab/focusloop/go-engine/internal/config"
	"github.com/haldenlab/focusloop/go-engine/internal/orchestrator"
	"github.com/haldenlab/focusloop/go-engine/internal/state"
)

// #endregion

// #region types

// EventKind discriminates the entries of a recorded event log.
type EventKind string

const (
	KindCompliance EventKind = "compliance"
	KindSession    EventKind = "session"
	KindDaily      EventKind = "daily"
)

// Event is one recorded behavioral event for replay. Exactly one of the
// payload pointers matches Kind.
type Event struct {
	ID         string                        `json:"id"`
	Kind       EventKind                     `json:"kind"`
	Compliance *orchestrator.ComplianceEvent `json:"compliance,omitempty"`
	Session    *orchestrator.SessionEvent    `json:"session,omitempty"`
	Daily      *orchestrator.DailyEvent      `json:"daily,omitempty"`
}

// StepResult captures the outcome of replaying one event.
type StepResult struct {
	EventID  string               `json:"event_id"`
	Kind     EventKind            `json:"kind"`
	Outcome  orchestrator.Outcome `json:"outcome"`
	Strict   int                  `json:"strictness_level"`
	Fatigue  float64              `json:"fatigue"`
	Streak   int                  `json:"streak"`
	Skipped  bool                 `json:"skipped"`
	SkipNote string               `json:"skip_note,omitempty"`
}

// Summary provides aggregate stats from a replay run.
type Summary struct {
	TotalEvents int
	Compliance  int
	Sessions    int
	Rollovers   int
	Skipped     int
	FinalState  state.PersonalizationState
}

// #endregion types

// #region replay

// Replay feeds a recorded event log through the engine from a starting
// state. Transitions are pure, so replaying a log from the same snapshot is
// deterministic and side-effect free — the audit path promised by the
// copy-on-write state model.
func Replay(start state.PersonalizationState, events []Event, cfg config.EngineConfig) ([]StepResult, state.PersonalizationState) {
	eng := orchestrator.New(cfg)
	current := start
	results := make([]StepResult, 0, len(events))

	for _, ev := range events {
		var outcome orchestrator.Outcome

		switch {
		case ev.Kind == KindCompliance && ev.Compliance != nil:
			current, outcome = eng.ProcessComplianceEvent(current, *ev.Compliance)
		case ev.Kind == KindSession && ev.Session != nil:
			current, outcome = eng.RecordSession(current, *ev.Session)
		case ev.Kind == KindDaily && ev.Daily != nil:
			current, outcome = eng.PerformDailyUpdate(current, *ev.Daily)
		default:
			results = append(results, StepResult{
				EventID:  ev.ID,
				Kind:     ev.Kind,
				Skipped:  true,
				SkipNote: "malformed event: kind/payload mismatch",
			})
			continue
		}

		results = append(results, StepResult{
			EventID: ev.ID,
			Kind:    ev.Kind,
			Outcome: outcome,
			Strict:  current.Strictness.Level,
			Fatigue: current.Fatigue.Score,
			Streak:  current.Habit.CurrentStreak,
		})
	}

	return results, current
}

// Summarize computes aggregate stats from replay results.
func Summarize(results []StepResult, final state.PersonalizationState) Summary {
	s := Summary{
		TotalEvents: len(results),
		FinalState:  final,
	}
	for _, r := range results {
		if r.Skipped {
			s.Skipped++
			continue
		}
		switch r.Kind {
		case KindCompliance:
			s.Compliance++
		case KindSession:
			s.Sessions++
		case KindDaily:
			s.Rollovers++
		}
	}
	return s
}

// #endregion replay
