package main

// #region imports
import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/haldenlab/focusloop/go-engine/internal/config"
	"github.com/haldenlab/focusloop/go-engine/internal/logging"
	"github.com/haldenlab/focusloop/go-engine/internal/orchestrator"
	"github.com/haldenlab/focusloop/go-engine/internal/profile"
	"github.com/haldenlab/focusloop/go-engine/internal/replay"
	"github.com/haldenlab/focusloop/go-engine/internal/state"
)

// #endregion

// #region wiring

// openAll wires the common pieces: tuning config, engine, snapshot store.
func openAll() (config.EngineConfig, *orchestrator.Engine, *state.SnapshotStore, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.EngineConfig{}, nil, nil, err
	}
	store, err := state.NewSnapshotStore(flagDB)
	if err != nil {
		return config.EngineConfig{}, nil, nil, err
	}
	return cfg, orchestrator.New(cfg), store, nil
}

// persist commits the new state and writes its provenance row.
func persist(store *state.SnapshotStore, st state.PersonalizationState, outcome orchestrator.Outcome, eventJSON string) (state.SnapshotRecord, error) {
	rec, err := store.Commit(flagUser, st)
	if err != nil {
		return state.SnapshotRecord{}, err
	}
	err = logging.LogDecision(store.DB(), logging.ProvenanceEntry{
		VersionID:   rec.VersionID,
		UserID:      flagUser,
		TriggerType: outcome.Trigger,
		EventJSON:   eventJSON,
		Decision:    outcome.Decision,
		Reason:      outcome.Reason,
	})
	return rec, err
}

// #endregion

// #region init-cmd

func newInitCmd() *cobra.Command {
	var profilePath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Seed the user's control state from an onboarding profile JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(profilePath)
			if err != nil {
				return fmt.Errorf("read profile: %w", err)
			}
			var p profile.StaticProfile
			if err := json.Unmarshal(data, &p); err != nil {
				return fmt.Errorf("parse profile: %w", err)
			}

			_, eng, store, err := openAll()
			if err != nil {
				return err
			}
			defer store.Close()

			st, outcome := eng.Initialize(p, time.Now().UTC())
			rec, err := store.CreateInitial(flagUser, st)
			if err != nil {
				return err
			}
			if err := logging.LogDecision(store.DB(), logging.ProvenanceEntry{
				VersionID:   rec.VersionID,
				UserID:      flagUser,
				TriggerType: outcome.Trigger,
				Decision:    outcome.Decision,
				Reason:      outcome.Reason,
			}); err != nil {
				return err
			}

			fmt.Printf("initialized %s: version=%s strictness=%d session=%s\n",
				flagUser, rec.VersionID, st.Strictness.Level, st.Attention.Recommended)
			return nil
		},
	}

	cmd.Flags().StringVar(&profilePath, "profile", "", "path to the StaticProfile JSON (required)")
	cmd.MarkFlagRequired("profile")
	return cmd
}

// #endregion

// #region event-cmd

func newEventCmd() *cobra.Command {
	var eventPath string

	cmd := &cobra.Command{
		Use:   "event",
		Short: "Apply one behavioral event (compliance, session, or daily rollover)",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(eventPath)
			if err != nil {
				return fmt.Errorf("read event: %w", err)
			}
			var ev replay.Event
			if err := json.Unmarshal(data, &ev); err != nil {
				return fmt.Errorf("parse event: %w", err)
			}

			_, eng, store, err := openAll()
			if err != nil {
				return err
			}
			defer store.Close()

			cur, err := store.GetCurrent(flagUser)
			if err != nil {
				return err
			}

			var next state.PersonalizationState
			var outcome orchestrator.Outcome
			switch {
			case ev.Kind == replay.KindCompliance && ev.Compliance != nil:
				next, outcome = eng.ProcessComplianceEvent(cur.State, *ev.Compliance)
			case ev.Kind == replay.KindSession && ev.Session != nil:
				next, outcome = eng.RecordSession(cur.State, *ev.Session)
			case ev.Kind == replay.KindDaily && ev.Daily != nil:
				next, outcome = eng.PerformDailyUpdate(cur.State, *ev.Daily)
			default:
				return fmt.Errorf("malformed event: kind %q with missing payload", ev.Kind)
			}

			rec, err := persist(store, next, outcome, string(data))
			if err != nil {
				return err
			}
			fmt.Printf("applied %s: version=%s strictness=%d fatigue=%.2f streak=%d\n",
				ev.Kind, rec.VersionID, next.Strictness.Level, next.Fatigue.Score, next.Habit.CurrentStreak)
			return nil
		},
	}

	cmd.Flags().StringVar(&eventPath, "event", "", "path to the event JSON (required)")
	cmd.MarkFlagRequired("event")
	return cmd
}

// #endregion

// #region profile-cmd

func newProfileCmd() *cobra.Command {
	var contextPath string

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Compute the read-only personalization profile for a context snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := profile.Context{Stress: -1, HRV: -1, CollectedAt: time.Now()}
			if contextPath != "" {
				data, err := os.ReadFile(contextPath)
				if err != nil {
					return fmt.Errorf("read context: %w", err)
				}
				if err := json.Unmarshal(data, &ctx); err != nil {
					return fmt.Errorf("parse context: %w", err)
				}
			}

			_, eng, store, err := openAll()
			if err != nil {
				return err
			}
			defer store.Close()

			cur, err := store.GetCurrent(flagUser)
			if err != nil {
				return err
			}

			out := eng.ComputeProfile(cur.State, ctx)
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}

	cmd.Flags().StringVar(&contextPath, "context", "", "path to a Context JSON (default: neutral snapshot)")
	return cmd
}

// #endregion

// #region replay-cmd

func newReplayCmd() *cobra.Command {
	var fixturePath string

	cmd := &cobra.Command{
		Use:   "replay",
		Short: "Replay a recorded event-log fixture and verify expectations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(flagConfig)
			if err != nil {
				return err
			}

			f, err := replay.LoadFixture(fixturePath)
			if err != nil {
				return err
			}
			start, err := f.StartingState(cfg)
			if err != nil {
				return err
			}

			results, final := replay.Replay(start, f.Events, cfg)
			summary := replay.Summarize(results, final)

			fmt.Printf("replayed %d events: %d compliance, %d sessions, %d rollovers, %d skipped\n",
				summary.TotalEvents, summary.Compliance, summary.Sessions, summary.Rollovers, summary.Skipped)
			fmt.Printf("final: strictness=%d fatigue=%.2f streak=%d\n",
				final.Strictness.Level, final.Fatigue.Score, final.Habit.CurrentStreak)

			failures := f.Verify(results)
			for _, msg := range failures {
				fmt.Println("FAIL:", msg)
			}
			if len(failures) > 0 {
				return fmt.Errorf("%d expectation(s) failed", len(failures))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&fixturePath, "fixture", "", "path to the fixture JSON (required)")
	cmd.MarkFlagRequired("fixture")
	return cmd
}

// #endregion

// #region inspect-cmd

func newInspectCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "List recent snapshot versions and provenance for the user",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, store, err := openAll()
			if err != nil {
				return err
			}
			defer store.Close()

			versions, err := store.ListVersions(flagUser, limit)
			if err != nil {
				return err
			}
			for _, v := range versions {
				fmt.Printf("%s  %s  strictness=%d fatigue=%.2f streak=%d interactions=%d\n",
					v.CreatedAt.Format(time.RFC3339), v.VersionID,
					v.State.Strictness.Level, v.State.Fatigue.Score,
					v.State.Habit.CurrentStreak, v.State.Interactions)
			}

			entries, err := logging.ListDecisions(store.DB(), flagUser, limit)
			if err != nil {
				return err
			}
			for _, e := range entries {
				fmt.Printf("%s  %-10s %-8s %s\n",
					e.CreatedAt.Format(time.RFC3339), e.TriggerType, e.Decision, e.Reason)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "max rows to show")
	return cmd
}

// #endregion

// #region rollback-cmd

func newRollbackCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rollback <version-id>",
		Short: "Point the user's active snapshot at a previous version",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, store, err := openAll()
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Rollback(flagUser, args[0]); err != nil {
				return err
			}
			if err := logging.LogDecision(store.DB(), logging.ProvenanceEntry{
				VersionID:   args[0],
				UserID:      flagUser,
				TriggerType: "rollback",
				Decision:    "commit",
				Reason:      "manual rollback",
			}); err != nil {
				return err
			}
			fmt.Printf("rolled back %s to %s\n", flagUser, args[0])
			return nil
		},
	}
	return cmd
}

// #endregion
