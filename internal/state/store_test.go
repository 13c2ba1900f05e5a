package state_test

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/haldenlab/focusloop/go-engine/internal/baseline"
	"github.com/haldenlab/focusloop/go-engine/internal/config"
	"github.com/haldenlab/focusloop/go-engine/internal/orchestrator"
	"github.com/haldenlab/focusloop/go-engine/internal/profile"
	"github.com/haldenlab/focusloop/go-engine/internal/state"
)

func openStore(t *testing.T) *state.SnapshotStore {
	t.Helper()
	store, err := state.NewSnapshotStore(filepath.Join(t.TempDir(), "snapshots.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func seedState(t *testing.T) state.PersonalizationState {
	t.Helper()
	p := profile.StaticProfile{
		Traits: profile.TraitScores{
			Openness: 4, Conscientiousness: 5, Extraversion: 3,
			Agreeableness: 4, Neuroticism: 3,
		},
		ImpulsivityIndex:        0.4,
		AuthorityResistance:     0.3,
		StrictnessCompatibility: 0.6,
		UninstallRisk:           0.2,
		Motivation:              profile.MotivationIntrinsic,
		Goal:                    profile.GoalDeepWork,
		GoalUrgency:             0.7,
		EmotionalReactivity:     0.3,
		SelfEfficacy:            0.6,
		Distractions: map[profile.DistractionCategory]float64{
			profile.DistractionSocialMedia: 1.0,
			profile.DistractionVideo:       0.5,
		},
		ResponsePrediction: map[profile.InterventionType]float64{
			profile.InterventionReflective: 0.7,
			profile.InterventionSoftDelay:  0.5,
			profile.InterventionHardBlock:  0.3,
		},
		FocusCapability: 0.6,
		PreferredTone:   profile.ToneEncouraging,
	}
	return baseline.Initialize(p, time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC))
}

func TestGetCurrentBeforeInit(t *testing.T) {
	store := openStore(t)

	_, err := store.GetCurrent("nobody")
	require.True(t, errors.Is(err, state.ErrNoSnapshot))
}

func TestCreateInitialAndGetCurrent(t *testing.T) {
	store := openStore(t)
	st := seedState(t)

	rec, err := store.CreateInitial("user-1", st)
	require.NoError(t, err)
	require.NotEmpty(t, rec.VersionID)
	require.Empty(t, rec.ParentID)

	cur, err := store.GetCurrent("user-1")
	require.NoError(t, err)
	require.Equal(t, rec.VersionID, cur.VersionID)
	require.Equal(t, state.SchemaVersion, cur.SchemaVersion)

	if diff := cmp.Diff(st, cur.State); diff != "" {
		t.Fatalf("state round-trip mismatch (-want +got):\n%s", diff)
	}
}

func TestCommitAdvancesPointerAndLinksParent(t *testing.T) {
	store := openStore(t)
	st := seedState(t)

	first, err := store.CreateInitial("user-1", st)
	require.NoError(t, err)

	next := st.Clone()
	next.Interactions = 3
	next.Strictness.Level = 4

	second, err := store.Commit("user-1", next)
	require.NoError(t, err)
	require.Equal(t, first.VersionID, second.ParentID)

	cur, err := store.GetCurrent("user-1")
	require.NoError(t, err)
	require.Equal(t, second.VersionID, cur.VersionID)
	require.Equal(t, 4, cur.State.Strictness.Level)
}

func TestRollbackRestoresOldVersion(t *testing.T) {
	store := openStore(t)
	st := seedState(t)

	first, err := store.CreateInitial("user-1", st)
	require.NoError(t, err)

	next := st.Clone()
	next.Fatigue.Score = 0.9
	_, err = store.Commit("user-1", next)
	require.NoError(t, err)

	require.NoError(t, store.Rollback("user-1", first.VersionID))

	cur, err := store.GetCurrent("user-1")
	require.NoError(t, err)
	require.Equal(t, first.VersionID, cur.VersionID)
	require.Equal(t, st.Fatigue.Score, cur.State.Fatigue.Score)
}

func TestRollbackRejectsForeignVersion(t *testing.T) {
	store := openStore(t)
	st := seedState(t)

	mine, err := store.CreateInitial("user-1", st)
	require.NoError(t, err)
	_, err = store.CreateInitial("user-2", st)
	require.NoError(t, err)

	require.Error(t, store.Rollback("user-2", mine.VersionID))
	require.Error(t, store.Rollback("user-1", "no-such-version"))
}

func TestListVersionsNewestFirst(t *testing.T) {
	store := openStore(t)
	st := seedState(t)

	_, err := store.CreateInitial("user-1", st)
	require.NoError(t, err)
	for i := 1; i <= 3; i++ {
		next := st.Clone()
		next.Interactions = i
		_, err = store.Commit("user-1", next)
		require.NoError(t, err)
	}

	records, err := store.ListVersions("user-1", 10)
	require.NoError(t, err)
	require.Len(t, records, 4)
	require.Equal(t, 3, records[0].State.Interactions)
	for i := 1; i < len(records); i++ {
		require.False(t, records[i].CreatedAt.After(records[i-1].CreatedAt))
	}
}

// Persisting and reloading a snapshot must not change any downstream
// decision: the derived profile computed from the reloaded state has to be
// byte-for-byte identical to the one computed from the in-memory state.
func TestReloadedStateYieldsIdenticalProfile(t *testing.T) {
	store := openStore(t)
	eng := orchestrator.New(config.Default())

	st := seedState(t)
	st, _ = eng.ProcessComplianceEvent(st, orchestrator.ComplianceEvent{
		Type:       profile.InterventionReflective,
		Tone:       profile.ToneEncouraging,
		Successful: true,
		At:         time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
	})

	_, err := store.CreateInitial("user-1", st)
	require.NoError(t, err)

	cur, err := store.GetCurrent("user-1")
	require.NoError(t, err)

	ctx := profile.Context{
		CognitiveReadiness:   0.6,
		Fragmentation:        0.3,
		GoalConflictSeverity: 0.5,
		DistractionSeverity:  0.4,
		Stress:               -1,
		HRV:                  -1,
	}

	want, err := json.Marshal(eng.ComputeProfile(st, ctx))
	require.NoError(t, err)
	got, err := json.Marshal(eng.ComputeProfile(cur.State, ctx))
	require.NoError(t, err)
	require.Equal(t, string(want), string(got))
}
