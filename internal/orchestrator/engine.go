package orchestrator

// #region imports
import (
	"log"
	"time"

	"github.com/haldenlab/focusloop/go-engine/internal/attention"
	"github.com/haldenlab/focusloop/go-engine/internal/baseline"
	"github.com/haldenlab/focusloop/go-engine/internal/behavior"
	"github.com/haldenlab/focusloop/go-engine/internal/config"
	"github.com/haldenlab/focusloop/go-engine/internal/decision"
	"github.com/haldenlab/focusloop/go-engine/internal/guard"
	"github.com/haldenlab/focusloop/go-engine/internal/habit"
	"github.com/haldenlab/focusloop/go-engine/internal/profile"
	"github.com/haldenlab/focusloop/go-engine/internal/state"
)

// #endregion

// #region engine

// Engine is the single entry point external callers use. Every method is a
// pure transformation: old state + input → new state. The engine performs
// no I/O and holds no mutable state of its own; callers serialize writes
// per user and own persistence.
type Engine struct {
	cfg config.EngineConfig
}

// New creates an engine with the given tuning config.
func New(cfg config.EngineConfig) *Engine {
	return &Engine{cfg: cfg}
}

// #endregion

// #region initialize

// Initialize seeds the control state from a static profile.
func (e *Engine) Initialize(p profile.StaticProfile, now time.Time) (state.PersonalizationState, Outcome) {
	st := baseline.Initialize(p, now)
	st = e.enforce(st)

	log.Printf("[ENGINE] initialize: strictness=%d session=%s tone=%s",
		st.Strictness.Level, st.Attention.Recommended, st.PreferredTone)

	return st, Outcome{Trigger: "init", Decision: "commit", Reason: "baseline seeded from static profile"}
}

// #endregion

// #region compliance-event

// ProcessComplianceEvent routes a nudge outcome through the compliance
// tracker, the fatigue tracker, tone effectiveness, and strictness
// evolution, returning the new state.
func (e *Engine) ProcessComplianceEvent(st state.PersonalizationState, ev ComplianceEvent) (state.PersonalizationState, Outcome) {
	out := st.Clone()
	bcfg := e.cfg.Behavior

	tracker := out.Compliance[ev.Type]
	out.Compliance[ev.Type] = behavior.UpdateCompliance(tracker, ev.Successful, ev.At, bcfg)

	out.Fatigue = behavior.RecordNudge(out.Fatigue, !ev.Successful, ev.At, bcfg)

	tone := ev.Tone
	if tone == "" {
		tone = out.PreferredTone
	}
	out.ToneEffectiveness = behavior.UpdateToneEffectiveness(out.ToneEffectiveness, tone, ev.Successful, bcfg)

	out.Strictness = behavior.RollOutcome(out.Strictness, ev.Successful, ev.Override, bcfg)
	prevLevel := out.Strictness.Level
	out.Strictness = behavior.EvolveStrictness(out.Strictness, behavior.StrictnessInputs{
		ComplianceRate:      out.Strictness.ComplianceRate,
		OverrideFrequency:   out.Strictness.OverrideFrequency,
		SessionSuccessRate:  out.Strictness.SessionSuccessRate,
		AuthorityResistance: out.AuthorityResistance,
	}, ev.At, bcfg)

	out.Interactions++
	out = e.enforce(out)

	log.Printf("[ENGINE] compliance: type=%s success=%v p=%.2f level=%d→%d fatigue=%.2f",
		ev.Type, ev.Successful, out.Compliance[ev.Type].Probability,
		prevLevel, out.Strictness.Level, out.Fatigue.Score)

	return out, Outcome{
		Trigger:  "compliance",
		Decision: "commit",
		Reason:   string(out.Strictness.LastDirection),
	}
}

// #endregion

// #region session-event

// RecordSession routes a completed focus session through the attention
// tracker, the habit engine, and the rolling session-success rate.
func (e *Engine) RecordSession(st state.PersonalizationState, ev SessionEvent) (state.PersonalizationState, Outcome) {
	out := st.Clone()

	dur := ev.Duration
	if dur < 0 {
		dur = 0
	}

	out.Attention = attention.RecordSession(out.Attention, state.SessionRecord{
		Duration:   dur,
		Planned:    ev.Planned,
		Successful: ev.Successful,
		At:         ev.At,
	}, e.cfg.Attention)

	// Round to the nearest minute so sub-minute remainders are not lost on
	// the way into the day total.
	minutes := int((dur + time.Minute/2) / time.Minute)
	out.Habit = habit.RecordFocusMinutes(out.Habit, ev.At, minutes, e.cfg.Habit)

	out.Strictness = behavior.RollSession(out.Strictness, ev.Successful, e.cfg.Behavior)

	out.Interactions++
	out = e.enforce(out)

	log.Printf("[ENGINE] session: dur=%s success=%v trend=%s recommended=%s streak=%d",
		dur, ev.Successful, out.Attention.Trend, out.Attention.Recommended, out.Habit.CurrentStreak)

	return out, Outcome{
		Trigger:  "session",
		Decision: "commit",
		Reason:   string(out.Attention.Trend),
	}
}

// #endregion

// #region daily-update

// PerformDailyUpdate runs the calendar-day rollover: fatigue decay, daily
// counter resets, and streak-break detection. Idempotent on already-reset
// counters, so a duplicated trigger is safe.
func (e *Engine) PerformDailyUpdate(st state.PersonalizationState, ev DailyEvent) (state.PersonalizationState, Outcome) {
	out := st.Clone()

	out.Fatigue = behavior.DecayFatigue(out.Fatigue, e.cfg.Behavior)
	out.Habit = habit.CheckBreak(out.Habit, ev.Date)

	// A fresh tracking week starts on the configured first weekday.
	if ev.Date.Weekday() == time.Monday {
		out.Habit = habit.ResetWeek(out.Habit)
	}

	out = e.enforce(out)

	log.Printf("[ENGINE] daily: fatigue=%.2f streak=%d", out.Fatigue.Score, out.Habit.CurrentStreak)

	return out, Outcome{Trigger: "daily", Decision: "commit", Reason: "day rollover"}
}

// #endregion

// #region compute-profile

// ComputeProfile derives the read-only PersonalizationProfile from the
// current state plus a freshly-collected context snapshot. No mutation:
// consumers get a value, not a window into engine state.
func (e *Engine) ComputeProfile(st state.PersonalizationState, ctx profile.Context) PersonalizationProfile {
	ctx = ctx.Normalized()
	dcfg := e.cfg.Decision

	suit := decision.ComputeInterventionSuitability(ctx, st.Strictness.Level, dcfg)
	policy := decision.SelectPolicy(suit, st, dcfg)

	stress := decision.StressProxy(ctx, dcfg)
	recovery := decision.RecommendRecovery(st.EmotionalSensitivity, stress, dcfg)

	matrix := make(map[profile.InterventionType]float64, len(st.Compliance))
	for t, c := range st.Compliance {
		matrix[t] = c.Probability
	}

	// Fatigue nudges the uninstall-risk estimate up: a worn-down user is a
	// churn risk even when the static estimate was low.
	risk := profile.Clamp01(st.UninstallRisk + 0.25*st.Fatigue.Score)

	return PersonalizationProfile{
		StrictnessLevel:    st.Strictness.Level,
		Tone:               policy.Tone,
		Policy:             policy,
		RecommendedSession: st.Attention.Recommended,
		Recovery:           recovery,
		HabitSuggestions:   habit.Suggestions(st.DistractionWeights, e.cfg.Habit.MaxSuggestions),

		ComplianceMatrix: matrix,

		UninstallRisk:      risk,
		AttentionTrend:     st.Attention.Trend,
		SuitabilityScore:   suit.Score,
		FatigueLevel:       st.Fatigue.Score,
		ThrottleSeverity:   behavior.Throttle(st.Fatigue, e.cfg.Behavior),
		CognitiveReadiness: ctx.CognitiveReadiness,
		CurrentStreak:      st.Habit.CurrentStreak,
	}
}

// #endregion

// #region enforce

// enforce clamps invariant violations away; in strict (development) mode
// they panic instead.
func (e *Engine) enforce(st state.PersonalizationState) state.PersonalizationState {
	violations := guard.Check(st)
	if len(violations) == 0 {
		return st
	}
	if e.cfg.Strict {
		log.Panicf("[ENGINE] invariant violation: %s", violations[0].Reason)
	}
	log.Printf("[ENGINE] clamped %d invariant violation(s): %s", len(violations), violations[0].Reason)
	return guard.Clamp(st)
}

// #endregion
