package baseline

// #region imports
import (
	"time"

	"github.com/haldenlab/focusloop/go-engine/internal/profile"
	"github.com/haldenlab/focusloop/go-engine/internal/state"
)

// #endregion

// #region motivation-weights

// motivationWeight maps motivation type → drive contribution.
var motivationWeight = map[profile.MotivationType]float64{
	profile.MotivationIntrinsic:   1.0,
	profile.MotivationAchievement: 0.8,
	profile.MotivationSocial:      0.6,
	profile.MotivationExtrinsic:   0.4,
}

// #endregion

// #region step-tables

// strictnessSteps maps strictness-compatibility bands onto levels 1–5.
// Any monotonic mapping works as long as ≥0.8 ⇒ ≥4 and ≤0.2 ⇒ ≤2.
var strictnessSteps = []struct {
	below float64
	level int
}{
	{0.2, 1},
	{0.4, 2},
	{0.6, 3},
	{0.8, 4},
}

// sessionSteps maps focus-capability bands onto baseline session minutes.
// Boundary points: ≤0.2 ⇒ 15 minutes, ≥0.8 ⇒ 45 minutes.
var sessionSteps = []struct {
	upTo    float64
	minutes int
}{
	{0.2, 15},
	{0.4, 20},
	{0.6, 30},
}

// #endregion

// #region derived-scores

// GoalDrive combines goal urgency, motivation type, and self-efficacy into
// one drive score in [0,1].
func GoalDrive(p profile.StaticProfile) float64 {
	w, ok := motivationWeight[p.Motivation]
	if !ok {
		w = 0.5
	}
	return profile.Clamp01(0.5*p.GoalUrgency + 0.3*w + 0.2*p.SelfEfficacy)
}

// AdjustedAuthorityResistance shifts the profiled resistance by personality:
// low agreeableness and low conscientiousness both push resistance up.
func AdjustedAuthorityResistance(p profile.StaticProfile) float64 {
	agree := (p.Traits.Agreeableness - 4) / 3   // [-1,1]
	consc := (p.Traits.Conscientiousness - 4) / 3
	return profile.Clamp01(p.AuthorityResistance - 0.08*agree - 0.05*consc)
}

// EmotionalSensitivity blends neuroticism with reported reactivity.
func EmotionalSensitivity(p profile.StaticProfile) float64 {
	neuro := (p.Traits.Neuroticism - 1) / 6 // [0,1]
	return profile.Clamp01(0.6*neuro + 0.4*p.EmotionalReactivity)
}

// InterventionTolerance estimates how much intervention the user can absorb:
// low authority resistance and high strictness compatibility raise it,
// emotional sensitivity moderates it down.
func InterventionTolerance(authorityResistance, strictnessCompat, emotionalSensitivity float64) float64 {
	return profile.Clamp01(0.4*(1-authorityResistance) + 0.4*strictnessCompat + 0.2*(1-emotionalSensitivity))
}

// #endregion

// #region step-mappings

// StrictnessLevel maps strictness compatibility onto a level in [1,5].
func StrictnessLevel(compatibility float64) int {
	c := profile.Clamp01(compatibility)
	for _, s := range strictnessSteps {
		if c < s.below {
			return s.level
		}
	}
	if c >= 0.8 {
		return 5
	}
	return 4
}

// SessionLength maps the focus-capability estimate onto a baseline session
// length.
func SessionLength(capability float64) time.Duration {
	c := profile.Clamp01(capability)
	for _, s := range sessionSteps {
		if c <= s.upTo {
			return time.Duration(s.minutes) * time.Minute
		}
	}
	if c >= 0.8 {
		return 45 * time.Minute
	}
	return 40 * time.Minute
}

// #endregion

// #region initialize

// Initialize seeds a fully-populated PersonalizationState from a static
// profile. Pure function: the profile is normalized, never mutated, and the
// result carries no reference back to it.
func Initialize(p profile.StaticProfile, now time.Time) state.PersonalizationState {
	p = p.Normalized()

	ar := AdjustedAuthorityResistance(p)
	es := EmotionalSensitivity(p)
	level := StrictnessLevel(p.StrictnessCompatibility)
	sessionLen := SessionLength(p.FocusCapability)

	compliance := make(map[profile.InterventionType]state.ComplianceTracker, len(profile.AllInterventionTypes))
	for _, t := range profile.AllInterventionTypes {
		compliance[t] = state.ComplianceTracker{
			Probability: p.ResponsePrediction[t],
			Prior:       p.ResponsePrediction[t],
			UpdatedAt:   now,
		}
	}

	// Every tone starts at the seeded middle except the preferred one,
	// which gets a head start so it wins early arg-max ties decisively.
	tones := make(map[profile.Tone]float64, len(profile.AllTones))
	for _, tone := range profile.AllTones {
		tones[tone] = 0.5
	}
	tones[p.PreferredTone] = 0.6

	weights := make(map[profile.DistractionCategory]float64, len(p.Distractions))
	for k, v := range p.Distractions {
		weights[k] = v
	}

	return state.PersonalizationState{
		ImpulsivityIndex:      p.ImpulsivityIndex,
		GoalDrive:             GoalDrive(p),
		AuthorityResistance:   ar,
		EmotionalSensitivity:  es,
		InterventionTolerance: InterventionTolerance(ar, p.StrictnessCompatibility, es),
		UninstallRisk:         p.UninstallRisk,
		PreferredTone:         p.PreferredTone,
		DistractionWeights:    weights,

		Compliance: compliance,
		Strictness: state.StrictnessState{
			Level:         level,
			BaselineLevel: level,
			ComplianceRate: 0.5,
			LastChangeAt:  now,
			LastDirection: state.DirectionHold,
		},
		Fatigue: state.FatigueState{},

		ToneEffectiveness: tones,

		Attention: state.AttentionState{
			Expected:         sessionLen,
			Recommended:      sessionLen,
			Trend:            state.TrendStable,
			GrowthMultiplier: 1.0,
		},
		Habit: state.HabitState{},
	}
}

// #endregion
