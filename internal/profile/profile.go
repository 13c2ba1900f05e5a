package profile

// #region imports
import (
	"time"
)

// #endregion

// #region intervention-type

// InterventionType identifies one of the three intervention styles the
// application can deliver, from lightest to heaviest.
type InterventionType string

const (
	InterventionReflective InterventionType = "reflective"
	InterventionSoftDelay  InterventionType = "soft_delay"
	InterventionHardBlock  InterventionType = "hard_block"
)

// AllInterventionTypes lists the intervention styles in escalation order.
var AllInterventionTypes = []InterventionType{
	InterventionReflective,
	InterventionSoftDelay,
	InterventionHardBlock,
}

// #endregion

// #region tone

// Tone identifies the voice a nudge is delivered in.
type Tone string

const (
	ToneGentle      Tone = "gentle"
	ToneEncouraging Tone = "encouraging"
	ToneDirect      Tone = "direct"
	TonePlayful     Tone = "playful"
)

// AllTones lists the supported nudge tones.
var AllTones = []Tone{ToneGentle, ToneEncouraging, ToneDirect, TonePlayful}

// #endregion

// #region motivation-type

// MotivationType tags what primarily drives the user toward their goal.
type MotivationType string

const (
	MotivationIntrinsic   MotivationType = "intrinsic"
	MotivationAchievement MotivationType = "achievement"
	MotivationSocial      MotivationType = "social"
	MotivationExtrinsic   MotivationType = "extrinsic"
)

// #endregion

// #region goal-category

// GoalCategory classifies the user's stated goal.
type GoalCategory string

const (
	GoalDeepWork    GoalCategory = "deep_work"
	GoalStudy       GoalCategory = "study"
	GoalScreenTime  GoalCategory = "screen_time"
	GoalMindfulness GoalCategory = "mindfulness"
)

// #endregion

// #region distraction-category

// DistractionCategory classifies the kind of content that pulls the user away.
type DistractionCategory string

const (
	DistractionSocialMedia DistractionCategory = "social_media"
	DistractionVideo       DistractionCategory = "video"
	DistractionGaming      DistractionCategory = "gaming"
	DistractionNews        DistractionCategory = "news"
	DistractionMessaging   DistractionCategory = "messaging"
	DistractionShopping    DistractionCategory = "shopping"
)

// #endregion

// #region static-profile

// TraitScores holds the five personality trait scores, each in [1,7].
type TraitScores struct {
	Openness          float64 `json:"openness" yaml:"openness"`
	Conscientiousness float64 `json:"conscientiousness" yaml:"conscientiousness"`
	Extraversion      float64 `json:"extraversion" yaml:"extraversion"`
	Agreeableness     float64 `json:"agreeableness" yaml:"agreeableness"`
	Neuroticism       float64 `json:"neuroticism" yaml:"neuroticism"`
}

// StaticProfile is the immutable onboarding output the engine is seeded from.
// Produced once by the profile-builder pipeline; read-only thereafter.
type StaticProfile struct {
	Traits TraitScores `json:"traits"`

	ImpulsivityIndex        float64 `json:"impulsivity_index"`
	AuthorityResistance     float64 `json:"authority_resistance"`
	StrictnessCompatibility float64 `json:"strictness_compatibility"`
	UninstallRisk           float64 `json:"uninstall_risk"`

	Motivation  MotivationType `json:"motivation"`
	Goal        GoalCategory   `json:"goal"`
	GoalUrgency float64        `json:"goal_urgency"`

	EmotionalReactivity float64 `json:"emotional_reactivity"`
	SelfEfficacy        float64 `json:"self_efficacy"`

	// Distractions maps category → weight in [0,1]; the primary category
	// carries weight 1.
	Distractions map[DistractionCategory]float64 `json:"distractions"`

	// ResponsePrediction seeds the compliance trackers: per intervention
	// type, the predicted follow-through probability in (0,1).
	ResponsePrediction map[InterventionType]float64 `json:"response_prediction"`

	FocusCapability float64 `json:"focus_capability"`
	PreferredTone   Tone    `json:"preferred_tone"`
}

// #endregion

// #region normalize

// Normalized returns a copy of the profile with every numeric field clamped
// to its documented range and absent maps replaced with neutral defaults.
// Out-of-range onboarding output degrades gracefully instead of failing.
func (p StaticProfile) Normalized() StaticProfile {
	out := p
	out.Traits.Openness = clampRange(p.Traits.Openness, 1, 7)
	out.Traits.Conscientiousness = clampRange(p.Traits.Conscientiousness, 1, 7)
	out.Traits.Extraversion = clampRange(p.Traits.Extraversion, 1, 7)
	out.Traits.Agreeableness = clampRange(p.Traits.Agreeableness, 1, 7)
	out.Traits.Neuroticism = clampRange(p.Traits.Neuroticism, 1, 7)

	out.ImpulsivityIndex = Clamp01(p.ImpulsivityIndex)
	out.AuthorityResistance = Clamp01(p.AuthorityResistance)
	out.StrictnessCompatibility = Clamp01(p.StrictnessCompatibility)
	out.UninstallRisk = Clamp01(p.UninstallRisk)
	out.GoalUrgency = Clamp01(p.GoalUrgency)
	out.EmotionalReactivity = Clamp01(p.EmotionalReactivity)
	out.SelfEfficacy = Clamp01(p.SelfEfficacy)
	out.FocusCapability = Clamp01(p.FocusCapability)

	if p.PreferredTone == "" {
		out.PreferredTone = ToneGentle
	}

	out.Distractions = make(map[DistractionCategory]float64, len(p.Distractions))
	for k, v := range p.Distractions {
		out.Distractions[k] = Clamp01(v)
	}

	out.ResponsePrediction = make(map[InterventionType]float64, len(AllInterventionTypes))
	for _, t := range AllInterventionTypes {
		v, ok := p.ResponsePrediction[t]
		if !ok {
			v = 0.5 // no prediction → coin flip
		}
		out.ResponsePrediction[t] = Clamp01(v)
	}

	return out
}

// PrimaryDistraction returns the highest-weighted distraction category,
// or empty when no distractions were reported.
func (p StaticProfile) PrimaryDistraction() DistractionCategory {
	var best DistractionCategory
	bestW := -1.0
	for k, w := range p.Distractions {
		if w > bestW {
			best, bestW = k, w
		}
	}
	return best
}

// #endregion

// #region context

// TimeOfDay buckets the hour for coarse scheduling decisions.
type TimeOfDay string

const (
	Morning   TimeOfDay = "morning"
	Afternoon TimeOfDay = "afternoon"
	Evening   TimeOfDay = "evening"
	Night     TimeOfDay = "night"
)

// BucketHour maps an hour [0,23] to its TimeOfDay bucket.
func BucketHour(hour int) TimeOfDay {
	switch {
	case hour >= 5 && hour < 12:
		return Morning
	case hour >= 12 && hour < 17:
		return Afternoon
	case hour >= 17 && hour < 22:
		return Evening
	default:
		return Night
	}
}

// Context is an ephemeral snapshot of live signals, collected fresh for every
// decision call and never persisted.
type Context struct {
	TimeOfDay TimeOfDay `json:"time_of_day"`
	Hour      int       `json:"hour"`

	CognitiveReadiness   float64 `json:"cognitive_readiness"`
	Fragmentation        float64 `json:"fragmentation"`
	GoalConflictSeverity float64 `json:"goal_conflict_severity"`
	DistractionSeverity  float64 `json:"distraction_severity"`
	SessionActive        bool    `json:"session_active"`

	// Stress is the caller-supplied stress proxy in [0,1]. Negative means
	// "not supplied"; the engine then derives it from HRV and fragmentation.
	Stress float64 `json:"stress"`

	// HRV is normalized heart-rate variability in [0,1]; negative means the
	// signal is absent and a neutral default applies.
	HRV float64 `json:"hrv"`

	GoalUrgency float64 `json:"goal_urgency"`

	CollectedAt time.Time `json:"collected_at"`
}

// Normalized clamps all context scores to [0,1], preserving the negative
// "absent" sentinels on Stress and HRV.
func (c Context) Normalized() Context {
	out := c
	out.CognitiveReadiness = Clamp01(c.CognitiveReadiness)
	out.Fragmentation = Clamp01(c.Fragmentation)
	out.GoalConflictSeverity = Clamp01(c.GoalConflictSeverity)
	out.DistractionSeverity = Clamp01(c.DistractionSeverity)
	out.GoalUrgency = Clamp01(c.GoalUrgency)
	if c.Stress >= 0 {
		out.Stress = Clamp01(c.Stress)
	}
	if c.HRV >= 0 {
		out.HRV = Clamp01(c.HRV)
	}
	if c.TimeOfDay == "" {
		out.TimeOfDay = BucketHour(c.Hour)
	}
	return out
}

// #endregion

// #region clamp

// Clamp01 clamps v to [0,1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clampRange(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// #endregion
