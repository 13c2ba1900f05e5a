package decision

// #region imports
import (
	"github.com/haldenlab/focusloop/go-engine/internal/behavior"
	"github.com/haldenlab/focusloop/go-engine/internal/profile"
	"github.com/haldenlab/focusloop/go-engine/internal/state"
)

// #endregion

// #region policy

// Policy is the final intervention decision rendered for the caller.
type Policy struct {
	Type    profile.InterventionType
	Tone    profile.Tone
	Message string
	Delayed bool
	Reason  string
}

// #endregion

// #region templates

// messageTemplates renders tone-appropriate copy per intervention type.
var messageTemplates = map[profile.Tone]map[profile.InterventionType]string{
	profile.ToneGentle: {
		profile.InterventionReflective: "Take a breath — is this how you want to spend the next few minutes?",
		profile.InterventionSoftDelay:  "Let's pause this for a moment. It will still be here afterwards.",
		profile.InterventionHardBlock:  "This is blocked for now. Your focus time matters.",
	},
	profile.ToneEncouraging: {
		profile.InterventionReflective: "You've been doing great today. Worth checking if this fits your goal?",
		profile.InterventionSoftDelay:  "Almost there — hold off a little longer and keep the streak alive.",
		profile.InterventionHardBlock:  "Blocked — because you asked us to protect this. You've got this.",
	},
	profile.ToneDirect: {
		profile.InterventionReflective: "This doesn't match your goal. Reconsider.",
		profile.InterventionSoftDelay:  "Delayed for a few minutes. Get back to what you planned.",
		profile.InterventionHardBlock:  "Blocked. Back to work.",
	},
	profile.TonePlayful: {
		profile.InterventionReflective: "Plot twist: future-you is watching. What would they say?",
		profile.InterventionSoftDelay:  "The scroll can wait — it's not going anywhere, promise.",
		profile.InterventionHardBlock:  "Nope! This door is locked. Try the focus door instead.",
	},
}

// #endregion

// #region select-policy

// SelectPolicy combines the suitability result, the user's state, and the
// authority-resistance ceiling into a final policy with rendered copy.
// Authority-resistant users never receive a hard block, no matter how
// suitable the moment scores.
func SelectPolicy(suit Suitability, st state.PersonalizationState, cfg Config) Policy {
	t := suit.Recommended
	reason := suit.Reason

	if st.AuthorityResistance >= cfg.HardBlockResistanceCeiling && t == profile.InterventionHardBlock {
		t = profile.InterventionSoftDelay
		reason = "hard block withheld: authority resistance over ceiling"
	}

	tone := behavior.BestTone(st.ToneEffectiveness, st.PreferredTone)
	msg := messageTemplates[tone][t]
	if msg == "" {
		msg = messageTemplates[profile.ToneGentle][t]
	}

	return Policy{
		Type:    t,
		Tone:    tone,
		Message: msg,
		Delayed: suit.ShouldDelay,
		Reason:  reason,
	}
}

// #endregion
