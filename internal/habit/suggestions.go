package habit

// #region imports
import (
	"sort"

	"github.com/haldenlab/focusloop/go-engine/internal/profile"
)

// #endregion

// #region suggestion-table

// suggestionTable maps the dominant distraction category to ranked
// habit-breaking suggestions.
var suggestionTable = map[profile.DistractionCategory][]string{
	profile.DistractionSocialMedia: {
		"Move social apps off your home screen",
		"Set a 10-minute daily window for feeds",
		"Turn off all social notifications during focus hours",
	},
	profile.DistractionVideo: {
		"Disable autoplay on video apps",
		"Queue one video as a session reward instead of browsing",
		"Log out of video apps on this device",
	},
	profile.DistractionGaming: {
		"Schedule game time after your focus block, not before",
		"Keep the controller or launcher out of reach while working",
		"Use game time as a streak reward",
	},
	profile.DistractionNews: {
		"Batch news reading into one fixed slot per day",
		"Remove news apps from your dock",
		"Swap doomscrolling for a saved reading list",
	},
	profile.DistractionMessaging: {
		"Enable do-not-disturb during focus sessions",
		"Tell frequent contacts about your focus hours",
		"Batch replies at the session boundary",
	},
	profile.DistractionShopping: {
		"Keep a wishlist instead of browsing stores",
		"Set a 24-hour rule before any purchase",
		"Unsubscribe from promotional emails",
	},
}

// #endregion

// #region suggestions

// Suggestions returns up to max ranked habit suggestions for the dominant
// distraction categories. Ties between categories break on name so that the
// output is deterministic for replay.
func Suggestions(weights map[profile.DistractionCategory]float64, max int) []string {
	if max <= 0 || len(weights) == 0 {
		return nil
	}

	type weighted struct {
		cat profile.DistractionCategory
		w   float64
	}
	cats := make([]weighted, 0, len(weights))
	for c, w := range weights {
		cats = append(cats, weighted{c, w})
	}
	sort.Slice(cats, func(i, j int) bool {
		if cats[i].w != cats[j].w {
			return cats[i].w > cats[j].w
		}
		return cats[i].cat < cats[j].cat
	})

	var out []string
	for _, c := range cats {
		for _, s := range suggestionTable[c.cat] {
			out = append(out, s)
			if len(out) == max {
				return out
			}
		}
	}
	return out
}

// #endregion
