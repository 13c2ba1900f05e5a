package habit

// #region trigger

// TriggerType classifies what prompted a recovery recommendation.
type TriggerType string

const (
	TriggerLongSession    TriggerType = "long_session"
	TriggerRapidSwitching TriggerType = "rapid_switching"
)

// #endregion

// #region protocol-table

// protocolTable crosses trigger type with (high sensitivity, high stress).
// Long sessions call for physical reset; switching bursts call for
// re-anchoring attention.
var protocolTable = map[TriggerType]map[[2]bool]string{
	TriggerLongSession: {
		{true, true}:   "Guided breathing, then a 5-minute walk away from the screen",
		{true, false}:  "Stand up, stretch, and hydrate before the next block",
		{false, true}:  "Brisk 5-minute walk, no phone",
		{false, false}: "Short break with eyes off any screen",
	},
	TriggerRapidSwitching: {
		{true, true}:   "Box breathing for two minutes, then a single-task warm-up",
		{true, false}:  "Write down the one thing you'll do next, then do only that",
		{false, true}:  "Close every tab and app except one, then restart the session",
		{false, false}: "A 2-minute single-task warm-up before resuming",
	},
}

// #endregion

// #region recovery-protocol

// RecoveryProtocol selects a recovery routine for a trigger, keyed by
// emotional sensitivity and stress. Unknown triggers fall back to the
// long-session table.
func RecoveryProtocol(trigger TriggerType, highSensitivity, highStress bool) string {
	table, ok := protocolTable[trigger]
	if !ok {
		table = protocolTable[TriggerLongSession]
	}
	return table[[2]bool{highSensitivity, highStress}]
}

// #endregion
