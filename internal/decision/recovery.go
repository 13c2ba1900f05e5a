package decision

// #region recovery

// RecoveryProtocol names a short recovery routine the UI can offer.
type RecoveryProtocol string

const (
	RecoveryBreathing RecoveryProtocol = "breathing"
	RecoveryMovement  RecoveryProtocol = "movement"
	RecoveryMicroRest  RecoveryProtocol = "micro_rest"
	RecoveryGrounding RecoveryProtocol = "grounding"
)

// Recovery is a recommendation with its rationale.
type Recovery struct {
	Protocol RecoveryProtocol
	Reason   string
}

// RecommendRecovery picks a protocol from a small decision table keyed by
// emotional sensitivity and the stress proxy.
//
//	high sensitivity + high stress → breathing
//	low sensitivity  + high stress → physical movement
//	high sensitivity + low stress  → grounding
//	low sensitivity  + low stress  → micro rest
func RecommendRecovery(emotionalSensitivity, stress float64, cfg Config) Recovery {
	highSens := emotionalSensitivity >= cfg.HighSensitivity
	highStress := stress >= cfg.HighStress

	switch {
	case highSens && highStress:
		return Recovery{RecoveryBreathing, "high sensitivity under high stress"}
	case highStress:
		return Recovery{RecoveryMovement, "high stress, low sensitivity"}
	case highSens:
		return Recovery{RecoveryGrounding, "high sensitivity, manageable stress"}
	default:
		return Recovery{RecoveryMicroRest, "low sensitivity and stress"}
	}
}

// #endregion
