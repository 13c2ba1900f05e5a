package behavior

// #region imports
import (
	"time"

	"github.com/haldenlab/focusloop/go-engine/internal/state"
)

// #endregion

// #region inputs

// StrictnessInputs carries the fresh signals a strictness adjustment is
// decided on.
type StrictnessInputs struct {
	ComplianceRate      float64
	OverrideFrequency   float64
	SessionSuccessRate  float64
	AuthorityResistance float64
}

// #endregion

// #region level-cap

// LevelCap returns the hard ceiling authority resistance imposes on the
// strictness level, independent of how good compliance is.
func LevelCap(authorityResistance float64, cfg Config) int {
	switch {
	case authorityResistance >= cfg.HighResistance:
		return cfg.HighResistanceCeiling
	case authorityResistance >= cfg.MidResistance:
		return cfg.MidResistanceCeiling
	default:
		return 5
	}
}

// #endregion

// #region evolve

// EvolveStrictness decides escalate/hold/de-escalate by exactly one level.
//
// De-escalation checks run first and ignore the cooldown: protecting the
// user from an intervention level they are fighting outranks anti-thrash.
// Escalation requires high compliance, low overrides, high session success,
// an expired cooldown, and headroom under the authority-resistance ceiling.
func EvolveStrictness(s state.StrictnessState, in StrictnessInputs, now time.Time, cfg Config) state.StrictnessState {
	out := s
	out.ComplianceRate = in.ComplianceRate
	out.OverrideFrequency = in.OverrideFrequency
	out.SessionSuccessRate = in.SessionSuccessRate

	ceiling := LevelCap(in.AuthorityResistance, cfg)
	if out.Level > ceiling {
		// Ceiling moved below the current level; pull down one step.
		out.Level--
		out.LastDirection = state.DirectionDeescalate
		out.LastChangeAt = now
		return clampLevel(out)
	}

	if in.ComplianceRate < cfg.DeescalateCompliance || in.OverrideFrequency > cfg.DeescalateOverride {
		if out.Level > 1 {
			out.Level--
			out.LastDirection = state.DirectionDeescalate
			out.LastChangeAt = now
		} else {
			out.LastDirection = state.DirectionHold
		}
		return clampLevel(out)
	}

	cooldown := time.Duration(cfg.CooldownDays) * 24 * time.Hour
	canEscalate := in.ComplianceRate >= cfg.EscalateCompliance &&
		in.OverrideFrequency <= cfg.EscalateMaxOverride &&
		in.SessionSuccessRate >= cfg.EscalateSessionRate &&
		now.Sub(s.LastChangeAt) >= cooldown &&
		out.Level < ceiling

	if canEscalate {
		out.Level++
		out.LastDirection = state.DirectionEscalate
		out.LastChangeAt = now
		return clampLevel(out)
	}

	out.LastDirection = state.DirectionHold
	return clampLevel(out)
}

func clampLevel(s state.StrictnessState) state.StrictnessState {
	if s.Level < 1 {
		s.Level = 1
	}
	if s.Level > 5 {
		s.Level = 5
	}
	return s
}

// #endregion

// #region rolling-rates

// RollOutcome folds one compliance outcome into the rolling rates carried on
// StrictnessState via an exponential moving average.
func RollOutcome(s state.StrictnessState, success, override bool, cfg Config) state.StrictnessState {
	out := s
	out.ComplianceRate = ema(s.ComplianceRate, boolTo01(success), cfg.RateAlpha)
	out.OverrideFrequency = ema(s.OverrideFrequency, boolTo01(override), cfg.RateAlpha)
	return out
}

// RollSession folds one session outcome into the rolling session-success rate.
func RollSession(s state.StrictnessState, success bool, cfg Config) state.StrictnessState {
	out := s
	out.SessionSuccessRate = ema(s.SessionSuccessRate, boolTo01(success), cfg.RateAlpha)
	return out
}

func ema(prev, sample, alpha float64) float64 {
	return (1-alpha)*prev + alpha*sample
}

func boolTo01(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// #endregion
