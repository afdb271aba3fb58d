// internal/component/status_effect.go
package component

import (
	"elemental-td/internal/config"
	"elemental-td/pkg/utils"
)

// StatusEffects holds the timers of one enemy. A new application of an
// effect replaces the old one, it never stacks.
type StatusEffects struct {
	SlowFactor float64 // 0..1, speed is multiplied by (1 - SlowFactor)
	SlowTimer  float64

	BurnDamage    float64 // damage per tick
	BurnTimer     float64
	BurnTickTimer float64 // time until the next burn tick

	ShockTimer float64 // visual only
}

// ApplySlow overwrites the current slow.
func (s *StatusEffects) ApplySlow(factor, duration float64) {
	if duration <= 0 {
		return
	}
	s.SlowFactor = utils.Clamp01(factor)
	s.SlowTimer = duration
}

// ApplyBurn overwrites the current burn. A burn that is already running
// keeps its tick cadence; a fresh one (BurnTickTimer is 0) ticks on the next Tick.
func (s *StatusEffects) ApplyBurn(damagePerTick, duration float64) {
	if duration <= 0 {
		return
	}
	s.BurnDamage = damagePerTick
	s.BurnTimer = duration
}

func (s *StatusEffects) ApplyShock(duration float64) {
	if duration > s.ShockTimer {
		s.ShockTimer = duration
	}
}

func (s *StatusEffects) Slowed() bool  { return s.SlowTimer > 0 }
func (s *StatusEffects) Burning() bool { return s.BurnTimer > 0 }
func (s *StatusEffects) Shocked() bool { return s.ShockTimer > 0 }

// SpeedMultiplier is the factor applied to the base speed.
func (s *StatusEffects) SpeedMultiplier() float64 {
	if !s.Slowed() {
		return 1
	}
	return 1 - s.SlowFactor
}

// Tick advances every timer by dt and returns the burn damage due this step
// (zero when no burn tick happened). Expired effects are cleared.
func (s *StatusEffects) Tick(dt float64) (burn float64) {
	if s.SlowTimer > 0 {
		s.SlowTimer = utils.Countdown(s.SlowTimer, dt)
		if s.SlowTimer <= config.TimerEpsilon {
			s.SlowTimer = 0
			s.SlowFactor = 0
		}
	}

	if s.BurnTimer > 0 {
		s.BurnTimer = utils.Countdown(s.BurnTimer, dt)
		s.BurnTickTimer = utils.Countdown(s.BurnTickTimer, dt)
		if s.BurnTickTimer <= config.TimerEpsilon {
			burn = s.BurnDamage
			s.BurnTickTimer = config.BurnTickInterval
		}
		if s.BurnTimer <= config.TimerEpsilon {
			s.BurnTimer = 0
			s.BurnTickTimer = 0
			s.BurnDamage = 0
		}
	}

	if s.ShockTimer > 0 {
		s.ShockTimer = utils.Countdown(s.ShockTimer, dt)
		if s.ShockTimer <= config.TimerEpsilon {
			s.ShockTimer = 0
		}
	}
	return burn
}
