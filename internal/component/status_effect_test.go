package component

import (
	"math"
	"testing"

	"elemental-td/internal/config"
)

func TestSlowRefreshesInsteadOfStacking(t *testing.T) {
	var s StatusEffects
	s.ApplySlow(0.3, 2)
	s.ApplySlow(0.2, 0.5)
	if s.SlowFactor != 0.2 || s.SlowTimer != 0.5 {
		t.Fatalf("slow = %v/%v; want 0.2/0.5 (replaced, not summed)", s.SlowFactor, s.SlowTimer)
	}
	if got := s.SpeedMultiplier(); math.Abs(got-0.8) > 1e-12 {
		t.Errorf("SpeedMultiplier = %v; want 0.8", got)
	}
}

func TestBurnRefreshesInsteadOfStacking(t *testing.T) {
	var s StatusEffects
	s.ApplyBurn(2, 3)
	s.ApplyBurn(5, 1)
	if s.BurnDamage != 5 || s.BurnTimer != 1 {
		t.Fatalf("burn = %v/%v; want 5/1", s.BurnDamage, s.BurnTimer)
	}
}

func TestBurnTicksOncePerSecond(t *testing.T) {
	var s StatusEffects
	s.ApplyBurn(2, config.BurnDuration)
	total := 0.0
	var tickSteps []int
	for i := 0; i < 240; i++ {
		if d := s.Tick(config.FixedTimeStep); d > 0 {
			total += d
			tickSteps = append(tickSteps, i)
		}
	}
	if len(tickSteps) != 3 || total != 6 {
		t.Fatalf("ticks at %v, total = %v; want 3 ticks, 6 damage", tickSteps, total)
	}
	// Свежий поджог жжёт сразу, дальше раз в секунду.
	if tickSteps[0] != 0 || tickSteps[1] != 60 || tickSteps[2] != 120 {
		t.Errorf("ticks at steps %v; want [0 60 120]", tickSteps)
	}
	if s.Burning() || s.BurnDamage != 0 {
		t.Errorf("burn should be cleared after expiry, got %+v", s)
	}
}

func TestBurnRefreshKeepsCadence(t *testing.T) {
	var s StatusEffects
	s.ApplyBurn(2, config.BurnDuration)
	if d := s.Tick(config.FixedTimeStep); d != 2 {
		t.Fatalf("first tick = %v; want 2", d)
	}
	for i := 0; i < 30; i++ {
		s.Tick(config.FixedTimeStep)
	}
	// Повторный поджог посреди интервала не даёт внеочередного тика.
	s.ApplyBurn(4, config.BurnDuration)
	if d := s.Tick(config.FixedTimeStep); d != 0 {
		t.Errorf("refresh ticked immediately for %v; want the running cadence", d)
	}
	ticked := false
	for i := 0; i < 30 && !ticked; i++ {
		if d := s.Tick(config.FixedTimeStep); d > 0 {
			ticked = d == 4
		}
	}
	if !ticked {
		t.Errorf("refreshed burn did not tick for 4 by the end of the interval")
	}
}

func TestTimersClampAndClear(t *testing.T) {
	var s StatusEffects
	s.ApplySlow(1, 0.1)
	s.ApplyShock(0.05)
	s.Tick(0.5)
	if s.SlowTimer != 0 || s.SlowFactor != 0 || s.ShockTimer != 0 {
		t.Errorf("expired effects not cleared: %+v", s)
	}
	if s.SpeedMultiplier() != 1 {
		t.Errorf("SpeedMultiplier after expiry = %v; want 1", s.SpeedMultiplier())
	}
}
