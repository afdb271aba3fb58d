package ui

import (
	"fmt"
	"strings"
	"testing"

	"elemental-td/internal/defs"
	"elemental-td/internal/event"
)

func TestToRoman(t *testing.T) {
	cases := map[int]string{0: "", 1: "I", 4: "IV", 9: "IX", 10: "X", 14: "XIV", 40: "XL"}
	for n, want := range cases {
		if got := toRoman(n); got != want {
			t.Errorf("toRoman(%d) = %q, want %q", n, got, want)
		}
	}
	if got := WaveLabel(3, 10); got != "III / X" {
		t.Errorf("WaveLabel = %q", got)
	}
}

func TestCellColor(t *testing.T) {
	// 20 max, 15 left: first 5 cells blue, next 10 red, rest empty
	if cellColor(0, 15, 20) != healthFullColor {
		t.Error("cell 0 should be full")
	}
	if cellColor(5, 15, 20) != healthLowColor {
		t.Error("cell 5 should be low")
	}
	if cellColor(15, 15, 20) != healthEmptyColor {
		t.Error("cell 15 should be empty")
	}
	if cellColor(0, 8, 20) != healthLowColor {
		t.Error("below half everything is low")
	}
}

func TestFillRatio(t *testing.T) {
	if got := FillRatio(30, 30); got != 0 {
		t.Errorf("FillRatio start = %v", got)
	}
	if got := FillRatio(15, 30); got != 0.5 {
		t.Errorf("FillRatio half = %v", got)
	}
	if got := FillRatio(-1, 30); got != 1 {
		t.Errorf("FillRatio clamps, got %v", got)
	}
}

func TestRecipeAvailability(t *testing.T) {
	same := defs.Recipe{A: defs.Fire, B: defs.Fire, Result: defs.FireFire}
	cross := defs.Recipe{A: defs.Fire, B: defs.Ice, Result: defs.FireIce}
	owned := map[defs.ElementType]int{defs.Fire: 1, defs.Ice: 1}

	if recipeAvailable(same, owned) {
		t.Error("one fire tower cannot fuse with itself")
	}
	if !recipeAvailable(cross, owned) {
		t.Error("fire + ice should be available")
	}

	level, err := defs.DefaultLevel()
	if err != nil {
		t.Fatal(err)
	}
	rb := NewRecipeBook(0, 0, 100, 100, level)
	if line := rb.RecipeLine(cross); !strings.HasPrefix(line, "Fire + Ice = ") {
		t.Errorf("RecipeLine = %q", line)
	}
}

func TestInfoPanelMessages(t *testing.T) {
	level, err := defs.DefaultLevel()
	if err != nil {
		t.Fatal(err)
	}
	p := NewInfoPanel(level)
	p.Notify([]event.Event{{Type: event.WaveStarted, Data: event.WaveData{Index: 0, Total: 10}}})
	want := fmt.Sprintf("Wave 1 of 10: %d enemies", level.Waves[0].EnemyCount())
	if got := p.Message(); got != want {
		t.Errorf("Message = %q; want %q", got, want)
	}

	p.Notify([]event.Event{
		{Type: event.BuildDenied, Data: event.BuildDeniedData{Reason: event.DenyInsufficientGold}},
	})
	if got := p.Message(); got != "Denied: not enough gold" {
		t.Fatalf("Message = %q", got)
	}

	p.Update(1)
	if !p.IsVisible {
		t.Error("panel should be visible while a message is shown")
	}
	p.Update(messageLifetime)
	if p.Message() != "" || p.IsVisible {
		t.Errorf("message should expire, got %q", p.Message())
	}

	p.SetPreview("Fire + Ice")
	p.Update(0.1)
	if !p.IsVisible {
		t.Error("preview keeps the panel open")
	}
}
