package term

import (
	"strings"
	"testing"

	"elemental-td/internal/app"
	"elemental-td/internal/defs"
	"elemental-td/internal/event"

	"github.com/gdamore/tcell/v2"
)

type fakeCanvas struct {
	w, h  int
	cells map[[2]int]rune
}

func newFakeCanvas(w, h int) *fakeCanvas {
	return &fakeCanvas{w: w, h: h, cells: make(map[[2]int]rune)}
}

func (f *fakeCanvas) SetContent(x, y int, mainc rune, _ []rune, _ tcell.Style) {
	if x < 0 || y < 0 || x >= f.w || y >= f.h {
		return
	}
	f.cells[[2]int{x, y}] = mainc
}

func (f *fakeCanvas) Size() (int, int) { return f.w, f.h }

func (f *fakeCanvas) row(y int) string {
	var b strings.Builder
	for x := 0; x < f.w; x++ {
		r, ok := f.cells[[2]int{x, y}]
		if !ok {
			r = ' '
		}
		b.WriteRune(r)
	}
	return b.String()
}

func newTestGame(t *testing.T) *app.Game {
	t.Helper()
	level, err := defs.DefaultLevel()
	if err != nil {
		t.Fatal(err)
	}
	g, err := app.NewGame(level)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestDrawHUDAndTowers(t *testing.T) {
	g := newTestGame(t)
	node := g.NodeIDs()[0]
	g.SelectTowerToBuild("TOWER_FIRE")
	if _, ok := g.BuildTowerOn(node); !ok {
		t.Fatal("build failed")
	}

	r := NewRenderer(g.Level, g.Path)
	c := newFakeCanvas(80, 24)
	r.Draw(c, g.ECS, g.Snapshot())

	if hud := c.row(0); !strings.HasPrefix(hud, "Gold 60  Health 20  Wave 1/10") {
		t.Errorf("HUD = %q", hud)
	}
	x, y, ok := r.Project(*g.ECS.Positions[node], 80, 24)
	if !ok {
		t.Fatal("node projected off the field")
	}
	if got := c.cells[[2]int{x, y}]; got != 'F' {
		t.Errorf("tower glyph = %q, want 'F'", got)
	}
}

func TestProjectStaysInField(t *testing.T) {
	g := newTestGame(t)
	r := NewRenderer(g.Level, g.Path)
	for _, p := range g.Path.Sample(50) {
		_, y, ok := r.Project(p, 60, 20)
		if !ok {
			t.Fatalf("path point %v off field", p)
		}
		if y < hudRows || y >= 20-logRows {
			t.Errorf("row %d overlaps HUD or log", y)
		}
	}
	if _, _, ok := r.Project(g.Path.Start(), 10, hudRows+logRows); ok {
		t.Error("no room for a field, projection must fail")
	}
}

func TestNotifyKeepsLastLines(t *testing.T) {
	g := newTestGame(t)
	r := NewRenderer(g.Level, g.Path)
	r.Notify([]event.Event{
		{Type: event.WaveStarted, Data: event.WaveData{Index: 0, Total: 10}},
		{Type: event.GoldChanged, Data: event.GoldChangedData{Gold: 5}},
		{Type: event.BuildDenied, Data: event.BuildDeniedData{Reason: event.DenyOccupied}},
		{Type: event.TowerFused, Data: event.TowerFusedData{Result: defs.FireIce}},
		{Type: event.Victory, Data: event.OutcomeData{WavesCleared: 10}},
	})
	want := []string{"denied: node occupied", "fused into Steam Vent", "VICTORY after 10 waves"}
	got := r.Lines()
	if len(got) != len(want) {
		t.Fatalf("lines = %q", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestFitLineHandlesWideRunes(t *testing.T) {
	if got := fitLine("ab", 4); got != "ab  " {
		t.Errorf("fitLine pad = %q", got)
	}
	got := fitLine("火火火火", 5)
	if w := len([]rune(got)); w > 5 {
		t.Errorf("fitLine kept %d runes: %q", w, got)
	}
	c := newFakeCanvas(3, 1)
	end := putText(c, 0, 0, "火x", tcell.StyleDefault)
	if end != 3 || c.cells[[2]int{0, 0}] != '火' || c.cells[[2]int{2, 0}] != 'x' {
		t.Errorf("putText end=%d cells=%v", end, c.cells)
	}
}
