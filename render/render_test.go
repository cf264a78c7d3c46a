package render

import (
	"math"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/reef-dash/components"
	"github.com/lixenwraith/reef-dash/engine"
	"github.com/lixenwraith/reef-dash/vmath"
)

func newTestScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

// rowText returns the runes on row y as a string
func rowText(screen tcell.Screen, y int) string {
	w, _ := screen.Size()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		ch, _, _, _ := screen.GetContent(x, y)
		sb.WriteRune(ch)
	}
	return sb.String()
}

// findRune reports whether r appears anywhere on screen
func findRune(screen tcell.Screen, r rune) bool {
	w, h := screen.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if ch, _, _, _ := screen.GetContent(x, y); ch == r {
				return true
			}
		}
	}
	return false
}

func TestProjectorCorners(t *testing.T) {
	field := engine.DefaultTuning().Field
	p := NewProjector(field, 80, 24)
	left, top, w, h := p.Area()

	if top != 1 || h != 22 || left != 0 || w != 80 {
		t.Fatalf("Unexpected play area %d,%d %dx%d", left, top, w, h)
	}

	tests := []struct {
		name  string
		v     vmath.Vec2
		wantX int
		wantY int
		ok    bool
	}{
		{"far left", vmath.Vec2{X: -field.HalfWidth, Z: field.SpawnZ}, 0, 1, true},
		{"near right inside", vmath.Vec2{X: field.HalfWidth - 0.01, Z: field.DespawnZ - 0.01}, 79, 22, true},
		{"past despawn", vmath.Vec2{X: 0, Z: field.DespawnZ + 1}, 40, 0, false},
		{"beyond right edge", vmath.Vec2{X: field.HalfWidth + 1, Z: 0}, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, ok := p.ToScreen(tt.v)
			if ok != tt.ok {
				t.Fatalf("Expected ok=%v, got %v at (%d,%d)", tt.ok, ok, x, y)
			}
			if ok && (x != tt.wantX || y != tt.wantY) {
				t.Errorf("Expected (%d,%d), got (%d,%d)", tt.wantX, tt.wantY, x, y)
			}
		})
	}
}

func TestProjectorSmallBoxCoversCenter(t *testing.T) {
	p := NewProjector(engine.DefaultTuning().Field, 80, 24)
	box := vmath.BoxAround(vmath.Vec2{X: 0, Z: -3}, vmath.Vec2{X: 0.01, Z: 0.01})

	x0, y0, x1, y1, ok := p.BoxCells(box)
	if !ok {
		t.Fatal("Expected visible box")
	}
	cx, cy, _ := p.ToScreen(vmath.Vec2{X: 0, Z: -3})
	if x0 > cx || x1 < cx || y0 > cy || y1 < cy {
		t.Errorf("Expected box cells to include center (%d,%d), got [%d,%d]-[%d,%d]", cx, cy, x0, y0, x1, y1)
	}
}

func TestProjectorResize(t *testing.T) {
	p := NewProjector(engine.DefaultTuning().Field, 80, 24)
	p.Resize(40, 12)
	_, _, w, h := p.Area()
	if w != 40 || h != 10 {
		t.Errorf("Expected 40x10 play area, got %dx%d", w, h)
	}
	p.Resize(0, 0)
	_, _, w, h = p.Area()
	if w < 1 || h < 1 {
		t.Errorf("Expected a non-empty play area on tiny screens, got %dx%d", w, h)
	}
}

func TestRenderFrameDrawsEntitiesAndHUD(t *testing.T) {
	screen := newTestScreen(t, 80, 24)
	tuning := engine.DefaultTuning()
	r := NewTerminalRenderer(screen, tuning.Field)

	s := engine.NewSession(tuning, nil, 1)
	s.Start()
	s.Registry.SpawnObstacleAt(components.ObstacleIsland, vmath.Vec2{X: -8, Z: -40})
	s.Registry.SpawnCollectibleAt(components.CollectibleGoldfish, vmath.Vec2{X: 8, Z: -40}, 0)

	r.ShowHUD(engine.HUDState{Score: 120, Lives: 2, Level: 3, Elapsed: 83_000_000_000})
	r.RenderFrame(s.Frame())

	hud := rowText(screen, 0)
	for _, want := range []string{"SCORE", "120", "LEVEL", "3", "01:23", "♥♥"} {
		if !strings.Contains(hud, want) {
			t.Errorf("Expected HUD to contain %q, got %q", want, hud)
		}
	}
	if strings.Contains(hud, "♥♥♥") {
		t.Errorf("Expected exactly two hearts, got %q", hud)
	}

	if !findRune(screen, ObstacleGlyph(components.ObstacleIsland)) {
		t.Error("Expected island glyph on screen")
	}
	if !findRune(screen, CollectibleGlyph(components.CollectibleGoldfish)) {
		t.Error("Expected goldfish glyph on screen")
	}
	if !findRune(screen, PlayerGlyph(0)) {
		t.Error("Expected player glyph on screen")
	}

	status := rowText(screen, 23)
	if !strings.Contains(status, "pause") {
		t.Errorf("Expected running key hints in status bar, got %q", status)
	}
}

func TestRenderOverlayAndStatus(t *testing.T) {
	screen := newTestScreen(t, 60, 20)
	r := NewTerminalRenderer(screen, engine.DefaultTuning().Field)

	r.SetStatus("leaderboard unavailable")
	r.RenderFrame(&engine.Frame{
		Phase: engine.PhaseGameOver,
		Overlay: &engine.Overlay{
			Title:  "GAME OVER",
			Lines:  []string{"Score 340"},
			Prompt: "Name: diver_",
		},
	})

	found := false
	_, h := screen.Size()
	for y := 0; y < h; y++ {
		if strings.Contains(rowText(screen, y), "GAME OVER") {
			found = true
			break
		}
	}
	if !found {
		t.Error("Expected overlay title on screen")
	}
	if !strings.Contains(rowText(screen, h-1), "leaderboard unavailable") {
		t.Error("Expected status message on the bottom row")
	}
}

func TestRenderAfterResize(t *testing.T) {
	screen := newTestScreen(t, 80, 24)
	r := NewTerminalRenderer(screen, engine.DefaultTuning().Field)

	screen.SetSize(30, 10)
	r.Resize()
	r.RenderFrame(&engine.Frame{Phase: engine.PhaseIdle})

	_, _, w, h := r.Projector().Area()
	if w != 30 || h != 8 {
		t.Errorf("Expected 30x8 play area after resize, got %dx%d", w, h)
	}
}

func TestPlayerGlyph(t *testing.T) {
	tests := []struct {
		facing float64
		want   rune
	}{
		{0, '▲'},
		{math.Pi / 2, '▶'},
		{math.Pi, '▼'},
		{-math.Pi / 2, '◀'},
		{2 * math.Pi, '▲'},
	}
	for _, tt := range tests {
		if got := PlayerGlyph(tt.facing); got != tt.want {
			t.Errorf("Facing %f: expected %c, got %c", tt.facing, tt.want, got)
		}
	}
}

func TestPoseForVariants(t *testing.T) {
	sway := poseFor(components.BobAndSway{Sway: 0.5}, math.Pi/2)
	if math.Abs(sway.offset.X-0.5) > 1e-9 {
		t.Errorf("Expected sway offset 0.5, got %f", sway.offset.X)
	}

	tent := poseFor(components.DriftWithTentacles{Length: 2}, 0)
	if tent.tail != 2 || tent.tailRune == 0 {
		t.Errorf("Expected two tentacle rows, got %+v", tent)
	}

	seen := map[rune]bool{}
	for i := 0; i < 8; i++ {
		seen[poseFor(components.SpinSlowly{Frames: 4}, float64(i)*math.Pi/4).glyph] = true
	}
	if len(seen) < 2 {
		t.Errorf("Expected spin to cycle glyphs, saw %v", seen)
	}

	if idle := poseFor(components.Idle{}, 1); idle != (visualPose{}) {
		t.Errorf("Expected idle pose to be neutral, got %+v", idle)
	}
}
