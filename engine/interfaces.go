package engine

import (
	"time"

	"github.com/lixenwraith/reef-dash/vmath"
)

// Directions is the held-direction input sample for one tick
type Directions struct {
	Up, Down, Left, Right bool
}

// Vector sums one unit per held direction; opposite directions cancel
// Up is forward (-Z), Left is -X
func (d Directions) Vector() vmath.Vec2 {
	var v vmath.Vec2
	if d.Up {
		v.Z--
	}
	if d.Down {
		v.Z++
	}
	if d.Left {
		v.X--
	}
	if d.Right {
		v.X++
	}
	return v
}

// InputSource is sampled once per tick by the player system
type InputSource interface {
	Directions() Directions
}

// InputFunc adapts a function to InputSource
type InputFunc func() Directions

func (f InputFunc) Directions() Directions { return f() }

// HUDState is what the HUD shows
type HUDState struct {
	Score   int
	Lives   int
	Level   int
	Elapsed time.Duration
}

// ElapsedText formats the run time as mm:ss
func (h HUDState) ElapsedText() string {
	return FormatElapsed(h.Elapsed)
}

// HUD is notified whenever HUDState changes
type HUD interface {
	ShowHUD(h HUDState)
}

// PlayerView is the render snapshot of the player
type PlayerView struct {
	Pos    vmath.Vec2
	Facing float64
	Half   vmath.Vec2
}

// Overlay is a text panel drawn over the field (pause, idle, game over)
type Overlay struct {
	Title  string
	Lines  []string
	Prompt string
}

// Frame is the full render snapshot of one tick
type Frame struct {
	Player       PlayerView
	Obstacles    []ObstacleEntity
	Collectibles []CollectibleEntity
	HUD          HUDState
	Phase        GamePhase
	Paused       bool
	Overlay      *Overlay
}

// Renderer draws frames; it must not retain or mutate the slices
type Renderer interface {
	RenderFrame(f *Frame)
}
