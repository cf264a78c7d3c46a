package components

// Visual selects how the renderer animates an entity
// Gameplay code never inspects it; only render type-switches on the concrete variant
type Visual interface {
	isVisual()
}

// Idle draws the entity without animation
type Idle struct{}

// BobAndSway shifts the entity laterally with its idle phase
type BobAndSway struct {
	// Sway is the lateral offset amplitude in world units
	Sway float64
}

// DriftWithTentacles trails a short tail behind the entity that ripples with phase
type DriftWithTentacles struct {
	Length int
}

// SpinSlowly cycles the entity glyph with its idle phase
type SpinSlowly struct {
	Frames int
}

func (Idle) isVisual()               {}
func (BobAndSway) isVisual()         {}
func (DriftWithTentacles) isVisual() {}
func (SpinSlowly) isVisual()         {}
