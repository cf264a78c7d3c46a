package render

import (
	"math"

	"github.com/lixenwraith/reef-dash/constants"
	"github.com/lixenwraith/reef-dash/engine"
	"github.com/lixenwraith/reef-dash/vmath"
)

// Projector maps world coordinates onto the terminal play area
// The field's lateral span fills the columns; depth from SpawnZ to DespawnZ fills the rows
type Projector struct {
	field engine.Field

	left, top     int // Screen origin of the play area
	width, height int // Play area size in cells
}

// NewProjector fits field into a screen of w x h, leaving HUD and status rows free
func NewProjector(field engine.Field, w, h int) *Projector {
	p := &Projector{field: field}
	p.Resize(w, h)
	return p
}

// Resize recomputes the play area for a new screen size
func (p *Projector) Resize(w, h int) {
	p.left = 0
	p.top = constants.HUDRows
	p.width = max(w, 1)
	p.height = max(h-constants.HUDRows-constants.StatusRows, 1)
}

// Area returns the play area origin and size in cells
func (p *Projector) Area() (left, top, width, height int) {
	return p.left, p.top, p.width, p.height
}

// colsPerUnit and rowsPerUnit are the scale factors along each axis
func (p *Projector) colsPerUnit() float64 {
	return float64(p.width) / (2 * p.field.HalfWidth)
}

func (p *Projector) rowsPerUnit() float64 {
	return float64(p.height) / (p.field.DespawnZ - p.field.SpawnZ)
}

// ToScreen returns the cell containing world point v and whether it lies inside the play area
func (p *Projector) ToScreen(v vmath.Vec2) (x, y int, ok bool) {
	fx := (v.X + p.field.HalfWidth) * p.colsPerUnit()
	fy := (v.Z - p.field.SpawnZ) * p.rowsPerUnit()
	x = p.left + int(math.Floor(fx))
	y = p.top + int(math.Floor(fy))
	ok = x >= p.left && x < p.left+p.width && y >= p.top && y < p.top+p.height
	return x, y, ok
}

// BoxCells returns the inclusive cell rectangle covering box, clipped to the play area
// Boxes narrower than a cell still cover the cell holding their center
func (p *Projector) BoxCells(box vmath.AABB) (x0, y0, x1, y1 int, ok bool) {
	center := vmath.V2Scale(vmath.V2Add(box.Min, box.Max), 0.5)
	cx, cy, _ := p.ToScreen(center)

	x0, y0, _ = p.ToScreen(box.Min)
	// Max edges are exclusive
	x1 = p.left + int(math.Ceil((box.Max.X+p.field.HalfWidth)*p.colsPerUnit())) - 1
	y1 = p.top + int(math.Ceil((box.Max.Z-p.field.SpawnZ)*p.rowsPerUnit())) - 1

	x0, x1 = min(x0, cx), max(x1, cx)
	y0, y1 = min(y0, cy), max(y1, cy)

	x0 = max(x0, p.left)
	y0 = max(y0, p.top)
	x1 = min(x1, p.left+p.width-1)
	y1 = min(y1, p.top+p.height-1)
	return x0, y0, x1, y1, x0 <= x1 && y0 <= y1
}

// Row returns the screen row for depth z without clipping
func (p *Projector) Row(z float64) int {
	return p.top + int(math.Floor((z-p.field.SpawnZ)*p.rowsPerUnit()))
}
