package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/reef-dash/engine"
	"github.com/lixenwraith/reef-dash/vmath"
)

// TerminalRenderer draws frames, the HUD row and a status line on a tcell screen
// It implements engine.Renderer and engine.HUD
type TerminalRenderer struct {
	screen tcell.Screen
	proj   *Projector
	width  int
	height int

	hud    engine.HUDState
	status string
	frames uint64
}

// NewTerminalRenderer creates a renderer for screen
func NewTerminalRenderer(screen tcell.Screen, field engine.Field) *TerminalRenderer {
	w, h := screen.Size()
	return &TerminalRenderer{
		screen: screen,
		proj:   NewProjector(field, w, h),
		width:  w,
		height: h,
	}
}

// Resize syncs the layout with the current screen size
func (r *TerminalRenderer) Resize() {
	r.width, r.height = r.screen.Size()
	r.proj.Resize(r.width, r.height)
}

// Projector exposes the world to screen mapping
func (r *TerminalRenderer) Projector() *Projector {
	return r.proj
}

// ShowHUD implements engine.HUD; the HUD row is drawn on the next frame
func (r *TerminalRenderer) ShowHUD(h engine.HUDState) {
	r.hud = h
}

// SetStatus sets the bottom status line text
func (r *TerminalRenderer) SetStatus(s string) {
	r.status = s
}

// RenderFrame implements engine.Renderer
func (r *TerminalRenderer) RenderFrame(f *engine.Frame) {
	r.frames++
	r.screen.Clear()
	defaultStyle := tcell.StyleDefault.Background(RgbWaterDeep)

	r.drawWater(defaultStyle)

	for i := range f.Collectibles {
		r.drawCollectible(&f.Collectibles[i], defaultStyle)
	}
	for i := range f.Obstacles {
		r.drawObstacle(&f.Obstacles[i], defaultStyle)
	}
	if f.Phase != engine.PhaseIdle {
		r.drawPlayer(f.Player, defaultStyle)
	}

	r.drawHUD(defaultStyle)
	r.drawStatusBar(f, defaultStyle)

	if f.Overlay != nil {
		r.drawOverlay(f.Overlay)
	}

	r.screen.Show()
}

// drawWater fills the play area with a depth gradient and scrolling ripples
func (r *TerminalRenderer) drawWater(defaultStyle tcell.Style) {
	left, top, w, h := r.proj.Area()
	for y := top; y < top+h; y++ {
		style := defaultStyle
		if y-top > h*2/3 {
			style = defaultStyle.Background(RgbWaterShallow)
		}
		for x := left; x < left+w; x++ {
			ch := ' '
			if (x*7+y*3+int(r.frames/8))%23 == 0 {
				ch = '~'
			}
			r.screen.SetContent(x, y, ch, nil, style.Foreground(RgbWaterRipple))
		}
	}
}

func (r *TerminalRenderer) fillBox(box vmath.AABB, ch rune, style tcell.Style) (x0, y0, x1, y1 int, ok bool) {
	x0, y0, x1, y1, ok = r.proj.BoxCells(box)
	if !ok {
		return
	}
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			r.screen.SetContent(x, y, ch, nil, style)
		}
	}
	return
}

func (r *TerminalRenderer) drawObstacle(o *engine.ObstacleEntity, defaultStyle tcell.Style) {
	pose := poseFor(o.Visual, 0)
	box := vmath.BoxAround(vmath.V2Add(o.Pos, pose.offset), o.Half)
	style := defaultStyle.Foreground(ObstacleColor(o.Category))
	r.fillBox(box, ObstacleGlyph(o.Category), style)
}

func (r *TerminalRenderer) drawCollectible(c *engine.CollectibleEntity, defaultStyle tcell.Style) {
	pose := poseFor(c.Visual, c.Phase)
	glyph := CollectibleGlyph(c.Category)
	if pose.glyph != 0 {
		glyph = pose.glyph
	}
	style := defaultStyle.Foreground(CollectibleColor(c.Category))

	box := vmath.BoxAround(vmath.V2Add(c.Pos, pose.offset), c.Half)
	x0, y0, x1, _, ok := r.fillBox(box, glyph, style)
	if !ok || pose.tail == 0 {
		return
	}

	// Tentacles trail upward, opposite the drift direction
	_, top, _, _ := r.proj.Area()
	for i := 1; i <= pose.tail; i++ {
		y := y0 - i
		if y < top {
			break
		}
		for x := x0; x <= x1; x++ {
			r.screen.SetContent(x, y, pose.tailRune, nil, style)
		}
	}
}

func (r *TerminalRenderer) drawPlayer(p engine.PlayerView, defaultStyle tcell.Style) {
	style := defaultStyle.Foreground(RgbPlayer).Bold(true)
	r.fillBox(vmath.BoxAround(p.Pos, p.Half), PlayerGlyph(p.Facing), style)
}

// drawText writes s at (x, y) clipped to the screen width, returning the next column
func (r *TerminalRenderer) drawText(x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		if x >= r.width {
			break
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x += max(runewidth.RuneWidth(ch), 1)
	}
	return x
}

// drawHUD draws score, lives, level and time on the top row
func (r *TerminalRenderer) drawHUD(defaultStyle tcell.Style) {
	bg := defaultStyle.Background(tcell.ColorBlack)
	for x := 0; x < r.width; x++ {
		r.screen.SetContent(x, 0, ' ', nil, bg)
	}

	label := bg.Foreground(RgbHUDLabel)
	value := bg.Foreground(RgbHUD).Bold(true)

	x := r.drawText(1, 0, "SCORE ", label)
	x = r.drawText(x, 0, fmt.Sprintf("%-7d", r.hud.Score), value)
	x = r.drawText(x, 0, "LIVES ", label)
	x = r.drawText(x, 0, fmt.Sprintf("%-4s", strings.Repeat("♥", r.hud.Lives)), bg.Foreground(RgbHUDLives))
	x = r.drawText(x, 0, " LEVEL ", label)
	x = r.drawText(x, 0, fmt.Sprintf("%-3d", r.hud.Level), value)
	x = r.drawText(x, 0, " TIME ", label)
	r.drawText(x, 0, r.hud.ElapsedText(), value)
}

// drawStatusBar draws the phase and key hints, or the status message when set
func (r *TerminalRenderer) drawStatusBar(f *engine.Frame, defaultStyle tcell.Style) {
	y := r.height - 1
	if y < 1 {
		return
	}
	bg := defaultStyle.Background(tcell.ColorBlack).Foreground(RgbStatusBar)
	for x := 0; x < r.width; x++ {
		r.screen.SetContent(x, y, ' ', nil, bg)
	}

	text := r.status
	if text == "" {
		switch {
		case f.Paused:
			text = "PAUSED  p resume  r restart  m mute  esc quit"
		case f.Phase == engine.PhaseRunning:
			text = "arrows/wasd move  p pause  r restart  m mute  esc quit"
		case f.Phase == engine.PhaseGameOver:
			text = "type name + enter to submit  tab restart  esc quit"
		default:
			text = "enter/s start  m mute  esc quit"
		}
	}
	r.drawText(1, y, text, bg)
}

// drawOverlay draws a centered box with title, lines and prompt
func (r *TerminalRenderer) drawOverlay(o *engine.Overlay) {
	lines := make([]string, 0, len(o.Lines)+4)
	lines = append(lines, o.Title, "")
	lines = append(lines, o.Lines...)
	if o.Prompt != "" {
		lines = append(lines, "", o.Prompt)
	}

	boxW := 0
	for _, l := range lines {
		boxW = max(boxW, runewidth.StringWidth(l))
	}
	boxW += 4
	boxH := len(lines) + 2

	x0 := max((r.width-boxW)/2, 0)
	y0 := max((r.height-boxH)/2, 0)

	bg := tcell.StyleDefault.Background(RgbOverlayBg).Foreground(RgbOverlayFg)
	for y := y0; y < y0+boxH && y < r.height; y++ {
		for x := x0; x < x0+boxW && x < r.width; x++ {
			r.screen.SetContent(x, y, ' ', nil, bg)
		}
	}

	for i, l := range lines {
		style := bg
		switch {
		case i == 0:
			style = bg.Foreground(RgbOverlayHot).Bold(true)
		case o.Prompt != "" && i == len(lines)-1:
			style = bg.Foreground(RgbOverlayHot)
		}
		lx := x0 + (boxW-runewidth.StringWidth(l))/2
		r.drawText(lx, y0+1+i, l, style)
	}
}
