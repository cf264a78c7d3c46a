package engine

import (
	"sort"
	"time"
)

// Loop is the per-frame orchestrator: systems, event dispatch, HUD, render, game-over check
type Loop struct {
	session  *Session
	router   *EventRouter
	systems  []System
	renderer Renderer
	hud      HUD

	lastHUD  HUDState
	hudShown bool
}

// NewLoop creates a loop over session; renderer and hud may be nil
func NewLoop(session *Session, router *EventRouter, renderer Renderer, hud HUD) *Loop {
	if router == nil {
		router = NewEventRouter()
	}
	return &Loop{
		session:  session,
		router:   router,
		renderer: renderer,
		hud:      hud,
	}
}

// AddSystem registers a system, keeping priority order (stable for equal priorities)
func (l *Loop) AddSystem(sys System) {
	l.systems = append(l.systems, sys)
	sort.SliceStable(l.systems, func(i, j int) bool {
		return l.systems[i].Priority() < l.systems[j].Priority()
	})
}

// Router returns the event router handlers register with
func (l *Loop) Router() *EventRouter {
	return l.router
}

// Step runs one tick and reports whether the session is still running afterwards
func (l *Loop) Step(dt time.Duration) bool {
	// Events raised outside a tick (session start) are delivered first
	l.router.Drain(l.session.Events)

	if !l.session.Progression.Running() {
		return false
	}

	for _, sys := range l.systems {
		sys.Update(l.session, dt)
	}
	l.router.Drain(l.session.Events)

	l.publishHUD()
	if l.renderer != nil {
		l.renderer.RenderFrame(l.session.Frame())
	}

	return l.session.Progression.Running()
}

// publishHUD notifies the HUD only when something it shows changed
// Elapsed is compared at whole-second resolution, matching the mm:ss display
func (l *Loop) publishHUD() {
	if l.hud == nil {
		return
	}
	h := l.session.HUD()
	cmp := h
	cmp.Elapsed = h.Elapsed.Truncate(time.Second)
	if l.hudShown && cmp == l.lastHUD {
		return
	}
	l.lastHUD = cmp
	l.hudShown = true
	l.hud.ShowHUD(h)
}

// ResetHUD forces the next Step to publish the HUD
func (l *Loop) ResetHUD() {
	l.hudShown = false
}
