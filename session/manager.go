// Package session drives the run lifecycle: start, restart, game over and score submission
package session

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/lixenwraith/reef-dash/engine"
	"github.com/lixenwraith/reef-dash/input"
	"github.com/lixenwraith/reef-dash/leaderboard"
	"github.com/lixenwraith/reef-dash/systems"
)

var (
	// ErrNotGameOver is returned when submitting a score for a run that has not ended
	ErrNotGameOver = errors.New("session is not over")

	// ErrAlreadySubmitted is returned on a second submission for the same run
	ErrAlreadySubmitted = errors.New("score already submitted")
)

// storeTimeout bounds each leaderboard call
const storeTimeout = 2 * time.Second

// Muter toggles sound output
type Muter interface {
	ToggleMute() bool
}

// Options configures a Manager; zero values select defaults
type Options struct {
	Tuning         engine.Tuning
	Seed           int64 // Zero seeds each run from the clock
	Keys           *input.KeyState
	Renderer       engine.Renderer
	HUD            engine.HUD
	Store          leaderboard.Store
	LeaderboardTop int
	Handlers       []engine.EventHandler // Extra listeners registered on every run, e.g. audio
	Audio          Muter
	Clock          *engine.PausableClock // Paused alongside the scheduler when set
}

// Manager owns the current Session, its scheduler tokens and the leaderboard bridge
// All methods run on the simulation goroutine
type Manager struct {
	opts      Options
	scheduler *engine.Scheduler

	session *engine.Session
	loop    *engine.Loop
	spawner *systems.SpawnSystem

	frameTok       engine.Token
	obstacleTok    engine.Token
	collectibleTok engine.Token

	paused    bool
	submitted bool
	runs      int
	status    string
	name      *input.NameBuffer
	top       []leaderboard.Entry
}

// NewManager creates an idle manager and loads the leaderboard for the title screen
func NewManager(scheduler *engine.Scheduler, opts Options) *Manager {
	if opts.Store == nil {
		opts.Store = leaderboard.NewMemoryStore()
	}
	if opts.LeaderboardTop < 1 {
		opts.LeaderboardTop = 5
	}
	if opts.Tuning.LevelInterval == 0 {
		opts.Tuning = engine.DefaultTuning()
	}

	m := &Manager{
		opts:      opts,
		scheduler: scheduler,
		name:      input.NewNameBuffer(),
	}
	m.refreshLeaderboard()
	return m
}

// Session returns the current session, nil before the first start
func (m *Manager) Session() *engine.Session {
	return m.session
}

func (m *Manager) seed() int64 {
	if m.opts.Seed != 0 {
		return m.opts.Seed
	}
	return time.Now().UnixNano()
}

// Start discards any current run and begins a fresh one
func (m *Manager) Start() error {
	m.stop()

	var src engine.InputSource
	if m.opts.Keys != nil {
		m.opts.Keys.Reset()
		src = m.opts.Keys
	}

	s := engine.NewSession(m.opts.Tuning, src, m.seed())
	spawner, err := systems.NewSpawnSystem(s)
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}

	loop := engine.NewLoop(s, nil, m.opts.Renderer, m.opts.HUD)
	prog := systems.NewProgressionSystem(s)
	loop.AddSystem(systems.NewPlayerSystem())
	loop.AddSystem(systems.NewScrollSystem())
	loop.AddSystem(systems.NewCollisionSystem())
	loop.AddSystem(prog)

	router := loop.Router()
	router.Register(prog)
	router.Register(m)
	for _, h := range m.opts.Handlers {
		router.Register(h)
	}

	m.session = s
	m.loop = loop
	m.spawner = spawner
	m.submitted = false
	m.setStatus("")
	m.name.Reset()
	m.runs++

	s.Start()

	m.frameTok = m.scheduler.EveryFrame(func(dt time.Duration) {
		loop.Step(dt)
	})
	m.obstacleTok = m.scheduler.Every(s.Progression.ObstacleInterval(), func() {
		spawner.SpawnObstacle()
	})
	m.collectibleTok = m.scheduler.Every(s.Progression.CollectibleInterval(), func() {
		spawner.SpawnCollectible()
	})

	log.Printf("Session %s started (run %d)", s.ID, m.runs)
	return nil
}

// Restart ends the current run, if any, and starts a new one
func (m *Manager) Restart() error {
	if m.session != nil {
		log.Printf("Session %s restarted at score %d", m.session.ID, m.session.Progression.State().Score)
	}
	return m.Start()
}

// stop cancels every scheduled task of the current run and clears the pause
func (m *Manager) stop() {
	m.scheduler.CancelAll()
	m.frameTok, m.obstacleTok, m.collectibleTok = 0, 0, 0
	m.setPaused(false)
}

func (m *Manager) setPaused(p bool) {
	m.paused = p
	if p {
		m.scheduler.Pause()
		if m.opts.Clock != nil {
			m.opts.Clock.Pause()
		}
		return
	}
	m.scheduler.Resume()
	if m.opts.Clock != nil && m.opts.Clock.IsPaused() {
		m.opts.Clock.Resume()
	}
}

// TogglePause freezes or resumes a running session and returns the new state
func (m *Manager) TogglePause() bool {
	if !m.Running() {
		return false
	}
	m.setPaused(!m.paused)
	log.Printf("Session %s paused=%v", m.session.ID, m.paused)
	return m.paused
}

// Running reports whether a run is in progress, paused or not
func (m *Manager) Running() bool {
	return m.session != nil && m.session.Progression.Running()
}

func (m *Manager) Paused() bool {
	return m.paused
}

// Phase is the current session phase, Idle before the first start
func (m *Manager) Phase() engine.GamePhase {
	if m.session == nil {
		return engine.PhaseIdle
	}
	return m.session.Progression.State().Phase
}

// Status returns the current status line message
func (m *Manager) Status() string {
	return m.status
}

// Leaderboard returns the last loaded top entries
func (m *Manager) Leaderboard() []leaderboard.Entry {
	return m.top
}

// EventTypes implements engine.EventHandler
func (m *Manager) EventTypes() []engine.EventType {
	return []engine.EventType{engine.EventLevelUp, engine.EventGameOver}
}

// HandleEvent retimes spawning on level-up and tears the run down on game over
func (m *Manager) HandleEvent(ev engine.Event) {
	s := m.session
	if s == nil {
		return
	}
	switch ev.Type {
	case engine.EventLevelUp:
		m.scheduler.SetInterval(m.obstacleTok, s.Progression.ObstacleInterval())
		m.scheduler.SetInterval(m.collectibleTok, s.Progression.CollectibleInterval())
		log.Printf("Session %s level %d: scroll x%.2f, obstacle every %v, collectible every %v",
			s.ID, ev.Level, s.Progression.ScrollMultiplier(),
			s.Progression.ObstacleInterval(), s.Progression.CollectibleInterval())
	case engine.EventGameOver:
		m.stop()
		st := s.Progression.State()
		log.Printf("Session %s over: score %d, level %d, time %s",
			s.ID, st.Score, st.Level, engine.FormatElapsed(st.Elapsed))
		m.refreshLeaderboard()
	}
}

// SubmitScore appends the finished run to the leaderboard
// On store failure the run stays submittable and the status line reports the error
func (m *Manager) SubmitScore(ctx context.Context, name string) error {
	if m.session == nil || !m.session.Progression.GameOver() {
		return ErrNotGameOver
	}
	if m.submitted {
		return ErrAlreadySubmitted
	}

	score := m.session.Progression.State().Score
	name = leaderboard.NormalizeName(name)

	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	if err := m.opts.Store.Append(ctx, name, score); err != nil {
		log.Printf("Leaderboard append failed for %s (%d): %v", name, score, err)
		m.setStatus("Leaderboard unavailable, score not saved")
		return fmt.Errorf("submit score: %w", err)
	}

	m.submitted = true
	m.setStatus(fmt.Sprintf("Saved %d for %s", score, name))
	log.Printf("Session %s score %d submitted as %s", m.session.ID, score, name)

	m.loop.Router().Dispatch(engine.Event{Type: engine.EventScoreSubmitted, Score: score})
	m.refreshLeaderboard()
	return nil
}

// Submitted reports whether the current run's score was saved
func (m *Manager) Submitted() bool {
	return m.submitted
}

func (m *Manager) refreshLeaderboard() {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	top, err := m.opts.Store.TopN(ctx, m.opts.LeaderboardTop)
	if err != nil {
		log.Printf("Leaderboard read failed: %v", err)
		m.setStatus("Leaderboard unavailable")
		return
	}
	m.top = top
}

// Advance runs the scheduler for dt and draws the menu screens when no run is active
func (m *Manager) Advance(dt time.Duration) {
	m.scheduler.Advance(dt)
	if !m.Running() || m.paused {
		m.Render()
	}
}

// Render draws the current state with its overlay
func (m *Manager) Render() {
	if m.opts.Renderer == nil {
		return
	}
	var f *engine.Frame
	if m.session != nil {
		f = m.session.Frame()
	} else {
		f = &engine.Frame{Phase: engine.PhaseIdle}
	}
	f.Paused = m.paused
	f.Overlay = m.Overlay()
	m.opts.Renderer.RenderFrame(f)
}

// statusSetter is implemented by renderers with a status line
type statusSetter interface {
	SetStatus(s string)
}

func (m *Manager) setStatus(s string) {
	m.status = s
	if r, ok := m.opts.Renderer.(statusSetter); ok {
		r.SetStatus(s)
	}
}

// Overlay builds the menu panel for the current phase, nil while playing
func (m *Manager) Overlay() *engine.Overlay {
	switch {
	case m.paused:
		st := m.session.Progression.State()
		return &engine.Overlay{
			Title:  "PAUSED",
			Lines:  []string{fmt.Sprintf("Score %d  Level %d  %s", st.Score, st.Level, engine.FormatElapsed(st.Elapsed))},
			Prompt: "p to resume",
		}
	case m.Phase() == engine.PhaseIdle:
		return &engine.Overlay{
			Title:  "REEF DASH",
			Lines:  append([]string{"Dodge the hazards, grab the sea life", ""}, m.leaderboardLines()...),
			Prompt: "Enter to start",
		}
	case m.Phase() == engine.PhaseGameOver:
		st := m.session.Progression.State()
		lines := []string{
			fmt.Sprintf("Final score %d  Level %d  %s", st.Score, st.Level, engine.FormatElapsed(st.Elapsed)),
			"",
		}
		lines = append(lines, m.leaderboardLines()...)
		prompt := "r to play again"
		if !m.submitted {
			prompt = fmt.Sprintf("Name: %s_  (Enter to save, Tab to play again)", m.name.String())
		}
		return &engine.Overlay{Title: "GAME OVER", Lines: lines, Prompt: prompt}
	}
	return nil
}

func (m *Manager) leaderboardLines() []string {
	if len(m.top) == 0 {
		return []string{"No scores yet"}
	}
	lines := make([]string, 0, len(m.top)+1)
	lines = append(lines, "TOP SCORES")
	for i, e := range m.top {
		dots := max(20-len([]rune(e.Name)), 2)
		lines = append(lines, fmt.Sprintf("%d. %s %s %6d", i+1, e.Name, strings.Repeat(".", dots), e.Score))
	}
	return lines
}

// InputMode is the parsing context the key machine should use
func (m *Manager) InputMode() input.InputMode {
	switch {
	case m.Phase() == engine.PhaseGameOver && !m.submitted:
		return input.ModeNameEntry
	case m.Running() && !m.paused:
		return input.ModePlay
	}
	return input.ModeMenu
}

// HandleIntent applies one parsed key and reports whether the program should quit
func (m *Manager) HandleIntent(in *input.Intent) (quit bool) {
	if in == nil {
		return false
	}

	switch in.Type {
	case input.IntentQuit:
		return true

	case input.IntentMove:
		if m.opts.Keys != nil && m.Running() && !m.paused {
			m.opts.Keys.Apply(in)
		}

	case input.IntentStart:
		if !m.Running() {
			m.startOrReport(m.Start)
		}

	case input.IntentRestart:
		m.startOrReport(m.Restart)

	case input.IntentPause:
		m.TogglePause()

	case input.IntentToggleMute:
		if m.opts.Audio != nil {
			if m.opts.Audio.ToggleMute() {
				m.setStatus("Sound off")
			} else {
				m.setStatus("Sound on")
			}
		}

	case input.IntentTextChar, input.IntentTextBackspace:
		m.name.Apply(in)

	case input.IntentTextConfirm:
		if err := m.SubmitScore(context.Background(), m.name.String()); err != nil && !errors.Is(err, ErrAlreadySubmitted) {
			log.Printf("Score submission: %v", err)
		}
	}
	return false
}

func (m *Manager) startOrReport(start func() error) {
	if err := start(); err != nil {
		log.Printf("Session start failed: %v", err)
		m.setStatus("Could not start: " + err.Error())
	}
}
