package engine

import "time"

// Progression owns GameState and the difficulty curve
type Progression struct {
	tuning Tuning
	state  GameState
}

// NewProgression creates a controller in the Idle phase
func NewProgression(t Tuning) *Progression {
	return &Progression{
		tuning: t,
		state: GameState{
			Lives: t.StartingLives,
			Level: 1,
			Phase: PhaseIdle,
		},
	}
}

// Start resets the run and enters Running from any phase
func (p *Progression) Start() {
	p.state = GameState{
		Score: 0,
		Lives: p.tuning.StartingLives,
		Level: 1,
		Phase: PhaseRunning,
	}
}

// OnObstacleHit costs one life and reports whether it ended the run
func (p *Progression) OnObstacleHit() bool {
	if p.state.Phase != PhaseRunning {
		return false
	}
	p.state.Lives--
	if p.state.Lives <= 0 {
		p.state.Lives = 0
		p.state.Phase = PhaseGameOver
		return true
	}
	return false
}

// OnCollectibleHit adds points to the score, negative values are ignored
func (p *Progression) OnCollectibleHit(points int) {
	if p.state.Phase != PhaseRunning || points <= 0 {
		return
	}
	p.state.Score += points
}

// Tick counts one loop tick, accumulates run time and returns the number of level-ups it caused
// Zero-length ticks are counted but add no time
func (p *Progression) Tick(dt time.Duration) int {
	if p.state.Phase != PhaseRunning {
		return 0
	}
	p.state.Ticks++
	if dt <= 0 {
		return 0
	}
	p.state.Elapsed += dt

	target := 1 + int(p.state.Elapsed/p.tuning.LevelInterval)
	ups := 0
	for p.state.Level < target {
		p.state.Level++
		ups++
	}
	return ups
}

// State returns a copy of the current game state
func (p *Progression) State() GameState {
	return p.state
}

func (p *Progression) Running() bool  { return p.state.Running() }
func (p *Progression) GameOver() bool { return p.state.GameOver() }
func (p *Progression) Level() int     { return p.state.Level }

// ScrollMultiplier is the current global entity speed factor
func (p *Progression) ScrollMultiplier() float64 {
	return p.tuning.ScrollMultiplier(p.state.Level)
}

// ObstacleInterval is the current obstacle spawn period
func (p *Progression) ObstacleInterval() time.Duration {
	return p.tuning.SpawnInterval(p.tuning.ObstacleInterval, p.state.Level)
}

// CollectibleInterval is the current collectible spawn period
func (p *Progression) CollectibleInterval() time.Duration {
	return p.tuning.SpawnInterval(p.tuning.CollectibleInterval, p.state.Level)
}
