package constants

import "time"

// Lives and scoring
const (
	// StartingLives is the number of obstacle hits a run survives minus one
	StartingLives = 3
)

// Difficulty progression
const (
	// LevelInterval is the run time between level-ups
	LevelInterval = 30 * time.Second

	// ScrollStep is the scroll multiplier added per level above 1
	ScrollStep = 0.15

	// MaxScrollMultiplier caps the scroll multiplier
	MaxScrollMultiplier = 3.0

	// SpawnStep is the spawn rate gain per level above 1 (interval = base / (1 + step*(level-1)))
	SpawnStep = 0.2
)

// Spawn timing
const (
	// ObstacleSpawnInterval is the level 1 interval between obstacle spawns
	ObstacleSpawnInterval = 1000 * time.Millisecond

	// CollectibleSpawnInterval is the level 1 interval between collectible spawns
	CollectibleSpawnInterval = 1500 * time.Millisecond

	// MinSpawnInterval is the floor no spawn interval drops below
	MinSpawnInterval = 250 * time.Millisecond
)

// Motion
const (
	// ScrollSpeed is the base forward speed of entities in world units per second
	ScrollSpeed = 18.0

	// PlayerSpeed is the player step speed per held direction in world units per second
	PlayerSpeed = 14.0

	// PlayerTurnRate controls how fast facing converges on the movement heading (1/s)
	PlayerTurnRate = 10.0

	// IdlePhaseRate is the collectible wiggle angular speed in radians per second
	IdlePhaseRate = 3.0
)

// Input
const (
	// KeyHoldWindow is how long a direction stays held after its latest key event
	// Terminals report presses and auto-repeat but no releases
	KeyHoldWindow = 180 * time.Millisecond
)
