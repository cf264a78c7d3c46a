package engine

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/lixenwraith/reef-dash/components"
	"github.com/lixenwraith/reef-dash/constants"
	"github.com/lixenwraith/reef-dash/vmath"
)

// ErrInvalidTuning is returned by Tuning.Validate
var ErrInvalidTuning = errors.New("invalid tuning")

// Field is the play field geometry in world units
type Field struct {
	HalfWidth  float64
	PlayerMinZ float64
	PlayerMaxZ float64
	SpawnZ     float64
	DespawnZ   float64
}

// PlayerArea is the region the player's center may occupy given its half extents
func (f Field) PlayerArea(half vmath.Vec2) vmath.AABB {
	return vmath.AABB{
		Min: vmath.Vec2{X: -f.HalfWidth + half.X, Z: f.PlayerMinZ},
		Max: vmath.Vec2{X: f.HalfWidth - half.X, Z: f.PlayerMaxZ},
	}
}

// PlayerStart is the center of the player's movement range
func (f Field) PlayerStart() vmath.Vec2 {
	return vmath.Vec2{X: 0, Z: (f.PlayerMinZ + f.PlayerMaxZ) / 2}
}

// Tuning holds every numeric gameplay constant of a session
type Tuning struct {
	StartingLives int

	LevelInterval       time.Duration
	ObstacleInterval    time.Duration
	CollectibleInterval time.Duration
	MinSpawnInterval    time.Duration

	ScrollStep          float64
	MaxScrollMultiplier float64
	SpawnStep           float64

	ScrollSpeed   float64
	PlayerSpeed   float64
	TurnRate      float64
	IdlePhaseRate float64

	Field      Field
	PlayerHalf vmath.Vec2

	ObstacleTable    []components.ObstacleSpec
	CollectibleTable []components.CollectibleSpec
}

// DefaultTuning returns the stock game constants
func DefaultTuning() Tuning {
	return Tuning{
		StartingLives:       constants.StartingLives,
		LevelInterval:       constants.LevelInterval,
		ObstacleInterval:    constants.ObstacleSpawnInterval,
		CollectibleInterval: constants.CollectibleSpawnInterval,
		MinSpawnInterval:    constants.MinSpawnInterval,
		ScrollStep:          constants.ScrollStep,
		MaxScrollMultiplier: constants.MaxScrollMultiplier,
		SpawnStep:           constants.SpawnStep,
		ScrollSpeed:         constants.ScrollSpeed,
		PlayerSpeed:         constants.PlayerSpeed,
		TurnRate:            constants.PlayerTurnRate,
		IdlePhaseRate:       constants.IdlePhaseRate,
		Field: Field{
			HalfWidth:  constants.FieldHalfWidth,
			PlayerMinZ: constants.PlayerMinZ,
			PlayerMaxZ: constants.PlayerMaxZ,
			SpawnZ:     constants.SpawnZ,
			DespawnZ:   constants.DespawnZ,
		},
		PlayerHalf:       vmath.Vec2{X: constants.PlayerHalfWidth, Z: constants.PlayerHalfDepth},
		ObstacleTable:    components.ObstacleTable,
		CollectibleTable: components.CollectibleTable,
	}
}

// Validate rejects configurations the simulation cannot run with
// Spawn table weights are not checked here, the spawner resolves any distribution
func (t Tuning) Validate() error {
	switch {
	case t.StartingLives < 1:
		return fmt.Errorf("%w: starting lives %d < 1", ErrInvalidTuning, t.StartingLives)
	case t.LevelInterval <= 0:
		return fmt.Errorf("%w: level interval must be positive", ErrInvalidTuning)
	case t.MinSpawnInterval <= 0:
		return fmt.Errorf("%w: minimum spawn interval must be positive", ErrInvalidTuning)
	case t.ObstacleInterval < t.MinSpawnInterval || t.CollectibleInterval < t.MinSpawnInterval:
		return fmt.Errorf("%w: spawn intervals below floor %v", ErrInvalidTuning, t.MinSpawnInterval)
	case t.ScrollStep < 0 || t.SpawnStep < 0:
		return fmt.Errorf("%w: difficulty steps must be non-negative", ErrInvalidTuning)
	case t.MaxScrollMultiplier < 1:
		return fmt.Errorf("%w: max scroll multiplier %f < 1", ErrInvalidTuning, t.MaxScrollMultiplier)
	case t.ScrollSpeed <= 0 || t.PlayerSpeed <= 0:
		return fmt.Errorf("%w: speeds must be positive", ErrInvalidTuning)
	case t.Field.HalfWidth <= t.PlayerHalf.X:
		return fmt.Errorf("%w: field narrower than player", ErrInvalidTuning)
	case t.Field.PlayerMinZ >= t.Field.PlayerMaxZ:
		return fmt.Errorf("%w: empty player depth range", ErrInvalidTuning)
	case t.Field.SpawnZ >= t.Field.PlayerMinZ:
		return fmt.Errorf("%w: spawn depth must be ahead of the player", ErrInvalidTuning)
	case t.Field.DespawnZ <= t.Field.PlayerMaxZ:
		return fmt.Errorf("%w: despawn depth must be behind the player", ErrInvalidTuning)
	case len(t.ObstacleTable) == 0 || len(t.CollectibleTable) == 0:
		return fmt.Errorf("%w: empty spawn table", ErrInvalidTuning)
	}
	for _, o := range t.ObstacleTable {
		if o.Half.X <= 0 || o.Half.Z <= 0 {
			return fmt.Errorf("%w: obstacle %v has non-positive extents", ErrInvalidTuning, o.Category)
		}
	}
	for _, c := range t.CollectibleTable {
		if c.Half.X <= 0 || c.Half.Z <= 0 {
			return fmt.Errorf("%w: collectible %v has non-positive extents", ErrInvalidTuning, c.Category)
		}
		if c.SpeedMul <= 0 {
			return fmt.Errorf("%w: collectible %v speed multiplier %f must be positive", ErrInvalidTuning, c.Category, c.SpeedMul)
		}
	}
	return nil
}

// ScrollMultiplier is the global entity speed factor at level
func (t Tuning) ScrollMultiplier(level int) float64 {
	if level < 1 {
		level = 1
	}
	return math.Min(1+t.ScrollStep*float64(level-1), t.MaxScrollMultiplier)
}

// SpawnInterval scales base down with level, never below MinSpawnInterval
func (t Tuning) SpawnInterval(base time.Duration, level int) time.Duration {
	if level < 1 {
		level = 1
	}
	scaled := time.Duration(float64(base) / (1 + t.SpawnStep*float64(level-1)))
	if scaled < t.MinSpawnInterval {
		return t.MinSpawnInterval
	}
	return scaled
}
