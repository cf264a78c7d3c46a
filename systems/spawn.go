package systems

import (
	"errors"
	"math"

	"github.com/lixenwraith/reef-dash/engine"
)

// ErrEmptySpawnTable is returned when a spawn table has no rows
var ErrEmptySpawnTable = errors.New("spawn table is empty")

// PickWeighted walks weights accumulating mass and returns the first index whose
// cumulative weight meets or exceeds u. Non-positive weights are never selected
// directly; when the mass sums below u the last index is returned
func PickWeighted(weights []float64, u float64) int {
	if len(weights) == 0 {
		return -1
	}
	acc := 0.0
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		acc += w
		if acc >= u {
			return i
		}
	}
	return len(weights) - 1
}

// SpawnSystem creates obstacles and collectibles from weighted category tables
// It is driven by two scheduler interval tasks, not by the per-frame loop
type SpawnSystem struct {
	session *engine.Session

	obstacleWeights    []float64
	collectibleWeights []float64
}

// NewSpawnSystem creates a spawner over the session's tuning tables
func NewSpawnSystem(s *engine.Session) (*SpawnSystem, error) {
	if len(s.Tuning.ObstacleTable) == 0 || len(s.Tuning.CollectibleTable) == 0 {
		return nil, ErrEmptySpawnTable
	}

	sys := &SpawnSystem{
		session:            s,
		obstacleWeights:    make([]float64, len(s.Tuning.ObstacleTable)),
		collectibleWeights: make([]float64, len(s.Tuning.CollectibleTable)),
	}
	for i, spec := range s.Tuning.ObstacleTable {
		sys.obstacleWeights[i] = spec.Weight
	}
	for i, spec := range s.Tuning.CollectibleTable {
		sys.collectibleWeights[i] = spec.Weight
	}
	return sys, nil
}

// lateral draws a uniform lateral position keeping a box of half width hx in the field
func (sys *SpawnSystem) lateral(hx float64) float64 {
	limit := math.Max(sys.session.Tuning.Field.HalfWidth-hx, 0)
	return (sys.session.Rand.Float64()*2 - 1) * limit
}

// SpawnObstacle adds one obstacle at the far edge; no-op unless the session is running
func (sys *SpawnSystem) SpawnObstacle() (engine.Entity, bool) {
	if !sys.session.Progression.Running() {
		return 0, false
	}
	idx := PickWeighted(sys.obstacleWeights, sys.session.Rand.Float64())
	spec := sys.session.Tuning.ObstacleTable[idx]
	return sys.session.Registry.SpawnObstacle(spec.Category, sys.lateral(spec.Half.X)), true
}

// SpawnCollectible adds one collectible at the far edge with a random idle phase
func (sys *SpawnSystem) SpawnCollectible() (engine.Entity, bool) {
	if !sys.session.Progression.Running() {
		return 0, false
	}
	idx := PickWeighted(sys.collectibleWeights, sys.session.Rand.Float64())
	spec := sys.session.Tuning.CollectibleTable[idx]
	phase := sys.session.Rand.Float64() * 2 * math.Pi
	return sys.session.Registry.SpawnCollectible(spec.Category, sys.lateral(spec.Half.X), phase), true
}
