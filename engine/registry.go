package engine

import (
	"time"

	"github.com/lixenwraith/reef-dash/components"
	"github.com/lixenwraith/reef-dash/vmath"
)

// Registry owns every live obstacle and collectible
// Growth only happens through Spawn*; shrinkage through RemoveBehind, Remove and Clear
type Registry struct {
	tuning Tuning
	nextID Entity

	obstacles    []ObstacleEntity
	collectibles []CollectibleEntity
}

// NewRegistry creates an empty registry using t for spawn geometry and speeds
func NewRegistry(t Tuning) *Registry {
	return &Registry{
		tuning: t,
		nextID: 1,
	}
}

func (r *Registry) allocID() Entity {
	id := r.nextID
	r.nextID++
	return id
}

// clampLateral keeps a box of half width hx inside the field
func (r *Registry) clampLateral(x, hx float64) float64 {
	limit := r.tuning.Field.HalfWidth - hx
	if limit < 0 {
		limit = 0
	}
	return vmath.Clamp(x, -limit, limit)
}

func (r *Registry) obstacleSpec(c components.ObstacleCategory) components.ObstacleSpec {
	if spec, ok := components.LookupObstacle(r.tuning.ObstacleTable, c); ok {
		return spec
	}
	spec := components.ObstacleSpec{Half: vmath.Vec2{X: 1, Z: 1}, Visual: components.Idle{}}
	if n := len(r.tuning.ObstacleTable); n > 0 {
		spec = r.tuning.ObstacleTable[n-1]
	}
	spec.Category = c
	return spec
}

func (r *Registry) collectibleSpec(c components.CollectibleCategory) components.CollectibleSpec {
	if spec, ok := components.LookupCollectible(r.tuning.CollectibleTable, c); ok {
		return spec
	}
	spec := components.CollectibleSpec{Points: 1, SpeedMul: 1, Half: vmath.Vec2{X: 0.5, Z: 0.5}, Visual: components.Idle{}}
	if n := len(r.tuning.CollectibleTable); n > 0 {
		spec = r.tuning.CollectibleTable[n-1]
	}
	spec.Category = c
	return spec
}

// SpawnObstacle places a new obstacle at lateral x on the far edge
func (r *Registry) SpawnObstacle(c components.ObstacleCategory, x float64) Entity {
	return r.SpawnObstacleAt(c, vmath.Vec2{X: x, Z: r.tuning.Field.SpawnZ})
}

// SpawnObstacleAt places a new obstacle at pos; lateral position is kept inside the field
func (r *Registry) SpawnObstacleAt(c components.ObstacleCategory, pos vmath.Vec2) Entity {
	spec := r.obstacleSpec(c)
	pos.X = r.clampLateral(pos.X, spec.Half.X)

	id := r.allocID()
	r.obstacles = append(r.obstacles, ObstacleEntity{
		ID: id,
		ObstacleComponent: components.ObstacleComponent{
			Category: c,
			Pos:      pos,
			Speed:    r.tuning.ScrollSpeed,
			Half:     spec.Half,
			Visual:   spec.Visual,
		},
	})
	return id
}

// SpawnCollectible places a new collectible at lateral x on the far edge
func (r *Registry) SpawnCollectible(c components.CollectibleCategory, x, phase float64) Entity {
	return r.SpawnCollectibleAt(c, vmath.Vec2{X: x, Z: r.tuning.Field.SpawnZ}, phase)
}

// SpawnCollectibleAt places a new collectible at pos with the given idle phase
func (r *Registry) SpawnCollectibleAt(c components.CollectibleCategory, pos vmath.Vec2, phase float64) Entity {
	spec := r.collectibleSpec(c)
	pos.X = r.clampLateral(pos.X, spec.Half.X)

	id := r.allocID()
	r.collectibles = append(r.collectibles, CollectibleEntity{
		ID: id,
		CollectibleComponent: components.CollectibleComponent{
			Category: c,
			Pos:      pos,
			Speed:    r.tuning.ScrollSpeed * spec.SpeedMul,
			Half:     spec.Half,
			Points:   spec.Points,
			Phase:    vmath.WrapPhase(phase),
			Visual:   spec.Visual,
		},
	})
	return id
}

// Advance scrolls every entity toward the player and advances idle phases
func (r *Registry) Advance(dt time.Duration, scrollMultiplier float64) {
	secs := dt.Seconds()
	if secs <= 0 {
		return
	}
	for i := range r.obstacles {
		o := &r.obstacles[i]
		o.Pos.Z += o.Speed * scrollMultiplier * secs
	}
	for i := range r.collectibles {
		c := &r.collectibles[i]
		c.Pos.Z += c.Speed * scrollMultiplier * secs
		c.Phase = vmath.WrapPhase(c.Phase + r.tuning.IdlePhaseRate*secs)
	}
}

// RemoveBehind drops every entity whose depth is past the threshold and returns the count
func (r *Registry) RemoveBehind(depth float64) int {
	removed := 0

	keptObstacles := r.obstacles[:0]
	for _, o := range r.obstacles {
		if o.Pos.Z > depth {
			removed++
			continue
		}
		keptObstacles = append(keptObstacles, o)
	}
	clear(r.obstacles[len(keptObstacles):])
	r.obstacles = keptObstacles

	keptCollectibles := r.collectibles[:0]
	for _, c := range r.collectibles {
		if c.Pos.Z > depth {
			removed++
			continue
		}
		keptCollectibles = append(keptCollectibles, c)
	}
	clear(r.collectibles[len(keptCollectibles):])
	r.collectibles = keptCollectibles

	return removed
}

// Remove deletes one entity, unknown IDs are ignored
func (r *Registry) Remove(id Entity) bool {
	for i := range r.obstacles {
		if r.obstacles[i].ID == id {
			r.obstacles = append(r.obstacles[:i], r.obstacles[i+1:]...)
			return true
		}
	}
	for i := range r.collectibles {
		if r.collectibles[i].ID == id {
			r.collectibles = append(r.collectibles[:i], r.collectibles[i+1:]...)
			return true
		}
	}
	return false
}

// Clear drops all entities; IDs keep increasing across clears
func (r *Registry) Clear() {
	clear(r.obstacles)
	clear(r.collectibles)
	r.obstacles = r.obstacles[:0]
	r.collectibles = r.collectibles[:0]
}

func (r *Registry) Len() int              { return len(r.obstacles) + len(r.collectibles) }
func (r *Registry) ObstacleCount() int    { return len(r.obstacles) }
func (r *Registry) CollectibleCount() int { return len(r.collectibles) }

// Obstacles returns a snapshot copy of live obstacles in spawn order
func (r *Registry) Obstacles() []ObstacleEntity {
	out := make([]ObstacleEntity, len(r.obstacles))
	copy(out, r.obstacles)
	return out
}

// Collectibles returns a snapshot copy of live collectibles in spawn order
func (r *Registry) Collectibles() []CollectibleEntity {
	out := make([]CollectibleEntity, len(r.collectibles))
	copy(out, r.collectibles)
	return out
}

// Obstacle looks up a live obstacle by ID
func (r *Registry) Obstacle(id Entity) (ObstacleEntity, bool) {
	for _, o := range r.obstacles {
		if o.ID == id {
			return o, true
		}
	}
	return ObstacleEntity{}, false
}

// Collectible looks up a live collectible by ID
func (r *Registry) Collectible(id Entity) (CollectibleEntity, bool) {
	for _, c := range r.collectibles {
		if c.ID == id {
			return c, true
		}
	}
	return CollectibleEntity{}, false
}
