package engine

import "github.com/lixenwraith/reef-dash/components"

// Entity is a unique identifier for a spawned obstacle or collectible
// IDs are never reused within a registry, zero is never issued
type Entity uint64

// ObstacleEntity pairs an obstacle with its identity
type ObstacleEntity struct {
	ID Entity
	components.ObstacleComponent
}

// CollectibleEntity pairs a collectible with its identity
type CollectibleEntity struct {
	ID Entity
	components.CollectibleComponent
}
