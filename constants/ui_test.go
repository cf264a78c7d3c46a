package constants

import (
	"testing"
	"time"
)

// TestFieldGeometry verifies the spawn and despawn depths enclose the player's range
func TestFieldGeometry(t *testing.T) {
	if SpawnZ >= PlayerMinZ {
		t.Errorf("Expected SpawnZ (%f) ahead of PlayerMinZ (%f)", SpawnZ, PlayerMinZ)
	}
	if DespawnZ <= PlayerMaxZ+PlayerHalfDepth {
		t.Errorf("Expected DespawnZ (%f) behind the player's back edge (%f)", DespawnZ, PlayerMaxZ+PlayerHalfDepth)
	}
	if PlayerHalfWidth*2 >= FieldHalfWidth*2 {
		t.Error("Expected player narrower than the field")
	}
}

// TestSpawnIntervalOrdering verifies base intervals sit above the floor
func TestSpawnIntervalOrdering(t *testing.T) {
	tests := []struct {
		name     string
		interval time.Duration
	}{
		{"Obstacle", ObstacleSpawnInterval},
		{"Collectible", CollectibleSpawnInterval},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.interval < MinSpawnInterval {
				t.Errorf("Expected %v >= floor %v", tt.interval, MinSpawnInterval)
			}
		})
	}

	if CollectibleSpawnInterval <= ObstacleSpawnInterval {
		t.Error("Expected collectibles to spawn less often than obstacles")
	}
}
