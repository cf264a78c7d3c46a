package components

import (
	"github.com/lixenwraith/reef-dash/vmath"
)

// ObstacleCategory is the cosmetic kind of an obstacle
type ObstacleCategory uint8

const (
	ObstacleRock ObstacleCategory = iota
	ObstacleLog
	ObstacleBoat
	ObstacleIsland
	ObstacleShark
)

func (c ObstacleCategory) String() string {
	switch c {
	case ObstacleRock:
		return "rock"
	case ObstacleLog:
		return "log"
	case ObstacleBoat:
		return "boat"
	case ObstacleIsland:
		return "island"
	case ObstacleShark:
		return "shark"
	default:
		return "unknown"
	}
}

// CollectibleCategory determines point value and speed of a collectible
type CollectibleCategory uint8

const (
	CollectibleFish CollectibleCategory = iota
	CollectibleStarfish
	CollectibleJellyfish
	CollectibleClam
	CollectibleGoldfish
)

func (c CollectibleCategory) String() string {
	switch c {
	case CollectibleFish:
		return "fish"
	case CollectibleStarfish:
		return "starfish"
	case CollectibleJellyfish:
		return "jellyfish"
	case CollectibleClam:
		return "clam"
	case CollectibleGoldfish:
		return "goldfish"
	default:
		return "unknown"
	}
}

// ObstacleSpec is one row of the obstacle spawn table
type ObstacleSpec struct {
	Category ObstacleCategory
	Weight   float64    // Probability mass, rows form a simplex
	Half     vmath.Vec2 // Half extents from the visual scale
	Visual   Visual
}

// CollectibleSpec is one row of the collectible spawn table
type CollectibleSpec struct {
	Category CollectibleCategory
	Weight   float64
	Points   int
	SpeedMul float64
	Half     vmath.Vec2
	Visual   Visual
}

// ObstacleTable is the default obstacle distribution
var ObstacleTable = []ObstacleSpec{
	{Category: ObstacleRock, Weight: 0.35, Half: vmath.Vec2{X: 1.0, Z: 1.0}, Visual: Idle{}},
	{Category: ObstacleLog, Weight: 0.25, Half: vmath.Vec2{X: 2.0, Z: 0.6}, Visual: Idle{}},
	{Category: ObstacleBoat, Weight: 0.15, Half: vmath.Vec2{X: 1.5, Z: 2.5}, Visual: BobAndSway{Sway: 0.4}},
	{Category: ObstacleIsland, Weight: 0.10, Half: vmath.Vec2{X: 3.0, Z: 3.0}, Visual: Idle{}},
	{Category: ObstacleShark, Weight: 0.15, Half: vmath.Vec2{X: 0.8, Z: 1.6}, Visual: BobAndSway{Sway: 0.8}},
}

// CollectibleTable is the default collectible distribution
// Clam and goldfish carry the distinct idle styles of shellfish and specials
var CollectibleTable = []CollectibleSpec{
	{Category: CollectibleFish, Weight: 0.45, Points: 10, SpeedMul: 1.0, Half: vmath.Vec2{X: 0.6, Z: 0.6}, Visual: BobAndSway{Sway: 0.5}},
	{Category: CollectibleStarfish, Weight: 0.25, Points: 20, SpeedMul: 0.8, Half: vmath.Vec2{X: 0.6, Z: 0.6}, Visual: SpinSlowly{Frames: 4}},
	{Category: CollectibleJellyfish, Weight: 0.15, Points: 30, SpeedMul: 0.6, Half: vmath.Vec2{X: 0.7, Z: 0.7}, Visual: DriftWithTentacles{Length: 2}},
	{Category: CollectibleClam, Weight: 0.10, Points: 50, SpeedMul: 1.2, Half: vmath.Vec2{X: 0.6, Z: 0.5}, Visual: Idle{}},
	{Category: CollectibleGoldfish, Weight: 0.05, Points: 100, SpeedMul: 1.6, Half: vmath.Vec2{X: 0.5, Z: 0.5}, Visual: BobAndSway{Sway: 1.0}},
}

// LookupObstacle returns the table row for c
func LookupObstacle(table []ObstacleSpec, c ObstacleCategory) (ObstacleSpec, bool) {
	for _, spec := range table {
		if spec.Category == c {
			return spec, true
		}
	}
	return ObstacleSpec{}, false
}

// LookupCollectible returns the table row for c
func LookupCollectible(table []CollectibleSpec, c CollectibleCategory) (CollectibleSpec, bool) {
	for _, spec := range table {
		if spec.Category == c {
			return spec, true
		}
	}
	return CollectibleSpec{}, false
}
