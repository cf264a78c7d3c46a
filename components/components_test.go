package components

import (
	"math"
	"testing"

	"github.com/lixenwraith/reef-dash/vmath"
)

func TestTablesFormSimplex(t *testing.T) {
	var obstacleSum float64
	for _, spec := range ObstacleTable {
		if spec.Weight < 0 {
			t.Errorf("Expected non-negative weight for %v, got %f", spec.Category, spec.Weight)
		}
		obstacleSum += spec.Weight
	}
	if math.Abs(obstacleSum-1) > 1e-9 {
		t.Errorf("Expected obstacle weights to sum to 1, got %f", obstacleSum)
	}

	var collectibleSum float64
	for _, spec := range CollectibleTable {
		collectibleSum += spec.Weight
	}
	if math.Abs(collectibleSum-1) > 1e-9 {
		t.Errorf("Expected collectible weights to sum to 1, got %f", collectibleSum)
	}
}

func TestCollectiblePointValuesDistinct(t *testing.T) {
	seen := make(map[int]CollectibleCategory)
	for _, spec := range CollectibleTable {
		if prev, ok := seen[spec.Points]; ok {
			t.Errorf("Expected distinct point values, %v and %v both award %d", prev, spec.Category, spec.Points)
		}
		seen[spec.Points] = spec.Category
		if spec.SpeedMul <= 0 {
			t.Errorf("Expected positive speed multiplier for %v", spec.Category)
		}
	}
}

func TestLookup(t *testing.T) {
	spec, ok := LookupCollectible(CollectibleTable, CollectibleFish)
	if !ok || spec.Points != 10 {
		t.Errorf("Expected fish worth 10, got %+v ok=%v", spec, ok)
	}

	if _, ok := LookupObstacle(ObstacleTable, ObstacleCategory(99)); ok {
		t.Error("Expected unknown obstacle category lookup to fail")
	}
}

func TestBoundsFollowPosition(t *testing.T) {
	o := ObstacleComponent{Pos: vmath.Vec2{X: 2, Z: -5}, Half: vmath.Vec2{X: 1, Z: 0.5}}
	b := o.Bounds()
	if b.Min != (vmath.Vec2{X: 1, Z: -5.5}) || b.Max != (vmath.Vec2{X: 3, Z: -4.5}) {
		t.Errorf("Unexpected bounds %+v", b)
	}

	o.Pos.Z += 2
	if o.Bounds().Min.Z != -3.5 {
		t.Errorf("Expected bounds recomputed after move, got %+v", o.Bounds())
	}
}

func TestCategoryStrings(t *testing.T) {
	if ObstacleShark.String() != "shark" {
		t.Errorf("Expected shark, got %s", ObstacleShark)
	}
	if CollectibleClam.String() != "clam" {
		t.Errorf("Expected clam, got %s", CollectibleClam)
	}
	if ObstacleCategory(42).String() != "unknown" {
		t.Error("Expected unknown for out of range category")
	}
}
