package vmath

import (
	"math"
	"testing"
)

func TestAABBOverlaps(t *testing.T) {
	base := BoxAround(Vec2{0, 0}, Vec2{1, 1})

	tests := []struct {
		name string
		box  AABB
		want bool
	}{
		{"Same box", base, true},
		{"Partial overlap", BoxAround(Vec2{1.5, 0.5}, Vec2{1, 1}), true},
		{"Contained", BoxAround(Vec2{0, 0}, Vec2{0.2, 0.2}), true},
		{"Touching edge", BoxAround(Vec2{2, 0}, Vec2{1, 1}), false},
		{"Separated on X", BoxAround(Vec2{5, 0}, Vec2{1, 1}), false},
		{"Separated on Z", BoxAround(Vec2{0, -3}, Vec2{1, 1}), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Overlaps(tt.box); got != tt.want {
				t.Errorf("Expected Overlaps=%v, got %v", tt.want, got)
			}
			if got := tt.box.Overlaps(base); got != tt.want {
				t.Errorf("Expected symmetric Overlaps=%v, got %v", tt.want, got)
			}
		})
	}
}

func TestAABBClampPoint(t *testing.T) {
	box := AABB{Min: Vec2{-10, -8}, Max: Vec2{10, 4}}

	got := box.ClampPoint(Vec2{15, -20})
	if got != (Vec2{10, -8}) {
		t.Errorf("Expected (10,-8), got %+v", got)
	}

	inside := Vec2{3, 1}
	if got := box.ClampPoint(inside); got != inside {
		t.Errorf("Expected in-bounds point unchanged, got %+v", got)
	}
}

func TestLerpAngleShortestArc(t *testing.T) {
	from := math.Pi - 0.1
	to := -math.Pi + 0.1

	got := LerpAngle(from, to, 0.5)
	// Halfway along the short arc is +-Pi, not 0
	if math.Abs(math.Abs(got)-math.Pi) > 1e-9 {
		t.Errorf("Expected result near +-Pi, got %f", got)
	}

	if got := LerpAngle(0.3, 1.2, 1); math.Abs(got-1.2) > 1e-9 {
		t.Errorf("Expected full interpolation to reach target, got %f", got)
	}
	if got := LerpAngle(0.3, 1.2, 0); math.Abs(got-0.3) > 1e-9 {
		t.Errorf("Expected zero interpolation to keep start, got %f", got)
	}
}

func TestHeading(t *testing.T) {
	if h := Heading(Vec2{0, -1}); math.Abs(h) > 1e-9 {
		t.Errorf("Expected forward heading 0, got %f", h)
	}
	if h := Heading(Vec2{1, 0}); math.Abs(h-math.Pi/2) > 1e-9 {
		t.Errorf("Expected right heading Pi/2, got %f", h)
	}
}

func TestWrapPhase(t *testing.T) {
	if p := WrapPhase(TwoPi + 0.5); math.Abs(p-0.5) > 1e-9 {
		t.Errorf("Expected 0.5, got %f", p)
	}
	if p := WrapPhase(-0.5); p < 0 || p >= TwoPi {
		t.Errorf("Expected phase in [0, 2Pi), got %f", p)
	}
}
