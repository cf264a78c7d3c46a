package vmath

import (
	"math"
)

// Vec2 is a point or direction on the play plane
// X is the lateral axis, Z the forward axis (negative Z is away from the player)
type Vec2 struct {
	X, Z float64
}

func V2Add(a, b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Z + b.Z}
}

func V2Sub(a, b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Z - b.Z}
}

func V2Scale(v Vec2, s float64) Vec2 {
	return Vec2{v.X * s, v.Z * s}
}

func V2MagSq(v Vec2) float64 {
	return v.X*v.X + v.Z*v.Z
}

func V2Mag(v Vec2) float64 {
	return math.Sqrt(V2MagSq(v))
}

// V2IsZero reports whether both components are exactly zero
func V2IsZero(v Vec2) bool {
	return v.X == 0 && v.Z == 0
}

// Clamp restricts v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampInt restricts v to [lo, hi]
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
