package vmath

import "math"

const TwoPi = 2 * math.Pi

// WrapAngle maps a to [-Pi, Pi)
func WrapAngle(a float64) float64 {
	a = math.Mod(a+math.Pi, TwoPi)
	if a < 0 {
		a += TwoPi
	}
	return a - math.Pi
}

// LerpAngle moves from toward to by fraction t along the shortest arc
func LerpAngle(from, to, t float64) float64 {
	t = Clamp(t, 0, 1)
	diff := WrapAngle(to - from)
	return WrapAngle(from + diff*t)
}

// Heading returns the facing angle of direction d, 0 meaning forward (-Z)
// Angles grow clockwise when viewed from above with X to the right
func Heading(d Vec2) float64 {
	return math.Atan2(d.X, -d.Z)
}

// WrapPhase keeps an oscillator phase inside [0, 2*Pi)
func WrapPhase(p float64) float64 {
	p = math.Mod(p, TwoPi)
	if p < 0 {
		p += TwoPi
	}
	return p
}
