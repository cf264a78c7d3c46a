package vmath

// AABB is an axis-aligned box on the play plane
type AABB struct {
	Min, Max Vec2
}

// BoxAround builds the box centered at c with the given half extents
func BoxAround(c, half Vec2) AABB {
	return AABB{
		Min: Vec2{c.X - half.X, c.Z - half.Z},
		Max: Vec2{c.X + half.X, c.Z + half.Z},
	}
}

// Overlaps reports strict overlap; boxes sharing only an edge do not overlap
func (a AABB) Overlaps(b AABB) bool {
	return a.Min.X < b.Max.X && a.Max.X > b.Min.X &&
		a.Min.Z < b.Max.Z && a.Max.Z > b.Min.Z
}

// Contains reports whether p lies inside the box, edges included
func (a AABB) Contains(p Vec2) bool {
	return p.X >= a.Min.X && p.X <= a.Max.X && p.Z >= a.Min.Z && p.Z <= a.Max.Z
}

// ClampPoint returns p moved to the nearest point inside the box
func (a AABB) ClampPoint(p Vec2) Vec2 {
	return Vec2{
		X: Clamp(p.X, a.Min.X, a.Max.X),
		Z: Clamp(p.Z, a.Min.Z, a.Max.Z),
	}
}
