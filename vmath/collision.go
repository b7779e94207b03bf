package vmath

// CirclesOverlap reports whether two circles touch or intersect
// Compares squared distances; the boundary is inclusive so touching counts
func CirclesOverlap(posA Vec2, radiusA float64, posB Vec2, radiusB float64) bool {
	d := posB.Sub(posA)
	sum := radiusA + radiusB
	return d.LenSq() <= sum*sum
}

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampToRect limits p to the rectangle inset by halfX/halfY from [0,w]x[0,h]
// When the inset is inverted (object larger than the rect) the point collapses to the center
func ClampToRect(p Vec2, w, h, halfX, halfY float64) Vec2 {
	if 2*halfX > w {
		p.X = w / 2
	} else {
		p.X = Clamp(p.X, halfX, w-halfX)
	}
	if 2*halfY > h {
		p.Y = h / 2
	} else {
		p.Y = Clamp(p.Y, halfY, h-halfY)
	}
	return p
}
