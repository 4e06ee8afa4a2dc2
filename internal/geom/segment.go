package geom

import (
	"math"
	"sort"
)

// DistToSegment returns the distance from p to the segment a-b.
func DistToSegment(p, a, b Point) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	l2 := dx*dx + dy*dy
	if l2 == 0 {
		return Dist(p, a)
	}
	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / l2
	t = math.Max(0, math.Min(1, t))
	return Dist(p, Point{a.X + t*dx, a.Y + t*dy})
}

// OnSegmentInterior reports whether p lies on a-b, excluding both endpoints.
func OnSegmentInterior(p, a, b Point) bool {
	if p.Eq(a) || p.Eq(b) {
		return false
	}
	cross := (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
	if math.Abs(cross) > Epsilon*math.Max(1, Dist(a, b)) {
		return false
	}
	dot := (p.X-a.X)*(b.X-a.X) + (p.Y-a.Y)*(b.Y-a.Y)
	return dot > 0 && dot < (b.X-a.X)*(b.X-a.X)+(b.Y-a.Y)*(b.Y-a.Y)
}

// Intersect returns the proper crossing point of segments a1-a2 and b1-b2.
// Parallel or collinear segments never intersect.
func Intersect(a1, a2, b1, b2 Point) (Point, bool) {
	rx, ry := a2.X-a1.X, a2.Y-a1.Y
	sx, sy := b2.X-b1.X, b2.Y-b1.Y
	den := rx*sy - ry*sx
	if math.Abs(den) < 1e-12 {
		return Point{}, false
	}
	qx, qy := b1.X-a1.X, b1.Y-a1.Y
	t := (qx*sy - qy*sx) / den
	u := (qx*ry - qy*rx) / den
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return Point{}, false
	}
	return Point{a1.X + t*rx, a1.Y + t*ry}, true
}

// SortAlong orders pts by distance from origin.
func SortAlong(origin Point, pts []Point) {
	sort.SliceStable(pts, func(i, j int) bool {
		return Dist(origin, pts[i]) < Dist(origin, pts[j])
	})
}

// SignedArea is positive for counter-clockwise rings.
func SignedArea(ring []Point) float64 {
	var a float64
	for i := range ring {
		p, q := ring[i], ring[(i+1)%len(ring)]
		a += p.X*q.Y - q.X*p.Y
	}
	return a / 2
}

// Angle returns the direction of v in radians, normalized to [0, 2π).
func Angle(v Point) float64 {
	a := math.Atan2(v.Y, v.X)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// SnapToGrid rounds both coordinates to the nearest multiple of size.
func SnapToGrid(p Point, size float64) Point {
	if size <= 0 {
		return p
	}
	return Point{math.Round(p.X/size) * size, math.Round(p.Y/size) * size}
}
