package geod

import (
	"github.com/golang/geo/r3"
	"github.com/golang/geo/s2"
	"github.com/paulmach/orb"
)

// north is the n-vector of the north pole, ball +Y.
var north = r3.Vector{X: 0, Y: 0, Z: 1}

// toNvector maps a ball-space point onto the unit sphere used for navigation.
// Ball axes (x, y, z) become n-vector axes (z, x, y): the pin axis lands on
// latitude 0, longitude 0, ball +X points east and ball +Y is north.
// This pair of functions is the only place the permutation is spelled out.
func toNvector(p r3.Vector) r3.Vector {
	return r3.Vector{X: p.Z, Y: p.X, Z: p.Y}.Normalize()
}

// fromNvector is the inverse of toNvector, scaled back to the ball's radius.
func fromNvector(n r3.Vector) r3.Vector {
	return r3.Vector{X: n.Y, Y: n.Z, Z: n.X}.Mul(BallRadius)
}

// LatLon returns the latitude/longitude of a ball-space point.
func LatLon(p r3.Vector) s2.LatLng {
	return s2.LatLngFromPoint(s2.Point{Vector: toNvector(p)})
}

// ToOrb returns p as an orb point (longitude, latitude in degrees).
func ToOrb(p r3.Vector) orb.Point {
	ll := LatLon(p)
	return orb.Point{ll.Lng.Degrees(), ll.Lat.Degrees()}
}

// FromOrb places a longitude/latitude pair on the ball's surface.
func FromOrb(p orb.Point) r3.Vector {
	n := s2.PointFromLatLng(s2.LatLngFromDegrees(p.Lat(), p.Lon()))
	return fromNvector(n.Vector)
}

// Midpoint returns the point halfway along the short great-circle arc between
// a and b. Antipodal points have no unique midpoint; a is returned for them.
func Midpoint(a, b r3.Vector) r3.Vector {
	mid := toNvector(a).Add(toNvector(b))
	if mid.Norm() < 1e-14 {
		return a
	}
	return fromNvector(mid.Normalize())
}
