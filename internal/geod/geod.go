// Package geod navigates the surface of a bowling ball the way navigation
// formulas move across the globe: every point is reached from another one by
// a surface distance and a compass bearing. Points are ball-space Cartesian
// coordinates in inches, centred on the ball.
package geod

import (
	"errors"
	"math"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s1"
	"github.com/paulmach/orb/geo"
)

// BallRadius is the radius of a regulation ball in inches. Any code doing its
// own geometry on ball-space points must use this value.
const BallRadius = 4.25

// PinCoords is the fixed position of the pin, on the +Z axis.
var PinCoords = r3.Vector{X: 0, Y: 0, Z: BallRadius}

// ErrCoincidentPoints is returned when a bearing is requested between two
// points that are (numerically) the same.
var ErrCoincidentPoints = errors.New("geod: coincident points have no bearing")

const (
	// minSeparation is the smallest arc, in radians, with a defined bearing.
	minSeparation = 1e-9
	poleTolerance = 1e-12
)

// Bearing returns the initial compass bearing, in degrees [0, 360), of the
// great circle from start to dest.
func Bearing(start, dest r3.Vector) (float64, error) {
	if toNvector(start).Angle(toNvector(dest)).Radians() < minSeparation {
		return 0, ErrCoincidentPoints
	}
	return NormalizeBearing(geo.Bearing(ToOrb(start), ToOrb(dest))), nil
}

// Project travels distance inches from start along the great circle leaving
// it at bearing degrees and returns the destination. Negative distances travel
// backwards. Bearings outside [0, 360) are normalised first.
func Project(start r3.Vector, distance, bearing float64) r3.Vector {
	if distance == 0 {
		return start
	}

	n := toNvector(start)
	delta := distance / BallRadius
	theta := (s1.Angle(NormalizeBearing(bearing)) * s1.Degree).Radians()

	east := north.Cross(n)
	if east.Norm() < poleTolerance {
		// At a pole, longitude 0 decides which way is east.
		east = r3.Vector{X: 0, Y: 1, Z: 0}
	}
	east = east.Normalize()
	northward := n.Cross(east)

	dir := northward.Mul(math.Cos(theta)).Add(east.Mul(math.Sin(theta)))
	dest := n.Mul(math.Cos(delta)).Add(dir.Mul(math.Sin(delta)))
	return fromNvector(dest.Normalize())
}

// Distance returns the great-circle distance between two points in inches.
func Distance(start, dest r3.Vector) float64 {
	return toNvector(start).Angle(toNvector(dest)).Radians() * BallRadius
}

// NormalizeBearing wraps b into [0, 360).
func NormalizeBearing(b float64) float64 {
	b = math.Mod(b, 360)
	if b < 0 {
		b += 360
	}
	if b >= 360 {
		// -tiny + 360 rounds up to 360.
		b = 0
	}
	return b
}
