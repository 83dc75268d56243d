// Package export turns a layout into geometry a viewer can draw: great-circle
// arcs between markings, angle marks, hole outlines, and GeoJSON in the ball's
// latitude/longitude frame (pin at 0,0, north toward ball +Y).
package export

import (
	"errors"
	"math"

	"github.com/golang/geo/r3"

	"layout-visualizer/internal/geod"
)

const (
	circumference = 2 * math.Pi * geod.BallRadius

	// sweepEpsilon keeps rounding in the bearings from adding a sample that
	// would duplicate the end point.
	sweepEpsilon = 1e-9
)

// Arc samples the great circle from start to end. The short way round is
// taken unless longWay is set. smoothness is the number of points a full
// circle would get; every arc has at least two.
func Arc(start, end r3.Vector, longWay bool, smoothness int) ([]r3.Vector, error) {
	b, err := geod.Bearing(start, end)
	if err != nil {
		return nil, err
	}
	d := geod.Distance(start, end)
	if longWay {
		b += 180
		d = circumference - d
	}

	n := int(float64(smoothness) * d / circumference)
	if n < 2 {
		n = 2
	}
	points := make([]r3.Vector, n)
	for i := range points {
		points[i] = geod.Project(start, d*float64(i)/float64(n-1), b)
	}
	return points, nil
}

// AngleArc samples a circle of the given radius around center, sweeping from
// the direction of from to the direction of to in step degree increments. It
// returns the points and the swept angle in degrees.
func AngleArc(center, from, to r3.Vector, radius, step float64, clockwise bool) ([]r3.Vector, float64, error) {
	if step <= 0 {
		return nil, 0, errors.New("export: angle step must be positive")
	}
	start, err := geod.Bearing(center, from)
	if err != nil {
		return nil, 0, err
	}
	end, err := geod.Bearing(center, to)
	if err != nil {
		return nil, 0, err
	}

	sweep, dir := geod.NormalizeBearing(end-start), 1.0
	if !clockwise {
		sweep, dir = geod.NormalizeBearing(start-end), -1
	}

	var points []r3.Vector
	for a := 0.0; a < sweep-sweepEpsilon; a += step {
		points = append(points, geod.Project(center, radius, start+dir*a))
	}
	points = append(points, geod.Project(center, radius, end))
	return points, sweep, nil
}

// LabelAnchor is where a marking's label goes: a little to its left.
func LabelAnchor(p r3.Vector) r3.Vector {
	return geod.Project(p, 0.15, 270)
}

// HoleOutline returns the closed rim of a hole of the given diameter.
func HoleOutline(center r3.Vector, diameter float64, segments int) []r3.Vector {
	if segments < 3 {
		segments = 3
	}
	rim := make([]r3.Vector, 0, segments+1)
	for i := 0; i < segments; i++ {
		rim = append(rim, geod.Project(center, diameter/2, 360*float64(i)/float64(segments)))
	}
	return append(rim, rim[0])
}
