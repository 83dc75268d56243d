// Package trig holds the small angle and triangle helpers used when laying
// out holes. Arc angles are always in radians; triangle angles are in degrees.
package trig

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// ErrInvalidTriangle is returned when side lengths cannot form a triangle.
var ErrInvalidTriangle = errors.New("trig: sides do not form a triangle")

// domainTolerance absorbs rounding in inverse trig arguments that should be
// exactly ±1.
const domainTolerance = 1e-12

// DegreesToRadians converts an angle in degrees to radians.
func DegreesToRadians(degrees float64) float64 { return degrees * (math.Pi / 180) }

// RadiansToDegrees converts an angle in radians to degrees.
func RadiansToDegrees(radians float64) float64 { return radians * (180 / math.Pi) }

// ArcAngle returns the angle, in radians, subtended at the centre of a sphere
// of the given radius by an arc of length arcLength on its surface.
func ArcAngle(arcLength, radius float64) float64 {
	circumference := 2 * math.Pi * radius
	return (arcLength / circumference) * (2 * math.Pi)
}

// TriangleAngles solves a planar triangle from its three sides using the law
// of cosines and returns the angles opposite a, b and c in degrees.
func TriangleAngles(a, b, c float64) ([3]float64, error) {
	if a <= 0 || b <= 0 || c <= 0 {
		return [3]float64{}, fmt.Errorf("%w: non-positive side in (%v, %v, %v)", ErrInvalidTriangle, a, b, c)
	}
	if a >= b+c || b >= a+c || c >= a+b {
		return [3]float64{}, fmt.Errorf("%w: (%v, %v, %v) violates the triangle inequality", ErrInvalidTriangle, a, b, c)
	}

	cosA, err := inDomain((b*b + c*c - a*a) / (2 * b * c))
	if err != nil {
		return [3]float64{}, err
	}
	cosB, err := inDomain((a*a + c*c - b*b) / (2 * a * c))
	if err != nil {
		return [3]float64{}, err
	}

	angleA := RadiansToDegrees(math.Acos(cosA))
	angleB := RadiansToDegrees(math.Acos(cosB))
	return [3]float64{angleA, angleB, 180 - angleA - angleB}, nil
}

// MedianLength returns the length of the median to side a of a planar
// triangle with sides a, b and c.
func MedianLength(a, b, c float64) (float64, error) {
	radicand := 2*(b*b) + 2*(c*c) - (a * a)
	if radicand < 0 {
		return 0, fmt.Errorf("%w: no median to side %v with sides %v and %v", ErrInvalidTriangle, a, b, c)
	}
	return math.Sqrt(radicand) / 2, nil
}

// RightTriangleAngle solves a spherical right triangle with Napier's rules:
// given the arc of the side opposite an angle and the arc of the hypotenuse
// (both radians), it returns that angle in radians.
func RightTriangleAngle(opposite, hypotenuse float64) (float64, error) {
	sinC := math.Sin(hypotenuse)
	if scalar.EqualWithinAbs(sinC, 0, domainTolerance) {
		return 0, fmt.Errorf("%w: degenerate hypotenuse %v rad", ErrInvalidTriangle, hypotenuse)
	}
	ratio, err := inDomain(math.Sin(opposite) / sinC)
	if err != nil {
		return 0, fmt.Errorf("side %v rad, hypotenuse %v rad: %w", opposite, hypotenuse, err)
	}
	return math.Asin(ratio), nil
}

// inDomain checks an inverse sine/cosine argument, snapping values within
// rounding distance of ±1 onto the boundary.
func inDomain(x float64) (float64, error) {
	switch {
	case math.IsNaN(x):
		return 0, fmt.Errorf("%w: undefined inverse trig argument", ErrInvalidTriangle)
	case x > 1:
		if x-1 > domainTolerance {
			return 0, fmt.Errorf("%w: inverse trig argument %v > 1", ErrInvalidTriangle, x)
		}
		return 1, nil
	case x < -1:
		if -1-x > domainTolerance {
			return 0, fmt.Errorf("%w: inverse trig argument %v < -1", ErrInvalidTriangle, x)
		}
		return -1, nil
	}
	return x, nil
}
