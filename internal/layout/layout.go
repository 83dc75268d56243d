// Package layout derives where the holes of a bowling ball are drilled with
// the dual-angle method. More info:
//   - https://www.buddiesproshop.com/content/DualAngle.pdf
//   - http://www.bowlersreference.com/Ball/Layout/Dual.htm
//
// Relative directions (up, down, left, right) are given looking at the ball
// with the CG directly below the pin. Angles below describe a right-handed
// bowler; every rotation is mirrored for left-handed bowlers.
package layout

import (
	"errors"
	"fmt"
	"math"

	"github.com/golang/geo/r3"

	"layout-visualizer/internal/geod"
	"layout-visualizer/internal/specs"
	"layout-visualizer/internal/trig"
)

// ErrInvalidLayoutGeometry is returned when the measurements cannot be laid
// out on the ball: coincident construction points or hole distances that do
// not form a triangle.
var ErrInvalidLayoutGeometry = errors.New("layout: invalid layout geometry")

// Side picks a finger hole.
type Side int

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("Side(%d)", int(s))
}

// CenterLine holds the points along the line from the thumb hole to the
// bridge, through the grip center.
type CenterLine struct {
	BridgeCenter r3.Vector
	ThumbEdge    r3.Vector
	ThumbCenter  r3.Vector
}

// FingerCoords holds the centers of both finger holes.
type FingerCoords struct {
	Left  r3.Vector
	Right r3.Vector
}

func geometryError(step string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrInvalidLayoutGeometry, step, err)
}

func bearing(step string, start, dest r3.Vector) (float64, error) {
	b, err := geod.Bearing(start, dest)
	if err != nil {
		return 0, geometryError(step, err)
	}
	return b, nil
}

// turn rotates a bearing clockwise by angle degrees, or counterclockwise for
// left-handed bowlers.
func turn(b, angle float64, leftHanded bool) float64 {
	if leftHanded {
		return geod.NormalizeBearing(b - angle)
	}
	return geod.NormalizeBearing(b + angle)
}

// CGCoords places the CG pinDistance inches straight down from the pin.
func CGCoords(pin r3.Vector, pinDistance float64) r3.Vector {
	return geod.Project(pin, pinDistance, 180)
}

// DrillingBearing is the bearing from the pin to the PAP: the pin-to-CG line
// rotated counterclockwise by the drilling angle.
func DrillingBearing(pin, cg r3.Vector, drillingAngle float64, leftHanded bool) (float64, error) {
	b, err := bearing("pin to CG line", pin, cg)
	if err != nil {
		return 0, err
	}
	return turn(b, -drillingAngle, leftHanded), nil
}

// PapCoords follows the drilling bearing for pinToPapDistance inches from the
// pin to place the bowler's PAP.
func PapCoords(pin, cg r3.Vector, pinToPapDistance, drillingAngle float64, leftHanded bool) (r3.Vector, error) {
	b, err := DrillingBearing(pin, cg, drillingAngle, leftHanded)
	if err != nil {
		return r3.Vector{}, err
	}
	return geod.Project(pin, pinToPapDistance, b), nil
}

// ValBearing is the direction of the VAL at the PAP: the PAP-to-pin line
// rotated clockwise by the VAL angle.
func ValBearing(pin, pap r3.Vector, valAngle float64, leftHanded bool) (float64, error) {
	b, err := bearing("PAP to pin line", pap, pin)
	if err != nil {
		return 0, err
	}
	return turn(b, valAngle, leftHanded), nil
}

// ValCoords returns a point one inch from the PAP along the VAL. Only its
// direction from the PAP matters; together with the PAP it defines the VAL.
func ValCoords(pin, pap r3.Vector, valAngle float64, leftHanded bool) (r3.Vector, error) {
	b, err := ValBearing(pin, pap, valAngle, leftHanded)
	if err != nil {
		return r3.Vector{}, err
	}
	return geod.Project(pap, 1, b), nil
}

// MidlineCoords finds where the midline crosses the VAL. papYDistance is the
// signed offset from the PAP, positive toward the VAL point. The separate VAL
// point is needed because this one may coincide with the PAP.
func MidlineCoords(pap, val r3.Vector, papYDistance float64) (r3.Vector, error) {
	b, err := bearing("VAL", pap, val)
	if err != nil {
		return r3.Vector{}, err
	}
	return geod.Project(pap, papYDistance, b), nil
}

// MidlineBearing is the direction of the midline, perpendicular to the VAL
// and pointing from the VAL toward the grip.
func MidlineBearing(pap, val r3.Vector, leftHanded bool) (float64, error) {
	b, err := bearing("VAL", pap, val)
	if err != nil {
		return 0, err
	}
	return turn(b, -90, leftHanded), nil
}

// GripCenterCoords follows the midline papXDistance inches from the VAL to
// the grip center, the point the holes are drilled around.
func GripCenterCoords(pap, val, midline r3.Vector, papXDistance float64, leftHanded bool) (r3.Vector, error) {
	b, err := MidlineBearing(pap, val, leftHanded)
	if err != nil {
		return r3.Vector{}, err
	}
	return geod.Project(midline, papXDistance, b), nil
}

// CenterLineWithThumbhole lays the center line across the grip center,
// perpendicular to the midline: the bridge center on one side, the thumb hole
// on the other. The line is as long as the longer span.
func CenterLineWithThumbhole(gripCenter, midline r3.Vector, bowler specs.BowlerSpecs) (CenterLine, error) {
	length := math.Max(bowler.LeftSpan, bowler.RightSpan)

	b, err := bearing("grip center to midline", gripCenter, midline)
	if err != nil {
		return CenterLine{}, err
	}
	bridgeBearing := turn(b, -90, bowler.LeftHanded)
	thumbBearing := turn(b, 90, bowler.LeftHanded)

	finger := math.Max(bowler.LeftFingerSize, bowler.RightFingerSize)
	return CenterLine{
		BridgeCenter: geod.Project(gripCenter, (length+finger)/2, bridgeBearing),
		ThumbEdge:    geod.Project(gripCenter, length/2, thumbBearing),
		ThumbCenter:  geod.Project(gripCenter, (bowler.ThumbSize+length)/2, thumbBearing),
	}, nil
}

// FingerAngle solves the spherical right triangle formed by the thumb center,
// the bridge center and a finger center (right angle at the bridge center)
// and returns the angle at the thumb, in degrees.
func FingerAngle(span, fingerSize, thumbSize, bridge float64) (float64, error) {
	a := trig.ArcAngle((bridge+fingerSize)/2, geod.BallRadius)
	c := trig.ArcAngle(span+thumbSize/2+fingerSize/2, geod.BallRadius)
	angle, err := trig.RightTriangleAngle(a, c)
	if err != nil {
		return 0, geometryError("finger triangle", err)
	}
	return trig.RadiansToDegrees(angle), nil
}

// FingerCoordsWithThumbhole places one finger hole span inches (cut to cut)
// from the thumb hole, beside the center line. The left finger sits
// counterclockwise of the thumb-to-bridge line, the right one clockwise.
func FingerCoordsWithThumbhole(bridgeCenter, thumbCenter r3.Vector, span, fingerSize, thumbSize, bridge float64, side Side) (r3.Vector, error) {
	angle, err := FingerAngle(span, fingerSize, thumbSize, bridge)
	if err != nil {
		return r3.Vector{}, fmt.Errorf("%s finger: %w", side, err)
	}
	b, err := bearing("thumb to bridge line", thumbCenter, bridgeCenter)
	if err != nil {
		return r3.Vector{}, err
	}
	if side == Left {
		b = geod.NormalizeBearing(b - angle)
	} else {
		b = geod.NormalizeBearing(b + angle)
	}
	return geod.Project(thumbCenter, span+thumbSize/2+fingerSize/2, b), nil
}

// FingerCoordsWithoutThumbhole places both finger holes on the midline,
// either side of the grip center, a bridge apart.
func FingerCoordsWithoutThumbhole(gripCenter, midline r3.Vector, bowler specs.BowlerSpecs) (FingerCoords, error) {
	b, err := bearing("grip center to midline", gripCenter, midline)
	if err != nil {
		return FingerCoords{}, err
	}
	leftBearing, rightBearing := geod.NormalizeBearing(b+180), b
	if bowler.LeftHanded {
		leftBearing, rightBearing = rightBearing, leftBearing
	}
	return FingerCoords{
		Left:  geod.Project(gripCenter, bowler.Bridge/2+bowler.LeftFingerSize/2, leftBearing),
		Right: geod.Project(gripCenter, bowler.Bridge/2+bowler.RightFingerSize/2, rightBearing),
	}, nil
}
