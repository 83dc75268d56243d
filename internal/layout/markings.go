package layout

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"

	"layout-visualizer/internal/geod"
	"layout-visualizer/internal/specs"
)

// Angles are the derived bearings and angles the markings are labelled with.
// Bearings are in degrees [0, 360); finger angles are the angles at the thumb
// hole between the center line and each finger, zero without a thumb hole.
type Angles struct {
	PinToCG     float64 `json:"pin_to_cg"`
	Drilling    float64 `json:"drilling"`
	VAL         float64 `json:"val"`
	Midline     float64 `json:"midline"`
	LeftFinger  float64 `json:"left_finger"`
	RightFinger float64 `json:"right_finger"`
}

// Markings is a complete layout. Without a thumb hole the bridge center is
// the grip center and the thumb points are zero.
type Markings struct {
	Pin          r3.Vector
	CG           r3.Vector
	PAP          r3.Vector
	VAL          r3.Vector
	Midline      r3.Vector
	GripCenter   r3.Vector
	BridgeCenter r3.Vector
	ThumbEdge    r3.Vector
	ThumbCenter  r3.Vector
	LeftFinger   r3.Vector
	RightFinger  r3.Vector

	LeftHanded bool
	ThumbHole  bool
	CGLabel    string
	Angles     Angles

	LeftFingerSize  float64
	RightFingerSize float64
	ThumbSize       float64
}

// NamedPoint is a marking as handed to whatever draws it.
type NamedPoint struct {
	Name   string
	Label  string
	Coords r3.Vector
}

// CGLabel is what the CG marker says: asymmetric balls call it mass bias.
func CGLabel(ball specs.BallSpecs) string {
	if ball.Asymmetric {
		return "MB"
	}
	return "CG"
}

// Points lists the markings in derivation order. Thumb points are left out
// when there is no thumb hole.
func (m Markings) Points() []NamedPoint {
	points := []NamedPoint{
		{"pin", "PIN", m.Pin},
		{"cg", m.CGLabel, m.CG},
		{"pap", "PAP", m.PAP},
		{"val", "VAL", m.VAL},
		{"midline", "Midline", m.Midline},
		{"grip_center", "Grip center", m.GripCenter},
		{"bridge_center", "Bridge", m.BridgeCenter},
	}
	if m.ThumbHole {
		points = append(points,
			NamedPoint{"thumb_edge", "Thumb edge", m.ThumbEdge},
			NamedPoint{"thumb_center", "Thumb", m.ThumbCenter},
		)
	}
	return append(points,
		NamedPoint{"left_finger", "Left finger", m.LeftFinger},
		NamedPoint{"right_finger", "Right finger", m.RightFinger},
	)
}

// ComputeProfile is Compute for a whole profile.
func ComputeProfile(p specs.Profile) (Markings, error) {
	return Compute(p.Ball, p.Bowler, p.Layout)
}

// checkFinite rejects measurements that would turn every derived point into NaN.
func checkFinite(ball specs.BallSpecs, bowler specs.BowlerSpecs, params specs.LayoutParams) error {
	inputs := []struct {
		name  string
		value float64
	}{
		{"pin distance", ball.PinDistance},
		{"PAP x distance", bowler.PapXDistance},
		{"PAP y distance", bowler.PapYDistance},
		{"left span", bowler.LeftSpan},
		{"right span", bowler.RightSpan},
		{"bridge", bowler.Bridge},
		{"left finger size", bowler.LeftFingerSize},
		{"right finger size", bowler.RightFingerSize},
		{"thumb size", bowler.ThumbSize},
		{"drilling angle", params.DrillingAngle},
		{"pin to PAP distance", params.PinToPapDistance},
		{"VAL angle", params.ValAngle},
	}
	for _, in := range inputs {
		if math.IsNaN(in.value) || math.IsInf(in.value, 0) {
			return fmt.Errorf("%w: %s is %v", ErrInvalidLayoutGeometry, in.name, in.value)
		}
	}
	return nil
}

// Compute runs the whole dual-angle construction, from the pin to the finger
// holes. It holds no state; callers recompute on every spec change.
func Compute(ball specs.BallSpecs, bowler specs.BowlerSpecs, params specs.LayoutParams) (Markings, error) {
	if err := checkFinite(ball, bowler, params); err != nil {
		return Markings{}, err
	}
	m := Markings{
		Pin:             geod.PinCoords,
		LeftHanded:      bowler.LeftHanded,
		ThumbHole:       bowler.ThumbHole,
		CGLabel:         CGLabel(ball),
		LeftFingerSize:  bowler.LeftFingerSize,
		RightFingerSize: bowler.RightFingerSize,
		ThumbSize:       bowler.ThumbSize,
	}
	m.CG = CGCoords(m.Pin, ball.PinDistance)

	var err error
	if m.Angles.PinToCG, err = bearing("pin to CG line", m.Pin, m.CG); err != nil {
		return Markings{}, err
	}
	if m.Angles.Drilling, err = DrillingBearing(m.Pin, m.CG, params.DrillingAngle, bowler.LeftHanded); err != nil {
		return Markings{}, err
	}
	m.PAP = geod.Project(m.Pin, params.PinToPapDistance, m.Angles.Drilling)

	if m.Angles.VAL, err = ValBearing(m.Pin, m.PAP, params.ValAngle, bowler.LeftHanded); err != nil {
		return Markings{}, err
	}
	m.VAL = geod.Project(m.PAP, 1, m.Angles.VAL)

	if m.Midline, err = MidlineCoords(m.PAP, m.VAL, bowler.PapYDistance); err != nil {
		return Markings{}, err
	}
	if m.Angles.Midline, err = MidlineBearing(m.PAP, m.VAL, bowler.LeftHanded); err != nil {
		return Markings{}, err
	}
	m.GripCenter = geod.Project(m.Midline, bowler.PapXDistance, m.Angles.Midline)

	if !bowler.ThumbHole {
		fingers, err := FingerCoordsWithoutThumbhole(m.GripCenter, m.Midline, bowler)
		if err != nil {
			return Markings{}, err
		}
		m.BridgeCenter = m.GripCenter
		m.LeftFinger, m.RightFinger = fingers.Left, fingers.Right
		return m, nil
	}

	line, err := CenterLineWithThumbhole(m.GripCenter, m.Midline, bowler)
	if err != nil {
		return Markings{}, err
	}
	m.BridgeCenter, m.ThumbEdge, m.ThumbCenter = line.BridgeCenter, line.ThumbEdge, line.ThumbCenter

	if m.Angles.LeftFinger, err = FingerAngle(bowler.LeftSpan, bowler.LeftFingerSize, bowler.ThumbSize, bowler.Bridge); err != nil {
		return Markings{}, err
	}
	if m.Angles.RightFinger, err = FingerAngle(bowler.RightSpan, bowler.RightFingerSize, bowler.ThumbSize, bowler.Bridge); err != nil {
		return Markings{}, err
	}
	if m.LeftFinger, err = FingerCoordsWithThumbhole(m.BridgeCenter, m.ThumbCenter, bowler.LeftSpan, bowler.LeftFingerSize, bowler.ThumbSize, bowler.Bridge, Left); err != nil {
		return Markings{}, err
	}
	if m.RightFinger, err = FingerCoordsWithThumbhole(m.BridgeCenter, m.ThumbCenter, bowler.RightSpan, bowler.RightFingerSize, bowler.ThumbSize, bowler.Bridge, Right); err != nil {
		return Markings{}, err
	}
	return m, nil
}
