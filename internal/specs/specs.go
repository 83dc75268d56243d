// Package specs holds the inputs of a layout: what the bowler measured, what
// the ball looks like and which layout the driller chose. It is the boundary
// where defaults live; the layout engine never fills anything in itself.
package specs

// BowlerSpecs are the bowler's measurements. Lengths are in inches.
type BowlerSpecs struct {
	// PapXDistance is the lateral distance from the VAL to the grip center.
	PapXDistance float64 `json:"pap_x_distance"`
	// PapYDistance is the signed offset from the PAP to the midline along the
	// VAL, positive toward the pin.
	PapYDistance float64 `json:"pap_y_distance"`
	LeftSpan     float64 `json:"left_span"`
	RightSpan    float64 `json:"right_span"`
	// Bridge is the gap between the two finger holes.
	Bridge          float64 `json:"bridge"`
	LeftHanded      bool    `json:"left_handed"`
	ThumbHole       bool    `json:"thumb_hole"`
	LeftFingerSize  float64 `json:"left_finger_size"`
	RightFingerSize float64 `json:"right_finger_size"`
	ThumbSize       float64 `json:"thumb_size"`
}

// BallSpecs describe the ball before drilling.
type BallSpecs struct {
	// PinDistance is the surface distance from the pin to the CG.
	PinDistance float64 `json:"pin_distance"`
	// Asymmetric balls label the CG marker as mass bias. Geometry is unaffected.
	Asymmetric bool `json:"asymmetric"`
}

// LayoutParams are the dual-angle layout choices.
type LayoutParams struct {
	DrillingAngle    float64 `json:"drilling_angle"`
	PinToPapDistance float64 `json:"pin_to_pap_distance"`
	ValAngle         float64 `json:"val_angle"`
}

// Profile is one complete set of inputs.
type Profile struct {
	Name   string       `json:"name"`
	Ball   BallSpecs    `json:"ball"`
	Bowler BowlerSpecs  `json:"bowler"`
	Layout LayoutParams `json:"layout"`
}

// Defaults returns a right-handed 45x4x45 layout with a conventional grip.
func Defaults() Profile {
	return Profile{
		Name: "default",
		Ball: BallSpecs{
			PinDistance: 2.5,
		},
		Bowler: BowlerSpecs{
			PapXDistance:    5,
			PapYDistance:    -0.5,
			LeftSpan:        5,
			RightSpan:       4.75,
			Bridge:          1.0 / 4,
			ThumbHole:       true,
			LeftFingerSize:  31.0 / 32,
			RightFingerSize: 31.0 / 32,
			ThumbSize:       1 + 1.0/2,
		},
		Layout: LayoutParams{
			DrillingAngle:    45,
			PinToPapDistance: 4,
			ValAngle:         45,
		},
	}
}

// Flags holds command line overrides. Nil pointers leave the file value alone.
type Flags struct {
	LeftHanded       bool
	NoThumb          bool
	DrillingAngle    *float64
	PinToPapDistance *float64
	ValAngle         *float64
}

// Resolve applies flag overrides to p.
func (p *Profile) Resolve(flags Flags) {
	if flags.LeftHanded {
		p.Bowler.LeftHanded = true
	}
	if flags.NoThumb {
		p.Bowler.ThumbHole = false
	}
	if flags.DrillingAngle != nil {
		p.Layout.DrillingAngle = *flags.DrillingAngle
	}
	if flags.PinToPapDistance != nil {
		p.Layout.PinToPapDistance = *flags.PinToPapDistance
	}
	if flags.ValAngle != nil {
		p.Layout.ValAngle = *flags.ValAngle
	}
}
