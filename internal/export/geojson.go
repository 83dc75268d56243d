package export

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"layout-visualizer/internal/geod"
	"layout-visualizer/internal/layout"
)

const (
	arcSmoothness = 256
	holeSegments  = 48
	angleRadius   = 0.5
	angleStep     = 5
)

type line struct {
	name       string
	start, end r3.Vector
}

type angleMark struct {
	name, label      string
	center, from, to r3.Vector
	clockwise        bool
}

type hole struct {
	name     string
	center   r3.Vector
	diameter float64
}

func toLineString(points []r3.Vector) orb.LineString {
	ls := make(orb.LineString, 0, len(points))
	for _, p := range points {
		ls = append(ls, geod.ToOrb(p))
	}
	return ls
}

// FeatureCollection renders the markings as GeoJSON with simplestyle
// properties: a Point per marking, LineStrings for the construction lines
// and angle marks, and a Polygon per hole.
func FeatureCollection(m layout.Markings) (*geojson.FeatureCollection, error) {
	fc := geojson.NewFeatureCollection()

	for _, np := range m.Points() {
		f := geojson.NewFeature(geod.ToOrb(np.Coords))
		f.Properties["name"] = np.Name
		f.Properties["label"] = np.Label
		f.Properties["label_anchor"] = geod.ToOrb(LabelAnchor(np.Coords))
		f.Properties["marker-color"] = markerColor(np.Name).Hex()
		f.Properties["marker-size"] = "small"
		f.Properties["marker-symbol"] = "circle"
		fc.Append(f)
	}

	lines := []line{
		{"baseline", m.Pin, m.CG},
		{"pap_line", m.Pin, m.PAP},
		{"val_line", m.PAP, m.VAL},
		{"midline", m.Midline, m.GripCenter},
	}
	if m.ThumbHole {
		lines = append(lines, line{"center_line", m.BridgeCenter, m.ThumbEdge})
	}
	for _, l := range lines {
		f, err := lineFeature(l.name, l.start, l.end)
		if err != nil {
			return nil, fmt.Errorf("export: %s: %w", l.name, err)
		}
		fc.Append(f)
	}

	// Drilling angle is swept from the CG toward the PAP, the VAL angle from
	// the pin toward the VAL; both turn the other way for left-handers.
	angles := []angleMark{
		{"drilling_angle", "Drilling angle", m.Pin, m.CG, m.PAP, m.LeftHanded},
		{"val_angle", "VAL angle", m.PAP, m.Pin, m.VAL, !m.LeftHanded},
	}
	for _, a := range angles {
		points, sweep, err := AngleArc(a.center, a.from, a.to, angleRadius, angleStep, a.clockwise)
		if err != nil {
			return nil, fmt.Errorf("export: %s: %w", a.name, err)
		}
		f := geojson.NewFeature(toLineString(points))
		f.Properties["name"] = a.name
		f.Properties["label"] = fmt.Sprintf("%s: %g°", a.label, math.Round(sweep*100)/100)
		f.Properties["angle_deg"] = sweep
		f.Properties["stroke"] = angleColor.Hex()
		fc.Append(f)
	}

	holes := []hole{
		{"left_finger_hole", m.LeftFinger, m.LeftFingerSize},
		{"right_finger_hole", m.RightFinger, m.RightFingerSize},
	}
	if m.ThumbHole {
		holes = append(holes, hole{"thumb_hole", m.ThumbCenter, m.ThumbSize})
	}
	for _, h := range holes {
		if h.diameter <= 0 {
			continue
		}
		rim := toLineString(HoleOutline(h.center, h.diameter, holeSegments))
		f := geojson.NewFeature(orb.Polygon{orb.Ring(rim)})
		f.Properties["name"] = h.name
		f.Properties["diameter_in"] = h.diameter
		f.Properties["stroke"] = markerColor("hole").Hex()
		f.Properties["fill"] = fillColor(markerColor("hole")).Hex()
		fc.Append(f)
	}

	bound := fc.Features[0].Geometry.Bound()
	for _, f := range fc.Features[1:] {
		bound = bound.Union(f.Geometry.Bound())
	}
	fc.BBox = geojson.NewBBox(bound)

	return fc, nil
}

func lineFeature(name string, start, end r3.Vector) (*geojson.Feature, error) {
	points, err := Arc(start, end, false, arcSmoothness)
	if err != nil {
		return nil, err
	}
	b, err := geod.Bearing(start, end)
	if err != nil {
		return nil, err
	}
	f := geojson.NewFeature(toLineString(points))
	f.Properties["name"] = name
	f.Properties["length_in"] = geod.Distance(start, end)
	f.Properties["bearing_deg"] = b
	f.Properties["stroke"] = lineColor(name).Hex()
	return f, nil
}
