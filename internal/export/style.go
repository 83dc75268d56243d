package export

import (
	"github.com/lucasb-eyer/go-colorful"
)

var (
	white = colorful.Color{R: 1, G: 1, B: 1}

	// Marker colors, keyed by marking name.
	markerColors = map[string]colorful.Color{
		"pin":  mustHex("#ff0000"),
		"cg":   mustHex("#008000"),
		"pap":  mustHex("#000080"),
		"val":  mustHex("#483d8b"),
		"hole": mustHex("#000000"),
	}
	defaultMarker = mustHex("#a9a9a9")

	// Line colors, keyed by line name.
	lineColors = map[string]colorful.Color{
		"baseline":    mustHex("#ffa500"),
		"pap_line":    mustHex("#483d8b"),
		"val_line":    mustHex("#483d8b"),
		"midline":     mustHex("#2f4f4f"),
		"center_line": mustHex("#000000"),
	}
	angleColor = mustHex("#191970")
)

// mustHex parses a palette constant.
func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

func markerColor(name string) colorful.Color {
	if c, ok := markerColors[name]; ok {
		return c
	}
	return defaultMarker
}

func lineColor(name string) colorful.Color {
	if c, ok := lineColors[name]; ok {
		return c
	}
	return defaultMarker
}

// fillColor lightens an outline color for the inside of a hole.
func fillColor(c colorful.Color) colorful.Color {
	return c.BlendLab(white, 0.6).Clamped()
}
