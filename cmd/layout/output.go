package main

import (
	"encoding/json"
	"fmt"

	"github.com/golang/geo/r3"
	"github.com/paulmach/orb/geojson"
	"github.com/tidwall/pretty"

	"layout-visualizer/internal/export"
	"layout-visualizer/internal/layout"
)

type pointReport struct {
	Name   string     `json:"name"`
	Label  string     `json:"label"`
	Coords [3]float64 `json:"coords"`
}

type profileReport struct {
	Name   string         `json:"name"`
	Error  string         `json:"error,omitempty"`
	Points []pointReport  `json:"points,omitempty"`
	Angles *layout.Angles `json:"angles,omitempty"`
}

func coords(v r3.Vector) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

func jsonOutput(results []layout.Result) ([]byte, error) {
	reports := make([]profileReport, 0, len(results))
	for _, r := range results {
		report := profileReport{Name: r.Profile.Name}
		if r.Err != nil {
			report.Error = r.Err.Error()
			reports = append(reports, report)
			continue
		}
		for _, p := range r.Markings.Points() {
			report.Points = append(report.Points, pointReport{p.Name, p.Label, coords(p.Coords)})
		}
		angles := r.Markings.Angles
		report.Angles = &angles
		reports = append(reports, report)
	}
	return json.Marshal(map[string]any{"profiles": reports})
}

// geoJSONOutput merges the features of every successful profile into one
// collection, tagging each feature with its profile name.
func geoJSONOutput(results []layout.Result) ([]byte, error) {
	merged := geojson.NewFeatureCollection()
	for _, r := range results {
		if r.Err != nil {
			continue
		}
		fc, err := export.FeatureCollection(r.Markings)
		if err != nil {
			return nil, fmt.Errorf("profile %s: %w", r.Profile.Name, err)
		}
		for _, f := range fc.Features {
			f.Properties["profile"] = r.Profile.Name
			merged.Append(f)
		}
	}
	return merged.MarshalJSON()
}

// render ends the output with a newline, indenting it if asked to.
func render(out []byte, indent bool) []byte {
	if indent {
		return pretty.Pretty(out)
	}
	return append(out, '\n')
}
