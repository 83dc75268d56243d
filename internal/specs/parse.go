package specs

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/tidwall/gjson"
)

// field binds a JSON path inside a profile object to the value it sets.
type field struct {
	path   string
	length *float64
	flag   *bool
}

func (p *Profile) fields() []field {
	return []field{
		{path: "ball.pin_distance", length: &p.Ball.PinDistance},
		{path: "ball.asymmetric", flag: &p.Ball.Asymmetric},

		{path: "bowler.pap_x_distance", length: &p.Bowler.PapXDistance},
		{path: "bowler.pap_y_distance", length: &p.Bowler.PapYDistance},
		{path: "bowler.left_span", length: &p.Bowler.LeftSpan},
		{path: "bowler.right_span", length: &p.Bowler.RightSpan},
		{path: "bowler.bridge", length: &p.Bowler.Bridge},
		{path: "bowler.left_handed", flag: &p.Bowler.LeftHanded},
		{path: "bowler.thumb_hole", flag: &p.Bowler.ThumbHole},
		{path: "bowler.left_finger_size", length: &p.Bowler.LeftFingerSize},
		{path: "bowler.right_finger_size", length: &p.Bowler.RightFingerSize},
		{path: "bowler.thumb_size", length: &p.Bowler.ThumbSize},

		{path: "layout.drilling_angle", length: &p.Layout.DrillingAngle},
		{path: "layout.pin_to_pap_distance", length: &p.Layout.PinToPapDistance},
		{path: "layout.val_angle", length: &p.Layout.ValAngle},
	}
}

// Load reads a spec file. See Parse for the format.
func Load(path string) ([]Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("specs: read %s: %w", path, err)
	}
	profiles, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return profiles, nil
}

// Parse reads either a single profile object or {"profiles": [...]}.
// Fields missing from a profile keep their Defaults value. Lengths may be
// numbers or fraction strings such as "4 3/4".
func Parse(data []byte) ([]Profile, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("specs: invalid JSON")
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, fmt.Errorf("specs: expected an object, got %s", root.Type)
	}

	list := root.Get("profiles")
	if !list.Exists() {
		p, err := parseProfile(root, 0)
		if err != nil {
			return nil, err
		}
		return []Profile{p}, nil
	}
	if !list.IsArray() {
		return nil, fmt.Errorf("specs: profiles: expected an array, got %s", list.Type)
	}

	items := list.Array()
	if len(items) == 0 {
		return nil, errors.New("specs: profiles: empty list")
	}
	profiles := make([]Profile, 0, len(items))
	for i, item := range items {
		p, err := parseProfile(item, i)
		if err != nil {
			return nil, fmt.Errorf("profiles.%d: %w", i, err)
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}

func parseProfile(r gjson.Result, index int) (Profile, error) {
	if !r.IsObject() {
		return Profile{}, fmt.Errorf("specs: expected a profile object, got %s", r.Type)
	}

	p := Defaults()
	p.Name = fmt.Sprintf("profile-%d", index+1)
	if name := r.Get("name"); name.Exists() {
		if name.Type != gjson.String {
			return Profile{}, fmt.Errorf("specs: name: expected a string, got %s", name.Type)
		}
		p.Name = name.String()
	}

	for _, f := range p.fields() {
		v := r.Get(f.path)
		if !v.Exists() || v.Type == gjson.Null {
			continue
		}
		switch {
		case f.length != nil:
			n, err := parseLength(v)
			if err != nil {
				return Profile{}, fmt.Errorf("specs: %s: %w", f.path, err)
			}
			*f.length = n
		case f.flag != nil:
			if !v.IsBool() {
				return Profile{}, fmt.Errorf("specs: %s: expected a boolean, got %s", f.path, v.Type)
			}
			*f.flag = v.Bool()
		}
	}
	return p, nil
}

func parseLength(v gjson.Result) (float64, error) {
	switch v.Type {
	case gjson.Number:
		n := v.Float()
		if math.IsInf(n, 0) {
			return 0, fmt.Errorf("%s is out of range", v.Raw)
		}
		return n, nil
	case gjson.String:
		return ParseFraction(v.String())
	}
	return 0, fmt.Errorf("expected a number, got %s", v.Type)
}
