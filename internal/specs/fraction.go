package specs

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseFraction reads a length the way drillers write it on a spec card:
// "5", "4.75", "31/32", "4 3/4" or "-1/2".
func ParseFraction(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty length")
	}

	sign := 1.0
	if strings.HasPrefix(s, "-") {
		sign = -1
		s = strings.TrimSpace(s[1:])
	}

	parts := strings.Fields(s)
	var whole, frac float64
	var err error
	switch len(parts) {
	case 1:
		if strings.Contains(parts[0], "/") {
			frac, err = parseRatio(parts[0])
		} else {
			whole, err = parseUnsigned(parts[0])
		}
	case 2:
		if whole, err = parseUnsigned(parts[0]); err == nil {
			frac, err = parseRatio(parts[1])
		}
	default:
		err = fmt.Errorf("too many parts")
	}
	if err != nil {
		return 0, fmt.Errorf("length %q: %w", s, err)
	}
	return sign * (whole + frac), nil
}

func parseUnsigned(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q is not a finite number", s)
	}
	if v < 0 {
		return 0, fmt.Errorf("misplaced sign in %q", s)
	}
	return v, nil
}

func parseRatio(s string) (float64, error) {
	num, den, ok := strings.Cut(s, "/")
	if !ok {
		return 0, fmt.Errorf("%q is not a fraction", s)
	}
	n, err := parseUnsigned(num)
	if err != nil {
		return 0, err
	}
	d, err := parseUnsigned(den)
	if err != nil {
		return 0, err
	}
	if d == 0 {
		return 0, fmt.Errorf("zero denominator in %q", s)
	}
	return n / d, nil
}
