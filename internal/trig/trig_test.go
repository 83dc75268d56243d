package trig

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestDegreesRadians(t *testing.T) {
	for _, d := range []float64{-720, -90, 0, 1, 45, 180, 359.99} {
		if got := RadiansToDegrees(DegreesToRadians(d)); !scalar.EqualWithinAbs(got, d, 1e-9) {
			t.Errorf("round trip of %v gave %v", d, got)
		}
	}
	if got := DegreesToRadians(180); !scalar.EqualWithinAbs(got, math.Pi, 1e-15) {
		t.Errorf("DegreesToRadians(180) = %v", got)
	}
}

func TestArcAngle(t *testing.T) {
	const r = 4.25
	tests := []struct {
		arc, want float64
	}{
		{0, 0},
		{r, 1},
		{math.Pi * r, math.Pi},
		{2 * math.Pi * r, 2 * math.Pi},
	}
	for _, tt := range tests {
		if got := ArcAngle(tt.arc, r); !scalar.EqualWithinAbs(got, tt.want, 1e-12) {
			t.Errorf("ArcAngle(%v) = %v, expected %v", tt.arc, got, tt.want)
		}
	}
}

func TestTriangleAngles(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c float64
		want    [3]float64
	}{
		{"equilateral", 1, 1, 1, [3]float64{60, 60, 60}},
		{"3-4-5", 3, 4, 5, [3]float64{RadiansToDegrees(math.Asin(0.6)), RadiansToDegrees(math.Asin(0.8)), 90}},
		{"isosceles", 2, 2, 3, [3]float64{RadiansToDegrees(math.Acos(0.75)), RadiansToDegrees(math.Acos(0.75)), 180 - 2*RadiansToDegrees(math.Acos(0.75))}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TriangleAngles(tt.a, tt.b, tt.c)
			if err != nil {
				t.Fatal(err)
			}
			for i := range got {
				if !scalar.EqualWithinAbs(got[i], tt.want[i], 1e-9) {
					t.Errorf("angle %d = %v, expected %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestTriangleAnglesSum(t *testing.T) {
	for a := 0.5; a < 6; a += 0.75 {
		for b := 0.5; b < 6; b += 0.75 {
			for c := 0.5; c < 6; c += 0.75 {
				angles, err := TriangleAngles(a, b, c)
				if a >= b+c || b >= a+c || c >= a+b {
					if err == nil {
						t.Errorf("TriangleAngles(%v, %v, %v) accepted an invalid triangle", a, b, c)
					}
					continue
				}
				if err != nil {
					t.Fatalf("TriangleAngles(%v, %v, %v): %v", a, b, c, err)
				}
				if sum := angles[0] + angles[1] + angles[2]; !scalar.EqualWithinAbs(sum, 180, 1e-6) {
					t.Errorf("angles of (%v, %v, %v) sum to %v", a, b, c, sum)
				}
			}
		}
	}
}

func TestTriangleAnglesInvalid(t *testing.T) {
	for _, sides := range [][3]float64{{10, 1, 1}, {1, 10, 1}, {1, 1, 2}, {0, 1, 1}, {-1, 2, 2}} {
		_, err := TriangleAngles(sides[0], sides[1], sides[2])
		if !errors.Is(err, ErrInvalidTriangle) {
			t.Errorf("TriangleAngles%v: expected ErrInvalidTriangle, got %v", sides, err)
		}
	}
}

func TestMedianLength(t *testing.T) {
	got, err := MedianLength(1, 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	if !scalar.EqualWithinAbs(got, math.Sqrt(3)/2, 1e-12) {
		t.Errorf("MedianLength(1, 1, 1) = %v, expected %v", got, math.Sqrt(3)/2)
	}

	// Median to the hypotenuse of a right triangle is half the hypotenuse.
	got, err = MedianLength(5, 3, 4)
	if err != nil {
		t.Fatal(err)
	}
	if !scalar.EqualWithinAbs(got, 2.5, 1e-12) {
		t.Errorf("MedianLength(5, 3, 4) = %v, expected 2.5", got)
	}

	if _, err := MedianLength(10, 1, 1); !errors.Is(err, ErrInvalidTriangle) {
		t.Errorf("expected ErrInvalidTriangle, got %v", err)
	}
}

func TestRightTriangleAngle(t *testing.T) {
	// With a = c the angle opposite a is a right angle.
	got, err := RightTriangleAngle(0.4, 0.4)
	if err != nil {
		t.Fatal(err)
	}
	if !scalar.EqualWithinAbs(got, math.Pi/2, 1e-6) {
		t.Errorf("RightTriangleAngle(0.4, 0.4) = %v, expected pi/2", got)
	}

	got, err = RightTriangleAngle(0.1, 1.2)
	if err != nil {
		t.Fatal(err)
	}
	if want := math.Asin(math.Sin(0.1) / math.Sin(1.2)); got != want {
		t.Errorf("RightTriangleAngle(0.1, 1.2) = %v, expected %v", got, want)
	}

	for _, tt := range [][2]float64{{1.2, 0.1}, {0.1, 0}, {0.1, math.Pi}} {
		if _, err := RightTriangleAngle(tt[0], tt[1]); !errors.Is(err, ErrInvalidTriangle) {
			t.Errorf("RightTriangleAngle%v: expected ErrInvalidTriangle, got %v", tt, err)
		}
	}
}
