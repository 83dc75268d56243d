package geod

import (
	"errors"
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/paulmach/orb"
	"gonum.org/v1/gonum/floats/scalar"
)

const tol = 1e-6

// bearingDiff is the absolute difference between two bearings, accounting for
// wrap-around at 0/360.
func bearingDiff(a, b float64) float64 {
	d := math.Abs(NormalizeBearing(a) - NormalizeBearing(b))
	return math.Min(d, 360-d)
}

func startPoints() []r3.Vector {
	var points []r3.Vector
	for _, lat := range []float64{-60, -30, 0, 30, 60} {
		for _, lon := range []float64{-150, -45, 0, 45, 150} {
			points = append(points, FromOrb(orb.Point{lon, lat}))
		}
	}
	return points
}

func TestProjectRoundTrip(t *testing.T) {
	bearings := []float64{0, 30, 90, 135, 180, 225, 300, 359.5, -45, 725}
	distances := []float64{0.1, 1, 2.5, 3.5, 6, 13}

	for _, p := range startPoints() {
		for _, b := range bearings {
			for _, d := range distances {
				q := Project(p, d, b)

				if !scalar.EqualWithinAbs(q.Norm(), BallRadius, tol) {
					t.Fatalf("Project(%v, %v, %v) left the sphere: |q| = %v", p, d, b, q.Norm())
				}
				got, err := Bearing(p, q)
				if err != nil {
					t.Fatalf("Bearing(%v, %v): %v", p, q, err)
				}
				if bearingDiff(got, b) > tol {
					t.Errorf("Bearing after Project(%v, %v, %v) = %v, expected %v", p, d, b, got, NormalizeBearing(b))
				}
				if dist := Distance(p, q); !scalar.EqualWithinAbs(dist, d, tol) {
					t.Errorf("Distance after Project(%v, %v, %v) = %v", p, d, b, dist)
				}
			}
		}
	}
}

func TestProjectZeroDistance(t *testing.T) {
	p := FromOrb(orb.Point{12, -34})
	if got := Project(p, 0, 123); got != p {
		t.Errorf("Project with zero distance moved the point: %v -> %v", p, got)
	}
}

func TestProjectNegativeDistance(t *testing.T) {
	forward := Project(PinCoords, -1.5, 90)
	backward := Project(PinCoords, 1.5, 270)
	if !approxVector(forward, backward, 1e-12) {
		t.Errorf("negative distance: %v, expected %v", forward, backward)
	}
}

func TestProjectFromPole(t *testing.T) {
	pole := r3.Vector{Y: BallRadius}
	for _, b := range []float64{0, 90, 180, 270} {
		q := Project(pole, 2, b)
		if !scalar.EqualWithinAbs(Distance(pole, q), 2, tol) {
			t.Errorf("Distance from pole at bearing %v = %v", b, Distance(pole, q))
		}
		if !scalar.EqualWithinAbs(q.Norm(), BallRadius, tol) {
			t.Errorf("|q| = %v", q.Norm())
		}
	}
}

func TestPinToCG(t *testing.T) {
	cg := Project(PinCoords, 2.5, 180)

	if d := Distance(PinCoords, cg); !scalar.EqualWithinAbs(d, 2.5, tol) {
		t.Errorf("Incorrect distance. Got %v, expected 2.5", d)
	}
	b, err := Bearing(PinCoords, cg)
	if err != nil {
		t.Fatal(err)
	}
	if !scalar.EqualWithinAbs(b, 180, tol) {
		t.Errorf("Incorrect bearing. Got %v, expected 180", b)
	}

	// The CG lies below the pin on the meridian through it.
	delta := 2.5 / BallRadius
	expected := r3.Vector{X: 0, Y: -BallRadius * math.Sin(delta), Z: BallRadius * math.Cos(delta)}
	if !approxVector(cg, expected, 1e-9) {
		t.Errorf("Incorrect cg. Got %v, expected %v", cg, expected)
	}
}

func TestBearingCoincident(t *testing.T) {
	_, err := Bearing(PinCoords, PinCoords)
	if !errors.Is(err, ErrCoincidentPoints) {
		t.Errorf("expected ErrCoincidentPoints, got %v", err)
	}
}

func TestBearingCardinal(t *testing.T) {
	tests := []struct {
		dest r3.Vector
		want float64
	}{
		{r3.Vector{Y: BallRadius}, 0},
		{r3.Vector{X: BallRadius}, 90},
		{r3.Vector{Y: -BallRadius}, 180},
		{r3.Vector{X: -BallRadius}, 270},
	}
	for _, tt := range tests {
		got, err := Bearing(PinCoords, tt.dest)
		if err != nil {
			t.Fatal(err)
		}
		if bearingDiff(got, tt.want) > 1e-9 {
			t.Errorf("Bearing(pin, %v) = %v, expected %v", tt.dest, got, tt.want)
		}
	}
}

func TestDistanceAntipodal(t *testing.T) {
	back := r3.Vector{Z: -BallRadius}
	if d := Distance(PinCoords, back); !scalar.EqualWithinAbs(d, math.Pi*BallRadius, 1e-9) {
		t.Errorf("Distance to the antipode = %v, expected %v", d, math.Pi*BallRadius)
	}
}

func TestNormalizeBearing(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{359.5, 359.5},
		{360, 0},
		{361, 1},
		{-1, 359},
		{-360, 0},
		{-721.25, 358.75},
		{1e6, math.Mod(1e6, 360)},
		{-1e-20, 0},
	}
	for _, tt := range tests {
		got := NormalizeBearing(tt.in)
		if !scalar.EqualWithinAbs(got, tt.want, 1e-9) {
			t.Errorf("NormalizeBearing(%v) = %v, expected %v", tt.in, got, tt.want)
		}
		if got < 0 || got >= 360 {
			t.Errorf("NormalizeBearing(%v) = %v is out of range", tt.in, got)
		}
		if again := NormalizeBearing(got); again != got {
			t.Errorf("NormalizeBearing is not idempotent for %v: %v then %v", tt.in, got, again)
		}
	}
}
