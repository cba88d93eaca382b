package space

import (
	"math"
	"testing"
)

func TestMapAxisKnownValues(t *testing.T) {
	tests := []struct {
		name                            string
		v, inMin, inMax, outMin, outMax float64
		want                            float64
	}{
		{"midpoint", 5, 0, 10, 0, 100, 50},
		{"lower bound", 0, 0, 10, 0, 100, 0},
		{"upper bound", 10, 0, 10, 0, 100, 100},
		{"extrapolate above", 20, 0, 10, 0, 100, 200},
		{"extrapolate below", -5, 0, 10, 0, 100, -50},
		{"offset ranges", 3, 1, 5, 10, 30, 20},
		{"inverted output", 2.5, 0, 10, 100, 0, 75},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := MapAxis(tc.v, tc.inMin, tc.inMax, tc.outMin, tc.outMax)
			if math.Abs(got-tc.want) > 1e-12 {
				t.Fatalf("MapAxis(%g, %g, %g, %g, %g) = %g, want %g",
					tc.v, tc.inMin, tc.inMax, tc.outMin, tc.outMax, got, tc.want)
			}
		})
	}
}

func TestMapAxisLinearAndMonotonic(t *testing.T) {
	const inMin, inMax, outMin, outMax = -15.0, 15.0, -800.0, 800.0
	prev := math.Inf(-1)
	for i := 0; i <= 100; i++ {
		v := inMin + float64(i)*(inMax-inMin)/100
		got := MapAxis(v, inMin, inMax, outMin, outMax)
		if got <= prev {
			t.Fatalf("not monotonic at v=%g: %g <= %g", v, got, prev)
		}
		prev = got
	}

	a, b := 2.0, 7.0
	mid := MapAxis((a+b)/2, inMin, inMax, outMin, outMax)
	avg := (MapAxis(a, inMin, inMax, outMin, outMax) + MapAxis(b, inMin, inMax, outMin, outMax)) / 2
	if math.Abs(mid-avg) > 1e-9 {
		t.Fatalf("not linear: map(mid)=%g, avg(map)=%g", mid, avg)
	}
}

func TestMapAxisEmptyIntervalPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for inMin == inMax")
		}
	}()
	MapAxis(1, 3, 3, 0, 1)
}

func TestRangeRoundTrip(t *testing.T) {
	r := Range{Audio: 15, World: 800}
	points := []Coordinate{
		{0, 0, 0},
		{15, -15, 7.5},
		{-3.25, 11.1, 0.001},
		{30, -30, 45}, // outside the cube
	}
	for _, p := range points {
		w := r.AudioToWorld(p)
		back := r.WorldToAudio(w)
		if p.Sub(back).Len() > 1e-9 {
			t.Fatalf("round trip %v -> %v -> %v", p, w, back)
		}
	}
}

func TestRangeAudioToWorldScales(t *testing.T) {
	r := Range{Audio: 15, World: 600}
	got := r.AudioToWorld(Coordinate{X: 15, Y: -7.5, Z: 3})
	want := Coordinate{X: 600, Y: -300, Z: 120}
	if got.Sub(want).Len() > 1e-9 {
		t.Fatalf("AudioToWorld = %v, want %v", got, want)
	}
}

func TestRangeValidate(t *testing.T) {
	tests := []struct {
		r  Range
		ok bool
	}{
		{Range{Audio: 15, World: 800}, true},
		{Range{Audio: 0, World: 800}, false},
		{Range{Audio: 15, World: -1}, false},
		{Range{Audio: math.NaN(), World: 800}, false},
		{Range{Audio: 15, World: math.Inf(1)}, false},
	}
	for _, tc := range tests {
		err := tc.r.Validate()
		if (err == nil) != tc.ok {
			t.Fatalf("Validate(%+v) err=%v, want ok=%v", tc.r, err, tc.ok)
		}
	}
}

func TestCrossAndNormalize(t *testing.T) {
	x := Coordinate{X: 1}
	y := Coordinate{Y: 1}
	if got := x.Cross(y); got != (Coordinate{Z: 1}) {
		t.Fatalf("x cross y = %v", got)
	}
	if got := (Coordinate{}).Normalize(); got != (Coordinate{}) {
		t.Fatalf("zero normalize = %v", got)
	}
	if l := (Coordinate{X: 3, Y: 4}).Normalize().Len(); math.Abs(l-1) > 1e-12 {
		t.Fatalf("normalized length = %g", l)
	}
}
