package gen

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/kumar-ish/draw-lr/track"
)

func testRng() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

func TestRidersSpaced(t *testing.T) {
	min := track.Coordinates{X: 0, Y: -4}
	max := track.Coordinates{X: 8, Y: 4}

	riders, err := Riders(testRng(), 5, Spaced(min, max), nil, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(riders) != 5 {
		t.Fatalf("expected 5 riders, got %d", len(riders))
	}

	first := riders[0].StartPosition
	last := riders[4].StartPosition
	if first != min {
		t.Fatalf("first rider at %+v, want %+v", first, min)
	}
	if last != max {
		t.Fatalf("last rider at %+v, want %+v", last, max)
	}

	for i := 1; i < len(riders); i++ {
		prev := riders[i-1].StartPosition
		cur := riders[i].StartPosition
		if cur.X <= prev.X || cur.Y <= prev.Y {
			t.Fatalf("positions not monotonic at %d: %+v -> %+v", i, prev, cur)
		}
		// Evenly spaced means constant steps of (max-min)/(n-1).
		if diff := cur.X - prev.X; diff < 1.999 || diff > 2.001 {
			t.Fatalf("uneven x step at %d: %v", i, diff)
		}
	}
}

func TestRidersSpacedSingle(t *testing.T) {
	min := track.Coordinates{X: 3, Y: 7}
	max := track.Coordinates{X: 9, Y: 9}

	riders, err := Riders(testRng(), 1, Spaced(min, max), nil, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(riders) != 1 || riders[0].StartPosition != min {
		t.Fatalf("single spaced rider should land at min, got %+v", riders)
	}
}

func TestRidersBadRange(t *testing.T) {
	cases := []struct {
		name     string
		mode     CoordMode
		wantAxis string
	}{
		{
			"spaced_x",
			Spaced(track.Coordinates{X: 10}, track.Coordinates{X: -10}),
			"x",
		},
		{
			"spaced_y",
			Spaced(track.Coordinates{Y: 5}, track.Coordinates{X: 1, Y: -5}),
			"y",
		},
		{
			"rand_range_x",
			RandIn(track.Coordinates{X: 1}, track.Coordinates{X: 0}),
			"x",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			riders, err := Riders(testRng(), 3, c.mode, nil, 0)
			if err == nil {
				t.Fatalf("expected range error, got %d riders", len(riders))
			}
			var rangeErr *RangeError
			if !errors.As(err, &rangeErr) {
				t.Fatalf("expected *RangeError, got %T: %v", err, err)
			}
			if rangeErr.Axis != c.wantAxis {
				t.Fatalf("expected axis %q, got %q", c.wantAxis, rangeErr.Axis)
			}
			if riders != nil {
				t.Fatalf("expected no riders on error, got %d", len(riders))
			}
		})
	}
}

func TestRidersCountAndDefaults(t *testing.T) {
	t.Run("zero", func(t *testing.T) {
		riders, err := Riders(testRng(), 0, Rand(), Rand(), 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(riders) != 0 {
			t.Fatalf("expected no riders, got %d", len(riders))
		}
	})

	t.Run("nil_modes_are_origin", func(t *testing.T) {
		riders, err := Riders(testRng(), 2, nil, nil, 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for i, r := range riders {
			if r.StartPosition != (track.Coordinates{}) || r.StartVelocity != (track.Coordinates{}) {
				t.Fatalf("rider %d not at origin: %+v", i, r)
			}
			if r.Remountable != 3 {
				t.Fatalf("rider %d remountable %d, want 3", i, r.Remountable)
			}
		}
	})

	t.Run("fixed_passthrough", func(t *testing.T) {
		at := track.Coordinates{X: -3, Y: 12}
		riders, err := Riders(testRng(), 3, Fixed(at), nil, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for i, r := range riders {
			if r.StartPosition != at {
				t.Fatalf("rider %d at %+v, want %+v", i, r.StartPosition, at)
			}
		}
	})
}

func TestRidersRandWithinBox(t *testing.T) {
	min := track.Coordinates{X: -2, Y: 0}
	max := track.Coordinates{X: 2, Y: 1}

	riders, err := Riders(testRng(), 50, RandIn(min, max), Rand(), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, r := range riders {
		p := r.StartPosition
		if p.X < min.X || p.X > max.X || p.Y < min.Y || p.Y > max.Y {
			t.Fatalf("rider %d position %+v outside box", i, p)
		}
		v := r.StartVelocity
		if v.X < defaultBoxMin || v.X > defaultBoxMax || v.Y < defaultBoxMin || v.Y > defaultBoxMax {
			t.Fatalf("rider %d velocity %+v outside default box", i, v)
		}
	}
}

func TestRidersDeterministicWithSeed(t *testing.T) {
	a, err := Riders(rand.New(rand.NewSource(7)), 10, Rand(), Rand(), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := Riders(rand.New(rand.NewSource(7)), 10, Rand(), Rand(), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("rider %d differs across identically seeded runs: %+v vs %+v", i, a[i], b[i])
		}
	}
}
