// Package gen holds the procedural generators that populate a track:
// rider placement, regular polygons, and sampled function curves.
package gen

import (
	"math/rand"
	"time"

	"github.com/kumar-ish/draw-lr/common"
	"github.com/kumar-ish/draw-lr/track"
)

// Default box riders are scattered in when no range is given.
const (
	defaultBoxMin = -10.0
	defaultBoxMax = 10.0
)

// CoordMode produces one coordinate for the rider at index i of n. Modes
// that use randomness draw from rng.
type CoordMode func(i, n int, rng *rand.Rand) (track.Coordinates, error)

// Rand places each coordinate uniformly at random in the default
// [-10,10]x[-10,10] box.
func Rand() CoordMode {
	return RandIn(
		track.Coordinates{X: defaultBoxMin, Y: defaultBoxMin},
		track.Coordinates{X: defaultBoxMax, Y: defaultBoxMax},
	)
}

// RandIn places each coordinate uniformly at random in the box spanned by
// min and max.
func RandIn(min, max track.Coordinates) CoordMode {
	return func(_, _ int, rng *rand.Rand) (track.Coordinates, error) {
		if err := checkRange(min, max); err != nil {
			return track.Coordinates{}, err
		}
		return track.Coordinates{
			X: common.Lerp(min.X, max.X, rng.Float64()),
			Y: common.Lerp(min.Y, max.Y, rng.Float64()),
		}, nil
	}
}

// Fixed places every coordinate at c.
func Fixed(c track.Coordinates) CoordMode {
	return func(_, _ int, _ *rand.Rand) (track.Coordinates, error) {
		return c, nil
	}
}

// Spaced places the i-th of n coordinates evenly between min and max,
// component-wise, with index 0 at min and index n-1 at max. A single
// coordinate (n == 1) lands at min.
func Spaced(min, max track.Coordinates) CoordMode {
	return func(i, n int, _ *rand.Rand) (track.Coordinates, error) {
		if err := checkRange(min, max); err != nil {
			return track.Coordinates{}, err
		}
		if n <= 1 {
			return min, nil
		}
		t := float64(i) / float64(n-1)
		return track.Coordinates{
			X: common.Lerp(min.X, max.X, t),
			Y: common.Lerp(min.Y, max.Y, t),
		}, nil
	}
}

func checkRange(min, max track.Coordinates) error {
	if max.X < min.X {
		return &RangeError{Axis: "x", Min: min.X, Max: max.X}
	}
	if max.Y < min.Y {
		return &RangeError{Axis: "y", Min: min.Y, Max: max.Y}
	}
	return nil
}

// Riders produces n riders in generation order, placing start positions with
// pos and start velocities with vel. A nil mode means the origin; a nil rng
// means a time-seeded source. On a mode error no riders are returned.
func Riders(rng *rand.Rand, n int, pos, vel CoordMode, remountable int) ([]track.Rider, error) {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if pos == nil {
		pos = Fixed(track.Coordinates{})
	}
	if vel == nil {
		vel = Fixed(track.Coordinates{})
	}

	riders := make([]track.Rider, 0, max(n, 0))
	for i := 0; i < n; i++ {
		p, err := pos(i, n, rng)
		if err != nil {
			return nil, err
		}
		v, err := vel(i, n, rng)
		if err != nil {
			return nil, err
		}
		riders = append(riders, track.Rider{
			StartPosition: p,
			StartVelocity: v,
			Remountable:   remountable,
		})
	}
	return riders, nil
}
