package gen

import (
	"math"

	"github.com/kumar-ish/draw-lr/track"
)

// Polygon returns the sides segments of a regular polygon inscribed in a
// circle of radius around center, walked counter-clockwise as a closed loop.
// The first vertex sits half a vertex angle past 0 plus rotation (radians),
// so with no rotation a flat edge faces up instead of a vertex. More sides
// approximate a circle. Segments keep flipped and both extensions set, and
// their ids unset until added to a track.
func Polygon(sides int, radius float64, center track.Coordinates, rotation float64, kind track.LineKind) ([]track.Line, error) {
	if sides < 1 {
		return nil, &ArgError{Arg: "sides", Reason: "polygon needs at least one side"}
	}

	vertexAngle := 2 * math.Pi / float64(sides)
	initialAngle := vertexAngle/2 + rotation

	vertex := func(i int) track.Coordinates {
		angle := initialAngle + float64(i)*vertexAngle
		return track.Coordinates{
			X: center.X + radius*math.Cos(angle),
			Y: center.Y + radius*math.Sin(angle),
		}
	}

	lines := make([]track.Line, 0, sides)
	first := vertex(0)
	for i := 1; i <= sides; i++ {
		second := vertex(i)
		lines = append(lines, track.Line{
			Kind:          kind,
			X1:            first.X,
			Y1:            first.Y,
			X2:            second.X,
			Y2:            second.Y,
			Flipped:       true,
			LeftExtended:  true,
			RightExtended: true,
		})
		first = second
	}
	return lines, nil
}

// ThickPolygon returns thickness concentric polygons with radii radius,
// radius+1, ..., radius+thickness-1, concatenated in increasing-radius
// order. thickness 0 yields no lines.
func ThickPolygon(sides int, radius float64, center track.Coordinates, rotation float64, thickness int, kind track.LineKind) ([]track.Line, error) {
	if sides < 1 {
		return nil, &ArgError{Arg: "sides", Reason: "polygon needs at least one side"}
	}
	if thickness < 0 {
		return nil, &ArgError{Arg: "thickness", Reason: "must not be negative"}
	}

	lines := make([]track.Line, 0, sides*thickness)
	for i := 0; i < thickness; i++ {
		ring, err := Polygon(sides, radius+float64(i), center, rotation, kind)
		if err != nil {
			return nil, err
		}
		lines = append(lines, ring...)
	}
	return lines, nil
}
