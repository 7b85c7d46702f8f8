package gen

import "github.com/kumar-ish/draw-lr/track"

// DefaultIterations is the sample density used when Function gets a
// non-positive iteration count.
const DefaultIterations = 10

// DefaultFunctionKind is the line kind curves are drawn with unless a
// caller picks another.
const DefaultFunctionKind = track.KindAcceleration

// Function approximates the curve y = f(x) over the half-open integer range
// [start, end) with a polyline. Each integer unit is sampled at fractional
// offsets j/iterations for j in 1..iterations-1, giving
// (end-start)*(iterations-1) connected segments. iterations <= 0 falls back
// to DefaultIterations; iterations == 1 (no interior offsets) and an empty
// range both yield no lines. Unlike polygon segments, curve segments keep
// all geometry flags off.
func Function(f func(float64) float64, start, end int, iterations int, kind track.LineKind) []track.Line {
	if iterations <= 0 {
		iterations = DefaultIterations
	}

	lastX := float64(start)
	lastY := f(lastX)

	var lines []track.Line
	for i := start; i < end; i++ {
		for j := 1; j < iterations; j++ {
			x := float64(i) + float64(j)/float64(iterations)
			y := f(x)
			lines = append(lines, track.Line{
				Kind: kind,
				X1:   lastX,
				Y1:   lastY,
				X2:   x,
				Y2:   y,
			})
			lastX = x
			lastY = y
		}
	}
	return lines
}
