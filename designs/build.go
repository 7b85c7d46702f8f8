package designs

import (
	"fmt"
	"math/rand"

	"github.com/kumar-ish/draw-lr/gen"
	"github.com/kumar-ish/draw-lr/script"
	"github.com/kumar-ish/draw-lr/track"
)

// Build executes a design: it starts from a default track, applies the
// design's metadata overrides, and runs every generator section. rng feeds
// random rider placement; nil means a time-seeded source.
func Build(spec DesignSpec, rng *rand.Rand) (*track.Game, error) {
	g := track.New()

	if spec.Label != "" {
		g.Label = spec.Label
	}
	if spec.Creator != "" {
		g.Creator = spec.Creator
	}
	if spec.Description != "" {
		g.Description = spec.Description
	}
	if spec.Duration != 0 {
		g.Duration = spec.Duration
	}
	if spec.Version != "" {
		g.Version = track.Version(spec.Version)
	}
	if spec.Audio != "" {
		audio := spec.Audio
		g.Audio = &audio
	}
	g.StartPosition = spec.Start.coords()

	for i, c := range spec.Curves {
		lines, err := buildCurve(c)
		if err != nil {
			return nil, fmt.Errorf("designs: curve %d: %w", i, err)
		}
		g.AddLines(lines)
	}

	for i, p := range spec.Polygons {
		thickness := p.Thickness
		if thickness == 0 {
			thickness = 1
		}
		lines, err := gen.ThickPolygon(p.Sides, p.Radius, p.Center.coords(), p.Rotation, thickness, track.LineKind(p.Kind))
		if err != nil {
			return nil, fmt.Errorf("designs: polygon %d: %w", i, err)
		}
		g.AddLines(lines)
	}

	for _, l := range spec.Lines {
		g.AddLine(track.Line{
			Kind:          track.LineKind(l.Kind),
			X1:            l.X1,
			Y1:            l.Y1,
			X2:            l.X2,
			Y2:            l.Y2,
			Flipped:       l.Flipped,
			LeftExtended:  l.LeftExtended,
			RightExtended: l.RightExtended,
		})
	}

	for i, r := range spec.Riders {
		pos, err := r.Position.coordMode()
		if err != nil {
			return nil, fmt.Errorf("designs: riders %d position: %w", i, err)
		}
		vel, err := r.Velocity.coordMode()
		if err != nil {
			return nil, fmt.Errorf("designs: riders %d velocity: %w", i, err)
		}
		riders, err := gen.Riders(rng, r.Count, pos, vel, r.Remountable)
		if err != nil {
			return nil, fmt.Errorf("designs: riders %d: %w", i, err)
		}
		g.AddRiders(riders)
	}

	return g, nil
}

func buildCurve(c CurveSpec) ([]track.Line, error) {
	var curve *script.Curve
	switch {
	case c.Script != "" && c.Expr != "":
		return nil, fmt.Errorf("script and expr are mutually exclusive")
	case c.Script != "":
		src, err := LoadScript(c.Script)
		if err != nil {
			return nil, fmt.Errorf("load script %s: %w", c.Script, err)
		}
		curve, err = script.Compile(src)
		if err != nil {
			return nil, err
		}
	case c.Expr != "":
		var err error
		curve, err = script.CompileExpr(c.Expr)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("curve needs a script or an expr")
	}

	kind := gen.DefaultFunctionKind
	if c.Kind != nil {
		kind = track.LineKind(*c.Kind)
	}
	return gen.Function(curve.Func(), c.Start, c.End, c.Iterations, kind), nil
}

func (p PlacementSpec) coordMode() (gen.CoordMode, error) {
	switch p.Mode {
	case "", "fixed":
		if p.At != nil {
			return gen.Fixed(p.At.coords()), nil
		}
		return nil, nil
	case "rand":
		return gen.Rand(), nil
	case "rand_range":
		if p.Min == nil || p.Max == nil {
			return nil, fmt.Errorf("rand_range placement needs min and max")
		}
		return gen.RandIn(p.Min.coords(), p.Max.coords()), nil
	case "spaced":
		if p.Min == nil || p.Max == nil {
			return nil, fmt.Errorf("spaced placement needs min and max")
		}
		return gen.Spaced(p.Min.coords(), p.Max.coords()), nil
	default:
		return nil, fmt.Errorf("unknown placement mode %q", p.Mode)
	}
}
