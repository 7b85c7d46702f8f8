// Package designs loads declarative track designs from YAML and builds
// them into track.Game values. A design names metadata overrides plus the
// generator calls that populate the track: curves, polygons, literal lines,
// and rider groups.
package designs

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/kumar-ish/draw-lr/track"
)

// DesignSpec is one track design. Zero-valued metadata fields keep the
// track defaults. Lines are committed in section order: curves, polygons,
// literal lines; rider groups follow.
type DesignSpec struct {
	Label       string           `yaml:"label"`
	Creator     string           `yaml:"creator"`
	Description string           `yaml:"description"`
	Duration    int              `yaml:"duration"`
	Version     string           `yaml:"version"`
	Audio       string           `yaml:"audio"`
	Start       CoordSpec        `yaml:"start"`
	Curves      []CurveSpec      `yaml:"curves"`
	Polygons    []PolygonSpec    `yaml:"polygons"`
	Lines       []LineSpec       `yaml:"lines"`
	Riders      []RiderGroupSpec `yaml:"riders"`
}

func LoadDesignSpec(filename string) (DesignSpec, error) {
	return LoadSpec[DesignSpec](filename)
}

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("designs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("designs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type CoordSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func (c CoordSpec) coords() track.Coordinates {
	return track.Coordinates{X: c.X, Y: c.Y}
}

// CurveSpec samples a curve function over [start, end). Exactly one of
// Script (a .tengo file defining f) or Expr (an inline expression in x)
// names the function. Iterations 0 and a nil Kind take the gen defaults.
type CurveSpec struct {
	Script     string `yaml:"script"`
	Expr       string `yaml:"expr"`
	Start      int    `yaml:"start"`
	End        int    `yaml:"end"`
	Iterations int    `yaml:"iterations"`
	Kind       *int   `yaml:"kind"`
}

// PolygonSpec draws a regular polygon, optionally as several concentric
// rings. Thickness 0 means a single ring.
type PolygonSpec struct {
	Sides     int       `yaml:"sides"`
	Radius    float64   `yaml:"radius"`
	Center    CoordSpec `yaml:"center"`
	Rotation  float64   `yaml:"rotation"`
	Thickness int       `yaml:"thickness"`
	Kind      int       `yaml:"kind"`
}

// LineSpec is a single literal line.
type LineSpec struct {
	Kind          int     `yaml:"kind"`
	X1            float64 `yaml:"x1"`
	Y1            float64 `yaml:"y1"`
	X2            float64 `yaml:"x2"`
	Y2            float64 `yaml:"y2"`
	Flipped       bool    `yaml:"flipped"`
	LeftExtended  bool    `yaml:"left_extended"`
	RightExtended bool    `yaml:"right_extended"`
}

// RiderGroupSpec adds Count riders placed by the position and velocity
// placements.
type RiderGroupSpec struct {
	Count       int           `yaml:"count"`
	Position    PlacementSpec `yaml:"position"`
	Velocity    PlacementSpec `yaml:"velocity"`
	Remountable int           `yaml:"remountable"`
}

// PlacementSpec picks a coordinate mode: "fixed" (or empty) with an
// optional at, "rand", "rand_range" with min/max, or "spaced" with min/max.
type PlacementSpec struct {
	Mode string     `yaml:"mode"`
	At   *CoordSpec `yaml:"at"`
	Min  *CoordSpec `yaml:"min"`
	Max  *CoordSpec `yaml:"max"`
}
