// Package track holds the in-memory representation of a Line Rider track
// and serializes it to the JSON document the game's importer reads.
package track

import (
	"encoding/json"
	"os"
)

// Coordinates is a point (or vector) in the game's 2D coordinate system.
type Coordinates struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rider is a controllable character with its initial kinematic state.
type Rider struct {
	StartPosition Coordinates `json:"startPosition"`
	StartVelocity Coordinates `json:"startVelocity"`
	Remountable   int         `json:"remountable"`
}

// Layer is a named, independently visible/editable grouping of lines.
type Layer struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Visible  bool   `json:"visible"`
	Editable bool   `json:"editable"`
}

// BaseLayer returns the default layer every freshly constructed track has.
func BaseLayer() Layer {
	return Layer{
		ID:       0,
		Name:     "Base Layer",
		Visible:  true,
		Editable: true,
	}
}

// LineKind selects the physical behavior of a line in the game.
type LineKind int

const (
	KindStandard     LineKind = 0
	KindAcceleration LineKind = 1
	KindScenery      LineKind = 2
)

// Line is a single segment from (X1, Y1) to (X2, Y2). ID is nil until the
// line is committed to a track; the game requires a unique id per line, so
// the track stamps one on insertion.
type Line struct {
	ID            *int     `json:"id"`
	Kind          LineKind `json:"type"`
	X1            float64  `json:"x1"`
	Y1            float64  `json:"y1"`
	X2            float64  `json:"x2"`
	Y2            float64  `json:"y2"`
	Flipped       bool     `json:"flipped"`
	LeftExtended  bool     `json:"leftExtended"`
	RightExtended bool     `json:"rightExtended"`
}

// Version tags the game file-format revision a track targets.
type Version string

// DefaultVersion is the only version this module is tested against.
const DefaultVersion Version = "6.2"

// Game is the full track description: metadata plus riders, layers, and
// lines. Field order matches the importer's document layout.
type Game struct {
	Label         string      `json:"label"`
	Creator       string      `json:"creator"`
	Description   string      `json:"description"`
	Duration      int         `json:"duration"`
	Version       Version     `json:"version"`
	Audio         *string     `json:"audio"`
	StartPosition Coordinates `json:"startPosition"`
	Riders        []Rider     `json:"riders"`
	Layers        []Layer     `json:"layers"`
	Lines         []Line      `json:"lines"`
}

// New returns a track with default metadata, the base layer, and no riders
// or lines. Riders and Lines start as empty (not nil) slices so an empty
// track still encodes them as [].
func New() *Game {
	return &Game{
		Label:    "Track created by draw-lr",
		Creator:  "draw-lr",
		Duration: 120,
		Version:  DefaultVersion,
		Riders:   []Rider{},
		Layers:   []Layer{BaseLayer()},
		Lines:    []Line{},
	}
}

// AddLine appends a copy of line with its ID overwritten by the line's
// 1-based insertion rank. Geometry is not validated; zero-length and
// overlapping lines are accepted as-is.
func (g *Game) AddLine(line Line) {
	id := len(g.Lines) + 1
	line.ID = &id
	g.Lines = append(g.Lines, line)
}

// AddLines appends every line in order, so ids are strictly increasing in
// iteration order.
func (g *Game) AddLines(lines []Line) {
	for _, line := range lines {
		g.AddLine(line)
	}
}

// AddRider appends a rider. Riders carry no id; the format doesn't need one.
func (g *Game) AddRider(rider Rider) {
	g.Riders = append(g.Riders, rider)
}

// AddRiders appends every rider in order.
func (g *Game) AddRiders(riders []Rider) {
	for _, rider := range riders {
		g.AddRider(rider)
	}
}

// Encode returns the JSON document for the track's current state. It is a
// pure function of that state: encoding twice without mutation yields
// identical bytes.
func (g *Game) Encode() ([]byte, error) {
	return json.Marshal(g)
}

// WriteFile encodes the track and writes the document to path, overwriting
// any existing content. Encoding and I/O errors are returned unmodified.
func (g *Game) WriteFile(path string) error {
	data, err := g.Encode()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
