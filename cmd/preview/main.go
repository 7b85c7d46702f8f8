package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"math/rand"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/kumar-ish/draw-lr/designs"
	"github.com/kumar-ish/draw-lr/track"
)

const (
	screenWidth  = 1280
	screenHeight = 720
)

type Preview struct {
	design string
	seed   int64

	game     *track.Game
	buildErr error

	watcher *designs.Watcher

	camX, camY float64
	zoom       float64
}

func NewPreview(design string, seed int64) *Preview {
	p := &Preview{design: design, seed: seed, zoom: 4}

	if _, err := os.Stat("designs"); err == nil {
		w, err := designs.WatchDesign("designs", design)
		if err != nil {
			log.Printf("design watch disabled: %v", err)
		} else {
			p.watcher = w
		}
	}

	p.rebuild()
	if p.game != nil {
		p.camX = p.game.StartPosition.X
		p.camY = p.game.StartPosition.Y
	}
	return p
}

// rebuild reloads the design and regenerates the track. A fixed seed keeps
// random rider placement stable across reloads.
func (p *Preview) rebuild() {
	spec, err := designs.LoadDesignSpec(p.design)
	if err != nil {
		p.buildErr = err
		return
	}

	if p.watcher != nil {
		scripts := make([]string, 0, len(spec.Curves))
		for _, c := range spec.Curves {
			scripts = append(scripts, c.Script)
		}
		p.watcher.SetScripts(scripts...)
	}

	var rng *rand.Rand
	if p.seed != 0 {
		rng = rand.New(rand.NewSource(p.seed))
	}

	game, err := designs.Build(spec, rng)
	if err != nil {
		p.buildErr = err
		return
	}
	p.game = game
	p.buildErr = nil
}

func (p *Preview) Update() error {
	if p.watcher != nil {
		select {
		case ev, ok := <-p.watcher.Events:
			if ok {
				log.Printf("design changed: %s", ev.Path)
				p.rebuild()
			}
		case err, ok := <-p.watcher.Errors:
			if ok {
				log.Printf("design watch: %v", err)
			}
		default:
		}
	}

	pan := 8 / p.zoom
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		p.camX -= pan
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		p.camX += pan
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		p.camY -= pan
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		p.camY += pan
	}

	_, wheelY := ebiten.Wheel()
	if wheelY > 0 {
		p.zoom *= 1.1
	} else if wheelY < 0 {
		p.zoom /= 1.1
	}
	if p.zoom < 0.05 {
		p.zoom = 0.05
	}
	if p.zoom > 40 {
		p.zoom = 40
	}

	return nil
}

func (p *Preview) Draw(screen *ebiten.Image) {
	if p.game != nil {
		for _, line := range p.game.Lines {
			x1, y1 := p.toScreen(line.X1, line.Y1)
			x2, y2 := p.toScreen(line.X2, line.Y2)
			vector.StrokeLine(screen, x1, y1, x2, y2, 2, kindColor(line.Kind), true)
		}
		for _, rider := range p.game.Riders {
			x, y := p.toScreen(rider.StartPosition.X, rider.StartPosition.Y)
			vector.DrawFilledCircle(screen, x, y, 4, colornames.White, true)
		}
	}

	status := fmt.Sprintf("%s    zoom: %.2f    FPS: %.2f", p.design, p.zoom, ebiten.ActualFPS())
	if p.game != nil {
		status += fmt.Sprintf("\nlines: %d    riders: %d", len(p.game.Lines), len(p.game.Riders))
	}
	if p.buildErr != nil {
		status += fmt.Sprintf("\nbuild error: %v", p.buildErr)
	}
	ebitenutil.DebugPrint(screen, status)
}

func (p *Preview) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func (p *Preview) toScreen(x, y float64) (float32, float32) {
	return float32((x-p.camX)*p.zoom) + screenWidth/2, float32((y-p.camY)*p.zoom) + screenHeight/2
}

func kindColor(kind track.LineKind) color.Color {
	switch kind {
	case track.KindStandard:
		return colornames.Skyblue
	case track.KindAcceleration:
		return colornames.Orangered
	case track.KindScenery:
		return colornames.Limegreen
	default:
		return colornames.Lightgrey
	}
}

func main() {
	design := flag.String("design", "demo", "design name in designs/ (basename, .yaml optional)")
	seed := flag.Int64("seed", 1, "rider placement seed (0 = time-based)")
	flag.Parse()

	name := *design
	if !strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml") {
		name += ".yaml"
	}

	p := NewPreview(name, *seed)
	if p.watcher != nil {
		defer p.watcher.Close()
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("draw-lr preview")

	if err := ebiten.RunGame(p); err != nil {
		log.Fatal(err)
	}
}
