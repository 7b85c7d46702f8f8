package main

import (
	"flag"
	"log"
	"math/rand"
	"strings"

	"github.com/kumar-ish/draw-lr/designs"
)

func main() {
	design := flag.String("design", "demo", "design name in designs/ (basename, .yaml optional)")
	out := flag.String("o", "track.json", "output file")
	seed := flag.Int64("seed", 0, "rider placement seed (0 = time-based)")
	flag.Parse()

	name := *design
	if !strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml") {
		name += ".yaml"
	}

	spec, err := designs.LoadDesignSpec(name)
	if err != nil {
		log.Fatal(err)
	}

	var rng *rand.Rand
	if *seed != 0 {
		rng = rand.New(rand.NewSource(*seed))
	}

	game, err := designs.Build(spec, rng)
	if err != nil {
		log.Fatal(err)
	}

	if err := game.WriteFile(*out); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %d lines and %d riders to %s", len(game.Lines), len(game.Riders), *out)
}
