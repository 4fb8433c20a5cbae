package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"grid_router/pkg/config"
	"grid_router/pkg/flatten"
	"grid_router/pkg/grid"
	"grid_router/pkg/render"
	"grid_router/pkg/routing"
)

func main() {
	input := flag.String("input", "", "Path to the run description JSON")
	jsonOut := flag.String("json", "", "Write the flattened graph JSON to this file")
	svgOut := flag.String("svg", "", "Write the SVG rendering to this file")
	pngOut := flag.String("png", "", "Write the PNG rendering to this file")
	flag.Parse()

	if *input == "" || (*jsonOut == "" && *svgOut == "" && *pngOut == "") {
		fmt.Fprintln(os.Stderr, "Usage: pathfind --input <run.json> [--json out.json] [--svg out.svg] [--png out.png]")
		os.Exit(1)
	}

	cfg, err := config.Load(*input)
	if err != nil {
		log.Fatalf("Failed to load run description: %v", err)
	}

	start := time.Now()

	// Step 1: Build the grid graph.
	g := grid.Build(cfg.Width, cfg.Height)
	log.Printf("Grid: %d nodes, %d edges", g.NumNodes(), g.NumEdges())

	// Step 2: Find the shortest path.
	res := routing.FindPath(g, cfg.Start, cfg.Goal)
	if res != nil {
		log.Printf("Path found: cost %d, %d nodes", res.Cost, len(res.Path))
	} else {
		log.Printf("No path from (%d,%d) to (%d,%d)", cfg.Start.X, cfg.Start.Y, cfg.Goal.X, cfg.Goal.Y)
	}

	// Step 3: Flatten for output.
	view := flatten.Flatten(g, res)

	if *jsonOut != "" {
		data, err := render.JSON(view)
		if err != nil {
			log.Fatalf("Failed to render JSON: %v", err)
		}
		if err := os.WriteFile(*jsonOut, data, 0o644); err != nil {
			log.Fatalf("Failed to write %s: %v", *jsonOut, err)
		}
		log.Printf("Wrote %s", *jsonOut)
	}

	if *svgOut != "" || *pngOut != "" {
		if err := cfg.ValidateScale(); err != nil {
			log.Fatalf("Cannot render: %v", err)
		}
		scene := render.Scene{
			View:   view,
			Width:  cfg.Width,
			Height: cfg.Height,
			Scale:  cfg.Scale,
			Start:  cfg.Start,
			Goal:   cfg.Goal,
		}

		if *svgOut != "" {
			data, err := render.SVG(scene)
			if err != nil {
				log.Fatalf("Failed to render SVG: %v", err)
			}
			if err := os.WriteFile(*svgOut, data, 0o644); err != nil {
				log.Fatalf("Failed to write %s: %v", *svgOut, err)
			}
			log.Printf("Wrote %s", *svgOut)
		}

		if *pngOut != "" {
			data, err := render.PNG(scene)
			if err != nil {
				log.Fatalf("Failed to render PNG: %v", err)
			}
			if err := os.WriteFile(*pngOut, data, 0o644); err != nil {
				log.Fatalf("Failed to write %s: %v", *pngOut, err)
			}
			log.Printf("Wrote %s", *pngOut)
		}
	}

	log.Printf("Done in %s", time.Since(start).Round(time.Millisecond))
}
