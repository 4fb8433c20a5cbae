package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"grid_router/pkg/api"
	"grid_router/pkg/config"
	"grid_router/pkg/grid"
	"grid_router/pkg/routing"
)

func main() {
	input := flag.String("input", "", "Path to the run description JSON (grid dimensions)")
	port := flag.Int("port", 8080, "HTTP port")
	corsOrigin := flag.String("cors-origin", "", "CORS allowed origin (empty = same-origin)")
	flag.Parse()

	if *input == "" {
		fmt.Fprintln(os.Stderr, "Usage: server --input <run.json> [--port 8080] [--cors-origin origin]")
		os.Exit(1)
	}

	cfg, err := config.Load(*input)
	if err != nil {
		log.Fatalf("Failed to load run description: %v", err)
	}

	// Build the grid once; every query shares it read-only.
	g := grid.Build(cfg.Width, cfg.Height)
	log.Printf("Grid: %dx%d, %d nodes, %d edges", cfg.Width, cfg.Height, g.NumNodes(), g.NumEdges())

	engine := routing.NewEngine(g)
	snapper := routing.NewSnapper(g)

	stats := api.StatsResponse{
		Width:    cfg.Width,
		Height:   cfg.Height,
		NumNodes: g.NumNodes(),
		NumEdges: g.NumEdges(),
	}

	addr := fmt.Sprintf(":%d", *port)
	srvCfg := api.DefaultConfig(addr)
	srvCfg.CORSOrigin = *corsOrigin

	handlers := api.NewHandlers(engine, snapper, g, stats)
	srv := api.NewServer(srvCfg, handlers)

	if err := api.ListenAndServe(srv); err != nil {
		log.Printf("Server stopped: %v", err)
		os.Exit(1)
	}
}
