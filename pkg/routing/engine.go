package routing

import (
	"context"
	"errors"

	"grid_router/pkg/grid"
)

// ErrNoPath is returned when no path exists between the two cells.
var ErrNoPath = errors.New("no path found")

// Pather is the interface for path queries.
type Pather interface {
	Route(ctx context.Context, start, goal grid.Coordinate) (*Result, error)
}

// Engine implements Pather over a single immutable grid graph. Queries share
// the graph read-only, so one Engine serves concurrent callers.
type Engine struct {
	g *grid.Graph
}

// NewEngine creates a routing engine for g.
func NewEngine(g *grid.Graph) *Engine {
	return &Engine{g: g}
}

// Route computes the shortest path between two cells. A search over the
// largest practical grid finishes well inside any request deadline, so the
// context is only consulted before the search starts.
func (e *Engine) Route(ctx context.Context, start, goal grid.Coordinate) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	res := FindPath(e.g, start, goal)
	if res == nil {
		return nil, ErrNoPath
	}
	return res, nil
}
