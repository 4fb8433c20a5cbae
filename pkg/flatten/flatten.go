// Package flatten converts a grid graph and an optional search result into
// the deterministic node/edge/path lists consumed by the output boundaries.
package flatten

import (
	"grid_router/pkg/grid"
	"grid_router/pkg/routing"
)

// Edge is one undirected edge, reported once in the direction it was first
// discovered. OnPath is set when both endpoints are path nodes, even when
// they are not consecutive steps of the path.
type Edge struct {
	A, B   grid.Coordinate
	OnPath bool
}

// View is the flattened form of a grid graph: nodes in breadth-first visit
// order from the first inserted node, every undirected edge exactly once, and
// the path coordinates when a search result is present.
type View struct {
	Nodes []grid.Coordinate
	Edges []Edge
	Path  []grid.Coordinate // nil when no path was found
}

// Flatten walks g breadth-first and produces its View. res may be nil.
func Flatten(g *grid.Graph, res *routing.Result) *View {
	v := &View{}
	n := g.NumNodes()
	if n == 0 {
		return v
	}

	var onPath map[grid.NodeID]bool
	if res != nil {
		onPath = make(map[grid.NodeID]bool, len(res.Path))
		v.Path = make([]grid.Coordinate, len(res.Path))
		for i, id := range res.Path {
			onPath[id] = true
			v.Path[i] = g.Coord(id)
		}
	}

	seen := make(map[[2]grid.Coordinate]bool, g.NumEdges())
	visited := make([]bool, n)
	queue := make([]grid.NodeID, 0, n)
	queue = append(queue, 0)
	visited[0] = true

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		c := g.Coord(cur)
		v.Nodes = append(v.Nodes, c)

		for _, nb := range g.Neighbors(cur) {
			nc := g.Coord(nb)
			// An edge is skipped only once its reverse tuple was reported.
			if !seen[[2]grid.Coordinate{nc, c}] {
				seen[[2]grid.Coordinate{c, nc}] = true
				v.Edges = append(v.Edges, Edge{
					A:      c,
					B:      nc,
					OnPath: onPath[cur] && onPath[nb],
				})
			}
			if !visited[nb] {
				visited[nb] = true
				queue = append(queue, nb)
			}
		}
	}

	return v
}
