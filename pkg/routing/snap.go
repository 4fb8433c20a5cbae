package routing

import (
	"errors"
	"math"

	"github.com/tidwall/rtree"

	"grid_router/pkg/grid"
)

// maxSnapDist bounds how far a query point may be from the nearest node, in
// cell units.
const maxSnapDist = 1.0

// ErrPointTooFar is returned when the query point is too far from any node.
var ErrPointTooFar = errors.New("point too far from grid")

// Snapper answers nearest-node queries over the graph's node positions using
// an R-tree index.
type Snapper struct {
	tr rtree.RTreeG[grid.NodeID]
	g  *grid.Graph
}

// NewSnapper indexes every node of g.
func NewSnapper(g *grid.Graph) *Snapper {
	s := &Snapper{g: g}
	for i := 0; i < g.NumNodes(); i++ {
		id := grid.NodeID(i)
		c := g.Coord(id)
		pt := [2]float64{float64(c.X), float64(c.Y)}
		s.tr.Insert(pt, pt, id)
	}
	return s
}

// Snap returns the node nearest to (x, y). Candidates come from a one-cell
// box around the point; equidistant candidates resolve to the lower node
// index.
func (s *Snapper) Snap(x, y float64) (grid.NodeID, error) {
	min := [2]float64{x - maxSnapDist, y - maxSnapDist}
	max := [2]float64{x + maxSnapDist, y + maxSnapDist}

	best := grid.NoNode
	bestDist := math.Inf(1)
	s.tr.Search(min, max, func(_, _ [2]float64, id grid.NodeID) bool {
		c := s.g.Coord(id)
		dx := x - float64(c.X)
		dy := y - float64(c.Y)
		d := dx*dx + dy*dy
		if d < bestDist || (d == bestDist && id < best) {
			bestDist = d
			best = id
		}
		return true
	})

	if best == grid.NoNode || bestDist > maxSnapDist*maxSnapDist {
		return grid.NoNode, ErrPointTooFar
	}
	return best, nil
}
