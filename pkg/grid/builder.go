package grid

// Build constructs a width×height grid graph with 4-neighbor adjacency.
// Cells are created row by row, left to right; each new cell links to the
// cell above it and the cell to its left, so every edge is added exactly once
// when its second endpoint appears. Non-positive dimensions produce an empty
// graph.
func Build(width, height int) *Graph {
	if width <= 0 || height <= 0 {
		return &Graph{}
	}

	g := &Graph{
		coords: make([]Coordinate, 0, width*height),
		adj:    make([][]NodeID, 0, width*height),
	}

	// Last node seen in each column, i.e. the previous row.
	above := make([]NodeID, width)
	for x := range above {
		above[x] = NoNode
	}

	for y := 0; y < height; y++ {
		left := NoNode
		for x := 0; x < width; x++ {
			cur := g.addNode(Coordinate{X: x, Y: y})
			if above[x] != NoNode {
				g.addEdge(cur, above[x])
			}
			if left != NoNode {
				g.addEdge(cur, left)
			}
			left = cur
			above[x] = cur
		}
	}

	return g
}
