package routing

import "grid_router/pkg/grid"

// Result is a found path: the total hop cost and the node sequence from start
// to goal inclusive. len(Path) is always Cost+1.
type Result struct {
	Cost int
	Path []grid.NodeID
}

// FindPath runs A* over g from the node at start to the node at goal. Every
// edge costs one hop and the heuristic is the truncated straight-line
// distance, so a returned path always has the minimum hop count. Returns nil
// when start has no node in the graph or the goal cannot be reached.
func FindPath(g *grid.Graph, start, goal grid.Coordinate) *Result {
	startID, ok := g.Lookup(start)
	if !ok {
		return nil
	}

	n := g.NumNodes()
	dist := make([]int, n) // best known hop count, -1 = unreached
	parent := make([]grid.NodeID, n)
	for i := range dist {
		dist[i] = -1
		parent[i] = grid.NoNode
	}

	var pq MinHeap
	dist[startID] = 0
	pq.Push(PQItem{Node: startID, F: start.Distance(goal), G: 0})

	for pq.Len() > 0 {
		cur := pq.Pop()

		// Stale entry: a cheaper path to this node was already expanded.
		if cur.G > dist[cur.Node] {
			continue
		}

		if g.Coord(cur.Node) == goal {
			return &Result{Cost: cur.G, Path: reconstruct(parent, cur.Node)}
		}

		for _, nb := range g.Neighbors(cur.Node) {
			hops := cur.G + 1
			if dist[nb] >= 0 && dist[nb] <= hops {
				continue
			}
			dist[nb] = hops
			parent[nb] = cur.Node
			pq.Push(PQItem{
				Node: nb,
				F:    hops + g.Coord(nb).Distance(goal),
				G:    hops,
			})
		}
	}

	return nil
}

// reconstruct walks the parent links back from goal and reverses them.
func reconstruct(parent []grid.NodeID, goal grid.NodeID) []grid.NodeID {
	var path []grid.NodeID
	for id := goal; id != grid.NoNode; id = parent[id] {
		path = append(path, id)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
