package grid

// NodeID is an index into the graph's node arena. Nodes are never removed, so
// a plain index is a stable handle for the lifetime of the graph.
type NodeID int32

// NoNode marks a missing node reference.
const NoNode NodeID = -1

// Graph is an undirected grid graph over a fixed node arena. Each node carries
// a Coordinate payload and every edge has an implicit cost of one hop. The
// graph is immutable once Build returns and safe to share across concurrent
// readers.
type Graph struct {
	coords   []Coordinate
	adj      [][]NodeID
	numEdges int
}

// NumNodes returns the number of nodes in the arena.
func (g *Graph) NumNodes() int { return len(g.coords) }

// NumEdges returns the number of undirected edges.
func (g *Graph) NumEdges() int { return g.numEdges }

// Coord returns the coordinate payload of id.
func (g *Graph) Coord(id NodeID) Coordinate { return g.coords[id] }

// Neighbors returns id's adjacency in insertion order. The returned slice is
// shared with the graph and must not be modified.
func (g *Graph) Neighbors(id NodeID) []NodeID { return g.adj[id] }

// Lookup scans the arena in creation order for the first node at c.
func (g *Graph) Lookup(c Coordinate) (NodeID, bool) {
	for i, have := range g.coords {
		if have == c {
			return NodeID(i), true
		}
	}
	return NoNode, false
}

func (g *Graph) addNode(c Coordinate) NodeID {
	g.coords = append(g.coords, c)
	g.adj = append(g.adj, nil)
	return NodeID(len(g.coords) - 1)
}

func (g *Graph) addEdge(u, v NodeID) {
	g.adj[u] = append(g.adj[u], v)
	g.adj[v] = append(g.adj[v], u)
	g.numEdges++
}
