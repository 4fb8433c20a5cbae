package grid

import "math"

// Coordinate identifies a single grid cell. It is a value type compared by
// exact equality and usable as a map key.
type Coordinate struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns the component-wise sum of c and other.
func (c Coordinate) Add(other Coordinate) Coordinate {
	return Coordinate{X: c.X + other.X, Y: c.Y + other.Y}
}

// Distance returns the straight-line distance from c to other, truncated
// toward zero. The truncated value never exceeds the hop count between the
// two cells on a 4-neighbor grid, which keeps it safe as a search heuristic.
func (c Coordinate) Distance(other Coordinate) int {
	dx := float64(c.X - other.X)
	dy := float64(c.Y - other.Y)
	return int(math.Sqrt(dx*dx + dy*dy))
}
