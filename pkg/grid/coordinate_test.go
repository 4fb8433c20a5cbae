package grid

import "testing"

func TestCoordinateAdd(t *testing.T) {
	got := Coordinate{X: 2, Y: -3}.Add(Coordinate{X: 5, Y: 7})
	want := Coordinate{X: 7, Y: 4}
	if got != want {
		t.Errorf("Add = (%d,%d), want (%d,%d)", got.X, got.Y, want.X, want.Y)
	}
}

func TestCoordinateDistance(t *testing.T) {
	cases := []struct {
		a, b Coordinate
		want int
	}{
		{Coordinate{0, 0}, Coordinate{0, 0}, 0},
		{Coordinate{0, 0}, Coordinate{3, 4}, 5},
		{Coordinate{0, 0}, Coordinate{0, 5}, 5},
		{Coordinate{0, 0}, Coordinate{5, 0}, 5},
		{Coordinate{0, 0}, Coordinate{1, 1}, 1}, // sqrt(2) truncates
		{Coordinate{2, 3}, Coordinate{-1, -1}, 5},
	}
	for _, c := range cases {
		if got := c.a.Distance(c.b); got != c.want {
			t.Errorf("(%d,%d).Distance((%d,%d)) = %d, want %d", c.a.X, c.a.Y, c.b.X, c.b.Y, got, c.want)
		}
		if got, rev := c.a.Distance(c.b), c.b.Distance(c.a); got != rev {
			t.Errorf("Distance not symmetric: %d vs %d", got, rev)
		}
	}
}

// The estimate must never exceed the hop count, or the search could return
// non-optimal paths.
func TestCoordinateDistanceNeverExceedsHops(t *testing.T) {
	for x := -6; x <= 6; x++ {
		for y := -6; y <= 6; y++ {
			a := Coordinate{X: 0, Y: 0}
			b := Coordinate{X: x, Y: y}
			hops := abs(x) + abs(y)
			if d := a.Distance(b); d > hops {
				t.Errorf("Distance to (%d,%d) = %d exceeds hop count %d", x, y, d, hops)
			}
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
