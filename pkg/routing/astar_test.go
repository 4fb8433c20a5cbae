package routing

import (
	"testing"

	"grid_router/pkg/grid"
)

func manhattan(a, b grid.Coordinate) int {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// checkPath verifies res is a valid shortest path from start to goal on g.
func checkPath(t *testing.T, g *grid.Graph, res *Result, start, goal grid.Coordinate) {
	t.Helper()
	if res == nil {
		t.Fatalf("no result for (%d,%d)->(%d,%d)", start.X, start.Y, goal.X, goal.Y)
	}
	if want := manhattan(start, goal); res.Cost != want {
		t.Errorf("cost = %d, want %d", res.Cost, want)
	}
	if len(res.Path) != res.Cost+1 {
		t.Fatalf("path length = %d, want cost+1 = %d", len(res.Path), res.Cost+1)
	}
	if got := g.Coord(res.Path[0]); got != start {
		t.Errorf("path starts at (%d,%d), want (%d,%d)", got.X, got.Y, start.X, start.Y)
	}
	if got := g.Coord(res.Path[len(res.Path)-1]); got != goal {
		t.Errorf("path ends at (%d,%d), want (%d,%d)", got.X, got.Y, goal.X, goal.Y)
	}
	for i := 1; i < len(res.Path); i++ {
		a := g.Coord(res.Path[i-1])
		b := g.Coord(res.Path[i])
		if manhattan(a, b) != 1 {
			t.Errorf("hop %d: (%d,%d)->(%d,%d) is not a unit step", i, a.X, a.Y, b.X, b.Y)
		}
	}
}

func TestFindPathCostIsManhattan(t *testing.T) {
	cases := []struct {
		width, height int
		start, goal   grid.Coordinate
	}{
		{3, 3, grid.Coordinate{X: 0, Y: 0}, grid.Coordinate{X: 2, Y: 2}},
		{5, 4, grid.Coordinate{X: 4, Y: 0}, grid.Coordinate{X: 0, Y: 3}},
		{1, 8, grid.Coordinate{X: 0, Y: 7}, grid.Coordinate{X: 0, Y: 0}},
		{8, 1, grid.Coordinate{X: 3, Y: 0}, grid.Coordinate{X: 6, Y: 0}},
		{7, 7, grid.Coordinate{X: 3, Y: 3}, grid.Coordinate{X: 3, Y: 3}},
		{6, 2, grid.Coordinate{X: 5, Y: 1}, grid.Coordinate{X: 0, Y: 0}},
	}
	for _, c := range cases {
		g := grid.Build(c.width, c.height)
		res := FindPath(g, c.start, c.goal)
		checkPath(t, g, res, c.start, c.goal)
	}
}

func TestFindPathStartEqualsGoal(t *testing.T) {
	g := grid.Build(1, 1)
	res := FindPath(g, grid.Coordinate{X: 0, Y: 0}, grid.Coordinate{X: 0, Y: 0})
	if res == nil {
		t.Fatal("no result")
	}
	if res.Cost != 0 {
		t.Errorf("cost = %d, want 0", res.Cost)
	}
	if len(res.Path) != 1 {
		t.Fatalf("path length = %d, want 1", len(res.Path))
	}
	if got := g.Coord(res.Path[0]); got != (grid.Coordinate{X: 0, Y: 0}) {
		t.Errorf("path = [(%d,%d)], want [(0,0)]", got.X, got.Y)
	}
}

func TestFindPathMissingStart(t *testing.T) {
	g := grid.Build(3, 3)
	for _, start := range []grid.Coordinate{{X: 5, Y: 5}, {X: -1, Y: 0}, {X: 0, Y: 3}} {
		if res := FindPath(g, start, grid.Coordinate{X: 0, Y: 0}); res != nil {
			t.Errorf("FindPath from (%d,%d) = %+v, want nil", start.X, start.Y, res)
		}
	}
}

func TestFindPathMissingGoal(t *testing.T) {
	g := grid.Build(3, 3)
	if res := FindPath(g, grid.Coordinate{X: 0, Y: 0}, grid.Coordinate{X: 9, Y: 9}); res != nil {
		t.Errorf("FindPath to (9,9) = %+v, want nil", res)
	}
}

func TestFindPathEmptyGrid(t *testing.T) {
	g := grid.Build(0, 0)
	if res := FindPath(g, grid.Coordinate{}, grid.Coordinate{}); res != nil {
		t.Errorf("FindPath on empty grid = %+v, want nil", res)
	}
}

func TestFindPathDiagonalScenario(t *testing.T) {
	g := grid.Build(3, 3)
	start := grid.Coordinate{X: 0, Y: 0}
	goal := grid.Coordinate{X: 2, Y: 2}

	res := FindPath(g, start, goal)
	checkPath(t, g, res, start, goal)
	if res.Cost != 4 {
		t.Errorf("cost = %d, want 4", res.Cost)
	}
	if len(res.Path) != 5 {
		t.Errorf("path length = %d, want 5", len(res.Path))
	}
}

func TestFindPathDeterministic(t *testing.T) {
	g := grid.Build(6, 6)
	start := grid.Coordinate{X: 0, Y: 5}
	goal := grid.Coordinate{X: 5, Y: 0}

	first := FindPath(g, start, goal)
	for i := 0; i < 5; i++ {
		again := FindPath(g, start, goal)
		if len(again.Path) != len(first.Path) {
			t.Fatalf("run %d: path length %d, want %d", i, len(again.Path), len(first.Path))
		}
		for j := range first.Path {
			if first.Path[j] != again.Path[j] {
				t.Fatalf("run %d: path diverges at hop %d", i, j)
			}
		}
	}
}
