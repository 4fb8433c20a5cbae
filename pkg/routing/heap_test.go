package routing

import (
	"testing"

	"grid_router/pkg/grid"
)

func TestMinHeapPopsInOrder(t *testing.T) {
	var h MinHeap
	for _, f := range []int{9, 3, 7, 1, 5, 8, 2} {
		h.Push(PQItem{Node: grid.NodeID(f), F: f})
	}

	prev := -1
	for h.Len() > 0 {
		item := h.Pop()
		if item.F < prev {
			t.Fatalf("popped F=%d after F=%d", item.F, prev)
		}
		prev = item.F
	}
}

func TestMinHeapTieBreaksOnNodeID(t *testing.T) {
	var h MinHeap
	for _, id := range []grid.NodeID{4, 1, 3, 0, 2} {
		h.Push(PQItem{Node: id, F: 7})
	}

	for want := grid.NodeID(0); h.Len() > 0; want++ {
		if got := h.Pop().Node; got != want {
			t.Fatalf("popped node %d, want %d", got, want)
		}
	}
}

func TestMinHeapReset(t *testing.T) {
	var h MinHeap
	h.Push(PQItem{Node: 0, F: 1})
	h.Push(PQItem{Node: 1, F: 2})
	h.Reset()
	if h.Len() != 0 {
		t.Errorf("Len after Reset = %d, want 0", h.Len())
	}
}
