package routing

import "grid_router/pkg/grid"

// MinHeap is a concrete-typed min-heap for the A* open set.
// Avoids interface boxing overhead of container/heap.
type MinHeap struct {
	items []PQItem
}

// PQItem is a priority queue entry. F is the estimated total cost through the
// node, G the hop count from the start.
type PQItem struct {
	Node grid.NodeID
	F    int
	G    int
}

func (h *MinHeap) Len() int { return len(h.items) }

func (h *MinHeap) Push(item PQItem) {
	h.items = append(h.items, item)
	h.siftUp(len(h.items) - 1)
}

func (h *MinHeap) Pop() PQItem {
	n := len(h.items)
	item := h.items[0]
	h.items[0] = h.items[n-1]
	h.items = h.items[:n-1]
	if len(h.items) > 0 {
		h.siftDown(0)
	}
	return item
}

func (h *MinHeap) Reset() {
	h.items = h.items[:0]
}

// less orders by F, breaking ties toward the lower node index so expansion
// order, and therefore the returned path, is reproducible across runs.
func (h *MinHeap) less(i, j int) bool {
	if h.items[i].F != h.items[j].F {
		return h.items[i].F < h.items[j].F
	}
	return h.items[i].Node < h.items[j].Node
}

func (h *MinHeap) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !h.less(i, parent) {
			break
		}
		h.items[i], h.items[parent] = h.items[parent], h.items[i]
		i = parent
	}
}

func (h *MinHeap) siftDown(i int) {
	n := len(h.items)
	for {
		smallest := i
		left := 2*i + 1
		right := 2*i + 2
		if left < n && h.less(left, smallest) {
			smallest = left
		}
		if right < n && h.less(right, smallest) {
			smallest = right
		}
		if smallest == i {
			break
		}
		h.items[i], h.items[smallest] = h.items[smallest], h.items[i]
		i = smallest
	}
}
