package sim

import "container/heap"

// readyHeap is a min-heap of instruction indices with deterministic ordering.
// Ordering: static priority → program-order index.
// See canonical Golang example here: https://pkg.go.dev/container/heap#example-package-IntHeap
type readyHeap struct {
	instrs  []*Instruction
	indices []int
}

func newReadyHeap(instrs []*Instruction) *readyHeap {
	h := &readyHeap{
		instrs:  instrs,
		indices: make([]int, 0),
	}
	heap.Init(h)
	return h
}

// Len implements heap.Interface.
func (h *readyHeap) Len() int {
	return len(h.indices)
}

// Less implements heap.Interface with deterministic ordering.
// Primary: priority (lower dispatches first). Tie-break: program order, so
// dispatch order is a strict total order reproducible across runs.
func (h *readyHeap) Less(i, j int) bool {
	a, b := h.instrs[h.indices[i]], h.instrs[h.indices[j]]
	if a.Priority != b.Priority {
		return a.Priority < b.Priority
	}
	return a.Seq < b.Seq
}

// Swap implements heap.Interface.
func (h *readyHeap) Swap(i, j int) {
	h.indices[i], h.indices[j] = h.indices[j], h.indices[i]
}

// Push implements heap.Interface.
func (h *readyHeap) Push(x any) {
	h.indices = append(h.indices, x.(int))
}

// Pop implements heap.Interface.
func (h *readyHeap) Pop() any {
	old := h.indices
	n := len(old)
	item := old[n-1]
	h.indices = old[0 : n-1]
	return item
}

// push adds an instruction index to the heap.
func (h *readyHeap) push(idx int) {
	heap.Push(h, idx)
}

// pop removes and returns the highest-priority instruction index.
func (h *readyHeap) pop() int {
	return heap.Pop(h).(int)
}
