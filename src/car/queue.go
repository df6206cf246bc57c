package car

import "container/heap"

// floorHeap orders pending floors, lowest first when asc is set and highest
// first otherwise.
type floorHeap struct {
	floors []int
	asc    bool
}

func (h *floorHeap) Len() int { return len(h.floors) }

func (h *floorHeap) Less(i, j int) bool {
	if h.asc {
		return h.floors[i] < h.floors[j]
	}
	return h.floors[i] > h.floors[j]
}

func (h *floorHeap) Swap(i, j int) {
	h.floors[i], h.floors[j] = h.floors[j], h.floors[i]
}

func (h *floorHeap) Push(x any) {
	h.floors = append(h.floors, x.(int))
}

func (h *floorHeap) Pop() any {
	old := h.floors
	n := len(old)
	x := old[n-1]
	h.floors = old[:n-1]
	return x
}

// Queue holds the pending floors for one travel direction. An up-queue
// serves its lowest floor first, a down-queue its highest. Duplicate floors
// are independent entries and are served as separate stops.
type Queue struct {
	h floorHeap
}

func NewUpQueue() *Queue {
	return &Queue{h: floorHeap{asc: true}}
}

func NewDownQueue() *Queue {
	return &Queue{}
}

func (q *Queue) Push(floor int) {
	heap.Push(&q.h, floor)
}

// Peek returns the next floor to serve without removing it.
func (q *Queue) Peek() (int, bool) {
	if q.Empty() {
		return 0, false
	}
	return q.h.floors[0], true
}

// Pop removes and returns the next floor to serve.
func (q *Queue) Pop() (int, bool) {
	if q.Empty() {
		return 0, false
	}
	return heap.Pop(&q.h).(int), true
}

// Remove deletes one occurrence of floor and reports whether it did.
func (q *Queue) Remove(floor int) bool {
	for i, f := range q.h.floors {
		if f == floor {
			heap.Remove(&q.h, i)
			return true
		}
	}
	return false
}

func (q *Queue) Len() int {
	return len(q.h.floors)
}

func (q *Queue) Empty() bool {
	return len(q.h.floors) == 0
}

// Floors returns a copy of the pending floors in heap order.
func (q *Queue) Floors() []int {
	out := make([]int, len(q.h.floors))
	copy(out, q.h.floors)
	return out
}
