package car

import "testing"

func drain(q *Queue) []int {
	var out []int
	for {
		floor, ok := q.Pop()
		if !ok {
			return out
		}
		out = append(out, floor)
	}
}

func TestUpQueueServesLowestFirst(t *testing.T) {
	q := NewUpQueue()
	for _, f := range []int{5, 1, 8, 1} {
		q.Push(f)
	}

	got := drain(q)
	want := []int{1, 1, 5, 8}
	if len(got) != len(want) {
		t.Fatalf("Expected %d pops, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Pop %d: expected %d, got %d", i, want[i], got[i])
		}
	}
}

func TestDownQueueServesHighestFirst(t *testing.T) {
	q := NewDownQueue()
	for _, f := range []int{-3, 7, 0} {
		q.Push(f)
	}

	got := drain(q)
	want := []int{7, 0, -3}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Pop %d: expected %d, got %d", i, want[i], got[i])
		}
	}
}

func TestPeekDoesNotRemove(t *testing.T) {
	q := NewUpQueue()
	q.Push(4)

	if floor, ok := q.Peek(); !ok || floor != 4 {
		t.Errorf("Expected peek 4, got %d (ok=%v)", floor, ok)
	}
	if q.Len() != 1 {
		t.Errorf("Expected peek to leave the queue untouched, len=%d", q.Len())
	}
}

func TestEmptyQueueSignalsEmpty(t *testing.T) {
	q := NewDownQueue()
	if _, ok := q.Peek(); ok {
		t.Error("Expected empty peek to report not ok")
	}
	if _, ok := q.Pop(); ok {
		t.Error("Expected empty pop to report not ok")
	}
}

func TestRemoveDeletesOneOccurrence(t *testing.T) {
	q := NewUpQueue()
	for _, f := range []int{4, 9, 4} {
		q.Push(f)
	}

	if !q.Remove(4) {
		t.Fatal("Expected removal of 4 to succeed")
	}
	got := drain(q)
	want := []int{4, 9}
	if len(got) != len(want) {
		t.Fatalf("Expected remaining %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Pop %d: expected %d, got %d", i, want[i], got[i])
		}
	}
}

func TestRemoveMissingFloor(t *testing.T) {
	q := NewDownQueue()
	q.Push(2)
	if q.Remove(11) {
		t.Error("Expected removal of absent floor to fail")
	}
	if q.Len() != 1 {
		t.Errorf("Expected queue untouched after failed removal, len=%d", q.Len())
	}
}
