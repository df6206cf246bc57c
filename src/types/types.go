package types

import "fmt"

// Direction is a car's sweep direction.
type Direction int

const (
	DirIdle Direction = iota
	DirUp
	DirDown
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	}
	return "idle"
}

// Opposite returns the reversed sweep direction. Idle has no opposite.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	}
	return DirIdle
}

// ServedStop records one car visiting one floor during a simulation step.
type ServedStop struct {
	Car   string
	Floor int
}

// UndoKind tags a ledger entry with the action it can reverse.
type UndoKind int

const (
	UndoRequest UndoKind = iota
)

// UndoEntry is one reversible action in the session ledger.
type UndoEntry struct {
	Kind  UndoKind
	Floor int
}

// UndoOutcome reports what UndoLast did.
type UndoOutcome int

const (
	UndoRemoved  UndoOutcome = iota
	UndoNotFound             // ledger had an entry but the floor was already served
	UndoEmpty                // nothing left to undo
)

// CarSnapshot is a read-only view of one car.
type CarSnapshot struct {
	Name        string
	Floor       int
	Direction   Direction
	PendingUp   []int // ascending
	PendingDown []int // descending
	History     []int // visit order
}

// SessionSnapshot is a read-only view of the whole session. It shares no
// memory with live state.
type SessionSnapshot struct {
	Cars     []CarSnapshot
	Incoming []int
	Undo     []UndoEntry // most recent last
}

// RangeError reports a requested floor outside the configured bounds.
type RangeError struct {
	Floor int
	Min   int
	Max   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("floor %d out of range [%d, %d]", e.Floor, e.Min, e.Max)
}
