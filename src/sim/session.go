package sim

import (
	"log/slog"

	"liftsim/src/car"
	"liftsim/src/config"
	"liftsim/src/dispatcher"
	"liftsim/src/types"
)

// Session is one simulation from program start to exit: the car bank, the
// incoming request queue and the undo ledger. Create it once and pass it to
// every operation. The simulation is turn-based and single-threaded; every
// operation runs to completion before returning.
type Session struct {
	cars     []*car.Car
	incoming []int             // FIFO of floors not yet assigned to a car
	undo     []types.UndoEntry // LIFO, most recent last
}

// NewSession creates the configured car bank, every car idle at floor 0.
func NewSession() *Session {
	cars := make([]*car.Car, 0, len(config.CarNames))
	for _, name := range config.CarNames {
		cars = append(cars, car.New(name))
	}
	return &Session{cars: cars}
}

// SubmitRequest validates floor, records it in the ledger and dispatches it
// to a car. Returns the assigned car's name. An out-of-range floor is
// rejected before anything is recorded.
func (s *Session) SubmitRequest(floor int) (string, error) {
	if floor < config.MinFloor || floor > config.MaxFloor {
		return "", &types.RangeError{Floor: floor, Min: config.MinFloor, Max: config.MaxFloor}
	}
	s.incoming = append(s.incoming, floor)
	s.undo = append(s.undo, types.UndoEntry{Kind: types.UndoRequest, Floor: floor})

	// Dispatch immediately; the incoming queue only holds a request for the
	// span of this call.
	next := s.incoming[0]
	s.incoming = s.incoming[1:]
	assigned := dispatcher.Assign(next, s.cars)
	assigned.AddRequest(next)
	slog.Debug("Request dispatched", "floor", next, "car", assigned.Name)
	return assigned.Name, nil
}

// UndoLast cancels the most recently submitted request that is still
// pending. Removal is by floor value: the incoming queue is searched first,
// then every car's up-queue, then every car's down-queue, stopping at the
// first hit. A floor already served is reported as not found; car position,
// direction and history are never touched.
func (s *Session) UndoLast() (int, types.UndoOutcome) {
	if len(s.undo) == 0 {
		return 0, types.UndoEmpty
	}
	entry := s.undo[len(s.undo)-1]
	s.undo = s.undo[:len(s.undo)-1]

	if s.removeIncoming(entry.Floor) {
		slog.Debug("Undo removed incoming request", "floor", entry.Floor)
		return entry.Floor, types.UndoRemoved
	}
	for _, c := range s.cars {
		if c.Up.Remove(entry.Floor) {
			slog.Debug("Undo removed queued request", "floor", entry.Floor, "car", c.Name, "dir", types.DirUp)
			return entry.Floor, types.UndoRemoved
		}
	}
	for _, c := range s.cars {
		if c.Down.Remove(entry.Floor) {
			slog.Debug("Undo removed queued request", "floor", entry.Floor, "car", c.Name, "dir", types.DirDown)
			return entry.Floor, types.UndoRemoved
		}
	}
	return entry.Floor, types.UndoNotFound
}

// Step advances every car by one stop and returns what was served, in car
// order. Cars with nothing pending serve nothing.
func (s *Session) Step() []types.ServedStop {
	var served []types.ServedStop
	for _, c := range s.cars {
		if floor, ok := c.ServeNext(); ok {
			served = append(served, types.ServedStop{Car: c.Name, Floor: floor})
		}
	}
	return served
}

// RunToCompletion steps until no car has pending targets. maxSteps bounds
// the loop as a safety cap; 0 selects config.MaxAutoSteps. Returns every
// stop served during the run in serve order, the steps taken and whether
// every queue drained. An incomplete run leaves the session steppable.
func (s *Session) RunToCompletion(maxSteps int) ([]types.ServedStop, int, bool) {
	if maxSteps <= 0 {
		maxSteps = config.MaxAutoSteps
	}
	var served []types.ServedStop
	steps := 0
	for s.hasPending() {
		if steps >= maxSteps {
			slog.Warn("Auto run halted by safety cap", "steps", steps)
			return served, steps, false
		}
		served = append(served, s.Step()...)
		steps++
	}
	return served, steps, true
}

func (s *Session) hasPending() bool {
	for _, c := range s.cars {
		if c.HasPending() {
			return true
		}
	}
	return false
}

func (s *Session) removeIncoming(floor int) bool {
	for i, f := range s.incoming {
		if f == floor {
			s.incoming = append(s.incoming[:i], s.incoming[i+1:]...)
			return true
		}
	}
	return false
}
