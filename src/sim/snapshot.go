package sim

import (
	"cmp"
	"slices"

	"github.com/tiendc/go-deepcopy"

	"liftsim/src/types"
)

// Snapshot returns a copy of the full session state: per-car position,
// direction, pending floors and history, plus the incoming queue and undo
// ledger. The result shares no memory with the session, so callers can hold
// it across later mutations.
func (s *Session) Snapshot() types.SessionSnapshot {
	view := types.SessionSnapshot{
		Cars:     make([]types.CarSnapshot, 0, len(s.cars)),
		Incoming: s.incoming,
		Undo:     s.undo,
	}
	for _, c := range s.cars {
		up := c.Up.Floors()
		slices.Sort(up)
		down := c.Down.Floors()
		slices.SortFunc(down, func(a, b int) int { return cmp.Compare(b, a) })
		view.Cars = append(view.Cars, types.CarSnapshot{
			Name:        c.Name,
			Floor:       c.Current,
			Direction:   c.Dir,
			PendingUp:   up,
			PendingDown: down,
			History:     c.History,
		})
	}

	snap := new(types.SessionSnapshot)
	if err := deepcopy.Copy(snap, &view); err != nil {
		panic(err)
	}
	return *snap
}
