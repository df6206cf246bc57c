package dispatcher

import (
	"liftsim/src/car"
	"liftsim/src/types"
)

// Assign selects the car that should serve floor. The heuristic is local
// and stateless: it looks only at car positions and directions, never at
// queue lengths or wait estimates. Priority order: cars that can take the
// floor without reversing, then idle cars, then the nearest car; remaining
// ties go to the earliest car in the slice, so assignment is deterministic.
func Assign(floor int, cars []*car.Car) *car.Car {
	candidates := narrow(cars, func(c *car.Car) bool { return suitable(c, floor) })
	candidates = narrow(candidates, func(c *car.Car) bool { return c.Dir == types.DirIdle })

	best := candidates[0]
	for _, c := range candidates[1:] {
		if intAbs(c.Current-floor) < intAbs(best.Current-floor) {
			best = c
		}
	}
	return best
}

// suitable reports whether the car can pick up floor on its current sweep:
// it is idle, or the floor lies ahead of it in its travel direction.
func suitable(c *car.Car, floor int) bool {
	switch c.Dir {
	case types.DirIdle:
		return true
	case types.DirUp:
		return floor >= c.Current
	case types.DirDown:
		return floor <= c.Current
	}
	return false
}

// narrow keeps the cars matching pred. A rule that matches no car decides
// nothing, so the full field passes through to the next rule.
func narrow(cars []*car.Car, pred func(*car.Car) bool) []*car.Car {
	var kept []*car.Car
	for _, c := range cars {
		if pred(c) {
			kept = append(kept, c)
		}
	}
	if len(kept) == 0 {
		return cars
	}
	return kept
}

func intAbs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
