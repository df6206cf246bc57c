package car

import (
	"log/slog"

	"liftsim/src/types"
)

// Car is one elevator unit: position, sweep direction, the two directional
// queues and the visit history.
type Car struct {
	Name    string
	Current int
	Dir     types.Direction
	Up      *Queue
	Down    *Queue
	History []int
}

// New creates an idle car at floor 0 with empty queues and history.
func New(name string) *Car {
	return &Car{
		Name: name,
		Dir:  types.DirIdle,
		Up:   NewUpQueue(),
		Down: NewDownQueue(),
	}
}

// AddRequest routes floor into the queue matching its position relative to
// the car. A request for the current floor is served on the spot and only
// logged to history. The bucket is fixed here and not revisited if the car
// moves before the floor is served.
func (c *Car) AddRequest(floor int) {
	if floor == c.Current {
		c.History = append(c.History, floor)
		slog.Debug("Request served at current floor", "car", c.Name, "floor", floor)
		return
	}
	if floor > c.Current {
		c.Up.Push(floor)
	} else {
		c.Down.Push(floor)
	}
	slog.Debug("Request queued", "car", c.Name, "floor", floor)
}

// HasPending reports whether either queue holds a target.
func (c *Car) HasPending() bool {
	return !c.Up.Empty() || !c.Down.Empty()
}

// chooseDirection picks a sweep direction for an idle car: the direction
// whose next floor is closer, ties going up.
func (c *Car) chooseDirection() types.Direction {
	upNext, upOK := c.Up.Peek()
	downNext, downOK := c.Down.Peek()
	switch {
	case upOK && downOK:
		if intAbs(upNext-c.Current) <= intAbs(downNext-c.Current) {
			return types.DirUp
		}
		return types.DirDown
	case upOK:
		return types.DirUp
	case downOK:
		return types.DirDown
	}
	return types.DirIdle
}

// ServeNext advances the car by one stop. The current sweep direction's
// queue is served first; once it drains the car reverses into the opposite
// queue, and with both queues empty it goes idle. Returns the served floor
// and whether anything was served.
func (c *Car) ServeNext() (int, bool) {
	if c.Dir == types.DirIdle {
		c.Dir = c.chooseDirection()
		if c.Dir == types.DirIdle {
			return 0, false
		}
	}

	primary, opposite := c.queues(c.Dir)
	if primary.Empty() {
		if opposite.Empty() {
			c.Dir = types.DirIdle
			return 0, false
		}
		// Stale sweep direction with no targets left that way.
		c.Dir = c.Dir.Opposite()
		primary, opposite = opposite, primary
	}

	floor, _ := primary.Pop()
	c.Current = floor
	c.History = append(c.History, floor)

	if primary.Empty() {
		if opposite.Empty() {
			c.Dir = types.DirIdle
		} else {
			c.Dir = c.Dir.Opposite()
		}
	}
	slog.Debug("Car served floor", "car", c.Name, "floor", floor, "dir", c.Dir)
	return floor, true
}

// queues returns the queue serving direction d and its opposite.
func (c *Car) queues(d types.Direction) (primary, opposite *Queue) {
	if d == types.DirUp {
		return c.Up, c.Down
	}
	return c.Down, c.Up
}

func intAbs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
