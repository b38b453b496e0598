package sim

import (
	"sort"

	"elevsim/elevator"
	"elevsim/elevio"
	"elevsim/requests"

	"github.com/pkg/errors"
)

// Cab is the part of fsm.Elevator the runner drives.
type Cab interface {
	Submit(req requests.Request) (bool, error)
	Tick()
	State() elevator.State
}

// Observer sees the cab state after every tick.
type Observer interface {
	Observe(tick int, state elevator.State) error
}

type ObserverFunc func(tick int, state elevator.State) error

func (f ObserverFunc) Observe(tick int, state elevator.State) error {
	return f(tick, state)
}

// Call is a request scheduled for submission. Tick 0 goes in before the
// first tick, tick k right after the k-th.
type Call struct {
	Tick    int
	Request requests.Request
}

type Result struct {
	// Floors where the door reached OPEN, in order.
	Stops []int
	// Calls the cab ignored as duplicates.
	Rejected int
	Final    elevator.State
}

// Run advances cab for the given number of ticks, feeding in calls as
// their tick comes up and reporting every state to the observers.
func Run(cab Cab, calls []Call, ticks int, observers ...Observer) (Result, error) {
	pending := append([]Call(nil), calls...)
	sort.SliceStable(pending, func(i, j int) bool { return pending[i].Tick < pending[j].Tick })

	res := Result{Stops: []int{}}
	submitDue := func(elapsed int) error {
		for len(pending) > 0 && pending[0].Tick <= elapsed {
			accepted, err := cab.Submit(pending[0].Request)
			if err != nil {
				return errors.Wrapf(err, "submit %v", pending[0].Request)
			}
			if !accepted {
				res.Rejected++
			}
			pending = pending[1:]
		}
		return nil
	}

	if err := submitDue(0); err != nil {
		return res, err
	}
	lastDoor := cab.State().Door
	for tick := 1; tick <= ticks; tick++ {
		cab.Tick()
		state := cab.State()
		// A stop counts once, on the tick the door reaches OPEN.
		if state.Door == elevio.DS_Open && lastDoor != elevio.DS_Open {
			res.Stops = append(res.Stops, state.Floor)
		}
		lastDoor = state.Door
		for _, o := range observers {
			if err := o.Observe(tick, state); err != nil {
				return res, errors.Wrapf(err, "observe tick %d", tick)
			}
		}
		if err := submitDue(tick); err != nil {
			return res, err
		}
	}
	res.Final = cab.State()
	return res, nil
}
