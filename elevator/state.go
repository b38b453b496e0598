package elevator

import (
	"fmt"
	"slices"

	"elevsim/elevio"
)

// State is a point-in-time view of a cab. UpQueue is ascending and
// DownQueue descending. The queues are copies owned by the State.
type State struct {
	Floor     int               `json:"floor"`
	Dirn      elevio.Dirn       `json:"direction"`
	Door      elevio.DoorState  `json:"door"`
	Behaviour ElevatorBehaviour `json:"activity"`
	UpQueue   []int             `json:"upQueue"`
	DownQueue []int             `json:"downQueue"`
}

func NewState(e Elevator, upQueue, downQueue []int) State {
	return State{
		Floor:     e.Floor,
		Dirn:      e.Dirn,
		Door:      e.Door,
		Behaviour: e.Behaviour,
		UpQueue:   cloneQueue(upQueue),
		DownQueue: cloneQueue(downQueue),
	}
}

func cloneQueue(q []int) []int {
	if q == nil {
		return []int{}
	}
	return slices.Clone(q)
}

// Idle reports whether the cab is parked with nothing left to do.
func (s State) Idle() bool {
	return s.Behaviour == EB_Idle && s.Door == elevio.DS_Closed &&
		len(s.UpQueue) == 0 && len(s.DownQueue) == 0
}

func (s State) String() string {
	return fmt.Sprintf("ElevatorState{floor=%d, direction=%v, door=%v, activity=%v, upQueue=%v, downQueue=%v}",
		s.Floor, s.Dirn, s.Door, s.Behaviour, s.UpQueue, s.DownQueue)
}
