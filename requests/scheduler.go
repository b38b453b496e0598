package requests

import "elevsim/elevio"

// Scheduler is a LOOK/SCAN scheduler keeping separate queues for the
// upward and downward travel segments. A floor is pending in at most one
// queue. Queues are rebalanced against the cab position every tick.
//
// A Scheduler is not safe for concurrent use.
type Scheduler struct {
	up   floorSet
	down floorSet
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Submit queues req relative to currentFloor and reports whether it was
// accepted. A request for a floor that is already pending is ignored.
//
// A hall call's direction picks the queue only when the cab can reach the
// floor travelling that way without passing it first. Everything else is
// placed by position and corrected later by Rebalance.
func (s *Scheduler) Submit(req Request, currentFloor int) bool {
	floor := req.Floor()
	if s.Contains(floor) {
		return false
	}
	if req.Kind() == elevio.CK_Hall {
		switch {
		case req.DesiredDirn() == elevio.D_Up && floor >= currentFloor:
			return s.up.add(floor)
		case req.DesiredDirn() == elevio.D_Down && floor <= currentFloor:
			return s.down.add(floor)
		}
	}
	if floor >= currentFloor {
		return s.up.add(floor)
	}
	return s.down.add(floor)
}

func (s *Scheduler) Contains(floor int) bool {
	return s.up.contains(floor) || s.down.contains(floor)
}

// Consume removes floor from whichever queue holds it.
func (s *Scheduler) Consume(floor int) bool {
	return s.up.remove(floor) || s.down.remove(floor)
}

// Rebalance moves up-queue floors below currentFloor into the down queue
// and down-queue floors at or above currentFloor into the up queue.
func (s *Scheduler) Rebalance(currentFloor int) {
	if below := s.up.takeBelow(currentFloor); len(below) > 0 {
		s.down.addAll(below)
	}
	if above := s.down.takeFrom(currentFloor); len(above) > 0 {
		s.up.addAll(above)
	}
}

func (s *Scheduler) HasUpRequestsAhead(currentFloor int) bool {
	_, ok := s.up.higher(currentFloor)
	return ok
}

func (s *Scheduler) HasDownRequestsBelow(currentFloor int) bool {
	_, ok := s.down.lower(currentFloor)
	return ok
}

// PreferredDirection keeps the preferred sweep while it still has work,
// otherwise turns to whichever side has work, otherwise returns D_Idle.
func (s *Scheduler) PreferredDirection(currentFloor int, preference elevio.Dirn) elevio.Dirn {
	upWork := s.hasUpRequestsAtOrAbove(currentFloor)
	downWork := s.hasDownRequestsAtOrBelow(currentFloor)
	switch {
	case preference == elevio.D_Up && upWork:
		return elevio.D_Up
	case preference == elevio.D_Down && downWork:
		return elevio.D_Down
	case upWork:
		return elevio.D_Up
	case downWork:
		return elevio.D_Down
	}
	return elevio.D_Idle
}

func (s *Scheduler) hasUpRequestsAtOrAbove(currentFloor int) bool {
	_, ok := s.up.ceiling(currentFloor)
	return ok
}

func (s *Scheduler) hasDownRequestsAtOrBelow(currentFloor int) bool {
	_, ok := s.down.floor(currentFloor)
	return ok
}

// Len is the number of pending floors.
func (s *Scheduler) Len() int {
	return s.up.len() + s.down.len()
}

// UpQueue returns the pending up floors in ascending order.
func (s *Scheduler) UpQueue() []int {
	return s.up.ascending()
}

// DownQueue returns the pending down floors in descending order, the
// order a cab sweeping downward reaches them.
func (s *Scheduler) DownQueue() []int {
	return s.down.descending()
}
