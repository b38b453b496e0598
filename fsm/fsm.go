package fsm

import (
	"fmt"

	"elevsim/elevator"
	"elevsim/elevio"
	"elevsim/logger"
	"elevsim/requests"
	"elevsim/timer"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Elevator drives a single cab one tick at a time. It owns the cab state
// and its scheduler. Nothing here blocks; callers must serialise access.
type Elevator struct {
	elev      elevator.Elevator
	scheduler *requests.Scheduler
	doorTimer timer.Timer
	log       *zerolog.Logger
}

type Option func(*Elevator)

func WithLogger(l *zerolog.Logger) Option {
	return func(e *Elevator) {
		e.log = l
	}
}

func New(config elevator.Config, opts ...Option) (*Elevator, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	e := &Elevator{
		elev:      elevator.ElevatorInit(config),
		scheduler: requests.NewScheduler(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.log == nil {
		e.log = logger.Component("fsm")
	}
	return e, nil
}

// NewWithFloors builds a cab serving floors 1..totalFloors.
func NewWithFloors(totalFloors int, opts ...Option) (*Elevator, error) {
	return New(elevator.FloorsConfig(totalFloors), opts...)
}

func (e *Elevator) HallCall(floor int, dirn elevio.Dirn) (bool, error) {
	if !dirn.IsMoving() {
		return false, errors.Wrapf(requests.ErrInvalidDirection, "hall calls must specify UP or DOWN, got %v", dirn)
	}
	if err := e.validateFloor(floor); err != nil {
		return false, err
	}
	req, err := requests.NewHallCall(floor, dirn)
	if err != nil {
		return false, err
	}
	return e.enqueue(req), nil
}

func (e *Elevator) CarCall(floor int) (bool, error) {
	if err := e.validateFloor(floor); err != nil {
		return false, err
	}
	req, err := requests.NewCarCall(floor)
	if err != nil {
		return false, err
	}
	return e.enqueue(req), nil
}

// Submit forwards an already built request to HallCall or CarCall.
func (e *Elevator) Submit(req requests.Request) (bool, error) {
	if req.Kind() == elevio.CK_Hall {
		return e.HallCall(req.Floor(), req.DesiredDirn())
	}
	return e.CarCall(req.Floor())
}

func (e *Elevator) enqueue(req requests.Request) bool {
	if !e.scheduler.Submit(req, e.elev.Floor) {
		e.log.Debug().Stringer("request", req).Msg("Duplicate request ignored")
		return false
	}
	e.log.Debug().Stringer("request", req).Int("floor", e.elev.Floor).Msg("Request accepted")
	e.tryStartMovement()
	return true
}

func (e *Elevator) State() elevator.State {
	return elevator.NewState(e.elev, e.scheduler.UpQueue(), e.scheduler.DownQueue())
}

func (e *Elevator) Config() elevator.Config {
	return e.elev.Config
}

// Pending is the number of floors still waiting to be served.
func (e *Elevator) Pending() int {
	return e.scheduler.Len()
}

// Tick advances the simulation by one step.
func (e *Elevator) Tick() {
	e.scheduler.Rebalance(e.elev.Floor)

	switch e.elev.Behaviour {
	case elevator.EB_Idle:
		e.handleIdle()
	case elevator.EB_MovingUp:
		e.handleMoving(elevio.D_Up)
	case elevator.EB_MovingDown:
		e.handleMoving(elevio.D_Down)
	case elevator.EB_DoorOpening, elevator.EB_DoorOpen, elevator.EB_DoorClosing:
		e.handleDoorTimeout()
	default:
		panic(fmt.Sprintf("fsm: unhandled behaviour %d", int(e.elev.Behaviour)))
	}
}

func (e *Elevator) handleIdle() {
	if e.scheduler.Consume(e.elev.Floor) {
		e.beginDoorCycle()
		return
	}
	if next := e.scheduler.PreferredDirection(e.elev.Floor, e.elev.ScanDirn); next != elevio.D_Idle {
		e.switchTo(next)
	}
}

// handleMoving serves one tick of travel in dirn. The cab stops for a
// request at the floor it is on, reverses at the end of the shaft, and
// otherwise steps one floor. Once the sweep has nothing left ahead it
// asks for a new direction, biased towards reversing.
func (e *Elevator) handleMoving(dirn elevio.Dirn) {
	if e.scheduler.Consume(e.elev.Floor) {
		e.beginDoorCycle()
		return
	}

	if e.atEndOfShaft(dirn) {
		e.switchTo(dirn.Opposite())
		return
	}

	e.elev.Floor += int(dirn)
	e.log.Debug().Int("floor", e.elev.Floor).Stringer("dirn", dirn).Msg("Floor arrival")

	if e.scheduler.Consume(e.elev.Floor) {
		e.beginDoorCycle()
		return
	}
	if !e.hasRequestsAhead(dirn) {
		e.switchTo(e.scheduler.PreferredDirection(e.elev.Floor, dirn.Opposite()))
	}
}

func (e *Elevator) atEndOfShaft(dirn elevio.Dirn) bool {
	if dirn == elevio.D_Up {
		return e.elev.Floor >= e.elev.Config.MaxFloor
	}
	return e.elev.Floor <= e.elev.Config.MinFloor
}

func (e *Elevator) hasRequestsAhead(dirn elevio.Dirn) bool {
	if dirn == elevio.D_Up {
		return e.scheduler.HasUpRequestsAhead(e.elev.Floor)
	}
	return e.scheduler.HasDownRequestsBelow(e.elev.Floor)
}

func (e *Elevator) handleDoorTimeout() {
	if !e.doorTimer.Tick() {
		return
	}

	switch e.elev.Behaviour {
	case elevator.EB_DoorOpening:
		e.setBehaviour(elevator.EB_DoorOpen)
		e.doorTimer.Start(e.elev.Config.DoorOpenHoldTicks)

	case elevator.EB_DoorOpen:
		e.setBehaviour(elevator.EB_DoorClosing)
		e.doorTimer.Start(e.elev.Config.DoorStageTicks)

	case elevator.EB_DoorClosing:
		e.elev.Door = elevio.DS_Closed
		e.log.Debug().Int("floor", e.elev.Floor).Msg("Door closed")
		e.switchTo(e.scheduler.PreferredDirection(e.elev.Floor, e.elev.ScanDirn))

	default:
		panic(fmt.Sprintf("fsm: door cycle reached behaviour %v", e.elev.Behaviour))
	}
}

func (e *Elevator) beginDoorCycle() {
	e.setBehaviour(elevator.EB_DoorOpening)
	e.doorTimer.Start(e.elev.Config.DoorStageTicks)
	e.elev.Dirn = elevio.D_Idle
}

func (e *Elevator) tryStartMovement() {
	if e.elev.Behaviour != elevator.EB_Idle || e.elev.Door != elevio.DS_Closed {
		return
	}
	if next := e.scheduler.PreferredDirection(e.elev.Floor, e.elev.ScanDirn); next != elevio.D_Idle {
		e.switchTo(next)
	}
}

// switchTo puts the cab in motion or at rest and drops any door timeout.
func (e *Elevator) switchTo(next elevio.Dirn) {
	e.doorTimer.Stop()
	switch next {
	case elevio.D_Up:
		e.elev.Dirn, e.elev.ScanDirn = next, next
		e.setBehaviour(elevator.EB_MovingUp)
	case elevio.D_Down:
		e.elev.Dirn, e.elev.ScanDirn = next, next
		e.setBehaviour(elevator.EB_MovingDown)
	default:
		e.elev.Dirn = elevio.D_Idle
		e.setBehaviour(elevator.EB_Idle)
	}
}

// setBehaviour keeps the door state in step with the behaviour.
func (e *Elevator) setBehaviour(b elevator.ElevatorBehaviour) {
	if e.elev.Behaviour != b {
		e.log.Debug().Int("floor", e.elev.Floor).
			Stringer("from", e.elev.Behaviour).
			Stringer("to", b).
			Msg("Behaviour change")
	}
	e.elev.Behaviour = b
	e.elev.Door = b.Door()
}

func (e *Elevator) validateFloor(floor int) error {
	if !e.elev.Config.InRange(floor) {
		return errors.Wrapf(requests.ErrInvalidFloor, "floor %d is outside [%d, %d]",
			floor, e.elev.Config.MinFloor, e.elev.Config.MaxFloor)
	}
	return nil
}
