package requests

import (
	"fmt"

	"elevsim/elevio"

	"github.com/pkg/errors"
)

var (
	ErrInvalidFloor     = errors.New("invalid floor")
	ErrInvalidDirection = errors.New("invalid direction")
)

// Request is either a car call (floor only) or a hall call (floor and
// travel direction). The zero value is not a valid request; use
// NewCarCall or NewHallCall. Requests are comparable with ==.
type Request struct {
	kind  elevio.CallKind
	floor int
	dirn  elevio.Dirn
}

func NewCarCall(floor int) (Request, error) {
	if floor < 1 {
		return Request{}, errors.Wrapf(ErrInvalidFloor, "car call floor %d must be positive", floor)
	}
	return Request{kind: elevio.CK_Car, floor: floor, dirn: elevio.D_Idle}, nil
}

func NewHallCall(floor int, dirn elevio.Dirn) (Request, error) {
	if floor < 1 {
		return Request{}, errors.Wrapf(ErrInvalidFloor, "hall call floor %d must be positive", floor)
	}
	if !dirn.IsMoving() {
		return Request{}, errors.Wrapf(ErrInvalidDirection, "hall calls must specify UP or DOWN, got %v", dirn)
	}
	return Request{kind: elevio.CK_Hall, floor: floor, dirn: dirn}, nil
}

func (r Request) Floor() int { return r.floor }

func (r Request) Kind() elevio.CallKind { return r.kind }

// DesiredDirn is D_Idle for car calls.
func (r Request) DesiredDirn() elevio.Dirn { return r.dirn }

func (r Request) String() string {
	if r.kind == elevio.CK_Hall {
		return fmt.Sprintf("HallCall{floor=%d, direction=%v}", r.floor, r.dirn)
	}
	return fmt.Sprintf("CarCall{floor=%d}", r.floor)
}
