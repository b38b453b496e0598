package elevator

import (
	"strings"

	"elevsim/elevio"

	"github.com/pkg/errors"
)

var ErrInvalidConfig = errors.New("invalid elevator config")

type ElevatorBehaviour int

const (
	EB_Idle ElevatorBehaviour = iota
	EB_MovingUp
	EB_MovingDown
	EB_DoorOpening
	EB_DoorOpen
	EB_DoorClosing
)

func (b ElevatorBehaviour) String() string {
	switch b {
	case EB_Idle:
		return "IDLE"
	case EB_MovingUp:
		return "MOVING_UP"
	case EB_MovingDown:
		return "MOVING_DOWN"
	case EB_DoorOpening:
		return "DOOR_OPENING"
	case EB_DoorOpen:
		return "DOOR_OPEN"
	case EB_DoorClosing:
		return "DOOR_CLOSING"
	default:
		return "error"
	}
}

func (b ElevatorBehaviour) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

func (b *ElevatorBehaviour) UnmarshalText(text []byte) error {
	for v := EB_Idle; v <= EB_DoorClosing; v++ {
		if strings.EqualFold(v.String(), string(text)) {
			*b = v
			return nil
		}
	}
	return errors.Errorf("unknown behaviour %q", text)
}

// Door is the door state that goes with the behaviour.
func (b ElevatorBehaviour) Door() elevio.DoorState {
	switch b {
	case EB_DoorOpening:
		return elevio.DS_Opening
	case EB_DoorOpen:
		return elevio.DS_Open
	case EB_DoorClosing:
		return elevio.DS_Closing
	default:
		return elevio.DS_Closed
	}
}

const (
	DefaultMinFloor          = 1
	DefaultMaxFloor          = 10
	DefaultDoorStageTicks    = 1
	DefaultDoorOpenHoldTicks = 1
)

type Config struct {
	MinFloor int `yaml:"min_floor"`
	MaxFloor int `yaml:"max_floor"`
	// Ticks spent opening and closing the door.
	DoorStageTicks int `yaml:"door_stage_ticks"`
	// Ticks the door is held fully open.
	DoorOpenHoldTicks int `yaml:"door_open_hold_ticks"`
}

func DefaultConfig() Config {
	return Config{
		MinFloor:          DefaultMinFloor,
		MaxFloor:          DefaultMaxFloor,
		DoorStageTicks:    DefaultDoorStageTicks,
		DoorOpenHoldTicks: DefaultDoorOpenHoldTicks,
	}
}

// FloorsConfig is DefaultConfig serving floors 1..totalFloors.
func FloorsConfig(totalFloors int) Config {
	c := DefaultConfig()
	c.MaxFloor = totalFloors
	return c
}

func (c Config) Validate() error {
	if c.MaxFloor < c.MinFloor {
		return errors.Wrapf(ErrInvalidConfig, "max floor %d must be >= min floor %d", c.MaxFloor, c.MinFloor)
	}
	if c.MinFloor < 1 {
		return errors.Wrapf(ErrInvalidConfig, "floors must be positive, min floor is %d", c.MinFloor)
	}
	if c.DoorStageTicks < 1 || c.DoorOpenHoldTicks < 1 {
		return errors.Wrapf(ErrInvalidConfig, "door timings must be at least one tick, got stage=%d hold=%d",
			c.DoorStageTicks, c.DoorOpenHoldTicks)
	}
	return nil
}

func (c Config) InRange(floor int) bool {
	return floor >= c.MinFloor && floor <= c.MaxFloor
}

type Elevator struct {
	Floor int
	// Direction currently pursued. D_Idle while parked or stopped at a floor.
	Dirn elevio.Dirn
	// Sticky sweep direction, never D_Idle.
	ScanDirn  elevio.Dirn
	Behaviour ElevatorBehaviour
	Door      elevio.DoorState
	Config    Config
}

func ElevatorInit(config Config) Elevator {
	return Elevator{
		Floor:     config.MinFloor,
		Dirn:      elevio.D_Idle,
		ScanDirn:  elevio.D_Up,
		Behaviour: EB_Idle,
		Door:      elevio.DS_Closed,
		Config:    config,
	}
}
