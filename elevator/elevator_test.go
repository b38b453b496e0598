package elevator

import (
	"testing"

	"elevsim/elevio"

	"github.com/pkg/errors"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{"default", DefaultConfig(), false},
		{"single floor", Config{MinFloor: 3, MaxFloor: 3, DoorStageTicks: 1, DoorOpenHoldTicks: 1}, false},
		{"inverted range", Config{MinFloor: 5, MaxFloor: 4, DoorStageTicks: 1, DoorOpenHoldTicks: 1}, true},
		{"zero min floor", Config{MinFloor: 0, MaxFloor: 4, DoorStageTicks: 1, DoorOpenHoldTicks: 1}, true},
		{"zero stage ticks", Config{MinFloor: 1, MaxFloor: 4, DoorStageTicks: 0, DoorOpenHoldTicks: 1}, true},
		{"zero hold ticks", Config{MinFloor: 1, MaxFloor: 4, DoorStageTicks: 1, DoorOpenHoldTicks: 0}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr && errors.Cause(err) != ErrInvalidConfig {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}

func TestFloorsConfig(t *testing.T) {
	c := FloorsConfig(12)
	if c.MinFloor != 1 || c.MaxFloor != 12 {
		t.Errorf("FloorsConfig(12) = %+v", c)
	}
	if !c.InRange(1) || !c.InRange(12) || c.InRange(0) || c.InRange(13) {
		t.Errorf("InRange bounds wrong for %+v", c)
	}
}

func TestBehaviourDoor(t *testing.T) {
	want := map[ElevatorBehaviour]elevio.DoorState{
		EB_Idle:        elevio.DS_Closed,
		EB_MovingUp:    elevio.DS_Closed,
		EB_MovingDown:  elevio.DS_Closed,
		EB_DoorOpening: elevio.DS_Opening,
		EB_DoorOpen:    elevio.DS_Open,
		EB_DoorClosing: elevio.DS_Closing,
	}
	for b, door := range want {
		if got := b.Door(); got != door {
			t.Errorf("%v.Door() = %v, want %v", b, got, door)
		}
	}
}

func TestElevatorInit(t *testing.T) {
	e := ElevatorInit(Config{MinFloor: 3, MaxFloor: 9, DoorStageTicks: 1, DoorOpenHoldTicks: 1})
	if e.Floor != 3 || e.Behaviour != EB_Idle || e.Door != elevio.DS_Closed || e.ScanDirn != elevio.D_Up {
		t.Errorf("ElevatorInit = %+v", e)
	}
}

func TestNewStateCopiesQueues(t *testing.T) {
	up := []int{4, 6}
	s := NewState(ElevatorInit(DefaultConfig()), up, nil)
	up[0] = 99
	if s.UpQueue[0] != 4 {
		t.Errorf("State aliases the queue it was built from")
	}
	if s.DownQueue == nil || len(s.DownQueue) != 0 {
		t.Errorf("DownQueue = %#v, want empty slice", s.DownQueue)
	}
	if s.Idle() {
		t.Errorf("state with pending floors reported idle")
	}
}

func TestStateString(t *testing.T) {
	s := State{Floor: 3, Dirn: elevio.D_Up, Door: elevio.DS_Closed, Behaviour: EB_MovingUp, UpQueue: []int{7}, DownQueue: []int{2}}
	got := s.String()
	want := "ElevatorState{floor=3, direction=UP, door=CLOSED, activity=MOVING_UP, upQueue=[7], downQueue=[2]}"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
