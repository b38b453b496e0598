package elevio

import (
	"strings"

	"github.com/pkg/errors"
)

type Dirn int

const (
	D_Down Dirn = -1
	D_Idle Dirn = 0
	D_Up   Dirn = 1
)

// IsMoving reports whether d names a travel direction.
func (d Dirn) IsMoving() bool {
	return d == D_Up || d == D_Down
}

func (d Dirn) Opposite() Dirn {
	switch d {
	case D_Up:
		return D_Down
	case D_Down:
		return D_Up
	default:
		return D_Idle
	}
}

func (d Dirn) String() string {
	switch d {
	case D_Up:
		return "UP"
	case D_Down:
		return "DOWN"
	case D_Idle:
		return "IDLE"
	default:
		return "error"
	}
}

type DoorState int

const (
	DS_Closed DoorState = iota
	DS_Opening
	DS_Open
	DS_Closing
)

func (s DoorState) String() string {
	switch s {
	case DS_Closed:
		return "CLOSED"
	case DS_Opening:
		return "OPENING"
	case DS_Open:
		return "OPEN"
	case DS_Closing:
		return "CLOSING"
	default:
		return "error"
	}
}

// CallKind tells where a request came from: inside the cab or a hall panel.
type CallKind int

const (
	CK_Car CallKind = iota
	CK_Hall
)

func (k CallKind) String() string {
	switch k {
	case CK_Car:
		return "car"
	case CK_Hall:
		return "hall"
	default:
		return "error"
	}
}

// ParseDirn accepts the lower- or upper-case names used in settings files.
func ParseDirn(s string) (Dirn, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return D_Up, true
	case "down":
		return D_Down, true
	case "idle", "":
		return D_Idle, true
	}
	return D_Idle, false
}

func ParseCallKind(s string) (CallKind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "car", "cab":
		return CK_Car, true
	case "hall":
		return CK_Hall, true
	}
	return CK_Car, false
}

func (d Dirn) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Dirn) UnmarshalText(text []byte) error {
	v, ok := ParseDirn(string(text))
	if !ok {
		return errors.Errorf("unknown direction %q", text)
	}
	*d = v
	return nil
}

func (s DoorState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *DoorState) UnmarshalText(text []byte) error {
	for _, v := range []DoorState{DS_Closed, DS_Opening, DS_Open, DS_Closing} {
		if strings.EqualFold(v.String(), string(text)) {
			*s = v
			return nil
		}
	}
	return errors.Errorf("unknown door state %q", text)
}
