package network

import (
	"encoding/json"
	"time"

	"elevsim/elevator"

	"github.com/pkg/errors"
)

const (
	// Time given to the KCP session to flush before a publisher closes.
	lingerDuration = 200 * time.Millisecond
	flushInterval  = 10
)

type MessageType string

const (
	TypeState MessageType = "State"
	TypeStop  MessageType = "Stop"
)

// Message is anything the feed carries.
type Message interface {
	MessageType() MessageType
}

// MsgState carries the cab state after a tick.
type MsgState struct {
	Type  MessageType    `json:"type"`
	Tick  int            `json:"tick"`
	State elevator.State `json:"state"`
}

func (MsgState) MessageType() MessageType { return TypeState }

// MsgStop is sent when the door reaches OPEN at a floor.
type MsgStop struct {
	Type  MessageType `json:"type"`
	Tick  int         `json:"tick"`
	Floor int         `json:"floor"`
}

func (MsgStop) MessageType() MessageType { return TypeStop }

var ErrUnknownMessage = errors.New("unknown message type")

// decodeMessage picks the concrete message by its type tag.
func decodeMessage(raw []byte) (Message, error) {
	var generic struct {
		Type MessageType `json:"type"`
	}
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, errors.Wrap(err, "decode message header")
	}

	switch generic.Type {
	case TypeState:
		var msg MsgState
		if err := json.Unmarshal(raw, &msg); err != nil {
			return nil, errors.Wrap(err, "decode state message")
		}
		return msg, nil
	case TypeStop:
		var msg MsgStop
		if err := json.Unmarshal(raw, &msg); err != nil {
			return nil, errors.Wrap(err, "decode stop message")
		}
		return msg, nil
	default:
		return nil, errors.Wrapf(ErrUnknownMessage, "%q", generic.Type)
	}
}
