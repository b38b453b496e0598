package elevio

import (
	"encoding/json"
	"testing"
)

func TestParseDirn(t *testing.T) {
	tests := []struct {
		in     string
		want   Dirn
		wantOk bool
	}{
		{"up", D_Up, true},
		{" DOWN ", D_Down, true},
		{"idle", D_Idle, true},
		{"sideways", D_Idle, false},
	}
	for _, tt := range tests {
		got, ok := ParseDirn(tt.in)
		if got != tt.want || ok != tt.wantOk {
			t.Errorf("ParseDirn(%q) = (%v, %v), want (%v, %v)", tt.in, got, ok, tt.want, tt.wantOk)
		}
	}
}

func TestParseCallKind(t *testing.T) {
	if k, ok := ParseCallKind("Hall"); !ok || k != CK_Hall {
		t.Errorf("ParseCallKind(Hall) = (%v, %v)", k, ok)
	}
	if k, ok := ParseCallKind("cab"); !ok || k != CK_Car {
		t.Errorf("ParseCallKind(cab) = (%v, %v)", k, ok)
	}
	if _, ok := ParseCallKind("lobby"); ok {
		t.Errorf("ParseCallKind(lobby) accepted")
	}
}

func TestDirnOpposite(t *testing.T) {
	if D_Up.Opposite() != D_Down || D_Down.Opposite() != D_Up || D_Idle.Opposite() != D_Idle {
		t.Errorf("Opposite() mismatch")
	}
}

func TestTextEncoding(t *testing.T) {
	type wire struct {
		Dirn Dirn      `json:"dirn"`
		Door DoorState `json:"door"`
	}
	data, err := json.Marshal(wire{D_Down, DS_Closing})
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"dirn":"DOWN","door":"CLOSING"}` {
		t.Errorf("json.Marshal = %s", data)
	}

	var back wire
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if back.Dirn != D_Down || back.Door != DS_Closing {
		t.Errorf("round trip gave %+v", back)
	}
	if err := json.Unmarshal([]byte(`{"door":"AJAR"}`), &back); err == nil {
		t.Errorf("unknown door state accepted")
	}
}
