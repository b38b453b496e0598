package requests

import (
	"reflect"
	"testing"
)

func newFloorSet(floors ...int) *floorSet {
	fs := &floorSet{}
	fs.addAll(floors)
	return fs
}

func TestFloorSetKeepsOrderAndUniqueness(t *testing.T) {
	fs := newFloorSet(7, 2, 9, 2, 4)
	if got, want := fs.ascending(), []int{2, 4, 7, 9}; !reflect.DeepEqual(got, want) {
		t.Errorf("ascending() = %v, want %v", got, want)
	}
	if got, want := fs.descending(), []int{9, 7, 4, 2}; !reflect.DeepEqual(got, want) {
		t.Errorf("descending() = %v, want %v", got, want)
	}
	if fs.add(4) {
		t.Errorf("add(4) on a set holding 4 returned true")
	}
	if !fs.remove(7) || fs.remove(7) {
		t.Errorf("remove(7) should succeed once")
	}
	if fs.contains(7) || fs.len() != 3 {
		t.Errorf("after remove: %v", fs.ascending())
	}
}

func TestFloorSetNeighbours(t *testing.T) {
	fs := newFloorSet(2, 5, 8)
	tests := []struct {
		name   string
		query  func(int) (int, bool)
		arg    int
		want   int
		wantOk bool
	}{
		{"ceiling exact", fs.ceiling, 5, 5, true},
		{"ceiling between", fs.ceiling, 6, 8, true},
		{"ceiling past end", fs.ceiling, 9, 0, false},
		{"higher exact", fs.higher, 5, 8, true},
		{"higher past end", fs.higher, 8, 0, false},
		{"floor exact", fs.floor, 5, 5, true},
		{"floor between", fs.floor, 4, 2, true},
		{"floor before start", fs.floor, 1, 0, false},
		{"lower exact", fs.lower, 5, 2, true},
		{"lower before start", fs.lower, 2, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.query(tt.arg)
			if got != tt.want || ok != tt.wantOk {
				t.Errorf("got (%d, %v), want (%d, %v)", got, ok, tt.want, tt.wantOk)
			}
		})
	}
}

func TestFloorSetTake(t *testing.T) {
	fs := newFloorSet(1, 3, 5, 7)
	if got, want := fs.takeBelow(5), []int{1, 3}; !reflect.DeepEqual(got, want) {
		t.Errorf("takeBelow(5) = %v, want %v", got, want)
	}
	if got, want := fs.ascending(), []int{5, 7}; !reflect.DeepEqual(got, want) {
		t.Errorf("after takeBelow: %v, want %v", got, want)
	}

	fs = newFloorSet(1, 3, 5, 7)
	if got, want := fs.takeFrom(5), []int{5, 7}; !reflect.DeepEqual(got, want) {
		t.Errorf("takeFrom(5) = %v, want %v", got, want)
	}
	fs.add(4)
	if got, want := fs.ascending(), []int{1, 3, 4}; !reflect.DeepEqual(got, want) {
		t.Errorf("after takeFrom and add: %v, want %v", got, want)
	}
}
