package sim

import (
	"fmt"
	"io"

	"elevsim/elevator"
)

const rowFormat = "%4v | %5v | %11v | %8v | %13v | %-12v | %-12v\n"

// TableWriter prints one row per tick, with a header before the first.
type TableWriter struct {
	w          io.Writer
	headerDone bool
}

func NewTableWriter(w io.Writer) *TableWriter {
	return &TableWriter{w: w}
}

func (t *TableWriter) Observe(tick int, s elevator.State) error {
	if !t.headerDone {
		if _, err := fmt.Fprintf(t.w, rowFormat, "Tick", "Floor", "Direction", "Door", "Activity", "UpQueue", "DownQueue"); err != nil {
			return err
		}
		t.headerDone = true
	}
	_, err := fmt.Fprintf(t.w, rowFormat, tick, s.Floor, s.Dirn, s.Door, s.Behaviour, fmt.Sprint(s.UpQueue), fmt.Sprint(s.DownQueue))
	return err
}
