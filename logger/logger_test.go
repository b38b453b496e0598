package logger

import (
	"bytes"
	"strings"
	"sync"
	"testing"
)

var waitGroup sync.WaitGroup

func loopGetLogger(t *testing.T, routineNum int) {
	defer waitGroup.Done()
	for i := 0; i < 1000; i++ {
		if GetLogger() == nil {
			t.Errorf("GetLogger() = nil in goroutine %d, expected a non-nil logger", routineNum)
		}
	}
}

func TestGetLogger(t *testing.T) {
	if GetLogger() == nil {
		t.Errorf("GetLogger() = nil, expected a non-nil logger")
	}
	if GetLogger() != GetLogger() {
		t.Errorf("GetLogger() returned different loggers")
	}

	waitGroup.Add(2)
	go loopGetLogger(t, 1)
	go loopGetLogger(t, 2)
	waitGroup.Wait()
}

func TestComponentLoggerTagsOutput(t *testing.T) {
	var buf bytes.Buffer
	base := New(&buf)
	log := tagged(&base, "fsm")
	log.Info().Int("floor", 4).Msg("Door closed")

	out := buf.String()
	for _, want := range []string{"component=fsm", "floor=4", "Door closed"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q lacks %q", out, want)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("output to a buffer is coloured: %q", out)
	}
}

func TestComponentIsChildOfProcessLogger(t *testing.T) {
	if Component("feed") == GetLogger() {
		t.Errorf("Component returned the process logger itself")
	}
}
