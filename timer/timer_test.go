package timer

import "testing"

func TestTimerCountsTicks(t *testing.T) {
	var tm Timer
	if tm.Tick() {
		t.Fatalf("stopped timer reported a timeout")
	}

	tm.Start(3)
	for i := 1; i <= 2; i++ {
		if tm.Tick() {
			t.Fatalf("timed out after %d of 3 ticks", i)
		}
	}
	if !tm.Tick() {
		t.Fatalf("no timeout after 3 ticks")
	}
	if tm.Active() || tm.Tick() {
		t.Errorf("timer should stop after timing out")
	}
}

func TestTimerZeroTicks(t *testing.T) {
	var tm Timer
	tm.Start(0)
	if !tm.Tick() {
		t.Errorf("timer started with zero ticks should time out on the first tick")
	}
}

func TestTimerStop(t *testing.T) {
	var tm Timer
	tm.Start(1)
	tm.Stop()
	if tm.Tick() || tm.Remaining() != 0 {
		t.Errorf("stopped timer still running")
	}
}
