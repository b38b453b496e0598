package timer

// Timer counts down in simulation ticks. The zero value is stopped.
type Timer struct {
	remaining int
	active    bool
}

func (t *Timer) Start(ticks int) {
	t.remaining = ticks
	t.active = true
}

func (t *Timer) Stop() {
	t.remaining = 0
	t.active = false
}

// Tick advances the timer one step and reports whether it has run out.
// A timer started with zero ticks runs out on its first Tick.
func (t *Timer) Tick() bool {
	if !t.active {
		return false
	}
	if t.remaining > 0 {
		t.remaining--
	}
	if t.remaining > 0 {
		return false
	}
	t.active = false
	return true
}

func (t *Timer) Remaining() int {
	return t.remaining
}

func (t *Timer) Active() bool {
	return t.active
}
