package playerview

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// InactivityTimer is a one-shot deadline polled from the UI loop. There
// is never more than one pending deadline: Start replaces any prior one.
type InactivityTimer struct {
	clock    clockwork.Clock
	delay    time.Duration
	fire     func()
	deadline time.Time
	armed    bool
}

// NewInactivityTimer creates a disarmed timer calling fire once delay
// has elapsed after Start.
func NewInactivityTimer(clock clockwork.Clock, delay time.Duration, fire func()) *InactivityTimer {
	return &InactivityTimer{clock: clock, delay: delay, fire: fire}
}

// Start cancels any pending deadline and arms a new one.
func (t *InactivityTimer) Start() {
	t.Stop()
	t.deadline = t.clock.Now().Add(t.delay)
	t.armed = true
}

// Stop cancels the pending deadline, if any.
func (t *InactivityTimer) Stop() {
	t.armed = false
	t.deadline = time.Time{}
}

// Pending reports whether a deadline is armed.
func (t *InactivityTimer) Pending() bool {
	return t.armed
}

// Deadline returns the armed deadline.
func (t *InactivityTimer) Deadline() (time.Time, bool) {
	return t.deadline, t.armed
}

// Poll fires the timer if its deadline has passed. It returns true when
// it fired.
func (t *InactivityTimer) Poll() bool {
	if !t.armed || t.clock.Now().Before(t.deadline) {
		return false
	}
	t.Stop()
	if t.fire != nil {
		t.fire()
	}
	return true
}
