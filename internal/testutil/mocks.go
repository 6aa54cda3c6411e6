package testutil

import (
	"strings"
	"time"
)

// MockClock is a manually advanced time source.
// Fibers only use it to derive schedule labels; nothing waits on it.
type MockClock struct {
	now time.Time
}

// NewMockClock creates a new MockClock starting at the given time.
// If zero time is provided, uses 2024-01-01 00:00:00 UTC.
func NewMockClock(start time.Time) *MockClock {
	if start.IsZero() {
		start = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	}
	return &MockClock{now: start}
}

// Now returns the current mock time.
func (m *MockClock) Now() time.Time {
	return m.now
}

// Advance moves the mock clock forward by the given duration.
func (m *MockClock) Advance(d time.Duration) {
	m.now = m.now.Add(d)
}

// Set sets the mock clock to a specific time.
func (m *MockClock) Set(t time.Time) {
	m.now = t
}

// Recorder captures the order in which labelled actions run.
type Recorder struct {
	calls []string
}

// Action returns a function that records label each time it is called.
func (r *Recorder) Action(label string) func() {
	return func() {
		r.calls = append(r.calls, label)
	}
}

// Record appends label directly.
func (r *Recorder) Record(label string) {
	r.calls = append(r.calls, label)
}

// Calls returns a copy of the recorded labels.
func (r *Recorder) Calls() []string {
	out := make([]string, len(r.calls))
	copy(out, r.calls)
	return out
}

// String joins the recorded labels with commas, e.g. "a1,a2,a3".
func (r *Recorder) String() string {
	return strings.Join(r.calls, ",")
}

// Reset forgets all recorded calls.
func (r *Recorder) Reset() {
	r.calls = nil
}
