package testutil

import (
	"testing"
	"time"
)

func TestRecorder(t *testing.T) {
	var r Recorder

	a, b := r.Action("a"), r.Action("b")
	a()
	b()
	a()
	r.Record("c")

	AssertEqual(t, r.String(), "a,b,a,c")
	AssertEqual(t, len(r.Calls()), 4)

	calls := r.Calls()
	calls[0] = "mutated"
	AssertEqual(t, r.Calls()[0], "a")

	r.Reset()
	AssertEqual(t, r.String(), "")
}

func TestMockClock(t *testing.T) {
	start := time.Date(2025, time.March, 3, 10, 0, 0, 0, time.UTC)
	c := NewMockClock(start)
	AssertEqual(t, c.Now(), start)

	c.Advance(90 * time.Second)
	AssertEqual(t, c.Now(), start.Add(90*time.Second))

	c.Set(start)
	AssertEqual(t, c.Now(), start)

	if NewMockClock(time.Time{}).Now().IsZero() {
		t.Error("zero start should fall back to a fixed epoch")
	}
}

func TestAssertPanics(t *testing.T) {
	got := AssertPanics(t, func() { panic("boom") })
	AssertEqual(t, got.(string), "boom")
}
