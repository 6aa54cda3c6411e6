package fiber

import (
	"testing"
	"time"

	"github.com/vnykmshr/stubfiber/internal/testutil"
)

func TestScheduled_CancelBeforeExecution(t *testing.T) {
	s := New()
	invoked := false

	timer := s.Schedule(func() { invoked = true }, 100*time.Millisecond)
	testutil.AssertEqual(t, s.ScheduledCount(), 1)

	testutil.AssertEqual(t, timer.Cancel(), true)
	testutil.AssertEqual(t, s.ScheduledCount(), 0)

	s.ExecuteAllScheduled()
	s.ExecuteAllScheduledUntilEmpty()
	testutil.AssertEqual(t, invoked, false)
}

func TestScheduled_CancelIsIdempotent(t *testing.T) {
	s := New()
	timer := s.Schedule(func() {}, time.Second)

	testutil.AssertEqual(t, timer.Cancel(), true)
	testutil.AssertEqual(t, timer.Cancel(), false)

	var zero *Handle
	testutil.AssertEqual(t, zero.Cancel(), false)
	testutil.AssertEqual(t, zero.Active(), false)
	testutil.AssertEqual(t, zero.ID(), uint64(0))
}

func TestScheduled_HandleInertAfterExecution(t *testing.T) {
	s := New()
	timer := s.Schedule(func() {}, 0).(*Handle)

	testutil.AssertEqual(t, timer.Active(), true)
	s.ExecuteAllScheduled()
	testutil.AssertEqual(t, timer.Active(), false)
	testutil.AssertEqual(t, timer.Cancel(), false)
}

func TestScheduled_EntryLabels(t *testing.T) {
	s := New()

	once := s.Schedule(func() {}, 250*time.Millisecond).(*Handle)
	every := s.ScheduleOnInterval(func() {}, time.Second, 5*time.Second).(*Handle)
	clamped := s.ScheduleOnInterval(func() {}, -time.Second, -time.Second)

	entries := s.Scheduled()
	testutil.AssertEqual(t, len(entries), 3)

	testutil.AssertEqual(t, entries[0].ID, once.ID())
	testutil.AssertEqual(t, entries[0].Delay, 250*time.Millisecond)
	testutil.AssertEqual(t, entries[0].Kind(), KindOnce)

	testutil.AssertEqual(t, entries[1].ID, every.ID())
	testutil.AssertEqual(t, entries[1].Delay, time.Second)
	testutil.AssertEqual(t, entries[1].Interval, 5*time.Second)
	testutil.AssertEqual(t, entries[1].Kind(), KindInterval)

	testutil.AssertEqual(t, entries[2].ID, clamped.(*Handle).ID())
	testutil.AssertEqual(t, entries[2].Delay, time.Duration(0))
	testutil.AssertEqual(t, entries[2].Kind(), KindOnce)
}

func TestScheduled_ExecuteInInsertionOrder(t *testing.T) {
	s := New()
	var rec testutil.Recorder

	// Delay labels do not reorder entries.
	s.Schedule(rec.Action("late"), time.Hour)
	s.Schedule(rec.Action("soon"), time.Millisecond)
	s.ScheduleOnInterval(rec.Action("tick"), 0, time.Second)

	s.ExecuteAllScheduled()
	testutil.AssertEqual(t, rec.String(), "late,soon,tick")
}

func TestScheduled_IntervalNotRearmed(t *testing.T) {
	s := New()
	runs := 0
	s.ScheduleOnInterval(func() { runs++ }, time.Second, time.Second)

	s.ExecuteAllScheduled()
	s.ExecuteAllScheduled()
	s.ExecuteAllScheduledUntilEmpty()

	testutil.AssertEqual(t, runs, 1)
	testutil.AssertEqual(t, s.ScheduledCount(), 0)
}

func TestScheduled_DrainVersusGeneration(t *testing.T) {
	tests := []struct {
		name      string
		execute   func(*Stub)
		wantCalls string
		wantLeft  int
	}{
		{"until empty", (*Stub).ExecuteAllScheduledUntilEmpty, "t1,t2", 0},
		{"snapshot", (*Stub).ExecuteAllScheduled, "t1", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			var rec testutil.Recorder

			s.Schedule(func() {
				rec.Record("t1")
				s.Schedule(rec.Action("t2"), time.Second)
			}, time.Second)

			tt.execute(s)

			testutil.AssertEqual(t, rec.String(), tt.wantCalls)
			testutil.AssertEqual(t, s.ScheduledCount(), tt.wantLeft)
		})
	}
}

func TestScheduled_CancelDuringPass(t *testing.T) {
	for _, execute := range []func(*Stub){
		(*Stub).ExecuteAllScheduled,
		(*Stub).ExecuteAllScheduledUntilEmpty,
	} {
		s := New()
		var rec testutil.Recorder

		var second Timer
		s.Schedule(func() {
			rec.Record("first")
			testutil.AssertEqual(t, second.Cancel(), true)
		}, 0)
		second = s.Schedule(rec.Action("second"), 0)
		s.Schedule(rec.Action("third"), 0)

		execute(s)

		testutil.AssertEqual(t, rec.String(), "first,third")
		testutil.AssertEqual(t, s.ScheduledCount(), 0)
	}
}

func TestScheduled_PanicLeavesRemainder(t *testing.T) {
	s := New()
	var rec testutil.Recorder

	s.Schedule(rec.Action("t1"), 0)
	bad := s.Schedule(func() { panic("boom") }, 0)
	s.Schedule(rec.Action("t3"), 0)

	testutil.AssertPanics(t, s.ExecuteAllScheduledUntilEmpty)
	testutil.AssertEqual(t, rec.String(), "t1")
	testutil.AssertEqual(t, s.ScheduledCount(), 1)
	testutil.AssertEqual(t, bad.Cancel(), false)
}

func TestScheduled_CancelAll(t *testing.T) {
	s := New()
	a := s.Schedule(func() {}, 0)
	s.ScheduleOnInterval(func() {}, 0, time.Second)

	testutil.AssertEqual(t, s.CancelAllScheduled(), 2)
	testutil.AssertEqual(t, s.ScheduledCount(), 0)
	testutil.AssertEqual(t, a.Cancel(), false)
}

func TestScheduled_ScheduleNotAffectedByImmediateMode(t *testing.T) {
	s := New()
	invoked := false

	s.Schedule(func() { invoked = true }, 0)

	testutil.AssertEqual(t, s.Immediate(), true)
	testutil.AssertEqual(t, invoked, false)
	testutil.AssertEqual(t, s.ScheduledCount(), 1)
}
