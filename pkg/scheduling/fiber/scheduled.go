package fiber

import (
	"time"
)

// Kind classifies a scheduled entry by how it was created.
type Kind string

const (
	KindOnce     Kind = "once"
	KindInterval Kind = "interval"
	KindCron     Kind = "cron"
)

// Entry describes a scheduled action.
//
// Delay and Interval are labels recorded at scheduling time. No clock is
// consulted when entries run: the driver decides when that happens.
type Entry struct {
	ID       uint64
	Action   Action
	Delay    time.Duration
	Interval time.Duration // Zero for one-shot entries
	Cron     string        // Set only for entries created by ScheduleCron
}

// Kind reports whether the entry is one-shot, recurring or cron based.
func (e Entry) Kind() Kind {
	switch {
	case e.Cron != "":
		return KindCron
	case e.Interval > 0:
		return KindInterval
	default:
		return KindOnce
	}
}

// scheduledList holds scheduled entries in the order they were added.
type scheduledList struct {
	deque[Entry]
	onCancel func(id uint64)
}

func (l *scheduledList) add(e Entry) *Handle {
	id := l.pushBack(e)
	l.items[len(l.items)-1].v.ID = id
	return &Handle{id: id, list: l}
}

func (l *scheduledList) cancel(id uint64) bool {
	if !l.remove(id) {
		return false
	}
	if l.onCancel != nil {
		l.onCancel(id)
	}
	return true
}

func (l *scheduledList) entries() []Entry {
	nodes := l.nodes()
	out := make([]Entry, len(nodes))
	for i, n := range nodes {
		out[i] = n.v
	}
	return out
}

func nonNegative(d time.Duration) time.Duration {
	if d < 0 {
		return 0
	}
	return d
}
