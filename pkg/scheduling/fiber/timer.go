package fiber

// Handle is the Timer returned by a Stub.
//
// It stores only the entry id and the owning list, so cancelling is a
// lookup-and-erase that stays correct while the list is being drained.
type Handle struct {
	id   uint64
	list *scheduledList
}

// ID returns the id of the entry this handle controls. It matches Entry.ID.
func (h *Handle) ID() uint64 {
	if h == nil {
		return 0
	}
	return h.id
}

// Cancel removes the entry from the scheduled list. Calling it after the
// entry has run or was already cancelled is a no-op that returns false.
func (h *Handle) Cancel() bool {
	if h == nil || h.list == nil {
		return false
	}
	return h.list.cancel(h.id)
}

// Active reports whether the entry is still waiting in the scheduled list.
func (h *Handle) Active() bool {
	if h == nil || h.list == nil {
		return false
	}
	return h.list.contains(h.id)
}
