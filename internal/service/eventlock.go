package service

import "sync"

// EventLocks serializes mutations per event id. Two concurrent guest
// adds on the same event must not both pass the quota check against a
// stale remaining snapshot; holding the event's lock across
// read-check-write makes the check and the commit atomic at event
// scope. Different events never contend. The roster, access and
// dispatch services share one registry.
type EventLocks struct {
	mu    sync.Mutex
	locks map[int32]*sync.Mutex
}

func NewEventLocks() *EventLocks {
	return &EventLocks{locks: make(map[int32]*sync.Mutex)}
}

// Lock acquires the lock for an event id and returns the unlock func.
func (e *EventLocks) Lock(eventID int32) func() {
	e.mu.Lock()
	l, ok := e.locks[eventID]
	if !ok {
		l = &sync.Mutex{}
		e.locks[eventID] = l
	}
	e.mu.Unlock()

	l.Lock()
	return l.Unlock
}
