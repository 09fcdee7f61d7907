package busy

import "sync"

// Tracker records which entity ids currently have a mutating action in flight.
// At most one action per id is allowed at a time; actions on different ids are
// independent. There is no queueing: a second action on a busy id is rejected
// at the boundary and the caller decides whether to retry after completion.
type Tracker struct {
	mu  sync.Mutex
	ids map[string]struct{}
}

// NewTracker creates an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{
		ids: make(map[string]struct{}),
	}
}

// Acquire marks id as busy. It returns false without blocking when an action
// for id is already in flight.
func (t *Tracker) Acquire(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, inFlight := t.ids[id]; inFlight {
		return false
	}
	t.ids[id] = struct{}{}
	return true
}

// Release clears the busy mark for id. Releasing an id that is not busy is a no-op.
func (t *Tracker) Release(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	delete(t.ids, id)
}

// IsBusy reports whether an action for id is currently in flight.
func (t *Tracker) IsBusy(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	_, inFlight := t.ids[id]
	return inFlight
}
