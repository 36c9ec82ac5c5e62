package common

import "sync"

// Guard serializes state-mutating ledger operations. At most one operation
// holds the guard at a time; concurrent attempts fail fast instead of
// queueing so a stuck caller cannot build up a backlog.
type Guard struct {
	mu     sync.Mutex
	locked bool
}

// Acquire claims the guard and returns a release function. Callers must
// invoke the release exactly once, typically via defer.
func (g *Guard) Acquire() (func(), error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.locked {
		return nil, ErrOperationInFlight
	}
	g.locked = true
	return func() {
		g.mu.Lock()
		g.locked = false
		g.mu.Unlock()
	}, nil
}
