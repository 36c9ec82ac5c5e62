package common

import "time"

// Time-lock delays applied to queued administrative actions.
const (
	// DelayAdmin gates pause, resume, multisig rotation and treasury
	// withdrawal confirmations.
	DelayAdmin = 24 * time.Hour
	// DelayWhitelist gates contract whitelist changes.
	DelayWhitelist = 72 * time.Hour
)

// Pending holds a queued action awaiting its time lock. The zero value means
// no action is queued.
type Pending[T any] struct {
	Value       T     `json:"value"`
	InitiatedAt int64 `json:"initiatedAt"`
	Set         bool  `json:"set"`
}

// Initiate queues a new action, replacing any previously queued one.
func (p *Pending[T]) Initiate(value T, now time.Time) {
	p.Value = value
	p.InitiatedAt = now.Unix()
	p.Set = true
}

// Confirm returns the queued value once its delay has elapsed and clears the
// slot. ErrNoPendingAction is returned for an empty slot, ErrTimeLockNotMet
// while the lock is still active.
func (p *Pending[T]) Confirm(delay time.Duration, now time.Time) (T, error) {
	var zero T
	if !p.Set {
		return zero, ErrNoPendingAction
	}
	if now.Unix() < p.InitiatedAt+int64(delay/time.Second) {
		return zero, ErrTimeLockNotMet
	}
	value := p.Value
	*p = Pending[T]{}
	return value, nil
}
