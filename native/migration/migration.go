// Package migration implements the token migration escrow: users lock
// tokens while the window is open, reclaim them while it is closed, and the
// authority burns locked balances to confirm migration on the new chain.
package migration

import (
	"errors"

	"veralux/core/types"
	"veralux/native/common"
)

// ToggleCooldown is the minimum spacing between migration window toggles.
const ToggleCooldown int64 = 7 * 86_400

var (
	// ErrNotActive is returned when locking while the window is closed.
	ErrNotActive = errors.New("migration: migration not active")
	// ErrActive is returned when unlocking while the window is open.
	ErrActive = errors.New("migration: migration active")
	// ErrAlreadyMigrated is returned for a user whose migration completed.
	ErrAlreadyMigrated = errors.New("migration: already migrated")
	// ErrNoLockedTokens is returned when no balance is locked.
	ErrNoLockedTokens = errors.New("migration: no locked tokens")
	// ErrToggleCooldown is returned when the window is toggled too soon.
	ErrToggleCooldown = errors.New("migration: toggle cooldown active")
	// ErrUnknownUser is returned when a burn names the wrong user.
	ErrUnknownUser = errors.New("migration: unknown migration user")
)

// State is the global migration escrow state.
type State struct {
	TotalLocked     uint64 `json:"totalLocked"`
	Active          bool   `json:"active"`
	ToggleTimestamp int64  `json:"toggleTimestamp"`
}

// Toggle opens or closes the migration window, rate limited to once per
// cooldown.
func (s *State) Toggle(active bool, now int64) error {
	if now-s.ToggleTimestamp < ToggleCooldown {
		return ErrToggleCooldown
	}
	s.Active = active
	s.ToggleTimestamp = now
	return nil
}

// Record is one user's migration escrow position. Migrated is terminal.
type Record struct {
	User         types.PublicKey `json:"user"`
	LockedAmount uint64          `json:"lockedAmount"`
	Migrated     bool            `json:"migrated"`
}

// Lock escrows amount for the user while the window is open.
func (s *State) Lock(r *Record, user types.PublicKey, amount uint64) error {
	if !s.Active {
		return ErrNotActive
	}
	if r.Migrated {
		return ErrAlreadyMigrated
	}
	locked, err := common.CheckedAdd(r.LockedAmount, amount)
	if err != nil {
		return err
	}
	total, err := common.CheckedAdd(s.TotalLocked, amount)
	if err != nil {
		return err
	}
	r.User = user
	r.LockedAmount = locked
	s.TotalLocked = total
	return nil
}

// Unlock returns the user's full locked balance while the window is closed.
func (s *State) Unlock(r *Record) (uint64, error) {
	if s.Active {
		return 0, ErrActive
	}
	if r.Migrated {
		return 0, ErrAlreadyMigrated
	}
	if r.LockedAmount == 0 {
		return 0, ErrNoLockedTokens
	}
	amount := r.LockedAmount
	r.LockedAmount = 0
	s.TotalLocked -= amount
	return amount, nil
}

// Burn destroys the user's locked balance and marks the migration complete.
func (s *State) Burn(r *Record, user types.PublicKey) (uint64, error) {
	if r.User != user {
		return 0, ErrUnknownUser
	}
	if r.LockedAmount == 0 {
		return 0, ErrNoLockedTokens
	}
	amount := r.LockedAmount
	r.LockedAmount = 0
	r.Migrated = true
	s.TotalLocked -= amount
	return amount, nil
}
