package migration

import (
	"errors"
	"testing"

	"veralux/core/types"
)

func user() types.PublicKey {
	var k types.PublicKey
	k[0] = 4
	return k
}

func TestToggleCooldownEnforced(t *testing.T) {
	var s State
	if err := s.Toggle(true, ToggleCooldown); err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	if err := s.Toggle(false, ToggleCooldown+ToggleCooldown-1); !errors.Is(err, ErrToggleCooldown) {
		t.Fatalf("early toggle: got %v", err)
	}
	if err := s.Toggle(false, 2*ToggleCooldown); err != nil {
		t.Fatalf("toggle after cooldown: %v", err)
	}
	if s.Active {
		t.Fatal("window should be closed")
	}
}

func TestLockRequiresActiveWindow(t *testing.T) {
	var s State
	var r Record
	if err := s.Lock(&r, user(), 100); !errors.Is(err, ErrNotActive) {
		t.Fatalf("closed window: got %v", err)
	}
	s.Active = true
	if err := s.Lock(&r, user(), 100); err != nil {
		t.Fatalf("lock: %v", err)
	}
	if err := s.Lock(&r, user(), 50); err != nil {
		t.Fatalf("second lock: %v", err)
	}
	if r.LockedAmount != 150 || s.TotalLocked != 150 {
		t.Fatalf("locked %d total %d, want 150/150", r.LockedAmount, s.TotalLocked)
	}
}

func TestUnlockRequiresClosedWindow(t *testing.T) {
	s := State{Active: true}
	var r Record
	if err := s.Lock(&r, user(), 100); err != nil {
		t.Fatalf("lock: %v", err)
	}
	if _, err := s.Unlock(&r); !errors.Is(err, ErrActive) {
		t.Fatalf("open window: got %v", err)
	}
	s.Active = false
	amount, err := s.Unlock(&r)
	if err != nil || amount != 100 {
		t.Fatalf("unlock: got %d, %v", amount, err)
	}
	if r.LockedAmount != 0 || s.TotalLocked != 0 {
		t.Fatalf("locked %d total %d after unlock", r.LockedAmount, s.TotalLocked)
	}
	if _, err := s.Unlock(&r); !errors.Is(err, ErrNoLockedTokens) {
		t.Fatalf("empty unlock: got %v", err)
	}
}

func TestBurnIsTerminal(t *testing.T) {
	s := State{Active: true}
	var r Record
	if err := s.Lock(&r, user(), 100); err != nil {
		t.Fatalf("lock: %v", err)
	}
	var other types.PublicKey
	other[0] = 9
	if _, err := s.Burn(&r, other); !errors.Is(err, ErrUnknownUser) {
		t.Fatalf("wrong user: got %v", err)
	}
	amount, err := s.Burn(&r, user())
	if err != nil || amount != 100 {
		t.Fatalf("burn: got %d, %v", amount, err)
	}
	if !r.Migrated || s.TotalLocked != 0 {
		t.Fatalf("record %+v total %d after burn", r, s.TotalLocked)
	}
	if err := s.Lock(&r, user(), 10); !errors.Is(err, ErrAlreadyMigrated) {
		t.Fatalf("relock after migration: got %v", err)
	}
}
