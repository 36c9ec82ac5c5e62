package events

import "veralux/core/types"

const (
	// TypeMigrationLocked is emitted when tokens are locked for migration.
	TypeMigrationLocked = "migration.locked"
	// TypeMigrationUnlocked is emitted when locked tokens are returned.
	TypeMigrationUnlocked = "migration.unlocked"
	// TypeMigrationBurned is emitted when locked tokens are burned.
	TypeMigrationBurned = "migration.burned"
	// TypeMigrationToggled is emitted when the migration window opens/closes.
	TypeMigrationToggled = "migration.toggled"
)

// MigrationLocked captures a user locking tokens into the migration escrow.
type MigrationLocked struct {
	User   types.PublicKey
	Amount uint64
}

// EventType satisfies the Event interface.
func (MigrationLocked) EventType() string { return TypeMigrationLocked }

// MigrationUnlocked captures a user reclaiming locked tokens.
type MigrationUnlocked struct {
	User   types.PublicKey
	Amount uint64
}

// EventType satisfies the Event interface.
func (MigrationUnlocked) EventType() string { return TypeMigrationUnlocked }

// MigrationBurned captures the terminal burn of a user's locked tokens.
type MigrationBurned struct {
	User   types.PublicKey
	Amount uint64
}

// EventType satisfies the Event interface.
func (MigrationBurned) EventType() string { return TypeMigrationBurned }

// MigrationToggled captures a change of the migration window.
type MigrationToggled struct {
	Active bool
}

// EventType satisfies the Event interface.
func (MigrationToggled) EventType() string { return TypeMigrationToggled }
