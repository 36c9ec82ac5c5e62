package ledger

import (
	"veralux/core/events"
	"veralux/core/types"
)

// ToggleMigration opens or closes the migration window. Toggles are rate
// limited so the window cannot flap.
func (l *Ledger) ToggleMigration(signers []*types.PublicKey, active bool) error {
	return l.run("toggleMigration", func() error {
		if _, err := l.loadPolicy(true); err != nil {
			return err
		}
		if _, err := l.requireAuthority(signers); err != nil {
			return err
		}
		st, err := l.state.MigrationState()
		if err != nil {
			return err
		}
		if err := st.Toggle(active, l.now().Unix()); err != nil {
			return err
		}
		if err := l.state.SetMigrationState(st); err != nil {
			return err
		}
		l.emitter.Emit(events.MigrationToggled{Active: active})
		return nil
	})
}

// LockForMigration escrows a user's tokens while the window is open.
func (l *Ledger) LockForMigration(user types.PublicKey, amount uint64) error {
	return l.run("lockForMigration", func() error {
		if _, err := l.loadPolicy(true); err != nil {
			return err
		}
		st, err := l.state.MigrationState()
		if err != nil {
			return err
		}
		record, err := l.state.MigrationRecord(user)
		if err != nil {
			return err
		}
		if err := st.Lock(&record, user, amount); err != nil {
			return err
		}
		if err := l.vault.Transfer(user, MigrationEscrow, amount); err != nil {
			return err
		}
		if err := l.state.SetMigrationRecord(user, record); err != nil {
			return err
		}
		if err := l.state.SetMigrationState(st); err != nil {
			return err
		}
		l.emitter.Emit(events.MigrationLocked{User: user, Amount: amount})
		return nil
	})
}

// UnlockForMigration returns a user's full escrowed balance while the window
// is closed.
func (l *Ledger) UnlockForMigration(user types.PublicKey) error {
	return l.run("unlockForMigration", func() error {
		if _, err := l.loadPolicy(true); err != nil {
			return err
		}
		st, err := l.state.MigrationState()
		if err != nil {
			return err
		}
		record, err := l.state.MigrationRecord(user)
		if err != nil {
			return err
		}
		amount, err := st.Unlock(&record)
		if err != nil {
			return err
		}
		if err := l.vault.Transfer(MigrationEscrow, user, amount); err != nil {
			return err
		}
		if err := l.state.SetMigrationRecord(user, record); err != nil {
			return err
		}
		if err := l.state.SetMigrationState(st); err != nil {
			return err
		}
		l.emitter.Emit(events.MigrationUnlocked{User: user, Amount: amount})
		return nil
	})
}

// BurnLockedTokens destroys a user's escrowed balance once migration on the
// destination chain is confirmed. The record is terminal afterwards.
func (l *Ledger) BurnLockedTokens(signers []*types.PublicKey, user types.PublicKey) error {
	return l.run("burnLockedTokens", func() error {
		if _, err := l.loadPolicy(true); err != nil {
			return err
		}
		if _, err := l.requireAuthority(signers); err != nil {
			return err
		}
		st, err := l.state.MigrationState()
		if err != nil {
			return err
		}
		record, err := l.state.MigrationRecord(user)
		if err != nil {
			return err
		}
		amount, err := st.Burn(&record, user)
		if err != nil {
			return err
		}
		if err := l.vault.Burn(MigrationEscrow, amount); err != nil {
			return err
		}
		if err := l.state.SetMigrationRecord(user, record); err != nil {
			return err
		}
		if err := l.state.SetMigrationState(st); err != nil {
			return err
		}
		l.emitter.Emit(events.MigrationBurned{User: user, Amount: amount})
		return nil
	})
}
