// Package multisig validates the signer sets that authorize privileged
// ledger operations.
package multisig

import (
	"errors"

	"veralux/core/types"
)

// MaxOwners bounds the owner set.
const MaxOwners = 5

var (
	// ErrInvalidConfig is returned for an owner set or threshold outside the
	// permitted shape.
	ErrInvalidConfig = errors.New("multisig: invalid owner set or threshold")
	// ErrInsufficientSigners is returned when fewer unique signers than the
	// threshold were provided.
	ErrInsufficientSigners = errors.New("multisig: insufficient signers")
	// ErrSignerNotOwner is returned when a provided signer is not an owner.
	ErrSignerNotOwner = errors.New("multisig: signer is not an owner")
)

// Multisig is the owner set and approval threshold for privileged calls.
type Multisig struct {
	Owners    []types.PublicKey `json:"owners"`
	Threshold uint8             `json:"threshold"`
}

// Validate checks the configuration shape: one to five unique non-zero
// owners and a threshold of at least two covered by the owner count.
func (m Multisig) Validate() error {
	if len(m.Owners) == 0 || len(m.Owners) > MaxOwners {
		return ErrInvalidConfig
	}
	if m.Threshold < 2 || int(m.Threshold) > len(m.Owners) {
		return ErrInvalidConfig
	}
	seen := make(map[types.PublicKey]struct{}, len(m.Owners))
	for _, owner := range m.Owners {
		if owner.IsZero() {
			return ErrInvalidConfig
		}
		if _, dup := seen[owner]; dup {
			return ErrInvalidConfig
		}
		seen[owner] = struct{}{}
	}
	return nil
}

// IsOwner reports whether the key belongs to the owner set.
func (m Multisig) IsOwner(key types.PublicKey) bool {
	for _, owner := range m.Owners {
		if owner == key {
			return true
		}
	}
	return false
}

// ValidateSigners checks that the provided signers authorize a privileged
// call. Nil entries are skipped and duplicates count once. An empty owner
// set accepts any signers; it only occurs before the genesis configuration
// has been installed.
func (m Multisig) ValidateSigners(signers []*types.PublicKey) error {
	if len(m.Owners) == 0 {
		return nil
	}
	unique := make(map[types.PublicKey]struct{}, len(signers))
	for _, signer := range signers {
		if signer == nil || signer.IsZero() {
			continue
		}
		unique[*signer] = struct{}{}
	}
	if len(unique) < int(m.Threshold) {
		return ErrInsufficientSigners
	}
	for signer := range unique {
		if !m.IsOwner(signer) {
			return ErrSignerNotOwner
		}
	}
	return nil
}
