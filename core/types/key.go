package types

import (
	"encoding/hex"
	"fmt"
)

// PublicKey identifies an account, program, or signer on the ledger. The
// policy core treats keys as opaque 32-byte identities; signature
// verification happens in the host runtime before an operation is invoked.
type PublicKey [32]byte

// ZeroKey is the all-zero identity. It never refers to a real account.
var ZeroKey PublicKey

// IsZero reports whether the key is the all-zero identity.
func (k PublicKey) IsZero() bool { return k == ZeroKey }

// Bytes returns a copy of the raw key bytes.
func (k PublicKey) Bytes() []byte { return append([]byte(nil), k[:]...) }

// Hex renders the key as lowercase hex for logs and events.
func (k PublicKey) Hex() string { return hex.EncodeToString(k[:]) }

// String implements fmt.Stringer.
func (k PublicKey) String() string { return k.Hex() }

// KeyFromBytes converts a raw 32-byte slice into a PublicKey.
func KeyFromBytes(b []byte) (PublicKey, error) {
	var k PublicKey
	if len(b) != len(k) {
		return ZeroKey, fmt.Errorf("types: invalid key length %d", len(b))
	}
	copy(k[:], b)
	return k, nil
}

// KeyFromHex parses a 64-character hex string into a PublicKey.
func KeyFromHex(s string) (PublicKey, error) {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return ZeroKey, fmt.Errorf("types: invalid key hex: %w", err)
	}
	return KeyFromBytes(raw)
}
