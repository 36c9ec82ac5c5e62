package storage

import "lukechampine.com/blake3"

// RecordKey derives a deterministic storage key from a record tag and its
// identifying parts. Records addressed by account keep the same address for
// the life of the ledger.
func RecordKey(tag string, parts ...[]byte) []byte {
	h := blake3.New(32, nil)
	h.Write([]byte(tag))
	for _, part := range parts {
		h.Write([]byte{0})
		h.Write(part)
	}
	return h.Sum(nil)
}
