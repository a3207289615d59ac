package utils

import (
	"encoding/hex"
	"hash"

	"golang.org/x/crypto/blake2b"
)

// NewChecksum returns an unkeyed BLAKE2b-256 hash used to fingerprint
// evidence blobs while they are streamed to disk.
func NewChecksum() hash.Hash {
	// New256 only fails for keys longer than 64 bytes.
	h, _ := blake2b.New256(nil)
	return h
}

// Checksum returns the hex encoded BLAKE2b-256 digest of data.
func Checksum(data []byte) string {
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// HexSum returns the hex encoded current digest of h.
func HexSum(h hash.Hash) string {
	return hex.EncodeToString(h.Sum(nil))
}
