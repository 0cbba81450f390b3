// Package fingerprint derives short, stable identifiers for hull output so
// two runs can be compared at a glance.
package fingerprint

import (
	"bytes"
	"encoding/hex"

	"golang.org/x/crypto/blake2b"

	"convexhull/internal/domain"
	"convexhull/internal/store"
)

// Sum returns a short hex fingerprint of b.
//
// It hashes with BLAKE2b-256 and truncates to 10 bytes (20 hex chars).
func Sum(b []byte) string {
	sum := blake2b.Sum256(b)
	return hex.EncodeToString(sum[:10])
}

// Hull fingerprints the serialized form of h, so equal fingerprints mean
// byte-identical hull files.
func Hull(h domain.Hull) (string, error) {
	var buf bytes.Buffer
	if err := store.EncodeHull(&buf, h); err != nil {
		return "", err
	}
	return Sum(buf.Bytes()), nil
}
