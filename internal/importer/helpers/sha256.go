// Package helpers holds small utilities shared by the import pipeline.
package helpers

import (
	"crypto/sha256"
	"encoding/hex"
)

// Sha256String returns the hex encoded SHA256 hash of the input. Import
// fingerprints are stored in this representation.
func Sha256String(input string) string {
	sum := sha256.Sum256([]byte(input))
	return hex.EncodeToString(sum[:])
}
