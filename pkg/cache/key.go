package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Hash computes a SHA-256 hash of the input data as a 64-character hex
// string. The full hash is kept to rule out collisions between artifacts.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Fingerprint hashes any JSON-marshalable set of values into one key
// component. Marshaling is deterministic for the struct types used here
// (no maps in key inputs).
func Fingerprint(parts ...any) string {
	data, _ := json.Marshal(parts)
	return Hash(data)
}

// LayoutKey builds the cache key for a computed layout.
func LayoutKey(parts ...any) string {
	return fmt.Sprintf("layout:%s", Fingerprint(parts...))
}

// ArtifactKey builds the cache key for a rendered artifact in the given
// format ("pdf", "json", "svg").
func ArtifactKey(format string, parts ...any) string {
	return fmt.Sprintf("artifact:%s:%s", format, Fingerprint(parts...))
}
