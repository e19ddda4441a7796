package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// hashKey builds a namespaced cache key from a fingerprint. Parts are
// JSON-marshaled so a fingerprint can mix strings, layout specs and plot
// lists, then hashed so key length stays fixed however large the
// fingerprint grows.
func hashKey(namespace string, parts ...any) string {
	data, _ := json.Marshal(parts)
	return namespace + ":" + Hash(data)
}

// Hash returns the sha256 digest of data as a 64-character hex string.
// Keys carry the full digest, never a truncation.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
