package project

import (
	"crypto/sha256"
)

// Digest - фиксированный 256 битный хеш (совместим с source.File.Hash)
type Digest [32]byte

// Combine hashes content followed by every part in order: H(content || p1 || p2 ...).
// Callers must pass parts in a fixed order.
func Combine(content Digest, parts ...Digest) Digest {
	h := sha256.New()
	_, _ = h.Write(content[:])
	for _, d := range parts {
		_, _ = h.Write(d[:])
	}
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}

// StringDigest hashes s. Used to fold options into cache keys.
func StringDigest(s string) Digest {
	return sha256.Sum256([]byte(s))
}
