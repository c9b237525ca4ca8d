package onomatopoeia

import (
	"encoding/hex"

	"github.com/zeebo/blake3"
)

// Digest returns the hex blake3-256 digest of an encoded document.
func Digest(data []byte) string {
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:])
}
