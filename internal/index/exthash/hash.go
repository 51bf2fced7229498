package exthash

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// hashKey renders k deterministically and hashes it with xxhash,
// giving the map a non-negative hash for any comparable key type
// (§4.C "Hash function").
func hashKey[K comparable](k K) uint64 {
	return xxhash.Sum64String(fmt.Sprintf("%v", k))
}

// dirIndex reduces h into [0, mod) via unsigned modulo, which is
// already guaranteed non-negative since hashKey returns a uint64
// (§4.C: "implementations must ensure the modulus correctness even
// when the underlying hash can be negative").
func dirIndex(h uint64, mod int) int {
	return int(h % uint64(mod))
}
