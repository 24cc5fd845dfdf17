package hash

import (
	"hash/maphash"
)

// ComparableHashAlgorithm - The internally used hash algorithm for tables created without a custom hashfunc.Hasher.
// It is implemented using maphash.Comparable with a seed drawn when the algorithm is created, so hash values
// are stable for the lifetime of one table but differ between tables.
type ComparableHashAlgorithm[K comparable] struct {
	seed maphash.Seed
}

// NewComparableHashAlgorithm - Returns a pointer to a new ComparableHashAlgorithm instance
func NewComparableHashAlgorithm[K comparable]() *ComparableHashAlgorithm[K] {
	return &ComparableHashAlgorithm[K]{seed: maphash.MakeSeed()}
}

// HashFunc - Given key it generates a 64 bit hash value
func (C *ComparableHashAlgorithm[K]) HashFunc(key K) uint64 {
	return maphash.Comparable(C.seed, key)
}
