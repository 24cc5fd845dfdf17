package hashfunc

import (
	"golang.org/x/exp/constraints"
	"hash/crc32"
)

// Hasher - Interface that permits a user of the UnorderedMap to supply a custom hash algorithm suited for its
// particular distribution of keys.
//
// Implementations must be pure: the same key must always give the same hash value, and keys that are equal
// must give equal hash values. Different keys may well give the same value, such keys end up in the same
// bucket chain.
type Hasher[K any] interface {
	// HashFunc - Given key it generates a hash value. The bucket of the key is the hash value modulo the current
	// bucket count, so there is no need to keep the value within any particular range.
	HashFunc(key K) uint64
}

// HashFunc - Adapter to allow the use of an ordinary function as a Hasher
type HashFunc[K any] func(key K) uint64

// HashFunc - Calls f(key)
func (f HashFunc[K]) HashFunc(key K) uint64 {
	return f(key)
}

// StringHashAlgorithm - Hashes strings using crc32.ChecksumIEEE
type StringHashAlgorithm struct{}

// String - Returns a Hasher for string keys
func String() StringHashAlgorithm {
	return StringHashAlgorithm{}
}

// HashFunc - Given key it generates the crc32 (IEEE) checksum of its bytes
func (StringHashAlgorithm) HashFunc(key string) uint64 {
	return uint64(crc32.ChecksumIEEE([]byte(key)))
}

// IntegerHashAlgorithm - Identity hash for integer keys, negative values are taken as their two's complement.
// With this algorithm the bucket of key k is simply k modulo the bucket count, which makes bucket placement easy
// to predict.
type IntegerHashAlgorithm[K constraints.Integer] struct{}

// Integer - Returns a Hasher for any integer key type
func Integer[K constraints.Integer]() IntegerHashAlgorithm[K] {
	return IntegerHashAlgorithm[K]{}
}

// HashFunc - Given key it returns the key itself
func (IntegerHashAlgorithm[K]) HashFunc(key K) uint64 {
	return uint64(key)
}
