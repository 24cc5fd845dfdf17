// Package unorderedmap implements a generic hash table mapping unique keys to values. Collisions are resolved
// by separate chaining and the table grows automatically, driven by a max load factor, to a prime number of
// buckets.
//
// An UnorderedMap is not safe for concurrent use. Callers sharing one between goroutines must serialize every
// operation, iteration included, with their own mutual exclusion.
package unorderedmap

import (
	"fmt"
	"github.com/gostonefire/unorderedmap/hashfunc"
	"github.com/gostonefire/unorderedmap/internal/conf"
	"github.com/gostonefire/unorderedmap/internal/forwardlist"
	"github.com/gostonefire/unorderedmap/internal/hash"
	"github.com/gostonefire/unorderedmap/internal/utils"
	"github.com/gostonefire/unorderedmap/internal/vector"
	"math"
)

// Entry - A key/value pair stored in the table. Two entries are equal if their keys are equal, values are
// not compared.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// Equal - Returns true if other has the same key
func (E Entry[K, V]) Equal(other Entry[K, V]) bool {
	return E.Key == other.Key
}

// Conf - Is a struct used in the call to NewFromConf holding configuration for the new table.
//   - InitialBuckets is the requested number of buckets, it is rounded up to the nearest prime (at least 2)
//   - MaxLoadFactor is the average number of entries per bucket at which the table grows, zero gives the default 1.0
//   - Hasher is the hash algorithm to use, nil gives the internal algorithm
type Conf[K comparable] struct {
	InitialBuckets int
	MaxLoadFactor  float64
	Hasher         hashfunc.Hasher[K]
}

// HashMapInfo - Information structure containing some information about the table
//   - BucketCount is the current number of buckets
//   - MaxLoadFactor is the load factor at or above which the next insert grows the table
//   - InternalAlgorithm is true if the table uses the internal hash algorithm
type HashMapInfo struct {
	BucketCount       int
	MaxLoadFactor     float64
	InternalAlgorithm bool
}

// HashMapStat - Statistics on the overall usage and distribution over buckets
//   - Entries is the total number of entries stored
//   - BucketCount is the current number of buckets
//   - EmptyBuckets is the number of buckets with an empty chain
//   - LongestChain is the length of the longest chain in any bucket
//   - LoadFactor is Entries divided by BucketCount
//   - BucketDistribution is the number of entries stored in each bucket
type HashMapStat struct {
	Entries            int
	BucketCount        int
	EmptyBuckets       int
	LongestChain       int
	LoadFactor         float64
	BucketDistribution []int
}

// UnorderedMap - The main implementation struct
type UnorderedMap[K comparable, V any] struct {
	buckets           *vector.Vector[forwardlist.List[Entry[K, V]]]
	hashAlgorithm     hashfunc.Hasher[K]
	internalAlgorithm bool
	currentSize       int
	maxLoadFactor     float64
}

// New - Returns a new empty table with default configuration and the internal hash algorithm
func New[K comparable, V any]() *UnorderedMap[K, V] {
	return newUnorderedMap[K, V](conf.DefaultInitialBuckets, conf.DefaultMaxLoadFactor, nil)
}

// NewUnorderedMap - Returns a new empty table.
//   - initialBuckets is the requested number of buckets, it is rounded up to the nearest prime (at least 2)
//   - hasher is an optional entry to provide a custom hash algorithm following the hashfunc.Hasher interface.
//
// It returns:
//   - unorderedMap is a pointer to an UnorderedMap struct
//   - err is a normal go Error which should be nil if everything went ok
func NewUnorderedMap[K comparable, V any](initialBuckets int, hasher hashfunc.Hasher[K]) (
	unorderedMap *UnorderedMap[K, V],
	err error,
) {
	return NewFromConf[K, V](Conf[K]{InitialBuckets: initialBuckets, Hasher: hasher})
}

// NewFromConf - Returns a new empty table configured by mapConf, see Conf for the meaning of each field.
func NewFromConf[K comparable, V any](mapConf Conf[K]) (unorderedMap *UnorderedMap[K, V], err error) {
	// Check if initialBuckets is valid
	if mapConf.InitialBuckets < 0 {
		err = fmt.Errorf("initial buckets can not be negative")
		return
	}

	// Zero means default, anything else must be a usable threshold
	maxLoadFactor := mapConf.MaxLoadFactor
	if maxLoadFactor == 0 {
		maxLoadFactor = conf.DefaultMaxLoadFactor
	}
	err = validateMaxLoadFactor(maxLoadFactor)
	if err != nil {
		return
	}

	unorderedMap = newUnorderedMap[K, V](mapConf.InitialBuckets, maxLoadFactor, mapConf.Hasher)

	return
}

// newUnorderedMap - Assembles a table from already validated parameters
func newUnorderedMap[K comparable, V any](initialBuckets int, maxLoadFactor float64, hasher hashfunc.Hasher[K]) *UnorderedMap[K, V] {
	// If no Hasher was given then use the default internal
	var internalAlg bool
	if hasher == nil {
		hasher = hash.NewComparableHashAlgorithm[K]()
		internalAlg = true
	}

	return &UnorderedMap[K, V]{
		buckets:           vector.New[forwardlist.List[Entry[K, V]]](utils.NextPrime(initialBuckets)),
		hashAlgorithm:     hasher,
		internalAlgorithm: internalAlg,
		maxLoadFactor:     maxLoadFactor,
	}
}

// validateMaxLoadFactor - Returns an error if ml can not serve as max load factor
func validateMaxLoadFactor(ml float64) error {
	if math.IsNaN(ml) || math.IsInf(ml, 0) || ml <= 0 {
		return fmt.Errorf("max load factor must be a finite positive value, got %v", ml)
	}
	return nil
}

// Info - Returns a HashMapInfo struct describing the current configuration of the table
func (U *UnorderedMap[K, V]) Info() HashMapInfo {
	return HashMapInfo{
		BucketCount:       U.BucketCount(),
		MaxLoadFactor:     U.maxLoadFactor,
		InternalAlgorithm: U.internalAlgorithm,
	}
}

// Size - Returns the number of entries
func (U *UnorderedMap[K, V]) Size() int {
	return U.currentSize
}

// Empty - Returns true if the table holds no entries
func (U *UnorderedMap[K, V]) Empty() bool {
	return U.currentSize == 0
}

// Clear - Removes every entry. The bucket count is left as is.
func (U *UnorderedMap[K, V]) Clear() {
	for i := 0; i < U.buckets.Size(); i++ {
		U.buckets.Index(i).Clear()
	}
	U.currentSize = 0
}

// Clone - Returns a deep copy of the table structure. Keys and values are copied by assignment, the clone has
// the same bucket count, max load factor and hash algorithm, and every entry in the same bucket.
func (U *UnorderedMap[K, V]) Clone() *UnorderedMap[K, V] {
	buckets := vector.New[forwardlist.List[Entry[K, V]]](U.buckets.Size())
	for i := 0; i < U.buckets.Size(); i++ {
		*buckets.Index(i) = *U.buckets.Index(i).Clone()
	}

	return &UnorderedMap[K, V]{
		buckets:           buckets,
		hashAlgorithm:     U.hashAlgorithm,
		internalAlgorithm: U.internalAlgorithm,
		currentSize:       U.currentSize,
		maxLoadFactor:     U.maxLoadFactor,
	}
}

// BucketCount - Returns the current number of buckets, always a prime
func (U *UnorderedMap[K, V]) BucketCount() int {
	return U.buckets.Size()
}

// BucketSize - Returns the number of entries in bucket bucketNo.
// An error of type OutOfRange is returned if bucketNo is not within [0, BucketCount()).
func (U *UnorderedMap[K, V]) BucketSize(bucketNo int) (size int, err error) {
	chain, err := U.buckets.At(bucketNo)
	if err != nil {
		err = fmt.Errorf("error while getting bucket: %w", err)
		return
	}

	size = chain.Size()

	return
}

// Bucket - Returns which bucket number the given key belongs to with the current bucket count.
// The number is only meaningful until the next rehash.
func (U *UnorderedMap[K, V]) Bucket(key K) int {
	return U.bucketIndex(key, U.buckets.Size())
}

// LoadFactor - Returns the average number of entries per bucket
func (U *UnorderedMap[K, V]) LoadFactor() float64 {
	return float64(U.currentSize) / float64(U.buckets.Size())
}

// MaxLoadFactor - Returns the load factor at or above which the next insert grows the table
func (U *UnorderedMap[K, V]) MaxLoadFactor() float64 {
	return U.maxLoadFactor
}

// SetMaxLoadFactor - Replaces the max load factor. No rehash happens here, the new threshold is applied by the
// next Insert or Subscript.
//   - ml must be a finite positive value, otherwise an error is returned and the threshold is left unchanged
func (U *UnorderedMap[K, V]) SetMaxLoadFactor(ml float64) (err error) {
	err = validateMaxLoadFactor(ml)
	if err != nil {
		return
	}

	U.maxLoadFactor = ml

	return
}

// Stat - Walks through the entire set of buckets and produce a HashMapStat struct with information.
//   - includeDistribution set to true will include a slice of length BucketCount with number of entries per bucket, false will set HashMapStat.BucketDistribution to nil.
func (U *UnorderedMap[K, V]) Stat(includeDistribution bool) (hashMapStat HashMapStat) {
	hashMapStat.BucketCount = U.buckets.Size()
	if includeDistribution {
		hashMapStat.BucketDistribution = make([]int, U.buckets.Size())
	}

	// Iterate over every available bucket
	for i := 0; i < U.buckets.Size(); i++ {
		n := U.buckets.Index(i).Size()
		hashMapStat.Entries += n
		if n == 0 {
			hashMapStat.EmptyBuckets++
		}
		if n > hashMapStat.LongestChain {
			hashMapStat.LongestChain = n
		}
		if includeDistribution {
			hashMapStat.BucketDistribution[i] = n
		}
	}

	hashMapStat.LoadFactor = float64(hashMapStat.Entries) / float64(hashMapStat.BucketCount)

	return
}
