package unorderedmap

import (
	"fmt"
	"github.com/gostonefire/unorderedmap/internal/conf"
	"github.com/gostonefire/unorderedmap/internal/forwardlist"
	"github.com/gostonefire/unorderedmap/internal/utils"
	"github.com/gostonefire/unorderedmap/internal/vector"
	"math"
)

// Rehash - Rebuilds the bucket array with at least n buckets and redistributes every entry.
// The request is first raised until the entries fit within the max load factor (a request too small for the
// current entries is replaced by twice the minimum), then rounded up to the nearest prime.
// If the resulting request exceeds conf.MaxBucketCount the call panics and the table is left as it was.
//
// Every Iterator and bucket number obtained before the call is invalid afterwards.
func (U *UnorderedMap[K, V]) Rehash(n int) {
	U.rehash(float64(n))
}

// Reserve - Rehashes so that n entries fit without exceeding the max load factor
func (U *UnorderedMap[K, V]) Reserve(n int) {
	U.rehash(math.Ceil(float64(n) / U.maxLoadFactor))
}

// rehash - Does the work of Rehash. The request is kept as a float until it is known to fit in an int.
func (U *UnorderedMap[K, V]) rehash(requested float64) {
	if requested < 1 {
		requested = 1
	}
	minBuckets := float64(U.currentSize) / U.maxLoadFactor
	for requested < minBuckets {
		requested = math.Floor(minBuckets * 2)
	}
	if requested > float64(conf.MaxBucketCount) {
		panic(fmt.Sprintf("unorderedmap: rehash request of %g buckets exceeds %d", requested, conf.MaxBucketCount))
	}

	// The new array is complete before anything is moved out of the old one
	bucketCount := utils.NextPrime(int(requested))
	buckets := vector.New[forwardlist.List[Entry[K, V]]](bucketCount)

	// Drain old chains, nodes are relinked into the new chains rather than copied
	for i := 0; i < U.buckets.Size(); i++ {
		chain := U.buckets.Index(i)
		for !chain.Empty() {
			bucketNo := U.bucketIndex(chain.Front().Key, bucketCount)
			buckets.Index(bucketNo).SpliceFront(chain)
		}
	}

	U.buckets = buckets
}

// growIfNeeded - Rehashes to twice the number of entries if the table is at or above its max load factor.
// It is checked before an entry is added, so a table may be above the threshold by one entry until the next
// insert.
func (U *UnorderedMap[K, V]) growIfNeeded() {
	if U.LoadFactor() >= U.maxLoadFactor {
		U.Rehash(U.currentSize * conf.GrowthFactor)
	}
}

// bucketIndex - Returns the bucket number of key given bucketCount buckets
func (U *UnorderedMap[K, V]) bucketIndex(key K, bucketCount int) int {
	return int(U.hashAlgorithm.HashFunc(key) % uint64(bucketCount))
}
