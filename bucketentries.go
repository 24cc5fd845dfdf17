package unorderedmap

import (
	"fmt"
	"github.com/gostonefire/unorderedmap/internal/forwardlist"
)

// BucketEntries - Is used to iterate over the entries of one bucket one by one.
type BucketEntries[K comparable, V any] struct {
	pos forwardlist.Iterator[Entry[K, V]]
}

// BucketEntries - Returns a pointer to a new BucketEntries struct for bucket bucketNo.
// An error of type OutOfRange is returned if bucketNo is not within [0, BucketCount()).
func (U *UnorderedMap[K, V]) BucketEntries(bucketNo int) (bucketEntries *BucketEntries[K, V], err error) {
	chain, err := U.buckets.At(bucketNo)
	if err != nil {
		err = fmt.Errorf("error while getting bucket: %w", err)
		return
	}

	bucketEntries = &BucketEntries[K, V]{pos: chain.Begin()}

	return
}

// HasNext - Returns true if there are more entries to be fetched from a call to Next.
func (B *BucketEntries[K, V]) HasNext() bool {
	return B.pos.Valid()
}

// Next - Returns entry.
// It returns:
//   - entry is a pointer to the next entry in the bucket, the key must not be modified through it.
//   - err is of type NoRecordFound if there are no more entries when calling this function.
func (B *BucketEntries[K, V]) Next() (entry *Entry[K, V], err error) {
	if !B.pos.Valid() {
		err = NoRecordFound{}
		return
	}

	entry = B.pos.Value()
	B.pos = B.pos.Next()

	return
}
