package unorderedmap

import (
	"github.com/gostonefire/unorderedmap/internal/forwardlist"
	"iter"
)

// Iterator - Position in the flat traversal of every entry in the table.
// It combines a bucket number with a position in that bucket's chain. The end iterator has bucket number
// BucketCount() and no chain position; it can neither be dereferenced nor advanced.
//
// A rehash invalidates every iterator of the table. Removing an entry invalidates the iterators referring to it.
// Using an invalid iterator gives undefined results.
type Iterator[K comparable, V any] struct {
	m      *UnorderedMap[K, V]
	bucket int
	pos    forwardlist.Iterator[Entry[K, V]]
}

// Begin - Returns an iterator to the first entry in traversal order, equal to End() for an empty table
func (U *UnorderedMap[K, V]) Begin() Iterator[K, V] {
	return U.makeIterator(0, U.buckets.Index(0).Begin())
}

// End - Returns the end iterator
func (U *UnorderedMap[K, V]) End() Iterator[K, V] {
	return Iterator[K, V]{m: U, bucket: U.buckets.Size()}
}

// All - Returns an iterator over every key/value pair, for use with range.
// The table must not be modified during the loop.
func (U *UnorderedMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for it := U.Begin(); !it.IsEnd(); it = it.Next() {
			e := it.Entry()
			if !yield(e.Key, e.Value) {
				return
			}
		}
	}
}

// makeIterator - Returns an iterator at pos in bucket bucketNo, moved forward to the next entry if pos is the
// end of that chain
func (U *UnorderedMap[K, V]) makeIterator(bucketNo int, pos forwardlist.Iterator[Entry[K, V]]) Iterator[K, V] {
	return Iterator[K, V]{m: U, bucket: bucketNo, pos: pos}.skipEmpty()
}

// IsEnd - Returns true if the iterator is the end iterator
func (I Iterator[K, V]) IsEnd() bool {
	return !I.pos.Valid()
}

// Equal - Returns true if both iterators have the same bucket number and chain position
func (I Iterator[K, V]) Equal(other Iterator[K, V]) bool {
	return I.bucket == other.bucket && I.pos == other.pos
}

// Entry - Returns a pointer to the entry the iterator refers to. The key must not be modified through it.
// Calling Entry on the end iterator panics.
func (I Iterator[K, V]) Entry() *Entry[K, V] {
	if I.IsEnd() {
		panic("unorderedmap: dereferencing end iterator")
	}
	return I.pos.Value()
}

// Key - Returns the key of the entry the iterator refers to
func (I Iterator[K, V]) Key() K {
	return I.Entry().Key
}

// Value - Returns the value of the entry the iterator refers to
func (I Iterator[K, V]) Value() V {
	return I.Entry().Value
}

// Next - Returns an iterator to the following entry in traversal order, or the end iterator after the last one.
// Calling Next on the end iterator panics.
func (I Iterator[K, V]) Next() Iterator[K, V] {
	if I.IsEnd() {
		panic("unorderedmap: advancing end iterator")
	}
	I.pos = I.pos.Next()

	return I.skipEmpty()
}

// skipEmpty - Moves past the end of the current chain and over empty buckets until an entry is found or the
// bucket array is exhausted
func (I Iterator[K, V]) skipEmpty() Iterator[K, V] {
	bucketCount := I.m.buckets.Size()
	for !I.pos.Valid() {
		I.bucket++
		if I.bucket >= bucketCount {
			I.bucket = bucketCount
			return I
		}
		I.pos = I.m.buckets.Index(I.bucket).Begin()
	}

	return I
}
