package unorderedmap

import (
	"github.com/gostonefire/unorderedmap/internal/forwardlist"
)

// Insert - Adds key with value unless key is already present, an existing entry is never overwritten.
// If the table is at or above its max load factor when called, it is first rehashed to twice its number of
// entries.
//   - key is the identifier of the entry
//   - value is the value to store with a new entry
//
// It returns:
//   - iterator refers to the entry holding key, either the new one or the one already present
//   - inserted is true if a new entry was created, false if key was already present
func (U *UnorderedMap[K, V]) Insert(key K, value V) (iterator Iterator[K, V], inserted bool) {
	U.growIfNeeded()

	bucketNo, pos, found := U.get(key)
	if found {
		iterator = U.makeIterator(bucketNo, pos)
		return
	}

	chain := U.buckets.Index(bucketNo)
	chain.PushFront(Entry[K, V]{Key: key, Value: value})
	U.currentSize++

	iterator = U.makeIterator(bucketNo, chain.Begin())
	inserted = true

	return
}

// Subscript - Returns a pointer to the value stored with key. If key is not present an entry holding the zero
// value of V is created first, with the same growth rule as Insert. Use Find or At for lookups where absence
// must be distinguishable.
func (U *UnorderedMap[K, V]) Subscript(key K) *V {
	U.growIfNeeded()

	bucketNo, pos, found := U.get(key)
	if found {
		return &pos.Value().Value
	}

	chain := U.buckets.Index(bucketNo)
	chain.PushFront(Entry[K, V]{Key: key})
	U.currentSize++

	return &chain.Front().Value
}

// Find - Returns an iterator to the entry holding key, or End() if key is not present.
// Find never modifies the table.
func (U *UnorderedMap[K, V]) Find(key K) Iterator[K, V] {
	bucketNo, pos, found := U.get(key)
	if !found {
		return U.End()
	}

	return U.makeIterator(bucketNo, pos)
}

// Count - Returns 1 if key is present, otherwise 0
func (U *UnorderedMap[K, V]) Count(key K) int {
	if _, _, found := U.get(key); found {
		return 1
	}
	return 0
}

// At - Returns the value stored with key.
// It returns:
//   - value is the value of the matching entry if found
//   - err is of type NoRecordFound if key is not present
func (U *UnorderedMap[K, V]) At(key K) (value V, err error) {
	_, pos, found := U.get(key)
	if !found {
		err = NoRecordFound{}
		return
	}

	value = pos.Value().Value

	return
}

// Erase - Removes the entry holding key. It returns the number of removed entries, 0 or 1.
// Iterators referring to the removed entry are invalid afterwards, all others stay valid.
func (U *UnorderedMap[K, V]) Erase(key K) int {
	chain := U.buckets.Index(U.bucketIndex(key, U.buckets.Size()))
	removed := chain.Remove(Entry[K, V]{Key: key})
	U.currentSize -= removed

	return removed
}

// EraseIterator - Removes the entry iterator refers to and returns an iterator to the entry that followed it
// in traversal order, End() if it was the last one.
// iterator must refer to an entry of this table; an end iterator or one from another table panics.
func (U *UnorderedMap[K, V]) EraseIterator(iterator Iterator[K, V]) Iterator[K, V] {
	if iterator.IsEnd() {
		panic("unorderedmap: erasing end iterator")
	}
	if iterator.m != U {
		panic("unorderedmap: erasing iterator of another table")
	}

	next := iterator.Next()

	chain := U.buckets.Index(iterator.bucket)
	if chain.Begin() == iterator.pos {
		chain.PopFront()
	} else {
		prev := chain.Begin()
		for prev.Next() != iterator.pos {
			prev = prev.Next()
		}
		chain.EraseAfter(prev)
	}
	U.currentSize--

	return next
}

// get - Searches the bucket of key for a matching entry.
// It returns:
//   - bucketNo is the bucket key belongs to with the current bucket count
//   - pos refers to the matching entry, it is an end iterator if not found
//   - found is true if key is present
func (U *UnorderedMap[K, V]) get(key K) (bucketNo int, pos forwardlist.Iterator[Entry[K, V]], found bool) {
	bucketNo = U.bucketIndex(key, U.buckets.Size())
	chain := U.buckets.Index(bucketNo)

	// Sort out entry with correct key
	for pos = chain.Begin(); pos != chain.End(); pos = pos.Next() {
		if pos.Value().Key == key {
			found = true
			return
		}
	}

	pos = chain.End()

	return
}
