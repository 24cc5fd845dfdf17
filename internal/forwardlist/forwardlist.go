// Package forwardlist implements the singly linked list used as the chain of entries within one bucket.
//
// Positions in a list are represented by Iterator values. An Iterator refers to a node, the zero Iterator
// (as returned by End) refers to no node. Methods that take an Iterator require it to refer to a node still
// reachable from the receiving list; violating that is a caller error and results in a panic.
package forwardlist

// Equaler - Interface for values stored in a List. Remove uses it to find matching values.
type Equaler[T any] interface {
	Equal(other T) bool
}

type node[T any] struct {
	data T
	next *node[T]
}

// List - Singly linked list with O(1) head insertion
type List[T Equaler[T]] struct {
	head *node[T]
	size int
}

// Iterator - Forward only position within a List
type Iterator[T Equaler[T]] struct {
	current *node[T]
}

// Valid - Returns true if the iterator refers to a node, false if it is an end iterator
func (I Iterator[T]) Valid() bool {
	return I.current != nil
}

// Value - Returns a pointer to the data held by the node the iterator refers to.
// Calling Value on an end iterator panics.
func (I Iterator[T]) Value() *T {
	if I.current == nil {
		panic("forwardlist: dereferencing end iterator")
	}
	return &I.current.data
}

// Next - Returns an iterator to the following node.
// Calling Next on an end iterator panics.
func (I Iterator[T]) Next() Iterator[T] {
	if I.current == nil {
		panic("forwardlist: advancing end iterator")
	}
	return Iterator[T]{current: I.current.next}
}

// Empty - Returns true if the list holds no nodes
func (L *List[T]) Empty() bool {
	return L.head == nil
}

// Size - Returns the number of nodes in the list
func (L *List[T]) Size() int {
	return L.size
}

// Front - Returns a pointer to the data of the head node. Calling Front on an empty list panics.
func (L *List[T]) Front() *T {
	if L.head == nil {
		panic("forwardlist: front of empty list")
	}
	return &L.head.data
}

// Begin - Returns an iterator to the head node, equal to End if the list is empty
func (L *List[T]) Begin() Iterator[T] {
	return Iterator[T]{current: L.head}
}

// End - Returns the end iterator
func (L *List[T]) End() Iterator[T] {
	return Iterator[T]{}
}

// PushFront - Inserts data in a new node at the head of the list
func (L *List[T]) PushFront(data T) {
	L.head = &node[T]{data: data, next: L.head}
	L.size++
}

// PopFront - Removes the head node. Calling PopFront on an empty list panics.
func (L *List[T]) PopFront() {
	if L.head == nil {
		panic("forwardlist: pop front of empty list")
	}
	n := L.head
	L.head = n.next
	n.next = nil
	L.size--
}

// InsertAfter - Inserts data in a new node directly after the node pos refers to.
// It returns an iterator to the new node. pos must not be an end iterator.
func (L *List[T]) InsertAfter(pos Iterator[T], data T) Iterator[T] {
	if pos.current == nil {
		panic("forwardlist: insert after end iterator")
	}
	n := &node[T]{data: data, next: pos.current.next}
	pos.current.next = n
	L.size++

	return Iterator[T]{current: n}
}

// EraseAfter - Removes the node directly after the node pos refers to.
// It returns an iterator to the node following the removed one. pos must not be an end iterator and must
// have a successor.
func (L *List[T]) EraseAfter(pos Iterator[T]) Iterator[T] {
	if pos.current == nil || pos.current.next == nil {
		panic("forwardlist: erase after end iterator")
	}
	n := pos.current.next
	pos.current.next = n.next
	n.next = nil
	L.size--

	return Iterator[T]{current: pos.current.next}
}

// Remove - Removes every node holding data equal to value. It returns the number of removed nodes.
func (L *List[T]) Remove(value T) (removed int) {
	for L.head != nil && L.head.data.Equal(value) {
		L.PopFront()
		removed++
	}
	if L.head == nil {
		return
	}

	pos := L.Begin()
	for pos.current.next != nil {
		if pos.current.next.data.Equal(value) {
			L.EraseAfter(pos)
			removed++
		} else {
			pos = pos.Next()
		}
	}

	return
}

// SpliceFront - Moves the head node of from to the head of this list. The node itself is relinked, its data
// is neither copied nor reallocated. Calling SpliceFront with an empty from list panics.
func (L *List[T]) SpliceFront(from *List[T]) {
	if from.head == nil {
		panic("forwardlist: splice from empty list")
	}
	n := from.head
	from.head = n.next
	from.size--

	n.next = L.head
	L.head = n
	L.size++
}

// Clear - Drops every node of the list
func (L *List[T]) Clear() {
	L.head = nil
	L.size = 0
}

// Clone - Returns a new list holding copies of the data of every node, in the same order
func (L *List[T]) Clone() *List[T] {
	c := &List[T]{}
	var tail *node[T]
	for n := L.head; n != nil; n = n.next {
		cn := &node[T]{data: n.data}
		if tail == nil {
			c.head = cn
		} else {
			tail.next = cn
		}
		tail = cn
		c.size++
	}

	return c
}
