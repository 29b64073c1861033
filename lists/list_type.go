package lists

import (
	"fmt"
	"iter"
)

var (
	ErrEmptyList   = fmt.Errorf("list is empty")
	ErrNoSuccessor = fmt.Errorf("position has no successor")
)

// Forward defines the operations of a singly linked list.
// T can be any type.
type Forward[T any] interface {
	// -------------------------------------------------------
	// Basic Operations
	// -------------------------------------------------------

	// PushFront inserts value as the new first element in O(1)
	PushFront(value T)

	// PopFront removes the first element in O(1)
	// Calling it on an empty list panics
	PopFront()

	// InsertAfter splices value in right after pos and returns a handle to it
	InsertAfter(pos Position[T], value T) Iterator[T]

	// EraseAfter removes the element following pos and returns a handle
	// to the element that now follows pos
	EraseAfter(pos Position[T]) Iterator[T]

	// -------------------------------------------------------
	// Query Operations
	// -------------------------------------------------------

	// Size returns the current number of elements in the list
	Size() int

	// IsEmpty checks if the list is empty
	IsEmpty() bool

	// Clear removes every element
	Clear()

	// -------------------------------------------------------
	// Positions & Iteration
	// -------------------------------------------------------

	// BeforeBegin returns the position in front of the first element.
	// It is the only position that allows inserting or erasing at the front.
	BeforeBegin() Iterator[T]

	// Begin returns the position of the first element, End() if empty
	Begin() Iterator[T]

	// End returns the position past the last element.
	// It is only meant to be compared against.
	End() Iterator[T]

	// Values iterates the elements in traversal order
	Values() iter.Seq[T]
}

// Position is implemented by both Iterator and ConstIterator.
// Operations taking a Position accept either of them.
type Position[T any] interface {
	pos() position[T]
}

// IndexOf returns the index of the first element equal to v, or -1.
// It is a standalone function because it requires T to be comparable.
func IndexOf[T comparable](l *ForwardList[T], v T) int {
	return l.IndexFunc(func(e T) bool {
		return e == v
	})
}

// Contains reports whether v is present in l.
func Contains[T comparable](l *ForwardList[T], v T) bool {
	return IndexOf(l, v) >= 0
}
