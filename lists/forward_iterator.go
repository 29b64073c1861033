package lists

import (
	"fmt"
	"iter"
)

// position is the state shared by Iterator and ConstIterator.
// at is the link that leads to the following element, nil at the end.
// n is the payload node, nil for the before-begin position and the end.
type position[T any] struct {
	at *link[T]
	n  *node[T]
}

func positionOf[T any](n *node[T]) position[T] {
	if n == nil {
		return position[T]{}
	}
	return position[T]{at: &n.link, n: n}
}

// next panics when called at the end, the same way a nil node would.
func (p position[T]) next() position[T] {
	return positionOf(p.at.next)
}

func (p position[T]) seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		if p.at == nil {
			return
		}
		current := p.n
		if current == nil {
			current = p.at.next
		}
		for current != nil {
			if !yield(current.val) {
				break
			}
			current = current.next
		}
	}
}

func (p position[T]) format(kind string) string {
	switch {
	case p.at == nil:
		return kind + "[end]"
	case p.n == nil:
		return kind + "[before-begin]"
	}
	return fmt.Sprintf("%s[%v]", kind, p.n.val)
}

/*
Iterator is a forward position handle that allows modifying the element it
refers to. It stays valid until the element it refers to is removed;
inserting or removing other elements does not affect it.
*/
type Iterator[T any] struct {
	p position[T]
}

func (it Iterator[T]) pos() position[T] {
	return it.p
}

// Const converts the handle into a read-only one.
// There is no conversion in the other direction.
func (it Iterator[T]) Const() ConstIterator[T] {
	return ConstIterator[T]{p: it.p}
}

// Advance moves the handle to the next element and returns the new position.
// Advancing the end position panics.
func (it *Iterator[T]) Advance() Iterator[T] {
	it.p = it.p.next()
	return *it
}

// PostAdvance moves the handle to the next element and returns the position
// it had before the move.
func (it *Iterator[T]) PostAdvance() Iterator[T] {
	old := *it
	it.p = it.p.next()
	return old
}

// Next returns the position following it without moving it.
func (it Iterator[T]) Next() Iterator[T] {
	return Iterator[T]{p: it.p.next()}
}

// Value returns the element at the current position.
// Calling it on the before-begin or the end position panics.
func (it Iterator[T]) Value() T {
	return it.p.n.val
}

// Ptr returns the address of the element for in-place access.
// Same preconditions as Value.
func (it Iterator[T]) Ptr() *T {
	return &it.p.n.val
}

// Set replaces the element at the current position.
// Same preconditions as Value.
func (it Iterator[T]) Set(value T) {
	it.p.n.val = value
}

// IsEnd reports whether the handle is the end position.
func (it Iterator[T]) IsEnd() bool {
	return it.p.at == nil
}

// Equal reports whether both handles refer to the same position.
// Elements are not compared.
func (it Iterator[T]) Equal(other Position[T]) bool {
	return it.p.at == other.pos().at
}

// Seq iterates from the current element to the end of the list.
// From the before-begin position it yields the whole list.
func (it Iterator[T]) Seq() iter.Seq[T] {
	return it.p.seq()
}

func (it Iterator[T]) String() string {
	return it.p.format("Iterator")
}

// ConstIterator is a forward position handle with read-only access to the
// element it refers to.
type ConstIterator[T any] struct {
	p position[T]
}

func (it ConstIterator[T]) pos() position[T] {
	return it.p
}

func (it *ConstIterator[T]) Advance() ConstIterator[T] {
	it.p = it.p.next()
	return *it
}

func (it *ConstIterator[T]) PostAdvance() ConstIterator[T] {
	old := *it
	it.p = it.p.next()
	return old
}

func (it ConstIterator[T]) Next() ConstIterator[T] {
	return ConstIterator[T]{p: it.p.next()}
}

// Value returns a copy of the element at the current position.
func (it ConstIterator[T]) Value() T {
	return it.p.n.val
}

func (it ConstIterator[T]) IsEnd() bool {
	return it.p.at == nil
}

func (it ConstIterator[T]) Equal(other Position[T]) bool {
	return it.p.at == other.pos().at
}

func (it ConstIterator[T]) Seq() iter.Seq[T] {
	return it.p.seq()
}

func (it ConstIterator[T]) String() string {
	return it.p.format("ConstIterator")
}
