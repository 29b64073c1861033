package lists

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

type link[T any] struct {
	next *node[T]
}

type node[T any] struct {
	link[T]
	val T
}

/*
ForwardList is a singly linked list.

The head link acts as the before-begin position and carries no element.
The zero value is an empty list ready to use. A ForwardList must not be
copied by value after first use; use Clone or Assign instead.
*/
type ForwardList[T any] struct {
	head link[T]
	size int
}

// NewForwardList returns a list holding values in the given order.
func NewForwardList[T any](values ...T) *ForwardList[T] {
	return FromSeq(slices.Values(values))
}

// FromSeq returns a list holding the elements of seq in order.
func FromSeq[T any](seq iter.Seq[T]) *ForwardList[T] {
	l := &ForwardList[T]{}
	l.InsertAfterSeq(l.BeforeBegin(), seq)
	return l
}

// spliceAfter links a new node holding value right after at.
func (l *ForwardList[T]) spliceAfter(at *link[T], value T) *node[T] {
	newNode := &node[T]{link: link[T]{next: at.next}, val: value}
	at.next = newNode
	l.size++
	return newNode
}

// unlinkAfter removes the node following at and returns its value.
// Bounds checking should be done by the caller: a missing node panics
// before the size is touched.
// After removal, the node's link is cleared and its value zeroed so that
// stale handles walk to the end instead of back into the list.
func (l *ForwardList[T]) unlinkAfter(at *link[T]) T {
	target := at.next
	at.next = target.next
	res := target.val
	// Help GC
	target.next = nil
	var zero T
	target.val = zero
	l.size--
	return res
}

// buildFrom copies the elements of l into a fresh list using copyValue.
// Nothing is handed out until every element has been copied.
func (l *ForwardList[T]) buildFrom(copyValue func(T) (T, error)) (*ForwardList[T], error) {
	scratch := &ForwardList[T]{}
	at := &scratch.head
	index := 0
	for current := l.head.next; current != nil; current = current.next {
		value, err := copyValue(current.val)
		if err != nil {
			scratch.Clear()
			return nil, fmt.Errorf("copy element %d: %w", index, err)
		}
		at = &scratch.spliceAfter(at, value).link
		index++
	}
	return scratch, nil
}

func (l *ForwardList[T]) Size() int {
	return l.size
}

func (l *ForwardList[T]) IsEmpty() bool {
	return l.size == 0
}

// PushFront prepends value to the list.
func (l *ForwardList[T]) PushFront(value T) {
	l.spliceAfter(&l.head, value)
}

// PopFront removes the first element. It panics if the list is empty.
func (l *ForwardList[T]) PopFront() {
	l.unlinkAfter(&l.head)
}

// Front returns the first element without removing it.
func (l *ForwardList[T]) Front() (val T, err error) {
	if l.head.next == nil {
		return val, ErrEmptyList
	}
	return l.head.next.val, nil
}

// RemoveFirst removes and returns the first element.
func (l *ForwardList[T]) RemoveFirst() (val T, err error) {
	if l.head.next == nil {
		return val, ErrEmptyList
	}
	return l.unlinkAfter(&l.head), nil
}

func (l *ForwardList[T]) Clear() {
	// Clear all nodes to help GC
	current := l.head.next
	var zero T
	for current != nil {
		next := current.next
		current.next = nil
		current.val = zero
		current = next
	}
	l.head.next = nil
	l.size = 0
}

// InsertAfter inserts value right after pos and returns its position.
// pos must belong to l and must not be the end position.
func (l *ForwardList[T]) InsertAfter(pos Position[T], value T) Iterator[T] {
	return Iterator[T]{p: positionOf(l.spliceAfter(pos.pos().at, value))}
}

// InsertAfterSeq inserts the elements of seq after pos, keeping their order.
// It returns the position of the last inserted element, or pos itself when
// seq is empty.
func (l *ForwardList[T]) InsertAfterSeq(pos Position[T], seq iter.Seq[T]) Iterator[T] {
	last := pos.pos()
	for value := range seq {
		last = positionOf(l.spliceAfter(last.at, value))
	}
	return Iterator[T]{p: last}
}

// EraseAfter removes the element following pos and returns the position of
// the element that follows pos afterwards, possibly End().
// It panics if pos is the last position or the end.
func (l *ForwardList[T]) EraseAfter(pos Position[T]) Iterator[T] {
	at := pos.pos().at
	l.unlinkAfter(at)
	return Iterator[T]{p: positionOf(at.next)}
}

// TryEraseAfter is EraseAfter with the precondition checked.
func (l *ForwardList[T]) TryEraseAfter(pos Position[T]) (Iterator[T], error) {
	at := pos.pos().at
	if at == nil || at.next == nil {
		return Iterator[T]{}, ErrNoSuccessor
	}
	return l.EraseAfter(pos), nil
}

// Swap exchanges the contents of l and other in O(1).
// Handles to elements follow their elements into the other list;
// before-begin handles stay with their list.
func (l *ForwardList[T]) Swap(other *ForwardList[T]) {
	l.head.next, other.head.next = other.head.next, l.head.next
	l.size, other.size = other.size, l.size
}

// Swap exchanges the contents of a and b.
func Swap[T any](a, b *ForwardList[T]) {
	a.Swap(b)
}

// Clone returns a copy of the list with newly allocated nodes.
// Note: If T is a pointer or reference type, the referenced data is shared.
func (l *ForwardList[T]) Clone() *ForwardList[T] {
	clone, _ := l.buildFrom(func(v T) (T, error) {
		return v, nil
	})
	return clone
}

// CloneFunc is like Clone but copies every element with copyValue.
// If copyValue fails, no list is returned and l is left untouched.
func (l *ForwardList[T]) CloneFunc(copyValue func(T) (T, error)) (*ForwardList[T], error) {
	return l.buildFrom(copyValue)
}

// Assign replaces the contents of l with a copy of other.
func (l *ForwardList[T]) Assign(other *ForwardList[T]) {
	if l == other {
		return
	}
	tmp := other.Clone()
	l.Swap(tmp)
	tmp.Clear()
}

// AssignFunc replaces the contents of l with a copy of other made by
// copyValue. On error l keeps its previous contents.
func (l *ForwardList[T]) AssignFunc(other *ForwardList[T], copyValue func(T) (T, error)) error {
	if l == other {
		return nil
	}
	tmp, err := other.buildFrom(copyValue)
	if err != nil {
		return err
	}
	l.Swap(tmp)
	tmp.Clear()
	return nil
}

func (l *ForwardList[T]) BeforeBegin() Iterator[T] {
	return Iterator[T]{p: position[T]{at: &l.head}}
}

func (l *ForwardList[T]) CBeforeBegin() ConstIterator[T] {
	return l.BeforeBegin().Const()
}

func (l *ForwardList[T]) Begin() Iterator[T] {
	return Iterator[T]{p: positionOf(l.head.next)}
}

func (l *ForwardList[T]) CBegin() ConstIterator[T] {
	return l.Begin().Const()
}

func (l *ForwardList[T]) End() Iterator[T] {
	return Iterator[T]{}
}

func (l *ForwardList[T]) CEnd() ConstIterator[T] {
	return ConstIterator[T]{}
}

// RemoveIf removes all elements satisfying the predicate.
// Handles to the remaining elements stay valid.
// Returns the number of removed elements.
func (l *ForwardList[T]) RemoveIf(predicate func(T) bool) int {
	removedCount := 0
	at := &l.head
	for at.next != nil {
		if predicate(at.next.val) {
			l.unlinkAfter(at)
			removedCount++
			continue
		}
		at = &at.next.link
	}
	return removedCount
}

// Reverse reverses the order of the elements in place.
// Nodes are relinked, so handles keep referring to the same elements.
func (l *ForwardList[T]) Reverse() {
	var prev *node[T]
	current := l.head.next
	for current != nil {
		next := current.next
		current.next = prev
		prev = current
		current = next
	}
	l.head.next = prev
}

// Sort sorts the list in place with a stable merge sort.
// Nodes are relinked rather than values moved, so handles keep referring
// to the same elements.
func (l *ForwardList[T]) Sort(compare func(a, b T) int) {
	if l.size < 2 {
		return
	}
	l.head.next = mergeSort(l.head.next, compare)
}

func mergeSort[T any](head *node[T], compare func(a, b T) int) *node[T] {
	if head == nil || head.next == nil {
		return head
	}

	// Find middle using slow/fast pointers
	slow, fast := head, head.next
	for fast != nil && fast.next != nil {
		slow = slow.next
		fast = fast.next.next
	}

	mid := slow.next
	slow.next = nil // Split the list

	left := mergeSort(head, compare)
	right := mergeSort(mid, compare)

	return merge(left, right, compare)
}

func merge[T any](a, b *node[T], compare func(a, b T) int) *node[T] {
	var dummy link[T]
	tail := &dummy

	for a != nil && b != nil {
		if compare(a.val, b.val) <= 0 {
			tail.next = a
			a = a.next
		} else {
			tail.next = b
			b = b.next
		}
		tail = &tail.next.link
	}

	if a != nil {
		tail.next = a
	} else {
		tail.next = b
	}

	return dummy.next
}

func (l *ForwardList[T]) ContainsFunc(predicate func(T) bool) bool {
	return l.IndexFunc(predicate) >= 0
}

func (l *ForwardList[T]) IndexFunc(predicate func(T) bool) int {
	index := 0
	for current := l.head.next; current != nil; current = current.next {
		if predicate(current.val) {
			return index
		}
		index++
	}
	return -1
}

func (l *ForwardList[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for current := l.head.next; current != nil; current = current.next {
			if !yield(current.val) {
				break
			}
		}
	}
}

func (l *ForwardList[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		index := 0
		for current := l.head.next; current != nil; current = current.next {
			if !yield(index, current.val) {
				break
			}
			index++
		}
	}
}

// ToSlice copies the elements into a new slice.
func (l *ForwardList[T]) ToSlice() []T {
	res := make([]T, 0, l.size)
	for current := l.head.next; current != nil; current = current.next {
		res = append(res, current.val)
	}
	return res
}

func (l *ForwardList[T]) String() string {
	// use strBuilder for better performance
	strBuilder := strings.Builder{}
	strBuilder.WriteString("[")
	for current := l.head.next; current != nil; current = current.next {
		strBuilder.WriteString(fmt.Sprintf("%v", current.val))
		if current.next != nil {
			strBuilder.WriteString(", ")
		}
	}
	strBuilder.WriteString("]")
	return strBuilder.String()
}

var _ Forward[int] = (*ForwardList[int])(nil)
