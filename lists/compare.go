package lists

import "cmp"

// Equal reports whether a and b have the same length and pairwise equal
// elements in traversal order.
func Equal[T comparable](a, b *ForwardList[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool {
		return x == y
	})
}

// EqualFunc is like Equal but compares elements with eq.
func EqualFunc[T1, T2 any](a *ForwardList[T1], b *ForwardList[T2], eq func(T1, T2) bool) bool {
	if a.size != b.size {
		return false
	}
	x, y := a.head.next, b.head.next
	for x != nil && y != nil {
		if !eq(x.val, y.val) {
			return false
		}
		x, y = x.next, y.next
	}
	return x == nil && y == nil
}

// Compare compares a and b lexicographically. The result is 0 if a == b,
// -1 if a < b, and +1 if a > b. A shorter list that is a prefix of the
// other compares less.
func Compare[T cmp.Ordered](a, b *ForwardList[T]) int {
	return CompareFunc(a, b, cmp.Compare[T])
}

// CompareFunc is like Compare but uses compare on each pair of elements.
func CompareFunc[T1, T2 any](a *ForwardList[T1], b *ForwardList[T2], compare func(T1, T2) int) int {
	x, y := a.head.next, b.head.next
	for x != nil && y != nil {
		if c := compare(x.val, y.val); c != 0 {
			return c
		}
		x, y = x.next, y.next
	}
	switch {
	case x == nil && y != nil:
		return -1
	case x != nil && y == nil:
		return +1
	}
	return 0
}

// LessFunc reports whether a sorts before b lexicographically, using less
// as the element order.
func LessFunc[T any](a, b *ForwardList[T], less func(x, y T) bool) bool {
	x, y := a.head.next, b.head.next
	for x != nil && y != nil {
		if less(x.val, y.val) {
			return true
		}
		if less(y.val, x.val) {
			return false
		}
		x, y = x.next, y.next
	}
	return x == nil && y != nil
}

// Less reports whether a sorts before b, comparing elements with <.
func Less[T cmp.Ordered](a, b *ForwardList[T]) bool {
	return LessFunc(a, b, func(x, y T) bool {
		return x < y
	})
}

func LessOrEqual[T cmp.Ordered](a, b *ForwardList[T]) bool {
	return !Less(b, a)
}

func Greater[T cmp.Ordered](a, b *ForwardList[T]) bool {
	return Less(b, a)
}

func GreaterOrEqual[T cmp.Ordered](a, b *ForwardList[T]) bool {
	return !Less(a, b)
}
