/*
Package lists provides a generic singly linked list, [ForwardList].

It is built for workloads that only move forward through a sequence:

  - **O(1) front operations**: [ForwardList.PushFront], [ForwardList.PopFront].
  - **O(1) splicing**: [ForwardList.InsertAfter] and [ForwardList.EraseAfter] work
    relative to a position handle instead of an index.
  - **Stable handles**: an [Iterator] or [ConstIterator] stays valid until the
    element it refers to is removed. Insertions and removals elsewhere in the
    list, as well as [ForwardList.Sort] and [ForwardList.Reverse], leave it alone.

# Positions

Every list has a before-begin position that holds no element. It is the only
way to insert or erase at the front through the splice operations:

	l := lists.NewForwardList(2, 3)
	l.InsertAfter(l.BeforeBegin(), 1) // [1, 2, 3]
	l.EraseAfter(l.BeforeBegin())     // [2, 3]

[ForwardList.End] marks the position past the last element. It is only meant
to be compared against with Equal.

# Copying

[ForwardList.Clone] and [ForwardList.Assign] copy every node. The Func variants
take a fallible copy function; if it fails, the receiver keeps its previous
contents and no partially built list escapes.

# Preconditions

PopFront on an empty list, EraseAfter on the last position, and reading the
value of the before-begin or end position panic without touching the element
count. [ForwardList.RemoveFirst], [ForwardList.Front] and
[ForwardList.TryEraseAfter] report the same conditions as errors.

The list is not safe for concurrent use.
*/
package lists
