package list

import (
	"fmt"
	"strings"
)

type node[T any] struct {
	value T
	next  *node[T]
}

// List is a singly linked stack of T values. The zero value is an empty list
// ready to use.
type List[T any] struct {
	head   *node[T]
	length int
	lease  *Lease[T]
}

// New returns an empty list.
func New[T any]() *List[T] {
	return &List[T]{}
}

// Push places value on top of the list.
func (l *List[T]) Push(value T) {
	l.mustNotBeLeased("Push")

	l.head = &node[T]{value: value, next: l.head}
	l.length++
}

// Pop removes the top value and returns it. It returns false, and leaves the
// list untouched, if the list is empty.
func (l *List[T]) Pop() (T, bool) {
	l.mustNotBeLeased("Pop")

	n := l.head
	if n == nil {
		var zero T
		return zero, false
	}

	l.head = n.next
	n.next = nil
	l.length--

	return n.value, true
}

// Peek returns a copy of the top value without removing it. It returns false
// if the list is empty.
func (l *List[T]) Peek() (T, bool) {
	l.mustNotBeLeased("Peek")

	if l.head == nil {
		var zero T
		return zero, false
	}
	return l.head.value, true
}

// PeekMut leases the top value for in-place modification. It returns false if
// the list is empty. Until the returned lease is released, every other method
// of the list panics.
func (l *List[T]) PeekMut() (*Lease[T], bool) {
	l.mustNotBeLeased("PeekMut")

	if l.head == nil {
		return nil, false
	}

	l.lease = &Lease[T]{list: l, node: l.head}
	return l.lease, true
}

// Update calls fn with a pointer to the top value, holding a lease for the
// duration of the call. fn must not retain the pointer or use the list. It
// returns false, without calling fn, if the list is empty.
func (l *List[T]) Update(fn func(*T)) bool {
	lease, ok := l.PeekMut()
	if !ok {
		return false
	}
	defer lease.Release()

	fn(&lease.node.value)
	return true
}

// Len returns the number of values in the list.
func (l *List[T]) Len() int {
	l.mustNotBeLeased("Len")
	return l.length
}

// IsEmpty reports whether the list holds no values.
func (l *List[T]) IsEmpty() bool {
	return l.Len() == 0
}

// Clear releases every node of the list, head first, one at a time. The list
// is empty and reusable afterwards.
func (l *List[T]) Clear() {
	l.mustNotBeLeased("Clear")

	cur := l.head
	l.head = nil
	for cur != nil {
		next := cur.next
		cur.next = nil
		cur = next
	}
	l.length = 0
}

// String renders the values top first, e.g. "[3 2 1]".
func (l *List[T]) String() string {
	l.mustNotBeLeased("String")

	var sb strings.Builder
	sb.WriteByte('[')
	for n := l.head; n != nil; n = n.next {
		if n != l.head {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, n.value)
	}
	sb.WriteByte(']')
	return sb.String()
}

func (l *List[T]) mustNotBeLeased(op string) {
	if l.lease != nil {
		panic(leaseHeldError(op))
	}
}
