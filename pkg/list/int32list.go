package list

import (
	"strconv"
	"strings"
)

// link is either empty or more. It is the explicit form of "maybe a node".
type link interface {
	isLink()
}

type empty struct{}

type more struct {
	node *int32Node
}

func (empty) isLink() {}
func (more) isLink() {}

type int32Node struct {
	value int32
	next  link
}

// Int32List is a singly linked stack of int32 values. The zero value is an
// empty list ready to use.
type Int32List struct {
	head   link
	length int
}

// NewInt32 returns an empty list.
func NewInt32() *Int32List {
	return &Int32List{head: empty{}}
}

// take detaches the head link and leaves empty in its place.
func (l *Int32List) take() link {
	h := l.head
	l.head = empty{}
	if h == nil {
		return empty{}
	}
	return h
}

// Push places value on top of the list.
func (l *Int32List) Push(value int32) {
	l.head = more{node: &int32Node{value: value, next: l.take()}}
	l.length++
}

// Pop removes the top value and returns it. It returns false if the list is
// empty.
func (l *Int32List) Pop() (int32, bool) {
	switch h := l.take().(type) {
	case more:
		l.head = h.node.next
		h.node.next = empty{}
		l.length--
		return h.node.value, true
	default:
		return 0, false
	}
}

// Len returns the number of values in the list.
func (l *Int32List) Len() int {
	return l.length
}

// IsEmpty reports whether the list holds no values.
func (l *Int32List) IsEmpty() bool {
	return l.length == 0
}

// Clear releases every node of the list with a loop, head first.
func (l *Int32List) Clear() {
	cur := l.take()
	for {
		m, ok := cur.(more)
		if !ok {
			break
		}
		cur = m.node.next
		m.node.next = empty{}
	}
	l.length = 0
}

// String renders the values top first, e.g. "[3 2 1]".
func (l *Int32List) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for cur, first := l.head, true; ; first = false {
		m, ok := cur.(more)
		if !ok {
			break
		}
		if !first {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.FormatInt(int64(m.node.value), 10))
		cur = m.node.next
	}
	sb.WriteByte(']')
	return sb.String()
}
