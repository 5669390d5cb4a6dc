// Package list contains singly linked lists with stack (LIFO) discipline.
//
// Two variants are provided. Int32List holds int32 values and models each link
// explicitly as either empty or pointing at a node. List is generic over its
// element type and adds Peek and PeekMut on top of Push and Pop.
//
// Every list exclusively owns its chain of nodes: the list owns the head, and
// each node owns its successor. A node that has been popped keeps no reference
// into the chain. Clear releases a chain with a loop rather than by recursion,
// so discarding very long lists has constant stack cost.
//
// The lists are not safe for concurrent use. Callers sharing a list between
// goroutines must guard the whole list with their own lock.
//
// PeekMut hands out a Lease on the head element. While a lease is held, any
// other use of the list panics with an error wrapping ErrLeaseHeld:
//
//	l := list.New[int]()
//	l.Push(3)
//
//	if lease, ok := l.PeekMut(); ok {
//		lease.Set(lease.Get() * 14)
//		lease.Release()
//	}
//
//	v, _ := l.Pop() // 42
//
// Update is the callback form of the same lease and always releases it.
package list
