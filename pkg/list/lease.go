package list

// Lease is exclusive access to the top value of a List, obtained from
// PeekMut. The list can't be used until the lease is released.
type Lease[T any] struct {
	list *List[T]
	node *node[T]
}

// Get returns the leased value.
func (l *Lease[T]) Get() T {
	l.mustBeActive()
	return l.node.value
}

// Set replaces the leased value in place.
func (l *Lease[T]) Set(value T) {
	l.mustBeActive()
	l.node.value = value
}

// Release returns access to the list. Releasing twice is a no-op.
func (l *Lease[T]) Release() {
	if l.list == nil {
		return
	}
	l.list.lease = nil
	l.list = nil
	l.node = nil
}

func (l *Lease[T]) mustBeActive() {
	if l.list == nil {
		panic(ErrLeaseReleased)
	}
}
