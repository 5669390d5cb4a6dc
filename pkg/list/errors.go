package list

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyList is the error form of a false result from Pop, Peek or PeekMut.
	// The list methods themselves never return it.
	ErrEmptyList = errors.New("list is empty")

	// ErrLeaseHeld is wrapped by the panic raised when a list is used while a
	// Lease from PeekMut is still outstanding.
	ErrLeaseHeld = errors.New("list is leased by PeekMut")

	// ErrLeaseReleased is wrapped by the panic raised when a Lease is used after
	// Release.
	ErrLeaseReleased = errors.New("lease already released")
)

func leaseHeldError(op string) error {
	return fmt.Errorf("%s: %w", op, ErrLeaseHeld)
}
