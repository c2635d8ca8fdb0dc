package domain

import (
	"context"
	"errors"
)

// AuditSink receives one line per committed booking or cancellation.
// Implementations own their external resource (file handle, redis client)
// and are opened in main and closed at exit.
type AuditSink interface {
	Append(ctx context.Context, line string) error
	Close() error
}

var (
	ErrRoomNotFound       = errors.New("room not found")
	ErrRoomUnavailable    = errors.New("room already booked")
	ErrInsufficientBudget = errors.New("insufficient budget")
	ErrNotBooked          = errors.New("room not booked by this customer")
	ErrInvalidNights      = errors.New("nights must be positive")
	ErrDuplicateRoom      = errors.New("duplicate room number")
)

// Update carries an optional new value for one field: either "set to v"
// or "leave unchanged". Avoids nil/zero sentinels on update paths.
type Update[T any] struct {
	value T
	set   bool
}

func Set[T any](v T) Update[T] { return Update[T]{value: v, set: true} }

func Keep[T any]() Update[T] { return Update[T]{} }

func (u Update[T]) Get() (T, bool) { return u.value, u.set }
