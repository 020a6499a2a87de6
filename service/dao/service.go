package dao

import (
	"context"
)

// Service is the generic persistence contract used for every stored entity
// (tasks, projects, allocations, assignments). Implementations are the I/O
// edge of the core; all of them honour ctx cancellation.
type Service[K comparable, T any] interface {
	Save(ctx context.Context, t *T) error

	Load(ctx context.Context, id K) (*T, error)

	Delete(ctx context.Context, id K) error

	List(ctx context.Context, parameters ...*Parameter) ([]*T, error)
}
