// Package roster defines the employee pool collaborator consumed by the
// allocation engine.
package roster

import (
	"context"

	"github.com/talentgrid/allocator/model"
)

// Source returns the employees eligible for a project's tasks. Fetch is an
// I/O edge; implementations handle their own timeout/cancellation via ctx.
type Source interface {
	Fetch(ctx context.Context, projectID string) ([]*model.Employee, error)
}
