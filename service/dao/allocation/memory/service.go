package memory

import (
	"github.com/talentgrid/allocator/runtime/allocation"
	"github.com/talentgrid/allocator/service/dao/store"
)

// New creates an in-memory allocation store keyed by task ID; there is at
// most one allocation record per task, filterable by State.
func New() *store.MemoryStore[string, allocation.Allocation] {
	return store.NewMemoryStore[string, allocation.Allocation](
		func(a *allocation.Allocation) string { return a.TaskID },
		func(a *allocation.Allocation) map[string]string {
			return map[string]string{"State": a.GetState()}
		})
}
