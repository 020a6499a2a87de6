package memory

import (
	"github.com/talentgrid/allocator/runtime/allocation"
	"github.com/talentgrid/allocator/service/dao/store"
)

// New creates an in-memory assignment store keyed by assignment ID and
// filterable by TaskID and State, so the coordinator can find the active
// assignment for a task.
func New() *store.MemoryStore[string, allocation.Assignment] {
	return store.NewMemoryStore[string, allocation.Assignment](
		func(a *allocation.Assignment) string { return a.ID },
		func(a *allocation.Assignment) map[string]string {
			return map[string]string{"TaskID": a.TaskID, "State": a.State}
		})
}
