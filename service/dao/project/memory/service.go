package memory

import (
	"github.com/talentgrid/allocator/model"
	"github.com/talentgrid/allocator/service/dao/store"
)

// New creates an in-memory project store keyed by project ID.
func New() *store.MemoryStore[string, model.Project] {
	return store.NewMemoryStore[string, model.Project](
		func(p *model.Project) string { return p.ID }, nil)
}
