package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/talentgrid/allocator/model"
	"github.com/talentgrid/allocator/service/dao"
	"github.com/talentgrid/allocator/service/dao/criteria"
)

// Service implements an in-memory, thread-safe task store. List returns tasks
// in creation order (CreatedAt, then ID) so that callers get a stable ordered
// task list for cursor navigation.
type Service struct {
	tasks map[string]*model.Task
	mux   sync.RWMutex
}

var _ dao.Service[string, model.Task] = (*Service)(nil)

func (s *Service) Save(_ context.Context, t *model.Task) error {
	if t == nil {
		return dao.ErrNilEntity
	}
	if t.ID == "" {
		return dao.ErrInvalidID
	}

	s.mux.Lock()
	defer s.mux.Unlock()
	s.tasks[t.ID] = t
	return nil
}

func (s *Service) Load(_ context.Context, id string) (*model.Task, error) {
	if id == "" {
		return nil, dao.ErrInvalidID
	}

	s.mux.RLock()
	t, ok := s.tasks[id]
	s.mux.RUnlock()

	if !ok {
		return nil, dao.ErrNotFound
	}
	return t, nil
}

func (s *Service) Delete(_ context.Context, id string) error {
	if id == "" {
		return dao.ErrInvalidID
	}

	s.mux.Lock()
	defer s.mux.Unlock()

	if _, ok := s.tasks[id]; !ok {
		return dao.ErrNotFound
	}
	delete(s.tasks, id)
	return nil
}

func (s *Service) List(_ context.Context, parameters ...*dao.Parameter) ([]*model.Task, error) {
	s.mux.RLock()
	defer s.mux.RUnlock()

	out := make([]*model.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if !criteria.Matches(taskFields(t), parameters) {
			continue
		}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func taskFields(t *model.Task) map[string]string {
	return map[string]string{"ProjectID": t.ProjectID}
}

func New() *Service {
	return &Service{tasks: map[string]*model.Task{}}
}
