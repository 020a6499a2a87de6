package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/talentgrid/allocator/model"
	"github.com/talentgrid/allocator/service/roster"
)

// Service is an in-memory roster source. Employees are validated on
// registration so that allocation never observes an incomplete record.
type Service struct {
	employees map[string][]*model.Employee // by project ID
	shared    []*model.Employee            // available to every project
	mux       sync.RWMutex
}

var _ roster.Source = (*Service)(nil)

// New creates an empty in-memory roster.
func New() *Service {
	return &Service{employees: map[string][]*model.Employee{}}
}

// Register adds employees available to every project.
func (s *Service) Register(employees ...*model.Employee) error {
	for _, e := range employees {
		if err := e.Validate(); err != nil {
			return fmt.Errorf("invalid employee: %w", err)
		}
	}
	s.mux.Lock()
	defer s.mux.Unlock()
	s.shared = append(s.shared, employees...)
	return nil
}

// RegisterForProject adds employees visible to a single project only.
func (s *Service) RegisterForProject(projectID string, employees ...*model.Employee) error {
	for _, e := range employees {
		if err := e.Validate(); err != nil {
			return fmt.Errorf("invalid employee: %w", err)
		}
	}
	s.mux.Lock()
	defer s.mux.Unlock()
	s.employees[projectID] = append(s.employees[projectID], employees...)
	return nil
}

// Fetch returns the employees eligible for the supplied project.
func (s *Service) Fetch(_ context.Context, projectID string) ([]*model.Employee, error) {
	s.mux.RLock()
	defer s.mux.RUnlock()
	ret := make([]*model.Employee, 0, len(s.shared)+len(s.employees[projectID]))
	ret = append(ret, s.shared...)
	ret = append(ret, s.employees[projectID]...)
	return ret, nil
}
