package fs

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/viant/afs"

	"github.com/talentgrid/allocator/model"
	"github.com/talentgrid/allocator/service/roster"
)

// Service loads the employee pool from a JSON document (an array of employee
// records) through the afs abstraction, so the source may live on any
// supported scheme (file, mem, s3, ...). Records are validated at load time;
// a missing field fails the whole fetch rather than surfacing later inside an
// allocation.
type Service struct {
	fs  afs.Service
	URL string
}

var _ roster.Source = (*Service)(nil)

// Fetch downloads and validates the roster document. The same document is
// served to every project.
func (s *Service) Fetch(ctx context.Context, _ string) ([]*model.Employee, error) {
	data, err := s.fs.DownloadWithURL(ctx, s.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster %s: %w", s.URL, err)
	}
	var employees []*model.Employee
	if err = json.Unmarshal(data, &employees); err != nil {
		return nil, fmt.Errorf("failed to unmarshal roster %s: %w", s.URL, err)
	}
	for _, employee := range employees {
		if err = employee.Validate(); err != nil {
			return nil, fmt.Errorf("roster %s: %w", s.URL, err)
		}
	}
	return employees, nil
}

// New creates a roster source backed by the supplied URL.
func New(URL string) *Service {
	return &Service{fs: afs.New(), URL: URL}
}
