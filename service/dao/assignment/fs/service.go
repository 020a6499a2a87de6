package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path"
	"strings"
	"sync"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/option"
	"github.com/viant/afs/url"

	"github.com/talentgrid/allocator/runtime/allocation"
	"github.com/talentgrid/allocator/service/dao"
	"github.com/talentgrid/allocator/service/dao/criteria"
)

// Service implements a filesystem-based assignment store, one JSON document
// per assignment. It gives commits durability across restarts while keeping
// the same dao.Service contract as the in-memory variant.
type Service struct {
	basePath string
	fs       afs.Service
	mu       sync.RWMutex
}

var _ dao.Service[string, allocation.Assignment] = (*Service)(nil)

// Save persists an assignment to the filesystem.
func (s *Service) Save(ctx context.Context, assignment *allocation.Assignment) error {
	if assignment == nil {
		return dao.ErrNilEntity
	}
	if assignment.ID == "" {
		return dao.ErrInvalidID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(assignment)
	if err != nil {
		return fmt.Errorf("failed to marshal assignment: %w", err)
	}
	filePath := s.assignmentPath(assignment.ID)
	if err = s.fs.Upload(ctx, filePath, file.DefaultFileOsMode, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to save assignment to file %s: %w", filePath, err)
	}
	return nil
}

// Load retrieves an assignment from the filesystem.
func (s *Service) Load(ctx context.Context, id string) (*allocation.Assignment, error) {
	if id == "" {
		return nil, dao.ErrInvalidID
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	filePath := s.assignmentPath(id)
	exists, err := s.fs.Exists(ctx, filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to check if assignment exists: %w", err)
	}
	if !exists {
		return nil, dao.ErrNotFound
	}
	data, err := s.fs.DownloadWithURL(ctx, filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read assignment file: %w", err)
	}
	var assignment allocation.Assignment
	if err = json.Unmarshal(data, &assignment); err != nil {
		return nil, fmt.Errorf("failed to unmarshal assignment data: %w", err)
	}
	return &assignment, nil
}

// Delete removes an assignment from the filesystem.
func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return dao.ErrInvalidID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	filePath := s.assignmentPath(id)
	exists, err := s.fs.Exists(ctx, filePath)
	if err != nil {
		return fmt.Errorf("failed to check if assignment exists: %w", err)
	}
	if !exists {
		return dao.ErrNotFound
	}
	if err = s.fs.Delete(ctx, filePath); err != nil {
		return fmt.Errorf("failed to delete assignment file: %w", err)
	}
	return nil
}

// List returns assignments matching the supplied parameters.
func (s *Service) List(ctx context.Context, parameters ...*dao.Parameter) ([]*allocation.Assignment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	objects, err := s.fs.List(ctx, s.basePath, option.NewRecursive(true))
	if err != nil {
		return nil, fmt.Errorf("failed to list assignment files: %w", err)
	}

	var assignments []*allocation.Assignment
	for _, object := range objects {
		if object.IsDir() || !strings.HasSuffix(object.Name(), ".json") {
			continue
		}
		data, err := s.fs.Download(ctx, object)
		if err != nil {
			continue
		}
		var assignment allocation.Assignment
		if err = json.Unmarshal(data, &assignment); err != nil {
			continue
		}
		fields := map[string]string{"TaskID": assignment.TaskID, "State": assignment.State}
		if !criteria.Matches(fields, parameters) {
			continue
		}
		assignments = append(assignments, &assignment)
	}
	return assignments, nil
}

func (s *Service) assignmentPath(id string) string {
	return path.Join(s.basePath, fmt.Sprintf("%s.json", id))
}

// New creates a new filesystem assignment store rooted at basePath.
func New(basePath string) (*Service, error) {
	if basePath == "" {
		return nil, fmt.Errorf("base path cannot be empty")
	}

	fsService := afs.New()
	ctx := context.Background()
	exists, _ := fsService.Exists(ctx, basePath)
	if !exists {
		if err := fsService.Create(ctx, basePath, file.DefaultDirOsMode, true); err != nil {
			return nil, fmt.Errorf("failed to create base directory: %w", err)
		}
	}
	basePath = url.Normalize(basePath, file.Scheme)

	return &Service{basePath: basePath, fs: fsService}, nil
}
