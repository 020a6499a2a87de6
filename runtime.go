package allocator

import (
	"context"
	"fmt"
	"sort"

	"github.com/talentgrid/allocator/internal/clock"
	"github.com/talentgrid/allocator/internal/idgen"
	"github.com/talentgrid/allocator/model"
	"github.com/talentgrid/allocator/model/skill"
	"github.com/talentgrid/allocator/runtime/allocation"
	"github.com/talentgrid/allocator/runtime/cursor"
	"github.com/talentgrid/allocator/service/coordinator"
	"github.com/talentgrid/allocator/service/dao"
	"github.com/talentgrid/allocator/service/engine"
	"github.com/talentgrid/allocator/service/roster"
)

// Runtime exposes the typed allocation operations of a constructed Service.
type Runtime struct {
	rosterSource  roster.Source
	taskDAO       dao.Service[string, model.Task]
	projectDAO    dao.Service[string, model.Project]
	allocationDAO dao.Service[string, allocation.Allocation]
	assignmentDAO dao.Service[string, allocation.Assignment]
	engine        *engine.Service
	coordinator   *coordinator.Service
}

// TaskInput is the task creation payload. Required skills can be supplied
// either as a comma-separated string or as a list; the list wins when both
// are present.
type TaskInput struct {
	ProjectID      string   `json:"projectId" yaml:"projectId"`
	Title          string   `json:"title" yaml:"title"`
	Description    string   `json:"description,omitempty" yaml:"description,omitempty"`
	RequiredSkills string   `json:"requiredSkills,omitempty" yaml:"requiredSkills,omitempty"`
	Skills         []string `json:"skills,omitempty" yaml:"skills,omitempty"`
	Deadline       string   `json:"deadline" yaml:"deadline"`
}

// AddProject creates and persists a project.
func (r *Runtime) AddProject(ctx context.Context, name, description string) (*model.Project, error) {
	project := &model.Project{
		ID:          idgen.New(),
		Name:        name,
		Description: description,
		CreatedAt:   clock.Now(),
	}
	if err := project.Validate(); err != nil {
		return nil, err
	}
	if err := r.projectDAO.Save(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to save project: %w", err)
	}
	return project, nil
}

// AddTask creates and persists a task under an existing project.
func (r *Runtime) AddTask(ctx context.Context, input *TaskInput) (*model.Task, error) {
	if input == nil {
		return nil, fmt.Errorf("task input cannot be nil")
	}
	if _, err := r.projectDAO.Load(ctx, input.ProjectID); err != nil {
		return nil, fmt.Errorf("unknown project %s: %w", input.ProjectID, err)
	}
	var required skill.Set
	var err error
	if len(input.Skills) > 0 {
		required, err = skill.ParseSet(input.Skills...)
	} else {
		required, err = skill.ParseList([]byte(input.RequiredSkills))
	}
	if err != nil {
		return nil, err
	}
	deadline, err := model.ParseDeadline(input.Deadline)
	if err != nil {
		return nil, err
	}
	task := &model.Task{
		ID:             idgen.New(),
		ProjectID:      input.ProjectID,
		Title:          input.Title,
		Description:    input.Description,
		RequiredSkills: required,
		Deadline:       deadline,
		CreatedAt:      clock.Now(),
	}
	if err = task.Validate(); err != nil {
		return nil, err
	}
	if err = r.taskDAO.Save(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to save task: %w", err)
	}
	return task, nil
}

// Task loads a single task.
func (r *Runtime) Task(ctx context.Context, taskID string) (*model.Task, error) {
	return r.taskDAO.Load(ctx, taskID)
}

// Tasks returns the project's tasks in creation order.
func (r *Runtime) Tasks(ctx context.Context, projectID string) ([]*model.Task, error) {
	return r.taskDAO.List(ctx, dao.NewParameter("ProjectID", projectID))
}

// PrioritizedTasks returns the project's tasks ordered by deadline ascending;
// equal deadlines keep creation order.
func (r *Runtime) PrioritizedTasks(ctx context.Context, projectID string) ([]*model.Task, error) {
	tasks, err := r.Tasks(ctx, projectID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].Deadline.Before(tasks[j].Deadline)
	})
	return tasks, nil
}

// Allocate computes the ranked allocation for a task against the project's
// roster.
func (r *Runtime) Allocate(ctx context.Context, taskID string) (*allocation.Result, error) {
	task, err := r.taskDAO.Load(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to load task %s: %w", taskID, err)
	}
	employees, err := r.rosterSource.Fetch(ctx, task.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch roster for project %s: %w", task.ProjectID, err)
	}
	return r.engine.Allocate(ctx, task, employees)
}

// Decide records the operator's candidate choice for a task.
func (r *Runtime) Decide(ctx context.Context, taskID, employeeID string) (*allocation.Allocation, error) {
	return r.engine.Decide(ctx, taskID, employeeID)
}

// Allocation returns the allocation record of a task.
func (r *Runtime) Allocation(ctx context.Context, taskID string) (*allocation.Allocation, error) {
	return r.engine.Allocation(ctx, taskID)
}

// Commit durably assigns the employee to the task.
func (r *Runtime) Commit(ctx context.Context, taskID, employeeID string) (*allocation.Assignment, error) {
	return r.coordinator.Commit(ctx, taskID, employeeID)
}

// Reassign replaces the task's committed assignment with the employee.
func (r *Runtime) Reassign(ctx context.Context, taskID, employeeID string) (*allocation.Assignment, error) {
	return r.coordinator.Reassign(ctx, taskID, employeeID)
}

// Assignments returns the task's assignment history.
func (r *Runtime) Assignments(ctx context.Context, taskID string) ([]*allocation.Assignment, error) {
	return r.coordinator.Assignments(ctx, taskID)
}

// NextTask steps circularly forward through the project's tasks in creation
// order.
func (r *Runtime) NextTask(ctx context.Context, projectID, currentTaskID string) (string, error) {
	ids, err := r.taskIDs(ctx, projectID)
	if err != nil {
		return "", err
	}
	return cursor.Next(currentTaskID, ids)
}

// PreviousTask steps circularly backward through the project's tasks.
func (r *Runtime) PreviousTask(ctx context.Context, projectID, currentTaskID string) (string, error) {
	ids, err := r.taskIDs(ctx, projectID)
	if err != nil {
		return "", err
	}
	return cursor.Previous(currentTaskID, ids)
}

func (r *Runtime) taskIDs(ctx context.Context, projectID string) ([]string, error) {
	tasks, err := r.Tasks(ctx, projectID)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(tasks))
	for _, task := range tasks {
		ids = append(ids, task.ID)
	}
	return ids, nil
}

// Shutdown stops the coordinator; no further retries are scheduled.
func (r *Runtime) Shutdown() {
	r.coordinator.Shutdown()
}
