package model

import (
	"fmt"
	"time"

	"github.com/talentgrid/allocator/model/skill"
)

// DeadlineLayout is the ISO-8601 date layout accepted for task deadlines.
const DeadlineLayout = "2006-01-02"

// Task is created by the manager workflow and immutable once allocation
// begins; changing required skills means re-creating the task.
type Task struct {
	ID             string    `json:"id" yaml:"id"`
	ProjectID      string    `json:"projectId" yaml:"projectId"`
	Title          string    `json:"title" yaml:"title"`
	Description    string    `json:"description,omitempty" yaml:"description,omitempty"`
	RequiredSkills skill.Set `json:"requiredSkills" yaml:"requiredSkills"`
	Deadline       time.Time `json:"deadline" yaml:"deadline"`
	CreatedAt      time.Time `json:"createdAt" yaml:"createdAt"`
}

// Validate checks record completeness.
func (t *Task) Validate() error {
	if t == nil {
		return fmt.Errorf("task cannot be nil")
	}
	if t.ID == "" {
		return fmt.Errorf("task ID cannot be empty")
	}
	if t.ProjectID == "" {
		return fmt.Errorf("task %s: project ID cannot be empty", t.ID)
	}
	if t.Title == "" {
		return fmt.Errorf("task %s: title cannot be empty", t.ID)
	}
	return nil
}

// ParseDeadline parses an ISO-8601 date.
func ParseDeadline(text string) (time.Time, error) {
	ret, err := time.Parse(DeadlineLayout, text)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid deadline %q: %w", text, err)
	}
	return ret, nil
}
