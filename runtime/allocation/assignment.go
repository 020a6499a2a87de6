package allocation

import (
	"time"

	"github.com/talentgrid/allocator/internal/clock"
	"github.com/talentgrid/allocator/internal/idgen"
)

// Assignment durably records a chosen employee for a task. The assignment
// coordinator is the sole writer of its state; at most one assignment per
// task may be committed at any time.
type Assignment struct {
	ID          string     `json:"id"`
	TaskID      string     `json:"taskId"`
	EmployeeID  string     `json:"employeeId"`
	State       string     `json:"state"`
	Attempts    int        `json:"attempts,omitempty"`
	Error       string     `json:"error,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	CommittedAt *time.Time `json:"committedAt,omitempty"`
}

// NewAssignment creates a pending assignment for the (task, employee) pair.
func NewAssignment(taskID, employeeID string) *Assignment {
	now := clock.Now()
	return &Assignment{
		ID:         idgen.New(),
		TaskID:     taskID,
		EmployeeID: employeeID,
		State:      AssignmentPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// Commit marks the assignment as committed.
func (a *Assignment) Commit() {
	now := clock.Now()
	a.State = AssignmentCommitted
	a.CommittedAt = &now
	a.UpdatedAt = now
}

// Supersede marks a previously committed assignment as replaced.
func (a *Assignment) Supersede() {
	a.State = AssignmentSuperseded
	a.UpdatedAt = clock.Now()
}

// Fail marks the assignment as failed after retry exhaustion.
func (a *Assignment) Fail(err error) {
	a.State = AssignmentFailed
	if err != nil {
		a.Error = err.Error()
	}
	a.UpdatedAt = clock.Now()
}

// Clone returns an independent copy.
func (a *Assignment) Clone() *Assignment {
	if a == nil {
		return nil
	}
	out := *a
	if a.CommittedAt != nil {
		t := *a.CommittedAt
		out.CommittedAt = &t
	}
	return &out
}
