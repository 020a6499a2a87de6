package allocation

import (
	"fmt"
	"sync"
	"time"

	"github.com/talentgrid/allocator/internal/clock"
)

// Allocation tracks the decision lifecycle of a single task. The engine is
// the writer of Computed transitions; the Decided transition is made by an
// external actor (the operator) and the terminal transitions by the
// assignment coordinator.
type Allocation struct {
	TaskID            string     `json:"taskId"`
	State             string     `json:"state"`
	Result            *Result    `json:"result,omitempty"`
	DecidedEmployeeID string     `json:"decidedEmployeeId,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
	FinishedAt        *time.Time `json:"finishedAt,omitempty"`
	mu                sync.RWMutex
}

// New creates an allocation record in the initial state.
func New(taskID string) *Allocation {
	now := clock.Now()
	return &Allocation{
		TaskID:    taskID,
		State:     StateNone,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// GetState returns the allocation state.
func (a *Allocation) GetState() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.State
}

// SetComputed records a freshly computed result. Recomputation is permitted
// any number of times until a decision has been made.
func (a *Allocation) SetComputed(result *Result) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	switch a.State {
	case StateNone, StateComputed:
	default:
		return fmt.Errorf("allocation %s: cannot recompute in state %s", a.TaskID, a.State)
	}
	a.Result = result
	a.State = StateComputed
	a.UpdatedAt = clock.Now()
	return nil
}

// Decide records the operator's candidate choice. The employee must appear in
// the computed result; membership is validated by the caller against the
// ranked candidates.
func (a *Allocation) Decide(employeeID string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.State != StateComputed {
		return fmt.Errorf("allocation %s: cannot decide in state %s", a.TaskID, a.State)
	}
	a.DecidedEmployeeID = employeeID
	a.State = StateDecided
	a.UpdatedAt = clock.Now()
	return nil
}

// MarkCommitted moves the allocation to its committed terminal state.
func (a *Allocation) MarkCommitted() {
	a.setTerminal(StateCommitted)
}

// MarkFailed moves the allocation to its failed terminal state.
func (a *Allocation) MarkFailed() {
	a.setTerminal(StateFailed)
}

func (a *Allocation) setTerminal(state string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.State = state
	now := clock.Now()
	a.FinishedAt = &now
	a.UpdatedAt = now
}

// LatestResult returns the most recent computed result, nil when none exists.
func (a *Allocation) LatestResult() *Result {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.Result
}

// Clone creates a deep copy safe for reads outside the original store. The
// mutex is deliberately not copied.
func (a *Allocation) Clone() *Allocation {
	if a == nil {
		return nil
	}
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := &Allocation{
		TaskID:            a.TaskID,
		State:             a.State,
		Result:            a.Result.Clone(),
		DecidedEmployeeID: a.DecidedEmployeeID,
		CreatedAt:         a.CreatedAt,
		UpdatedAt:         a.UpdatedAt,
	}
	if a.FinishedAt != nil {
		t := *a.FinishedAt
		out.FinishedAt = &t
	}
	return out
}
