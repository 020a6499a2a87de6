// Package coordinator durably records chosen employees for tasks. It is the
// sole writer of assignment state and enforces the cross-call invariant that
// at most one committed assignment exists per task. Commits serialize per
// task; different tasks proceed independently.
package coordinator

import (
	"context"
	"fmt"
	"hash/fnv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/talentgrid/allocator/internal/clock"
	"github.com/talentgrid/allocator/policy"
	"github.com/talentgrid/allocator/progress"
	"github.com/talentgrid/allocator/runtime/allocation"
	"github.com/talentgrid/allocator/service/dao"
	"github.com/talentgrid/allocator/service/messaging"
	"github.com/talentgrid/allocator/tracing"
)

const stripeCount = 32

type inflight struct {
	employeeID string
	assignment *allocation.Assignment
	// snapshot is an immutable pending-state copy handed to coalesced callers
	// so they never observe mid-commit mutation.
	snapshot *allocation.Assignment
}

// Service coordinates assignment commits.
type Service struct {
	allocations dao.Service[string, allocation.Allocation]
	assignments dao.Service[string, allocation.Assignment]
	queue       messaging.Queue[messaging.AssignmentEvent]
	retry       *Retry

	stripes    [stripeCount]sync.Mutex
	inflightMu sync.Mutex
	inflights  map[string]*inflight
	closed     atomic.Bool
}

// Option customises the coordinator.
type Option func(*Service)

// WithRetry overrides the commit retry bounds.
func WithRetry(retry *Retry) Option {
	return func(s *Service) {
		if retry != nil {
			s.retry = retry
		}
	}
}

// WithQueue attaches a queue for assignment lifecycle events.
func WithQueue(queue messaging.Queue[messaging.AssignmentEvent]) Option {
	return func(s *Service) { s.queue = queue }
}

// New creates a coordinator over the supplied stores.
func New(allocations dao.Service[string, allocation.Allocation], assignments dao.Service[string, allocation.Assignment], options ...Option) *Service {
	ret := &Service{
		allocations: allocations,
		assignments: assignments,
		retry:       DefaultRetry(),
		inflights:   make(map[string]*inflight),
	}
	for _, option := range options {
		option(ret)
	}
	return ret
}

func (s *Service) stripe(taskID string) *sync.Mutex {
	h := fnv.New32a()
	_, _ = h.Write([]byte(taskID))
	return &s.stripes[h.Sum32()%stripeCount]
}

// Commit durably records employeeID as the assignee of taskID. The employee
// must appear in the task's latest computed result. A concurrent commit of
// the same (task, employee) pair coalesces onto the in-flight attempt, which
// is returned together with ErrDuplicateCommitInFlight. A committed task
// rejects further commits with ErrAlreadyCommitted; use Reassign to replace.
func (s *Service) Commit(ctx context.Context, taskID, employeeID string) (ret *allocation.Assignment, err error) {
	ctx, span := tracing.StartSpan(ctx, "coordinator.commit", "INTERNAL")
	defer func() { tracing.EndSpan(span, err) }()
	span.WithAttributes(map[string]string{"taskId": taskID, "employeeId": employeeID})

	if s.closed.Load() {
		return nil, ErrClosed
	}
	if !policy.FromContext(ctx).IsAllowed("coordinator.commit") {
		return nil, ErrNotAllowed
	}

	assignment, coalesced := s.enter(taskID, employeeID)
	if coalesced {
		return assignment.Clone(), ErrDuplicateCommitInFlight
	}
	defer s.leave(taskID)

	mux := s.stripe(taskID)
	mux.Lock()
	defer mux.Unlock()

	if err = s.checkCandidate(ctx, taskID, employeeID); err != nil {
		return nil, err
	}
	if existing, findErr := s.committedFor(ctx, taskID); findErr != nil {
		return nil, findErr
	} else if existing != nil {
		if existing.EmployeeID == employeeID {
			// committing an identical pair again is a no-op observation
			return existing.Clone(), nil
		}
		return nil, ErrAlreadyCommitted
	}
	return s.commitLocked(ctx, assignment)
}

// Reassign atomically supersedes the task's committed assignment (when one
// exists) and commits employeeID instead; both transitions happen inside the
// same per-task critical section so no observer sees two committed
// assignments for the task.
func (s *Service) Reassign(ctx context.Context, taskID, employeeID string) (ret *allocation.Assignment, err error) {
	ctx, span := tracing.StartSpan(ctx, "coordinator.reassign", "INTERNAL")
	defer func() { tracing.EndSpan(span, err) }()
	span.WithAttributes(map[string]string{"taskId": taskID, "employeeId": employeeID})

	if s.closed.Load() {
		return nil, ErrClosed
	}
	if !policy.FromContext(ctx).IsAllowed("coordinator.reassign") {
		return nil, ErrNotAllowed
	}

	assignment, coalesced := s.enter(taskID, employeeID)
	if coalesced {
		return assignment.Clone(), ErrDuplicateCommitInFlight
	}
	defer s.leave(taskID)

	mux := s.stripe(taskID)
	mux.Lock()
	defer mux.Unlock()

	if err = s.checkCandidate(ctx, taskID, employeeID); err != nil {
		return nil, err
	}
	prior, findErr := s.committedFor(ctx, taskID)
	if findErr != nil {
		return nil, findErr
	}
	if prior != nil && prior.EmployeeID == employeeID {
		return prior.Clone(), nil
	}
	if prior != nil {
		prior.Supersede()
		if err = s.assignments.Save(ctx, prior); err != nil {
			return nil, fmt.Errorf("failed to supersede assignment %s: %w", prior.ID, err)
		}
	}
	ret, err = s.commitLocked(ctx, assignment)
	if err != nil && prior != nil {
		// restore the prior commit so the task is never left unassigned
		prior.Commit()
		_ = s.assignments.Save(ctx, prior)
		return nil, err
	}
	if err == nil && prior != nil {
		s.publish(ctx, messaging.TopicAssignmentSuperseded, prior)
		progress.UpdateCtx(ctx, progress.Delta{Superseded: 1})
	}
	return ret, err
}

// enter registers an in-flight commit for taskID. When an identical pair is
// already in flight it returns that attempt with coalesced=true.
func (s *Service) enter(taskID, employeeID string) (*allocation.Assignment, bool) {
	s.inflightMu.Lock()
	defer s.inflightMu.Unlock()
	if active, ok := s.inflights[taskID]; ok && active.employeeID == employeeID {
		return active.snapshot, true
	}
	assignment := allocation.NewAssignment(taskID, employeeID)
	s.inflights[taskID] = &inflight{employeeID: employeeID, assignment: assignment, snapshot: assignment.Clone()}
	return assignment, false
}

func (s *Service) leave(taskID string) {
	s.inflightMu.Lock()
	defer s.inflightMu.Unlock()
	delete(s.inflights, taskID)
}

// checkCandidate validates that employeeID is a ranked candidate in the
// task's latest computed result.
func (s *Service) checkCandidate(ctx context.Context, taskID, employeeID string) error {
	record, err := s.allocations.Load(ctx, taskID)
	if err != nil {
		return ErrNoAllocation
	}
	result := record.LatestResult()
	if result == nil {
		return ErrNoAllocation
	}
	if _, ok := result.Candidate(employeeID); !ok {
		return ErrUnknownCandidate
	}
	return nil
}

// committedFor returns the committed assignment for taskID, nil when none.
func (s *Service) committedFor(ctx context.Context, taskID string) (*allocation.Assignment, error) {
	committed, err := s.assignments.List(ctx,
		dao.NewParameter("TaskID", taskID),
		dao.NewParameter("State", allocation.AssignmentCommitted))
	if err != nil {
		return nil, err
	}
	if len(committed) == 0 {
		return nil, nil
	}
	return committed[0], nil
}

// commitLocked persists the pending assignment and promotes it to committed,
// retrying transient store failures up to the configured bound. Exhaustion
// marks the assignment failed and surfaces ErrCommitFailed with the cause.
func (s *Service) commitLocked(ctx context.Context, assignment *allocation.Assignment) (*allocation.Assignment, error) {
	assignment.Commit()
	var saveErr error
	for attempt := 1; ; attempt++ {
		assignment.Attempts = attempt
		if saveErr = s.assignments.Save(ctx, assignment); saveErr == nil {
			break
		}
		again, delay := s.retry.Next(attempt)
		if !again || s.closed.Load() {
			return nil, s.fail(ctx, assignment, saveErr)
		}
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, s.fail(ctx, assignment, ctx.Err())
		}
	}
	if record, err := s.allocations.Load(ctx, assignment.TaskID); err == nil {
		record.MarkCommitted()
		_ = s.allocations.Save(ctx, record)
	}
	s.publish(ctx, messaging.TopicAssignmentCommitted, assignment)
	progress.UpdateCtx(ctx, progress.Delta{Committed: 1})
	return assignment.Clone(), nil
}

func (s *Service) fail(ctx context.Context, assignment *allocation.Assignment, cause error) error {
	assignment.Fail(cause)
	_ = s.assignments.Save(ctx, assignment)
	if record, err := s.allocations.Load(ctx, assignment.TaskID); err == nil {
		record.MarkFailed()
		_ = s.allocations.Save(ctx, record)
	}
	s.publish(ctx, messaging.TopicAssignmentFailed, assignment)
	progress.UpdateCtx(ctx, progress.Delta{Failed: 1})
	return fmt.Errorf("%w: %v", ErrCommitFailed, cause)
}

// publish emits a lifecycle event; delivery is best effort.
func (s *Service) publish(ctx context.Context, topic string, assignment *allocation.Assignment) {
	if s.queue == nil {
		return
	}
	event := messaging.AssignmentEvent{
		Topic:      topic,
		Assignment: assignment.Clone(),
		EmittedAt:  clock.Now(),
	}
	_ = s.queue.Publish(ctx, &event)
}

// Assignments returns all assignment records for the task, newest state
// included, so callers can audit the supersede history.
func (s *Service) Assignments(ctx context.Context, taskID string) ([]*allocation.Assignment, error) {
	return s.assignments.List(ctx, dao.NewParameter("TaskID", taskID))
}

// Shutdown stops the coordinator. In-flight attempts complete their current
// try but no further retries are scheduled.
func (s *Service) Shutdown() {
	s.closed.Store(true)
}
