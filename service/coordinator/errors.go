package coordinator

import "errors"

var (
	// ErrUnknownCandidate is returned when the employee does not appear in the
	// task's latest computed result.
	ErrUnknownCandidate = errors.New("coordinator: employee is not a ranked candidate")

	// ErrAlreadyCommitted is returned when a committed assignment already
	// exists for the task and Reassign was not used.
	ErrAlreadyCommitted = errors.New("coordinator: task already has a committed assignment")

	// ErrDuplicateCommitInFlight marks a non-fatal coalesced commit: the
	// returned assignment is the in-flight attempt started by another caller.
	ErrDuplicateCommitInFlight = errors.New("coordinator: commit already in flight")

	// ErrCommitFailed wraps the cause after the retry budget is exhausted.
	ErrCommitFailed = errors.New("coordinator: commit failed")

	// ErrNoAllocation is returned when the task has no computed allocation to
	// commit against.
	ErrNoAllocation = errors.New("coordinator: no allocation for task")

	// ErrNotAllowed is returned when the active policy blocks the operation.
	ErrNotAllowed = errors.New("coordinator: operation not allowed by policy")

	// ErrClosed is returned once the coordinator has been shut down.
	ErrClosed = errors.New("coordinator: closed")
)
