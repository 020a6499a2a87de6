package engine

import "errors"

var (
	// ErrEmptyRoster is returned when allocation is requested with no
	// employees to rank.
	ErrEmptyRoster = errors.New("engine: empty roster")

	// ErrNoRequiredSkills is returned when the task declares no required
	// skills; ranking without requirements is meaningless.
	ErrNoRequiredSkills = errors.New("engine: task has no required skills")

	// ErrNoAllocation is returned when a decision is requested for a task that
	// has no computed allocation.
	ErrNoAllocation = errors.New("engine: no allocation for task")

	// ErrUnknownCandidate is returned when the decided employee does not
	// appear in the ranked candidates.
	ErrUnknownCandidate = errors.New("engine: employee is not a ranked candidate")

	// ErrNotAllowed is returned when the active policy blocks the operation.
	ErrNotAllowed = errors.New("engine: operation not allowed by policy")
)
