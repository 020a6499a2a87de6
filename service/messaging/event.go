package messaging

import (
	"time"

	"github.com/talentgrid/allocator/runtime/allocation"
)

// Assignment lifecycle topics published by the coordinator.
const (
	TopicAssignmentCommitted  = "assignment.committed"
	TopicAssignmentSuperseded = "assignment.superseded"
	TopicAssignmentFailed     = "assignment.failed"
)

// AssignmentEvent is the envelope published after every terminal assignment
// transition so that downstream consumers (UI, audit) can observe commits
// without polling the store.
type AssignmentEvent struct {
	Topic      string                 `json:"topic"`
	Assignment *allocation.Assignment `json:"assignment"`
	EmittedAt  time.Time              `json:"emittedAt"`
}
