package allocation

// Allocation state constants; a task moves none -> computed -> decided and
// terminates in committed or failed. Computed results are advisory and may be
// recomputed any number of times until a decision is made.
const (
	StateNone      = "none"
	StateComputed  = "computed"
	StateDecided   = "decided"
	StateCommitted = "committed"
	StateFailed    = "failed"
)

// Assignment state constants
const (
	AssignmentPending    = "pending"
	AssignmentCommitted  = "committed"
	AssignmentSuperseded = "superseded"
	AssignmentFailed     = "failed"
)
