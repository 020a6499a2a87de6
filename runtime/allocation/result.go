package allocation

import (
	"time"

	"github.com/talentgrid/allocator/model/skill"
)

// Candidate is an employee considered for a task, with its computed score and
// the required skills it actually matched.
type Candidate struct {
	EmployeeID string    `json:"employeeId"`
	Score      float64   `json:"score"`
	Matched    skill.Set `json:"matchedSkills"`
	// AvailableHours is informational only; it reports how much of the task's
	// working window overlaps the employee's shift hours and takes no part in
	// ranking order.
	AvailableHours float64 `json:"availableHours,omitempty"`
}

// Result is a ranked allocation proposal for a single task. It is produced
// fresh per allocation request and not persisted beyond the decision window.
type Result struct {
	TaskID      string      `json:"taskId"`
	SkillsFound skill.Set   `json:"skillsFound"`
	AISuggested skill.Set   `json:"aiSuggestedSkills"`
	Candidates  []Candidate `json:"rankedCandidates"`
	ComputedAt  time.Time   `json:"computedAt"`
}

// Candidate returns the ranked entry for the supplied employee, if present.
func (r *Result) Candidate(employeeID string) (*Candidate, bool) {
	if r == nil {
		return nil, false
	}
	for i := range r.Candidates {
		if r.Candidates[i].EmployeeID == employeeID {
			return &r.Candidates[i], true
		}
	}
	return nil, false
}

// Clone returns an independent copy so that callers can mutate the result
// without affecting the stored instance.
func (r *Result) Clone() *Result {
	if r == nil {
		return nil
	}
	out := &Result{
		TaskID:      r.TaskID,
		SkillsFound: r.SkillsFound.Clone(),
		AISuggested: r.AISuggested.Clone(),
		ComputedAt:  r.ComputedAt,
	}
	if len(r.Candidates) > 0 {
		out.Candidates = make([]Candidate, len(r.Candidates))
		for i, c := range r.Candidates {
			out.Candidates[i] = Candidate{
				EmployeeID:     c.EmployeeID,
				Score:          c.Score,
				Matched:        c.Matched.Clone(),
				AvailableHours: c.AvailableHours,
			}
		}
	}
	return out
}
