package allocation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/talentgrid/allocator/model/skill"
)

func TestAllocationLifecycle(t *testing.T) {
	a := New("t1")
	assert.Equal(t, StateNone, a.GetState())

	result := &Result{
		TaskID:      "t1",
		SkillsFound: skill.NewSet("figma"),
		Candidates:  []Candidate{{EmployeeID: "e1", Score: 1}},
	}
	assert.NoError(t, a.SetComputed(result))
	assert.Equal(t, StateComputed, a.GetState())

	// recomputation is allowed while undecided
	assert.NoError(t, a.SetComputed(result))

	assert.NoError(t, a.Decide("e1"))
	assert.Equal(t, StateDecided, a.GetState())

	// no recomputation once decided
	assert.Error(t, a.SetComputed(result))
	// no double decision
	assert.Error(t, a.Decide("e1"))

	a.MarkCommitted()
	assert.Equal(t, StateCommitted, a.GetState())
	assert.NotNil(t, a.FinishedAt)
}

func TestAllocationDecideRequiresComputed(t *testing.T) {
	a := New("t1")
	assert.Error(t, a.Decide("e1"))
}

func TestResultCandidateLookup(t *testing.T) {
	r := &Result{
		TaskID: "t1",
		Candidates: []Candidate{
			{EmployeeID: "e1", Score: 1},
			{EmployeeID: "e2", Score: 0.5},
		},
	}
	c, ok := r.Candidate("e2")
	assert.True(t, ok)
	assert.Equal(t, 0.5, c.Score)

	_, ok = r.Candidate("e9")
	assert.False(t, ok)
}

func TestResultClone(t *testing.T) {
	r := &Result{
		TaskID:      "t1",
		SkillsFound: skill.NewSet("welding"),
		AISuggested: skill.NewSet("fabrication"),
		Candidates:  []Candidate{{EmployeeID: "e1", Score: 1, Matched: skill.NewSet("welding")}},
	}
	clone := r.Clone()
	clone.SkillsFound.Add("hydraulics")
	clone.Candidates[0].Score = 0

	assert.False(t, r.SkillsFound.Has("hydraulics"))
	assert.Equal(t, 1.0, r.Candidates[0].Score)
}

func TestAssignmentLifecycle(t *testing.T) {
	a := NewAssignment("t1", "e1")
	assert.NotEmpty(t, a.ID)
	assert.Equal(t, AssignmentPending, a.State)

	a.Commit()
	assert.Equal(t, AssignmentCommitted, a.State)
	assert.NotNil(t, a.CommittedAt)

	a.Supersede()
	assert.Equal(t, AssignmentSuperseded, a.State)
}
