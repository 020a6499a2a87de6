package engine

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/talentgrid/allocator/model"
	"github.com/talentgrid/allocator/model/skill"
	"github.com/talentgrid/allocator/policy"
	"github.com/talentgrid/allocator/runtime/allocation"
	allocmem "github.com/talentgrid/allocator/service/dao/allocation/memory"
	"github.com/talentgrid/allocator/service/matcher"
)

func newEmployee(id string, skills ...string) *model.Employee {
	set, _ := skill.ParseSet(skills...)
	return &model.Employee{
		ID:       id,
		Name:     "Employee " + id,
		Skills:   set,
		Shift:    model.ShiftMorning,
		WorkFrom: model.TimeOfDay{Hour: 8},
		WorkTo:   model.TimeOfDay{Hour: 16},
	}
}

func newTask(id string, skills ...string) *model.Task {
	set, _ := skill.ParseSet(skills...)
	return &model.Task{
		ID:             id,
		ProjectID:      "p1",
		Title:          "Task " + id,
		RequiredSkills: set,
		Deadline:       time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		CreatedAt:      time.Now(),
	}
}

func TestAllocateRanking(t *testing.T) {
	service := New(allocmem.New(), matcher.Nop{})
	task := newTask("t1", "ui/ux", "figma")
	roster := []*model.Employee{
		newEmployee("emp-c", "figma"),
		newEmployee("emp-a", "ui/ux", "figma"),
		newEmployee("emp-b", "ui/ux"),
	}

	result, err := service.Allocate(context.Background(), task, roster)
	assert.NoError(t, err)
	assert.Equal(t, 3, len(result.Candidates))

	// full match first, equal partial scores ordered by employee ID
	assert.Equal(t, "emp-a", result.Candidates[0].EmployeeID)
	assert.Equal(t, 1.0, result.Candidates[0].Score)
	assert.Equal(t, "emp-b", result.Candidates[1].EmployeeID)
	assert.Equal(t, 0.5, result.Candidates[1].Score)
	assert.Equal(t, "emp-c", result.Candidates[2].EmployeeID)
	assert.Equal(t, 0.5, result.Candidates[2].Score)

	assert.Equal(t, []skill.Skill{"figma", "ui/ux"}, result.SkillsFound.Sorted())
}

func TestAllocateMatchedCountTieBreak(t *testing.T) {
	service := New(allocmem.New(), matcher.Nop{})
	task := newTask("t1", "welding", "hydraulics", "electrical", "robotics")
	roster := []*model.Employee{
		// equal score and matched count, order falls back to employee ID
		newEmployee("emp-z", "welding", "hydraulics"),
		newEmployee("emp-a", "electrical", "robotics"),
	}
	result, err := service.Allocate(context.Background(), task, roster)
	assert.NoError(t, err)
	assert.Equal(t, "emp-a", result.Candidates[0].EmployeeID)
	assert.Equal(t, "emp-z", result.Candidates[1].EmployeeID)
}

func TestAllocateZeroScoreRetained(t *testing.T) {
	service := New(allocmem.New(), matcher.Nop{})
	task := newTask("t1", "welding")
	roster := []*model.Employee{
		newEmployee("emp-a", "welding"),
		newEmployee("emp-b", "carpentry"),
	}
	result, err := service.Allocate(context.Background(), task, roster)
	assert.NoError(t, err)
	assert.Equal(t, 2, len(result.Candidates))
	assert.Equal(t, 0.0, result.Candidates[1].Score)
}

func TestAllocateDisplayCapDropsZeroScoresFirst(t *testing.T) {
	service := New(allocmem.New(), matcher.Nop{}, WithDisplayCap(3))
	task := newTask("t1", "welding")
	roster := []*model.Employee{
		newEmployee("emp-a", "welding"),
		newEmployee("emp-b", "welding"),
		newEmployee("emp-c", "welding"),
		newEmployee("emp-d", "carpentry"),
		newEmployee("emp-e", "carpentry"),
	}
	result, err := service.Allocate(context.Background(), task, roster)
	assert.NoError(t, err)
	assert.Equal(t, 3, len(result.Candidates))
	for _, candidate := range result.Candidates {
		assert.Equal(t, 1.0, candidate.Score)
	}
}

func TestAllocateErrors(t *testing.T) {
	service := New(allocmem.New(), matcher.Nop{})

	_, err := service.Allocate(context.Background(), newTask("t1", "welding"), nil)
	assert.ErrorIs(t, err, ErrEmptyRoster)

	_, err = service.Allocate(context.Background(), newTask("t2"), []*model.Employee{newEmployee("emp-a", "welding")})
	assert.ErrorIs(t, err, ErrNoRequiredSkills)
}

func TestAllocateSuggestions(t *testing.T) {
	provider, err := matcher.NewCoOccurrenceWith(map[string][]string{
		"welding": {"fabrication", "soldering"},
	})
	assert.NoError(t, err)
	service := New(allocmem.New(), provider)

	task := newTask("t1", "welding", "fabrication")
	roster := []*model.Employee{newEmployee("emp-a", "welding", "fabrication")}
	result, err := service.Allocate(context.Background(), task, roster)
	assert.NoError(t, err)
	// fabrication is already found on the roster so only soldering remains
	assert.Equal(t, []skill.Skill{"soldering"}, result.AISuggested.Sorted())
}

type failingProvider struct{}

func (failingProvider) Suggest(_ context.Context, _ skill.Set) (skill.Set, error) {
	return nil, fmt.Errorf("provider offline")
}

func TestAllocateSuggestionProviderFailureDegrades(t *testing.T) {
	service := New(allocmem.New(), failingProvider{})
	task := newTask("t1", "welding")
	roster := []*model.Employee{newEmployee("emp-a", "welding")}
	result, err := service.Allocate(context.Background(), task, roster)
	assert.NoError(t, err)
	assert.Equal(t, 0, result.AISuggested.Len())
}

func TestAllocateIdempotent(t *testing.T) {
	store := allocmem.New()
	service := New(store, matcher.Nop{})
	task := newTask("t1", "welding")
	roster := []*model.Employee{newEmployee("emp-a", "welding")}

	first, err := service.Allocate(context.Background(), task, roster)
	assert.NoError(t, err)
	second, err := service.Allocate(context.Background(), task, roster)
	assert.NoError(t, err)
	assert.Equal(t, first.Candidates, second.Candidates)

	record, err := store.Load(context.Background(), "t1")
	assert.NoError(t, err)
	assert.Equal(t, allocation.StateComputed, record.GetState())
}

func TestDecide(t *testing.T) {
	store := allocmem.New()
	service := New(store, matcher.Nop{})
	task := newTask("t1", "welding")
	roster := []*model.Employee{
		newEmployee("emp-a", "welding"),
		newEmployee("emp-b", "carpentry"),
	}
	_, err := service.Allocate(context.Background(), task, roster)
	assert.NoError(t, err)

	record, err := service.Decide(context.Background(), "t1", "emp-a")
	assert.NoError(t, err)
	assert.Equal(t, allocation.StateDecided, record.GetState())
	assert.Equal(t, "emp-a", record.DecidedEmployeeID)

	// further recomputation is rejected once decided
	_, err = service.Allocate(context.Background(), task, roster)
	assert.Error(t, err)
}

func TestDecideErrors(t *testing.T) {
	service := New(allocmem.New(), matcher.Nop{})

	_, err := service.Decide(context.Background(), "absent", "emp-a")
	assert.ErrorIs(t, err, ErrNoAllocation)

	task := newTask("t1", "welding")
	_, err = service.Allocate(context.Background(), task, []*model.Employee{newEmployee("emp-a", "welding")})
	assert.NoError(t, err)

	_, err = service.Decide(context.Background(), "t1", "emp-unknown")
	assert.ErrorIs(t, err, ErrUnknownCandidate)
}

func TestPolicyBlocksAllocate(t *testing.T) {
	service := New(allocmem.New(), matcher.Nop{})
	ctx := policy.WithPolicy(context.Background(), &policy.Policy{Mode: policy.ModeDeny})
	_, err := service.Allocate(ctx, newTask("t1", "welding"), []*model.Employee{newEmployee("emp-a", "welding")})
	assert.ErrorIs(t, err, ErrNotAllowed)
}
