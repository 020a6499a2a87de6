// Package engine ranks roster employees against a task's required skills and
// tracks the per-task decision lifecycle. Computed results are advisory; they
// can be recomputed any number of times without side effects until an
// operator decides on a candidate.
package engine

import (
	"context"
	"sort"
	"strings"

	"github.com/talentgrid/allocator/internal/clock"
	"github.com/talentgrid/allocator/model"
	"github.com/talentgrid/allocator/model/skill"
	"github.com/talentgrid/allocator/policy"
	"github.com/talentgrid/allocator/progress"
	"github.com/talentgrid/allocator/runtime/allocation"
	"github.com/talentgrid/allocator/service/dao"
	"github.com/talentgrid/allocator/service/matcher"
	"github.com/talentgrid/allocator/tracing"
)

const (
	// DefaultDisplayCap bounds the ranked list; zero-score entries are dropped
	// first when the roster exceeds it.
	DefaultDisplayCap = 50
)

// Default reference workday used to report candidate availability.
var (
	defaultWorkdayFrom = model.TimeOfDay{Hour: 9}
	defaultWorkdayTo   = model.TimeOfDay{Hour: 17}
)

// Service computes ranked allocations and records decisions.
type Service struct {
	allocations dao.Service[string, allocation.Allocation]
	provider    matcher.SuggestionProvider
	displayCap  int
	workFrom    model.TimeOfDay
	workTo      model.TimeOfDay
}

// Option customises the engine.
type Option func(*Service)

// WithDisplayCap overrides the ranked list cap; zero and negative values
// disable capping.
func WithDisplayCap(limit int) Option {
	return func(s *Service) { s.displayCap = limit }
}

// WithWorkday overrides the reference window used to report candidate
// availability.
func WithWorkday(from, to model.TimeOfDay) Option {
	return func(s *Service) {
		s.workFrom = from
		s.workTo = to
	}
}

// New creates an engine backed by the supplied allocation store and
// suggestion provider.
func New(allocations dao.Service[string, allocation.Allocation], provider matcher.SuggestionProvider, options ...Option) *Service {
	ret := &Service{
		allocations: allocations,
		provider:    provider,
		displayCap:  DefaultDisplayCap,
		workFrom:    defaultWorkdayFrom,
		workTo:      defaultWorkdayTo,
	}
	if ret.provider == nil {
		ret.provider = matcher.Nop{}
	}
	for _, option := range options {
		option(ret)
	}
	return ret
}

// Allocate scores every roster employee against the task's required skills
// and returns the ranked result. Order is deterministic: score descending,
// ties broken by matched skill count descending then employee ID ascending.
// The result is recorded on the task's allocation so a later decision can be
// validated against it.
func (s *Service) Allocate(ctx context.Context, task *model.Task, roster []*model.Employee) (result *allocation.Result, err error) {
	ctx, span := tracing.StartSpan(ctx, "engine.allocate", "INTERNAL")
	defer func() { tracing.EndSpan(span, err) }()

	if !policy.FromContext(ctx).IsAllowed("engine.allocate") {
		return nil, ErrNotAllowed
	}
	if err = task.Validate(); err != nil {
		return nil, err
	}
	if len(roster) == 0 {
		return nil, ErrEmptyRoster
	}
	if task.RequiredSkills.Len() == 0 {
		return nil, ErrNoRequiredSkills
	}
	span.WithAttributes(map[string]string{"taskId": task.ID})

	candidates := make([]allocation.Candidate, 0, len(roster))
	skillsFound := skill.Set{}
	for _, employee := range roster {
		score, matched := matcher.Score(task.RequiredSkills, employee.Skills)
		skillsFound = skillsFound.Union(matched)
		candidates = append(candidates, allocation.Candidate{
			EmployeeID:     employee.ID,
			Score:          score,
			Matched:        matched,
			AvailableHours: employee.AvailableHours(s.workFrom, s.workTo),
		})
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}
		if candidates[i].Matched.Len() != candidates[j].Matched.Len() {
			return candidates[i].Matched.Len() > candidates[j].Matched.Len()
		}
		return strings.Compare(candidates[i].EmployeeID, candidates[j].EmployeeID) < 0
	})
	// zero-score entries sort last, so capping drops them first
	if s.displayCap > 0 && len(candidates) > s.displayCap {
		candidates = candidates[:s.displayCap]
	}

	suggested, suggestErr := s.provider.Suggest(ctx, task.RequiredSkills)
	if suggestErr != nil {
		// suggestions are advisory; a provider outage degrades to none
		span.WithAttributes(map[string]string{"suggestError": suggestErr.Error()})
		suggested = nil
	}

	result = &allocation.Result{
		TaskID:      task.ID,
		SkillsFound: skillsFound,
		AISuggested: suggested.Diff(skillsFound),
		Candidates:  candidates,
		ComputedAt:  clock.Now(),
	}

	record, loadErr := s.allocations.Load(ctx, task.ID)
	if loadErr != nil {
		record = allocation.New(task.ID)
	}
	if err = record.SetComputed(result); err != nil {
		return nil, err
	}
	if err = s.allocations.Save(ctx, record); err != nil {
		return nil, err
	}
	progress.UpdateCtx(ctx, progress.Delta{Computed: 1})
	return result, nil
}

// Decide records the operator's candidate choice for a task. The employee
// must appear in the latest computed result.
func (s *Service) Decide(ctx context.Context, taskID, employeeID string) (record *allocation.Allocation, err error) {
	ctx, span := tracing.StartSpan(ctx, "engine.decide", "INTERNAL")
	defer func() { tracing.EndSpan(span, err) }()

	if !policy.FromContext(ctx).IsAllowed("engine.decide") {
		return nil, ErrNotAllowed
	}
	span.WithAttributes(map[string]string{"taskId": taskID, "employeeId": employeeID})

	record, loadErr := s.allocations.Load(ctx, taskID)
	if loadErr != nil {
		return nil, ErrNoAllocation
	}
	result := record.LatestResult()
	if result == nil {
		return nil, ErrNoAllocation
	}
	if _, ok := result.Candidate(employeeID); !ok {
		return nil, ErrUnknownCandidate
	}
	if err = record.Decide(employeeID); err != nil {
		return nil, err
	}
	if err = s.allocations.Save(ctx, record); err != nil {
		return nil, err
	}
	progress.UpdateCtx(ctx, progress.Delta{Decided: 1})
	return record, nil
}

// Allocation returns the allocation record for a task, ErrNoAllocation when
// none exists yet.
func (s *Service) Allocation(ctx context.Context, taskID string) (*allocation.Allocation, error) {
	record, err := s.allocations.Load(ctx, taskID)
	if err != nil {
		return nil, ErrNoAllocation
	}
	return record, nil
}
