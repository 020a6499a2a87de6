package model

import (
	"fmt"

	"github.com/talentgrid/allocator/model/skill"
)

// Shift identifies the working shift an employee is rostered on.
type Shift string

const (
	ShiftMorning   Shift = "morning"
	ShiftAfternoon Shift = "afternoon"
	ShiftNight     Shift = "night"
)

// IsValid reports whether the shift is one of the known values.
func (s Shift) IsValid() bool {
	switch s {
	case ShiftMorning, ShiftAfternoon, ShiftNight:
		return true
	}
	return false
}

// Employee is a fixed record; every field is required at load time so that a
// missing field is a validation error rather than a runtime surprise.
// Instances are treated as immutable during a single allocation computation.
type Employee struct {
	ID       string    `json:"id" yaml:"id"`
	Name     string    `json:"name" yaml:"name"`
	Skills   skill.Set `json:"skills" yaml:"skills"`
	Shift    Shift     `json:"shift" yaml:"shift"`
	WorkFrom TimeOfDay `json:"workFrom" yaml:"workFrom"`
	WorkTo   TimeOfDay `json:"workTo" yaml:"workTo"`
}

// Validate checks record completeness.
func (e *Employee) Validate() error {
	if e == nil {
		return fmt.Errorf("employee cannot be nil")
	}
	if e.ID == "" {
		return fmt.Errorf("employee ID cannot be empty")
	}
	if e.Name == "" {
		return fmt.Errorf("employee %s: name cannot be empty", e.ID)
	}
	if len(e.Skills) == 0 {
		return fmt.Errorf("employee %s: skills cannot be empty", e.ID)
	}
	if !e.Shift.IsValid() {
		return fmt.Errorf("employee %s: unknown shift %q", e.ID, e.Shift)
	}
	if !e.WorkFrom.Before(e.WorkTo) {
		return fmt.Errorf("employee %s: work window %s-%s is empty", e.ID, e.WorkFrom, e.WorkTo)
	}
	return nil
}

// AvailableHours returns how many hours of the [from, to) window fall inside
// the employee's working hours.
func (e *Employee) AvailableHours(from, to TimeOfDay) float64 {
	return OverlapHours(e.WorkFrom, e.WorkTo, from, to)
}
