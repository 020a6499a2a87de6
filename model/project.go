package model

import (
	"fmt"
	"time"
)

// Project groups tasks created by the manager workflow.
type Project struct {
	ID          string    `json:"id" yaml:"id"`
	Name        string    `json:"name" yaml:"name"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt" yaml:"createdAt"`
}

// Validate checks record completeness.
func (p *Project) Validate() error {
	if p == nil {
		return fmt.Errorf("project cannot be nil")
	}
	if p.ID == "" {
		return fmt.Errorf("project ID cannot be empty")
	}
	if p.Name == "" {
		return fmt.Errorf("project %s: name cannot be empty", p.ID)
	}
	return nil
}
