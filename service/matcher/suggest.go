package matcher

import (
	"context"

	"github.com/talentgrid/allocator/model/skill"
)

// SuggestionProvider derives skills complementary to a required set. The
// default implementations are deterministic; an ML-backed provider can be
// plugged in through the same capability interface.
type SuggestionProvider interface {
	Suggest(ctx context.Context, required skill.Set) (skill.Set, error)
}

// Nop is a provider that suggests nothing.
type Nop struct{}

// Suggest returns an empty set.
func (Nop) Suggest(_ context.Context, _ skill.Set) (skill.Set, error) {
	return skill.Set{}, nil
}

// CoOccurrence suggests skills that frequently co-occur with the required
// ones, using a static adjacency table.
type CoOccurrence struct {
	table map[skill.Skill]skill.Set
}

// Suggest returns the union of adjacent skills across the required set,
// minus the required skills themselves.
func (c *CoOccurrence) Suggest(_ context.Context, required skill.Set) (skill.Set, error) {
	ret := skill.Set{}
	for member := range required {
		for adjacent := range c.table[member] {
			ret[adjacent] = struct{}{}
		}
	}
	return ret.Diff(required), nil
}

// NewCoOccurrenceWith builds a provider from a raw adjacency table; keys and
// values are normalized.
func NewCoOccurrenceWith(raw map[string][]string) (*CoOccurrence, error) {
	table := make(map[skill.Skill]skill.Set, len(raw))
	for key, values := range raw {
		normalized, err := skill.Normalize(key)
		if err != nil {
			return nil, err
		}
		set, err := skill.ParseSet(values...)
		if err != nil {
			return nil, err
		}
		table[normalized] = set
	}
	return &CoOccurrence{table: table}, nil
}

// NewCoOccurrence returns a provider seeded with the default industrial
// adjacency table.
func NewCoOccurrence() *CoOccurrence {
	ret, _ := NewCoOccurrenceWith(defaultTable)
	return ret
}

// defaultTable pairs each skill with the skills most commonly held alongside
// it on industrial rosters.
var defaultTable = map[string][]string{
	"welding":         {"fabrication", "soldering", "blueprint-reading"},
	"plc-programming": {"automation", "instrumentation", "robotics"},
	"hydraulics":      {"pneumatics", "motor-repair"},
	"pneumatics":      {"hydraulics", "instrumentation"},
	"electrical":      {"instrumentation", "soldering", "networking"},
	"cnc-operation":   {"machining", "laser-cutting", "blueprint-reading"},
	"machining":       {"cnc-operation", "fabrication"},
	"automation":      {"plc-programming", "robotics", "networking"},
	"robotics":        {"automation", "plc-programming", "3d-printing"},
	"hvac":            {"electrical", "pneumatics"},
	"3d-printing":     {"laser-cutting", "quality-control"},
	"quality-control": {"blueprint-reading", "instrumentation"},
	"carpentry":       {"fabrication", "blueprint-reading"},
	"motor-repair":    {"electrical", "hydraulics"},
}
