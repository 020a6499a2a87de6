// Package policy implements a simple per-action authorization layer attached
// to a request via context. It is deliberately decoupled from the engine and
// coordinator; a nil *Policy keeps the default "everything allowed" behaviour
// at zero cost.

package policy

import (
	"context"
	"strings"
)

// Enforcement modes recognised by the coordinator.
const (
	ModeAuto = "auto" // execute automatically (default)
	ModeDeny = "deny" // block every action
)

// Well-known roles. The engine treats roles as opaque strings; these constants
// exist for callers that use the built-in operator/manager split.
const (
	RoleOperator = "operator"
	RoleManager  = "manager"
)

// Policy represents the authorization settings of the current request.
//
//   - Mode controls the high-level behaviour (auto / deny).
//   - AllowList and BlockList filter on fully-qualified action names such as
//     "coordinator.reassign", regardless of Mode.
//   - Role is informative and surfaced in emitted events.
//
// A nil *Policy means "execute everything automatically".
type Policy struct {
	Mode      string
	Role      string
	AllowList []string // whitelist (empty => all)
	BlockList []string // blacklist
}

// Config is the serialisable form of a Policy.
type Config struct {
	Mode      string   `json:"mode,omitempty" yaml:"mode,omitempty"`
	Role      string   `json:"role,omitempty" yaml:"role,omitempty"`
	AllowList []string `json:"allow,omitempty" yaml:"allow,omitempty"`
	BlockList []string `json:"block,omitempty" yaml:"block,omitempty"`
}

// ToConfig converts a runtime Policy into a persistable Config.
func ToConfig(p *Policy) *Config {
	if p == nil {
		return nil
	}
	return &Config{
		Mode:      p.Mode,
		Role:      p.Role,
		AllowList: append([]string(nil), p.AllowList...),
		BlockList: append([]string(nil), p.BlockList...),
	}
}

// FromConfig converts a stored Config back to a runtime Policy.
func FromConfig(c *Config) *Policy {
	if c == nil {
		return nil
	}
	return &Policy{
		Mode:      c.Mode,
		Role:      c.Role,
		AllowList: append([]string(nil), c.AllowList...),
		BlockList: append([]string(nil), c.BlockList...),
	}
}

// IsAllowed evaluates Mode and the allow/block lists for the fully-qualified
// action name "service.method". Matching is case-insensitive and exact;
// BlockList has priority.
func (p *Policy) IsAllowed(action string) bool {
	if p == nil {
		return true
	}
	if p.Mode == ModeDeny {
		return false
	}

	normalized := strings.ToLower(action)
	for _, b := range p.BlockList {
		if normalized == strings.ToLower(b) {
			return false
		}
	}
	if len(p.AllowList) == 0 {
		return true
	}
	for _, a := range p.AllowList {
		if normalized == strings.ToLower(a) {
			return true
		}
	}
	return false
}

type ctxKeyT struct{}

var ctxKey ctxKeyT

// WithPolicy embeds policy in ctx.
func WithPolicy(ctx context.Context, p *Policy) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxKey, p)
}

// FromContext extracts the *Policy from ctx, nil when absent.
func FromContext(ctx context.Context) *Policy {
	if ctx == nil {
		return nil
	}
	if v, ok := ctx.Value(ctxKey).(*Policy); ok {
		return v
	}
	return nil
}
