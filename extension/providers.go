package extension

import (
	"sync"

	"github.com/viant/x"

	"github.com/talentgrid/allocator/service/matcher"
)

// Providers is a named registry of suggestion providers so that deployments
// can switch providers by configuration.
type Providers struct {
	types     *Types
	providers map[string]matcher.SuggestionProvider
	mux       sync.RWMutex
}

// Types exposes the boundary type registry.
func (p *Providers) Types() *Types {
	return p.types
}

// Lookup returns a provider by name, nil when absent.
func (p *Providers) Lookup(name string) matcher.SuggestionProvider {
	p.mux.RLock()
	defer p.mux.RUnlock()
	return p.providers[name]
}

// Register adds a provider under the supplied name, replacing any previous
// registration.
func (p *Providers) Register(name string, provider matcher.SuggestionProvider) {
	p.mux.Lock()
	defer p.mux.Unlock()
	p.providers[name] = provider
}

// NewProviders creates a registry seeded with the built-in providers and any
// extra boundary types.
func NewProviders(goTypes ...*x.Type) *Providers {
	ret := &Providers{
		types:     NewTypes(),
		providers: make(map[string]matcher.SuggestionProvider),
	}
	ret.providers["nop"] = matcher.Nop{}
	ret.providers["cooccurrence"] = matcher.NewCoOccurrence()
	for _, t := range goTypes {
		if t != nil {
			ret.types.Register(t)
		}
	}
	return ret
}
