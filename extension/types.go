package extension

import (
	"reflect"

	"github.com/viant/x"

	"github.com/talentgrid/allocator/model"
	"github.com/talentgrid/allocator/runtime/allocation"
)

// Types is a registry of boundary Go types used when decoding externally
// supplied payloads (roster documents, persisted allocations) into typed
// values.
type Types struct {
	x.Registry
}

// Register adds a data type to the registry.
func (t *Types) Register(dataType *x.Type) {
	t.Registry.Register(dataType)
}

// Lookup returns a registered type by its name, nil when absent.
func (t *Types) Lookup(name string) *x.Type {
	return t.Registry.Lookup(name)
}

// NewTypes creates a registry pre-populated with the allocator's own boundary
// types.
func NewTypes() *Types {
	ret := &Types{Registry: *x.NewRegistry()}
	ret.Register(x.NewType(reflect.TypeOf(model.Employee{}), x.WithName("Employee")))
	ret.Register(x.NewType(reflect.TypeOf(model.Task{}), x.WithName("Task")))
	ret.Register(x.NewType(reflect.TypeOf(model.Project{}), x.WithName("Project")))
	ret.Register(x.NewType(reflect.TypeOf(allocation.Result{}), x.WithName("Result")))
	ret.Register(x.NewType(reflect.TypeOf(allocation.Assignment{}), x.WithName("Assignment")))
	return ret
}
