package dao

// Parameter is a named List filter, e.g. NewParameter("ProjectID", "p1") or
// NewParameter("State", "pending", "committed").
type Parameter struct {
	Name  string
	Value interface{}
}

func NewParameter(name string, values ...string) *Parameter {
	if len(values) == 1 {
		return &Parameter{Name: name, Value: values[0]}
	}
	return &Parameter{Name: name, Value: values}
}
