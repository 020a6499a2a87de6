package criteria

import (
	"github.com/talentgrid/allocator/service/dao"
)

// Matches evaluates List parameters against a record's filterable fields.
// Every supplied parameter must match; parameters naming an unknown field are
// ignored so that stores stay forward compatible with new filters.
func Matches(fields map[string]string, parameters []*dao.Parameter) bool {
	for _, parameter := range parameters {
		actual, ok := fields[parameter.Name]
		if !ok {
			continue
		}
		if !matchValue(actual, parameter.Value) {
			return false
		}
	}
	return true
}

func matchValue(actual string, expected interface{}) bool {
	switch value := expected.(type) {
	case string:
		return actual == value
	case []string:
		for _, v := range value {
			if actual == v {
				return true
			}
		}
		return false
	}
	return true
}
