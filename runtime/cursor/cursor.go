// Package cursor provides circular navigation across an ordered task list,
// independent of allocation state or any presentation layer.
package cursor

import "errors"

// ErrDesync is returned when the current task ID is not a member of the
// supplied ordered list; the caller must resupply a valid list rather than
// guess a position.
var ErrDesync = errors.New("cursor: current task not in ordered list")

// Next returns the task following currentTaskID, wrapping past the last
// element to the first.
func Next(currentTaskID string, orderedTaskIDs []string) (string, error) {
	idx, err := indexOf(currentTaskID, orderedTaskIDs)
	if err != nil {
		return "", err
	}
	return orderedTaskIDs[(idx+1)%len(orderedTaskIDs)], nil
}

// Previous returns the task preceding currentTaskID, wrapping before the
// first element to the last.
func Previous(currentTaskID string, orderedTaskIDs []string) (string, error) {
	idx, err := indexOf(currentTaskID, orderedTaskIDs)
	if err != nil {
		return "", err
	}
	return orderedTaskIDs[(idx+len(orderedTaskIDs)-1)%len(orderedTaskIDs)], nil
}

func indexOf(taskID string, orderedTaskIDs []string) (int, error) {
	for i, id := range orderedTaskIDs {
		if id == taskID {
			return i, nil
		}
	}
	return 0, ErrDesync
}
