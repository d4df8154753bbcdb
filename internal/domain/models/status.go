package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

// TaskStatus is the lifecycle state of a task.
//
// The set is closed: any value outside the five named states is a decode
// failure, not a representable state. The string form is both the wire and
// the storage encoding, so renaming a value is a coordinated schema change.
type TaskStatus string

const (
	StatusNotStarted TaskStatus = "NotStarted"
	StatusInProgress TaskStatus = "InProgress"
	StatusComplete   TaskStatus = "Complete"
	StatusCancelled  TaskStatus = "Cancelled"
	StatusBlocked    TaskStatus = "Blocked"
)

var ValidTaskStatuses = []TaskStatus{
	StatusNotStarted,
	StatusInProgress,
	StatusComplete,
	StatusCancelled,
	StatusBlocked,
}

var ErrUnknownStatus = errors.New("unknown task status")

// ParseStatus converts a raw string, as read from the wire or from storage,
// into a TaskStatus.
func ParseStatus(s string) (TaskStatus, error) {
	for _, v := range ValidTaskStatuses {
		if s == string(v) {
			return v, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
}

func (s TaskStatus) String() string {
	return string(s)
}

func (s *TaskStatus) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	parsed, err := ParseStatus(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
