package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidTask      = errors.New("invalid task")
	ErrTitleEmpty       = fmt.Errorf("%w: title must not be empty", ErrInvalidTask)
	ErrDescriptionEmpty = fmt.Errorf("%w: description must not be empty when present", ErrInvalidTask)
)

// Task is a validated to-do record.
//
// Fields are unexported so the invariants hold at any observable time:
// title is never empty, description is either absent or non-empty, and due
// is always stored in UTC. NewTask and UnvalidatedTask.Validate are the
// only ways to obtain one.
type Task struct {
	title       string
	description *string
	status      TaskStatus
	due         time.Time
}

// NewTask builds a Task from its parts.
//
// An empty status selects the default StatusNotStarted. The due time is
// normalized to UTC whatever location it was supplied in.
func NewTask(title string, description *string, status TaskStatus, due time.Time) (Task, error) {
	var t Task
	if err := t.SetTitle(title); err != nil {
		return Task{}, err
	}
	if err := t.SetDescription(description); err != nil {
		return Task{}, err
	}
	if err := t.SetStatus(status); err != nil {
		return Task{}, err
	}
	t.SetDue(due)
	return t, nil
}

func (t Task) Title() string {
	return t.title
}

func (t *Task) SetTitle(title string) error {
	if title == "" {
		return ErrTitleEmpty
	}
	t.title = title
	return nil
}

// Description returns the task description, or nil when the task has none.
// It is never a pointer to an empty string.
func (t Task) Description() *string {
	return t.description
}

func (t *Task) SetDescription(description *string) error {
	if description != nil && *description == "" {
		return ErrDescriptionEmpty
	}
	t.description = description
	return nil
}

func (t Task) Status() TaskStatus {
	return t.status
}

// SetStatus sets the task status. An empty status selects the default
// StatusNotStarted.
func (t *Task) SetStatus(status TaskStatus) error {
	if status == "" {
		t.status = StatusNotStarted
		return nil
	}

	parsed, err := ParseStatus(string(status))
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidTask, err)
	}
	t.status = parsed
	return nil
}

// Due returns the due time, always in UTC.
func (t Task) Due() time.Time {
	return t.due
}

// SetDue normalizes the given time to UTC before storing it.
func (t *Task) SetDue(due time.Time) {
	t.due = due.UTC()
}

// PastDue reports whether the due time is strictly before now.
func (t Task) PastDue() bool {
	return t.due.Before(time.Now().UTC())
}

type taskWire struct {
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	Status      TaskStatus `json:"status"`
	Due         time.Time  `json:"due"`
}

func (t Task) MarshalJSON() ([]byte, error) {
	return json.Marshal(taskWire{
		Title:       t.title,
		Description: t.description,
		Status:      t.status,
		Due:         t.due,
	})
}

// UnvalidatedTask is the decode target for inbound create requests. It
// mirrors Task structurally but carries no invariants; Validate is the only
// path by which it becomes a trusted Task. It has no id field on purpose:
// identifiers are assigned server side, so client-supplied ids are ignored.
type UnvalidatedTask struct {
	Title       string     `json:"title" binding:"required"`
	Description *string    `json:"description"`
	Status      TaskStatus `json:"status,omitempty" binding:"omitempty,taskStatus"`
	Due         time.Time  `json:"due" binding:"required"`
}

// Validate is the single gate turning external input into a Task. The
// returned error distinguishes an empty title from an empty description.
func (u UnvalidatedTask) Validate() (Task, error) {
	return NewTask(u.Title, u.Description, u.Status, u.Due)
}
