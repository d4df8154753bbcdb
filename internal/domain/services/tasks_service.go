package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"todo-server/internal/domain/models"
)

var ErrTaskDoesNotExist = errors.New("task does not exist")

// TaskStore is the storage contract the service depends on: fetch-by-id
// and insert, nothing else.
type TaskStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (models.Task, bool, error)
	Insert(ctx context.Context, id uuid.UUID, task models.Task) error
}

type TasksService struct {
	Store TaskStore
}

func NewTasksService(store TaskStore) *TasksService {
	return &TasksService{Store: store}
}

// Create runs the validation gate, assigns a fresh server-generated id and
// persists the task. The id is returned even when the insert fails so
// callers can log it alongside the cause.
func (s *TasksService) Create(ctx context.Context, unchecked models.UnvalidatedTask) (uuid.UUID, error) {
	task, err := unchecked.Validate()
	if err != nil {
		return uuid.Nil, err
	}

	id := uuid.New()
	if err := s.Store.Insert(ctx, id, task); err != nil {
		return id, err
	}
	return id, nil
}

// GetByID fetches a task, mapping an absent row to ErrTaskDoesNotExist.
func (s *TasksService) GetByID(ctx context.Context, id uuid.UUID) (models.Task, error) {
	task, found, err := s.Store.GetByID(ctx, id)
	if err != nil {
		return models.Task{}, err
	}
	if !found {
		return models.Task{}, ErrTaskDoesNotExist
	}
	return task, nil
}
