package repos

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"todo-server/internal/domain/models"
)

// taskRow is the scan target for the tasks table. Rows only become Tasks
// through the model constructor, so a corrupt row surfaces as an error
// instead of a Task with broken invariants.
type taskRow struct {
	Title       string
	Description *string
	Status      string
	Due         time.Time
}

type TasksRepo struct {
	Conn *pgxpool.Pool
}

func NewTasksRepo(conn *pgxpool.Pool) *TasksRepo {
	return &TasksRepo{Conn: conn}
}

// GetByID fetches the task with the given id. An absent row is reported
// through the found flag, not as an error.
func (repo *TasksRepo) GetByID(ctx context.Context, id uuid.UUID) (models.Task, bool, error) {
	rows, err := repo.Conn.Query(
		ctx,
		"SELECT title, description, status, due FROM tasks WHERE id = $1",
		id,
	)
	if err != nil {
		return models.Task{}, false, err
	}

	row, err := pgx.CollectOneRow(rows, pgx.RowToStructByPos[taskRow])
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Task{}, false, nil
	}
	if err != nil {
		return models.Task{}, false, err
	}

	status, err := models.ParseStatus(row.Status)
	if err != nil {
		return models.Task{}, false, fmt.Errorf("task %s: %w", id, err)
	}
	task, err := models.NewTask(row.Title, row.Description, status, row.Due)
	if err != nil {
		return models.Task{}, false, fmt.Errorf("task %s: %w", id, err)
	}
	return task, true, nil
}

// Insert persists the task under the given id. Exactly one statement, no
// retries; a failed insert leaves no row behind.
func (repo *TasksRepo) Insert(ctx context.Context, id uuid.UUID, task models.Task) error {
	_, err := repo.Conn.Exec(
		ctx,
		"INSERT INTO tasks (id, title, description, status, due) VALUES ($1, $2, $3, $4, $5)",
		id,
		task.Title(),
		task.Description(),
		task.Status().String(),
		task.Due(),
	)
	return err
}
