package repos_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"

	"todo-server/internal/db"
	"todo-server/internal/domain/models"
	"todo-server/internal/domain/repos"
	"todo-server/internal/utils"
)

// testPool connects to the Postgres instance described by the PG_* env
// variables and brings the schema up to date. Tests are skipped when no
// database is configured.
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	host := os.Getenv("PG_HOST")
	if host == "" {
		t.Skip("PG_HOST not set, skipping database integration tests")
	}

	url := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s",
		os.Getenv("PG_USER"), os.Getenv("PG_PASSWORD"), host, os.Getenv("PG_PORT"), os.Getenv("DB_NAME"),
	)
	pool, err := pgxpool.New(context.Background(), url)
	if err != nil {
		t.Fatalf("failed to connect to database: %s", err)
	}
	t.Cleanup(pool.Close)

	if err := db.Migrate(context.Background(), pool); err != nil {
		t.Fatalf("migrations run failed: %s", err)
	}
	return pool
}

func TestInsertThenGetByID(t *testing.T) {
	pool := testPool(t)
	repo := repos.NewTasksRepo(pool)
	defer utils.TruncateTables(pool, []string{"tasks"})

	description := "with 2% fat"
	task, err := models.NewTask("Buy milk", &description, models.StatusInProgress, time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC))
	assert.NoError(t, err)

	id := uuid.New()
	assert.NoError(t, repo.Insert(context.Background(), id, task))

	fetched, found, err := repo.GetByID(context.Background(), id)
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, task.Title(), fetched.Title())
	assert.Equal(t, task.Description(), fetched.Description())
	assert.Equal(t, task.Status(), fetched.Status())
	assert.True(t, task.Due().Equal(fetched.Due()))
}

func TestGetByIDAbsentRow(t *testing.T) {
	pool := testPool(t)
	repo := repos.NewTasksRepo(pool)

	_, found, err := repo.GetByID(context.Background(), uuid.New())
	assert.NoError(t, err)
	assert.False(t, found)
}

func TestStatusSurvivesStorage(t *testing.T) {
	pool := testPool(t)
	repo := repos.NewTasksRepo(pool)
	defer utils.TruncateTables(pool, []string{"tasks"})

	for _, status := range models.ValidTaskStatuses {
		task, err := models.NewTask("status round trip", nil, status, time.Now())
		assert.NoError(t, err)

		id := uuid.New()
		assert.NoError(t, repo.Insert(context.Background(), id, task))

		fetched, found, err := repo.GetByID(context.Background(), id)
		assert.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, status, fetched.Status())
	}
}

func TestInsertDuplicateIDFails(t *testing.T) {
	pool := testPool(t)
	repo := repos.NewTasksRepo(pool)
	defer utils.TruncateTables(pool, []string{"tasks"})

	task, err := models.NewTask("Buy milk", nil, models.StatusNotStarted, time.Now())
	assert.NoError(t, err)

	id := uuid.New()
	assert.NoError(t, repo.Insert(context.Background(), id, task))
	assert.Error(t, repo.Insert(context.Background(), id, task))
}
