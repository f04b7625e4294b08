package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdelmajidelayachi/task-manager/internal/domain"
	"github.com/abdelmajidelayachi/task-manager/internal/store"
)

// testDB opens the database named by TEST_DATABASE_URL and applies the
// migrations. Tests that need a real database skip when the variable is
// unset, so the suite stays runnable without Postgres.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping database test")
	}

	db, err := sql.Open("pgx", url)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	goose.SetBaseFS(MigrationsFS)
	require.NoError(t, goose.SetDialect("postgres"))
	require.NoError(t, goose.Up(db, MigrationsDir))

	// Isolate each run.
	_, err = db.Exec("TRUNCATE tasks, users RESTART IDENTITY")
	require.NoError(t, err)

	return db
}

func TestPostgresUserStore(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	userStore := NewPostgresUserStore(db, nil)

	alice, err := domain.NewUser("Alice Smith", "alice", "$2a$10$hash")
	require.NoError(t, err)
	require.NoError(t, userStore.Create(ctx, alice))
	assert.NotZero(t, alice.ID)

	t.Run("round trip", func(t *testing.T) {
		loaded, err := userStore.GetByUsername(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, alice.ID, loaded.ID)
		assert.Equal(t, "Alice Smith", loaded.Name)
		assert.Equal(t, domain.DefaultAuthority, loaded.Authorities)
		assert.True(t, loaded.Enabled)
	})

	t.Run("duplicate username", func(t *testing.T) {
		dup, err := domain.NewUser("Another Alice", "alice", "$2a$10$other")
		require.NoError(t, err)
		err = userStore.Create(ctx, dup)
		assert.ErrorIs(t, err, store.ErrUsernameExists)
	})

	t.Run("unknown username", func(t *testing.T) {
		_, err := userStore.GetByUsername(ctx, "ghost")
		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})
}

func TestPostgresTaskStore(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	taskStore := NewPostgresTaskStore(db, nil)

	newTask := func(title string) *domain.Task {
		task, err := domain.NewTask(title, "", "", "")
		require.NoError(t, err)
		return task
	}

	t.Run("create assigns id and timestamps", func(t *testing.T) {
		task := newTask("Write report")
		require.NoError(t, taskStore.Create(ctx, task))
		assert.NotZero(t, task.ID)
		assert.False(t, task.CreatedAt.IsZero())
		assert.Equal(t, task.CreatedAt, task.UpdatedAt)
	})

	t.Run("update refreshes updated_at only", func(t *testing.T) {
		task := newTask("Update me")
		require.NoError(t, taskStore.Create(ctx, task))
		created := task.CreatedAt

		time.Sleep(10 * time.Millisecond)
		task.Status = domain.TaskStatusCompleted
		require.NoError(t, taskStore.Update(ctx, task))

		loaded, err := taskStore.GetByID(ctx, task.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.TaskStatusCompleted, loaded.Status)
		assert.Equal(t, created.Unix(), loaded.CreatedAt.Unix())
		assert.True(t, loaded.UpdatedAt.After(loaded.CreatedAt))
	})

	t.Run("list newest first", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			require.NoError(t, taskStore.Create(ctx, newTask(fmt.Sprintf("task-%d", i))))
		}
		tasks, err := taskStore.List(ctx)
		require.NoError(t, err)
		require.GreaterOrEqual(t, len(tasks), 3)
		for i := 1; i < len(tasks); i++ {
			assert.False(t, tasks[i-1].CreatedAt.Before(tasks[i].CreatedAt))
		}
	})

	t.Run("missing rows map to not found", func(t *testing.T) {
		_, err := taskStore.GetByID(ctx, 999999)
		assert.ErrorIs(t, err, store.ErrTaskNotFound)

		assert.ErrorIs(t, taskStore.Delete(ctx, 999999), store.ErrTaskNotFound)

		ghost := newTask("ghost")
		ghost.ID = 999999
		assert.ErrorIs(t, taskStore.Update(ctx, ghost), store.ErrTaskNotFound)
	})

	t.Run("delete removes the row", func(t *testing.T) {
		task := newTask("Delete me")
		require.NoError(t, taskStore.Create(ctx, task))
		require.NoError(t, taskStore.Delete(ctx, task.ID))
		_, err := taskStore.GetByID(ctx, task.ID)
		assert.ErrorIs(t, err, store.ErrTaskNotFound)
	})
}
