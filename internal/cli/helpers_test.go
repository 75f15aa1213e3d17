package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"monet/internal/config"
	"monet/internal/domain"
	"monet/internal/tasklist"
)

// memStore is an in-memory storage.Store.
type memStore struct {
	tasks   []domain.Task
	loadErr error
	saveErr error
	saves   int
	closed  bool
}

func (s *memStore) Load(ctx context.Context) ([]domain.Task, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	return append([]domain.Task(nil), s.tasks...), nil
}

func (s *memStore) Save(ctx context.Context, tasks []domain.Task) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saves++
	s.tasks = append([]domain.Task(nil), tasks...)
	return nil
}

func (s *memStore) Close() error {
	s.closed = true
	return nil
}

var errDiskFull = errors.New("disk full")

func testConfig() *config.Config {
	cfg := config.NewConfig()
	cfg.Display.Color = false
	return cfg
}

func setupTestApp(t *testing.T, tasks ...domain.Task) (*App, *Session, *memStore) {
	t.Helper()
	store := &memStore{tasks: tasks}
	session := &Session{Tasks: tasklist.New(tasks...), Store: store}
	return NewAppWithConfig(testConfig()), session, store
}

func mustTodo(t *testing.T, description string) domain.Task {
	t.Helper()
	task, err := domain.NewTodo(description, domain.PriorityMedium)
	require.NoError(t, err)
	return task
}

func respond(t *testing.T, app *App, s *Session, line string) string {
	t.Helper()
	response, err := app.Respond(context.Background(), s, line)
	require.NoError(t, err, "line %q", line)
	return response.Message
}
