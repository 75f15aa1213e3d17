package cli

import (
	"context"

	"monet/internal/errors"
	"monet/internal/logging"
	"monet/internal/storage"
	"monet/internal/tasklist"
)

// Session is the state one front end works on: the in-memory task list and
// the store it is saved to.
type Session struct {
	Tasks *tasklist.TaskList
	Store storage.Store
}

// OpenSession loads the stored tasks. A load failure is reported as a
// warning and the session starts with an empty list, which replaces the
// stored data on the next save.
func OpenSession(ctx context.Context, store storage.Store) *Session {
	tasks, err := store.Load(ctx)
	if err != nil {
		logging.Warnf("Could not load saved tasks, starting with an empty list: %s", errors.GetUserMessage(err))
		logging.Debugf("load error: %v\n", err)
		return &Session{Tasks: tasklist.New(), Store: store}
	}
	return &Session{Tasks: tasklist.New(tasks...), Store: store}
}

// Save writes the current list to the session's store.
func (s *Session) Save(ctx context.Context) error {
	return s.Store.Save(ctx, s.Tasks.Tasks())
}

// Close releases the store.
func (s *Session) Close() error {
	return s.Store.Close()
}
