package cli

import (
	"context"

	"monet/internal/parser"
)

// MarkCommand handles the mark and unmark commands
type MarkCommand struct {
	renderer *Renderer
	done     bool
}

// NewMarkCommand creates a handler that sets (done) or clears the done flag
func NewMarkCommand(app *App, done bool) *MarkCommand {
	return &MarkCommand{renderer: app.renderer, done: done}
}

// Execute marks or unmarks the numbered task
func (c *MarkCommand) Execute(ctx context.Context, s *Session, line string) (string, error) {
	index, err := parser.ParseIndex(line, s.Tasks.Size())
	if err != nil {
		return "", err
	}

	if c.done {
		task, err := s.Tasks.Mark(index)
		if err != nil {
			return "", err
		}
		return c.renderer.Marked(task), nil
	}

	task, err := s.Tasks.Unmark(index)
	if err != nil {
		return "", err
	}
	return c.renderer.Unmarked(task), nil
}
