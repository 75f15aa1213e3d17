package cli

import (
	"context"

	"monet/internal/parser"
)

// DeleteCommand handles the delete command
type DeleteCommand struct {
	renderer *Renderer
}

// NewDeleteCommand creates a new delete command handler
func NewDeleteCommand(app *App) *DeleteCommand {
	return &DeleteCommand{renderer: app.renderer}
}

// Execute removes the numbered task
func (c *DeleteCommand) Execute(ctx context.Context, s *Session, line string) (string, error) {
	index, err := parser.ParseIndex(line, s.Tasks.Size())
	if err != nil {
		return "", err
	}

	removed, err := s.Tasks.Delete(index)
	if err != nil {
		return "", err
	}
	return c.renderer.Deleted(removed, s.Tasks.Size()), nil
}
