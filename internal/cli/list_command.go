package cli

import (
	"context"
)

// ListCommand handles the list command
type ListCommand struct {
	renderer *Renderer
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{renderer: app.renderer}
}

// Execute shows every task. Anything after the command word is ignored.
func (c *ListCommand) Execute(ctx context.Context, s *Session, line string) (string, error) {
	return c.renderer.List(s.Tasks), nil
}
