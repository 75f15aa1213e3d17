package cli

import (
	"context"
)

// ByeCommand handles the bye command
type ByeCommand struct {
	renderer *Renderer
}

// NewByeCommand creates a new bye command handler
func NewByeCommand(app *App) *ByeCommand {
	return &ByeCommand{renderer: app.renderer}
}

// Execute returns the farewell message
func (c *ByeCommand) Execute(ctx context.Context, s *Session, line string) (string, error) {
	return c.renderer.Goodbye(), nil
}
