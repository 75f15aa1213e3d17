package cli

import (
	"context"

	"monet/internal/parser"
)

// PriorityCommand handles the priority command
type PriorityCommand struct {
	renderer *Renderer
}

// NewPriorityCommand creates a new priority command handler
func NewPriorityCommand(app *App) *PriorityCommand {
	return &PriorityCommand{renderer: app.renderer}
}

// Execute lists the tasks with the requested priority level
func (c *PriorityCommand) Execute(ctx context.Context, s *Session, line string) (string, error) {
	priority, err := parser.ParsePriorityLevel(line)
	if err != nil {
		return "", err
	}
	return c.renderer.WithPriority(s.Tasks.FilterByPriority(priority), priority), nil
}
