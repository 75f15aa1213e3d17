package cli

import (
	"context"

	"monet/internal/parser"
)

// FindCommand handles the find command
type FindCommand struct {
	renderer *Renderer
}

// NewFindCommand creates a new find command handler
func NewFindCommand(app *App) *FindCommand {
	return &FindCommand{renderer: app.renderer}
}

// Execute lists the tasks whose description contains the keyword
func (c *FindCommand) Execute(ctx context.Context, s *Session, line string) (string, error) {
	keyword, err := parser.ParseFind(line)
	if err != nil {
		return "", err
	}
	return c.renderer.Found(s.Tasks.Find(keyword)), nil
}
