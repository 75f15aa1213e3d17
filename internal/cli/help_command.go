package cli

import (
	"context"
)

// HelpCommand handles the help command
type HelpCommand struct {
	registry *CommandRegistry
}

// NewHelpCommand creates a help command that lists the commands in registry
func NewHelpCommand(registry *CommandRegistry) *HelpCommand {
	return &HelpCommand{registry: registry}
}

// Execute returns the command summary
func (c *HelpCommand) Execute(ctx context.Context, s *Session, line string) (string, error) {
	return c.registry.GetUsage(), nil
}
