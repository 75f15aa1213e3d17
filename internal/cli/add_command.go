package cli

import (
	"context"
	"fmt"

	"monet/internal/domain"
	"monet/internal/parser"
	"monet/internal/validation"
)

// AddCommand handles the todo, deadline and event commands
type AddCommand struct {
	kind      parser.CommandKind
	validator *validation.TaskValidator
	renderer  *Renderer
}

// NewAddCommand creates a handler that adds tasks of the given kind
func NewAddCommand(app *App, kind parser.CommandKind) *AddCommand {
	return &AddCommand{kind: kind, validator: app.validator, renderer: app.renderer}
}

// Execute builds a task from line, validates it and appends it to the list
func (c *AddCommand) Execute(ctx context.Context, s *Session, line string) (string, error) {
	task, err := c.build(line)
	if err != nil {
		return "", err
	}

	if err := c.validator.ValidateTask(task); err != nil {
		if ve, ok := err.(*validation.ValidationError); ok {
			return "", ve.AsAppError()
		}
		return "", err
	}

	s.Tasks.Add(task)
	return c.renderer.Added(task, s.Tasks.Size()), nil
}

func (c *AddCommand) build(line string) (domain.Task, error) {
	switch c.kind {
	case parser.CommandTodo:
		args, err := parser.ParseTodo(line)
		if err != nil {
			return domain.Task{}, err
		}
		return domain.NewTodo(args.Description, args.Priority)
	case parser.CommandDeadline:
		args, err := parser.ParseDeadline(line)
		if err != nil {
			return domain.Task{}, err
		}
		return domain.NewDeadlineFromText(args.Description, args.ByText, args.Priority)
	case parser.CommandEvent:
		args, err := parser.ParseEvent(line)
		if err != nil {
			return domain.Task{}, err
		}
		return domain.NewEventFromText(args.Description, args.FromText, args.ToText, args.Priority)
	default:
		return domain.Task{}, fmt.Errorf("command %s does not add tasks", c.kind)
	}
}
