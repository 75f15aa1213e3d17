package cli

import (
	"context"

	"monet/internal/errors"
	"monet/internal/parser"
)

// Command handles one kind of input line and returns the reply text
type Command interface {
	Execute(ctx context.Context, s *Session, line string) (string, error)
}

// CommandRegistry manages all available commands
type CommandRegistry struct {
	commands map[parser.CommandKind]Command
}

// NewCommandRegistry creates a new command registry
func NewCommandRegistry(app *App) *CommandRegistry {
	registry := &CommandRegistry{
		commands: make(map[parser.CommandKind]Command),
	}

	registry.Register(parser.CommandList, NewListCommand(app))
	registry.Register(parser.CommandMark, NewMarkCommand(app, true))
	registry.Register(parser.CommandUnmark, NewMarkCommand(app, false))
	registry.Register(parser.CommandDelete, NewDeleteCommand(app))
	registry.Register(parser.CommandTodo, NewAddCommand(app, parser.CommandTodo))
	registry.Register(parser.CommandDeadline, NewAddCommand(app, parser.CommandDeadline))
	registry.Register(parser.CommandEvent, NewAddCommand(app, parser.CommandEvent))
	registry.Register(parser.CommandFind, NewFindCommand(app))
	registry.Register(parser.CommandPriority, NewPriorityCommand(app))
	registry.Register(parser.CommandBye, NewByeCommand(app))
	registry.Register(parser.CommandHelp, NewHelpCommand(registry))

	return registry
}

// Register adds a command to the registry
func (r *CommandRegistry) Register(kind parser.CommandKind, command Command) {
	r.commands[kind] = command
}

// Execute runs the command registered for kind
func (r *CommandRegistry) Execute(ctx context.Context, kind parser.CommandKind, s *Session, line string) (string, error) {
	command, exists := r.commands[kind]
	if !exists {
		return "", errors.NewUnknownCommandError(parser.CommandWord(line))
	}
	return command.Execute(ctx, s, line)
}

// GetUsage returns the command summary shown by the help output
func (r *CommandRegistry) GetUsage() string {
	return `Commands:
  list                                          show all tasks
  todo <description> [/p 1|2|3]                 add a to-do
  deadline <description> /by <yyyy-MM-dd HHmm>  add a deadline
  event <description> /from <start> /to <end>   add an event
  mark <n> | unmark <n>                         set or clear done
  delete <n>                                    remove a task
  find <keyword>                                search descriptions
  priority <1|2|3>                              show tasks by priority
  help                                          show this summary
  bye                                           exit`
}
