package cli

import (
	"context"
	"time"

	"monet/internal/config"
	"monet/internal/errors"
	"monet/internal/logging"
	"monet/internal/parser"
	"monet/internal/validation"
)

// Response is the reply to one input line. Exit is set after "bye".
type Response struct {
	Message string
	Exit    bool
}

// App turns input lines into replies against a Session
type App struct {
	registry  *CommandRegistry
	validator *validation.TaskValidator
	renderer  *Renderer
	config    *config.Config
}

// NewApp creates a new application with default configuration
func NewApp() *App {
	return NewAppWithConfig(config.NewConfig())
}

// NewAppWithConfig creates a new application using cfg
func NewAppWithConfig(cfg *config.Config) *App {
	app := &App{
		validator: validation.NewTaskValidatorWithConfig(cfg),
		renderer:  NewRenderer(cfg),
		config:    cfg,
	}
	app.registry = NewCommandRegistry(app)
	return app
}

// Renderer returns the renderer used for replies
func (a *App) Renderer() *Renderer {
	return a.renderer
}

// Respond executes one input line. A command that changes the list is saved
// before Respond returns; if that save fails the change stays in memory, the
// reply describing it is still returned and the error is an IO error.
func (a *App) Respond(ctx context.Context, s *Session, line string) (Response, error) {
	kind := parser.ParseCommand(line)
	logging.Debugf("command %q parsed as %s\n", parser.CommandWord(line), kind)

	message, err := a.registry.Execute(ctx, kind, s, line)
	if err != nil {
		return Response{}, err
	}

	response := Response{Message: message, Exit: kind == parser.CommandBye}
	if kind.Mutates() {
		if err := a.save(ctx, s); err != nil {
			return response, err
		}
	}
	return response, nil
}

func (a *App) save(ctx context.Context, s *Session) error {
	ctx, cancel := context.WithTimeout(ctx, a.writeTimeout())
	defer cancel()

	if err := s.Save(ctx); err != nil {
		if errors.IsAppError(err) {
			return err
		}
		return errors.WrapError(err, errors.ErrorTypeIO, "save tasks")
	}
	return nil
}

func (a *App) writeTimeout() time.Duration {
	if a.config != nil && a.config.GetWriteTimeout() > 0 {
		return a.config.GetWriteTimeout()
	}
	return 5 * time.Second
}
