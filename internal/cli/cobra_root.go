package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"monet/internal/config"
	"monet/internal/errors"
	"monet/internal/logging"
	"monet/internal/storage"
)

// StoreFactory opens the store described by a configuration
type StoreFactory func(cfg *config.Config) (storage.Store, error)

// SessionRunner runs a front end against an open session
type SessionRunner func(ctx context.Context, app *App, s *Session) error

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd          *cobra.Command
	loader       *config.Loader
	storeFactory StoreFactory
	config       *config.Config
}

// NewRootCommand creates the root cobra command with global flags. The
// configuration is loaded from loader once flags are parsed.
func NewRootCommand(loader *config.Loader, storeFactory StoreFactory) *RootCommand {
	if storeFactory == nil {
		storeFactory = config.CreateStore
	}
	root := &RootCommand{
		loader:       loader,
		storeFactory: storeFactory,
	}

	root.cmd = &cobra.Command{
		Use:   "monet",
		Short: "A personal task tracker driven by short text commands",
		Long: `Monet keeps a list of to-dos, deadlines and events in a plain text file.

Run without arguments to start an interactive session, or pass a single
command to "monet do".

COMMANDS (inside a session or after "monet do"):
  list
  todo <description> [/p 1|2|3]
  deadline <description> /by <yyyy-MM-dd HHmm> [/p 1|2|3]
  event <description> /from <yyyy-MM-dd HHmm> /to <yyyy-MM-dd HHmm> [/p 1|2|3]
  mark <n>, unmark <n>, delete <n>
  find <keyword>
  priority <1|2|3>
  help
  bye

CONFIGURATION:
  Configuration follows this priority order:
  command-line flags > environment variables > config file > defaults

  MONET_CONFIG            Config file (default: ~/.monet/config.yaml if present)
  MONET_DIR               Storage directory (default: ~/.monet)
  MONET_FILENAME          Data file name (default: monet.txt, or monet.db for sqlite)
  MONET_BACKEND           Storage backend: file or sqlite (default: file)
  MONET_WRITE_TIMEOUT     Time allowed for a save (default: 5s)
  MONET_DATE_FORMAT       Go layout for displayed dates
  MONET_DESCRIPTION_MAX   Maximum description length (default: 255)
  MONET_DEBUG             Print debug output when set

EXAMPLES:
  monet
  monet do todo read book /p 1
  monet do deadline return book /by 2025-08-30 1800
  monet tui`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.loadConfig(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return root.withSession(cmd.Context(), func(ctx context.Context, app *App, s *Session) error {
				return app.RunInteractive(ctx, s, cmd.InOrStdin(), cmd.OutOrStdout())
			})
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// ExecuteContext runs the root command with ctx
func (r *RootCommand) ExecuteContext(ctx context.Context) error {
	return r.cmd.ExecuteContext(ctx)
}

// Command returns the underlying cobra command
func (r *RootCommand) Command() *cobra.Command {
	return r.cmd
}

// Config returns the configuration in effect after flags were applied
func (r *RootCommand) Config() *config.Config {
	return r.config
}

// AddSessionCommand registers a subcommand that runs a front end on a session
func (r *RootCommand) AddSessionCommand(use, short string, run SessionRunner) {
	r.cmd.AddCommand(&cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.withSession(cmd.Context(), run)
		},
	})
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	// Storage configuration
	flags.String("dir", "", "Storage directory (overrides MONET_DIR)")
	flags.String("filename", "", "Data file name (overrides MONET_FILENAME)")
	flags.String("backend", "", "Storage backend: file or sqlite (overrides MONET_BACKEND)")
	flags.Duration("write-timeout", 0, "Time allowed for a save (overrides MONET_WRITE_TIMEOUT)")
	flags.String("dir-permissions", "", "Octal permissions for a created storage directory, e.g. 700 (overrides MONET_DIR_PERMISSIONS)")

	// Display configuration
	flags.String("date-format", "", "Go layout for displayed dates (overrides MONET_DATE_FORMAT)")
	flags.Bool("no-color", false, "Disable colored output")

	// Validation configuration
	flags.Int("description-max", 0, "Maximum description length (overrides MONET_DESCRIPTION_MAX)")

	// Application configuration
	flags.Duration("app-timeout", 0, "Timeout for a single command (overrides MONET_TIMEOUT)")
	flags.Bool("verbose", false, "Enable debug output (overrides MONET_VERBOSE)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	doCmd := &cobra.Command{
		Use:   "do <command words...>",
		Short: "Run a single command and exit",
		Long: `Run one command against the stored task list and print the reply.

Examples:
  monet do list
  monet do todo read book
  monet do mark 2`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), r.getAppTimeout())
			defer cancel()

			line := strings.Join(args, " ")
			return r.withSession(ctx, func(ctx context.Context, app *App, s *Session) error {
				return app.RunOnce(ctx, s, line, cmd.OutOrStdout())
			})
		},
	}

	r.cmd.AddCommand(doCmd)
}

// withSession opens the configured store, runs fn and closes the store
func (r *RootCommand) withSession(ctx context.Context, fn SessionRunner) error {
	if ctx == nil {
		ctx = context.Background()
	}
	store, err := r.storeFactory(r.config)
	if err != nil {
		return err
	}

	session := OpenSession(ctx, store)
	defer session.Close()

	return fn(ctx, NewAppWithConfig(r.config), session)
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.config != nil {
		return r.config.Application.Timeout
	}
	return 60 * time.Second
}

// loadConfig loads the configuration and applies command-line flags
func (r *RootCommand) loadConfig(cmd *cobra.Command) error {
	if r.loader == nil {
		return fmt.Errorf("configuration loader not initialized")
	}

	overrides, err := overridesFromFlags(cmd)
	if err != nil {
		return err
	}
	cfg, err := r.loader.LoadWithOverrides(overrides)
	if err != nil {
		return err
	}
	if cfg.Application.Verbose {
		logging.SetDebug(true)
	}
	r.config = cfg
	return nil
}

// overridesFromFlags collects the flags that were set explicitly
func overridesFromFlags(cmd *cobra.Command) (*config.ConfigOverrides, error) {
	flags := cmd.Flags()
	overrides := &config.ConfigOverrides{}

	if flags.Changed("dir") {
		v, _ := flags.GetString("dir")
		overrides.Dir = &v
	}
	if flags.Changed("filename") {
		v, _ := flags.GetString("filename")
		overrides.Filename = &v
	}
	if flags.Changed("backend") {
		v, _ := flags.GetString("backend")
		overrides.Backend = &v
	}
	if flags.Changed("write-timeout") {
		v, _ := flags.GetDuration("write-timeout")
		overrides.WriteTimeout = &v
	}
	if flags.Changed("dir-permissions") {
		v, _ := flags.GetString("dir-permissions")
		perms, err := strconv.ParseUint(v, 8, 32)
		if err != nil {
			return nil, errors.NewConfigError("storage.dir_permissions", fmt.Sprintf("%q is not an octal permission value", v))
		}
		p := uint32(perms)
		overrides.DirPermissions = &p
	}
	if flags.Changed("date-format") {
		v, _ := flags.GetString("date-format")
		overrides.DateFormat = &v
	}
	if flags.Changed("no-color") {
		v, _ := flags.GetBool("no-color")
		overrides.NoColor = &v
	}
	if flags.Changed("description-max") {
		v, _ := flags.GetInt("description-max")
		overrides.DescriptionMaxLength = &v
	}
	if flags.Changed("app-timeout") {
		v, _ := flags.GetDuration("app-timeout")
		overrides.Timeout = &v
	}
	if flags.Changed("verbose") {
		v, _ := flags.GetBool("verbose")
		overrides.Verbose = &v
	}

	return overrides, nil
}
