package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"taskboard/internal/api"
	"taskboard/internal/config"
	"taskboard/internal/errors"
	"taskboard/internal/logging"
	"taskboard/internal/repository"
)

// Opener opens the repository described by cfg.
type Opener func(cfg *config.Config) (repository.Repository, error)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd    *cobra.Command
	open   Opener
	config *config.Config
	api    api.API
	repo   repository.Repository
	in     io.Reader
	out    io.Writer
}

// NewRootCommand creates the root cobra command with global flags. The
// configuration is loaded and the repository opened once flags are parsed.
func NewRootCommand(open Opener) *RootCommand {
	root := &RootCommand{
		open: open,
		in:   os.Stdin,
		out:  os.Stdout,
	}

	root.cmd = &cobra.Command{
		Use:   "tb",
		Short: "A command-line task board",
		Long: `Task Board (tb) is a single-user task tracker for the command line.

FEATURES:
  • Log in with a display name; tasks are only shown to a logged-in user
  • Add, edit, complete and delete tasks with priority, due date and tags
  • Filter by status and search titles, descriptions and tags
  • Dark and light themes, remembered between runs
  • Export data to CSV or JSON

EXAMPLES:
  tb login Ada Lovelace                    # Start a session
  tb add "Fix bug" -p high --due 2025-01-31 -t backend
  tb add "Buy milk" -c Shopping            # Category is added as a tag
  tb list                                  # Show all tasks with counts
  tb list -f pending bug                   # Pending tasks matching "bug"
  tb toggle 3f2a                           # Complete a task by id prefix
  tb edit 3f2a -p low --clear-tags         # Change fields of a task
  tb delete 3f2a                           # Delete after confirmation
  tb theme toggle                          # Switch between dark and light
  tb output format=json > tasks.json       # Export to a JSON file

CONFIGURATION:
  Configuration follows this priority order:
  command-line flags > environment variables > config file > defaults

  Config file: $TB_DATA_DIR/config.yaml, or the path in TB_CONFIG

  Storage Configuration:
    TB_DATA_DIR                            Data directory (default: ~/.tb)
    TB_STORAGE_BACKEND                     sqlite or file (default: sqlite)
    TB_DB_FILENAME                         Database filename (default: tb.db)
    TB_DB_QUERY_TIMEOUT                    Query timeout (default: 10s)
    TB_DB_WRITE_TIMEOUT                    Write timeout (default: 5s)

  Validation Configuration:
    TB_VALIDATION_TITLE_MAX                Max title length (default: 255)
    TB_VALIDATION_DESCRIPTION_MAX          Max description length (default: 2000)
    TB_VALIDATION_USERNAME_MAX             Max username length (default: 64)
    TB_VALIDATION_TAG_MAX                  Max tag length (default: 32)

  Display Configuration:
    TB_DISPLAY_DATE_FORMAT                 Due date format (default: Jan 02, 2006)
    TB_DISPLAY_ID_LENGTH                   Characters of the id shown (default: 8)
    TB_DISPLAY_WIDTH                       Width of the list rule (default: 80)

  Task Configuration:
    TB_CATEGORIES                          Comma separated categories (default: Work,Personal,Shopping)
    TB_DEFAULT_FILTER                      all, pending or completed (default: all)

  Application Configuration:
    TB_APP_TIMEOUT                         Application timeout (default: 60s)
    TB_APP_VERBOSE                         Enable verbose output (default: false)
    TB_DEBUG                               Print debug output to stderr
    TB_OUTPUT_DEFAULT_FORMAT               Default export format (default: csv)

GETTING HELP:
  tb [command] --help                      # Get help for any specific command
  tb completion bash                       # Generate bash completion script`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.setup()
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// NewRootCommandWithAPI creates a root command over an API that is already
// loaded. Flags that shape configuration are ignored.
func NewRootCommandWithAPI(apiInstance api.API, cfg *config.Config) *RootCommand {
	root := NewRootCommand(nil)
	if cfg == nil {
		cfg = config.NewConfig()
	}
	root.api = apiInstance
	root.config = cfg
	return root
}

// SetIO replaces stdin and stdout for every command.
func (r *RootCommand) SetIO(in io.Reader, out io.Writer) {
	r.in = in
	r.out = out
	r.cmd.SetOut(out)
	r.cmd.SetErr(out)
}

// SetArgs sets the arguments used instead of os.Args[1:].
func (r *RootCommand) SetArgs(args []string) {
	r.cmd.SetArgs(args)
}

// Execute runs the root command and closes the repository it opened. The
// returned error carries a message fit for the terminal.
func (r *RootCommand) Execute() error {
	defer r.close()

	err := r.cmd.Execute()
	if err == nil {
		return nil
	}

	eh := NewErrorHandler()
	if errors.ShouldLogError(err) {
		logging.Debugf("command failed [%s]: %v", eh.GetErrorCode(err), eh.Cause(err))
	}
	err = eh.HandleSimple(err)
	if eh.IsStorageError(err) && !logging.DebugEnabled() {
		return &handledError{msg: err.Error() + " Run with --verbose for details.", cause: eh.Cause(err)}
	}
	return err
}

// setup loads configuration, opens the repository and restores state. It
// does nothing when an API was injected.
func (r *RootCommand) setup() error {
	if r.api != nil {
		return nil
	}
	if r.open == nil {
		return fmt.Errorf("no repository configured")
	}

	cfg, err := config.NewLoader().LoadWithOverrides(r.getOverridesFromFlags(r.cmd.PersistentFlags()))
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	r.config = cfg
	logging.SetVerbose(cfg.Application.Verbose)

	repo, err := r.open(cfg)
	if err != nil {
		return fmt.Errorf("failed to open task store: %w", err)
	}
	r.repo = repo

	ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
	defer cancel()

	r.api = api.New(repo, cfg)
	r.api.Load(ctx)
	return nil
}

func (r *RootCommand) close() {
	if r.repo == nil {
		return
	}
	if err := r.repo.Close(); err != nil {
		logging.Warnf("could not close task store: %v", err)
	}
	r.repo = nil
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	// Storage configuration
	flags.String("data-dir", "", "Data directory (overrides TB_DATA_DIR)")
	flags.String("backend", "", "Storage backend, sqlite or file (overrides TB_STORAGE_BACKEND)")
	flags.String("db-filename", "", "Database filename (overrides TB_DB_FILENAME)")
	flags.Duration("db-query-timeout", 0, "Database query timeout (overrides TB_DB_QUERY_TIMEOUT)")
	flags.Duration("db-write-timeout", 0, "Database write timeout (overrides TB_DB_WRITE_TIMEOUT)")

	// Validation configuration
	flags.Int("title-max-length", 0, "Maximum title length (overrides TB_VALIDATION_TITLE_MAX)")

	// Display configuration
	flags.String("date-format", "", "Due date display format (overrides TB_DISPLAY_DATE_FORMAT)")
	flags.Int("id-length", 0, "Characters of the task id to show (overrides TB_DISPLAY_ID_LENGTH)")
	flags.Int("width", 0, "Width of the list rule (overrides TB_DISPLAY_WIDTH)")

	// Application configuration
	flags.Duration("app-timeout", 0, "Application timeout (overrides TB_APP_TIMEOUT)")
	flags.Bool("verbose", false, "Enable verbose output (overrides TB_APP_VERBOSE)")

	// Task configuration
	flags.StringSlice("categories", nil, "Allowed categories (overrides TB_CATEGORIES)")
	flags.String("default-filter", "", "Default list filter (overrides TB_DEFAULT_FILTER)")

	// Commands configuration
	flags.String("output-format", "", "Default export format (overrides TB_OUTPUT_DEFAULT_FORMAT)")
}

// getOverridesFromFlags collects the flags given on the command line. Flags
// left at their defaults produce no override.
func (r *RootCommand) getOverridesFromFlags(flags *pflag.FlagSet) *config.ConfigOverrides {
	overrides := &config.ConfigOverrides{}

	stringFlag := func(name string) *string {
		if !flags.Changed(name) {
			return nil
		}
		v, _ := flags.GetString(name)
		return &v
	}
	intFlag := func(name string) *int {
		if !flags.Changed(name) {
			return nil
		}
		v, _ := flags.GetInt(name)
		return &v
	}
	durationFlag := func(name string) *time.Duration {
		if !flags.Changed(name) {
			return nil
		}
		v, _ := flags.GetDuration(name)
		return &v
	}

	overrides.DataDir = stringFlag("data-dir")
	overrides.Backend = stringFlag("backend")
	overrides.DBFilename = stringFlag("db-filename")
	overrides.DBQueryTimeout = durationFlag("db-query-timeout")
	overrides.DBWriteTimeout = durationFlag("db-write-timeout")

	overrides.TitleMaxLength = intFlag("title-max-length")

	overrides.DateFormat = stringFlag("date-format")
	overrides.IDLength = intFlag("id-length")
	overrides.Width = intFlag("width")

	overrides.Timeout = durationFlag("app-timeout")
	if flags.Changed("verbose") {
		v, _ := flags.GetBool("verbose")
		overrides.Verbose = &v
	}

	if flags.Changed("categories") {
		v, _ := flags.GetStringSlice("categories")
		overrides.Categories = &v
	}
	overrides.DefaultFilter = stringFlag("default-filter")

	overrides.OutputDefaultFormat = stringFlag("output-format")

	return overrides
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.config != nil {
		return r.config.Application.Timeout
	}
	return 60 * time.Second
}

// app builds the handler dependencies once setup has run.
func (r *RootCommand) app() *App {
	return NewAppWithIO(r.api, r.config, r.in, r.out)
}

// run executes handler under the application timeout, scaled by factor for
// commands that wait on the user.
func (r *RootCommand) run(handler Command, args []string, factor int) error {
	ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout()*time.Duration(factor))
	defer cancel()
	return handler.Execute(ctx, args)
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	loginCmd := &cobra.Command{
		Use:   "login <name>",
		Short: "Log in with a display name",
		Long:  "Start a session. The words of the name are joined by single spaces.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(NewLoginCommand(r.app()), args, 1)
		},
	}

	logoutCmd := &cobra.Command{
		Use:   "logout",
		Short: "End the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(NewLogoutCommand(r.app()), args, 1)
		},
	}

	whoamiCmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(NewWhoamiCommand(r.app()), args, 1)
		},
	}

	var addOpts AddOptions
	addCmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a task",
		Long: `Add a task. The words of the title are joined by single spaces.

Priorities: high, medium (default), low
Due dates use the form YYYY-MM-DD

Examples:
  tb add Buy milk -c Shopping
  tb add "Write report" -p high --due 2025-03-01 -t work -t q1`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(NewAddCommand(r.app(), addOpts), args, 1)
		},
	}
	addCmd.Flags().StringVarP(&addOpts.Description, "description", "d", "", "Task description")
	addCmd.Flags().StringVarP(&addOpts.Priority, "priority", "p", "", "Priority: high, medium or low")
	addCmd.Flags().StringVar(&addOpts.DueDate, "due", "", "Due date (YYYY-MM-DD)")
	addCmd.Flags().StringArrayVarP(&addOpts.Tags, "tag", "t", nil, "Tag, may be repeated")
	addCmd.Flags().StringVarP(&addOpts.Category, "category", "c", "", "Category, added as a tag (see tb categories)")

	editCmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change fields of a task",
		Long: `Change the fields of a task given by its id or an unambiguous id prefix.
Only the flags passed are changed. Tags given with -t replace the existing tags.

Examples:
  tb edit 3f2a --title "Fix login bug"
  tb edit 3f2a --due ""                  # Remove the due date
  tb edit 3f2a --clear-tags -c Work
  tb edit 3f2a --untag urgent            # Remove one tag, keep the rest`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(NewEditCommand(r.app(), editOptionsFromFlags(cmd.Flags())), args, 1)
		},
	}
	editCmd.Flags().String("title", "", "New title")
	editCmd.Flags().StringP("description", "d", "", "New description")
	editCmd.Flags().StringP("priority", "p", "", "New priority: high, medium or low")
	editCmd.Flags().String("due", "", "New due date (YYYY-MM-DD), empty to clear")
	editCmd.Flags().StringArrayP("tag", "t", nil, "Replacement tag, may be repeated")
	editCmd.Flags().Bool("clear-tags", false, "Remove all tags")
	editCmd.Flags().StringArray("untag", nil, "Tag to remove, may be repeated")
	editCmd.Flags().StringP("category", "c", "", "Category, added as a tag")

	toggleCmd := &cobra.Command{
		Use:   "toggle <id>",
		Short: "Mark a task completed or pending",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(NewToggleCommand(r.app()), args, 1)
		},
	}

	var skipConfirm bool
	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a task",
		Long: `Delete a task given by its id or an unambiguous id prefix.

This operation cannot be undone. You will be asked to confirm unless --yes is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// The prompt waits on the user.
			return r.run(NewDeleteCommand(r.app(), skipConfirm), args, 2)
		},
	}
	deleteCmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "Delete without asking")

	var filter string
	listCmd := &cobra.Command{
		Use:   "list [search]",
		Short: "List tasks",
		Long: `List tasks with per-status counts.

The search text is matched case-insensitively against titles, descriptions
and tags. Tasks are ordered by priority, then by due date.

Examples:
  tb list                    # All tasks
  tb list -f pending         # Only open tasks
  tb list "project alpha"    # Tasks mentioning "project alpha"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(NewListCommand(r.app(), filter), args, 1)
		},
	}
	listCmd.Flags().StringVarP(&filter, "filter", "f", "", "Status filter: all, pending or completed")

	themeCmd := &cobra.Command{
		Use:   "theme [dark|light|toggle]",
		Short: "Show or change the color theme",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(NewThemeCommand(r.app()), args, 1)
		},
	}

	categoriesCmd := &cobra.Command{
		Use:   "categories",
		Short: "List the configured categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(NewCategoriesCommand(r.app()), args, 1)
		},
	}

	outputCmd := &cobra.Command{
		Use:   "output [format=csv|json]",
		Short: "Export tasks in the specified format",
		Long: `Export every task in the specified format.

Supported formats:
  csv  - Comma-separated values
  json - The stored task records

Example:
  tb output format=csv > tasks.csv`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(NewOutputCommand(r.app()), args, 1)
		},
	}

	r.cmd.AddCommand(
		loginCmd,
		logoutCmd,
		whoamiCmd,
		addCmd,
		editCmd,
		toggleCmd,
		deleteCmd,
		listCmd,
		themeCmd,
		categoriesCmd,
		outputCmd,
	)
}

// editOptionsFromFlags keeps only the flags given on the command line.
func editOptionsFromFlags(flags *pflag.FlagSet) EditOptions {
	var opts EditOptions
	stringFlag := func(name string) *string {
		if !flags.Changed(name) {
			return nil
		}
		v, _ := flags.GetString(name)
		return &v
	}

	opts.Title = stringFlag("title")
	opts.Description = stringFlag("description")
	opts.Priority = stringFlag("priority")
	opts.DueDate = stringFlag("due")
	opts.Category = stringFlag("category")
	if flags.Changed("tag") {
		tags, _ := flags.GetStringArray("tag")
		opts.Tags = &tags
	}
	opts.ClearTags, _ = flags.GetBool("clear-tags")
	opts.Untag, _ = flags.GetStringArray("untag")
	return opts
}
