package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cristiano-superacao/superacao/internal/config"
	"github.com/cristiano-superacao/superacao/internal/domain"
	"github.com/cristiano-superacao/superacao/internal/logging"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd    *cobra.Command
	config *config.Config
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(cfg *config.Config) *RootCommand {
	root := &RootCommand{
		config: cfg,
	}

	root.cmd = &cobra.Command{
		Use:   "superacao",
		Short: "Gamified daily planner with points, streaks and a virtual coach",
		Long: `Superação is a gamified productivity planner. Plan your day in time
blocks, earn points for completing tasks, keep a daily streak going, and get
nudges from a virtual coach.

EXAMPLES:
  superacao add "Estudar Go" --start 08:00 --end 09:30 --category study
  superacao list                           # Show today's schedule
  superacao complete 3f2a                  # Complete a task (ID prefix works)
  superacao status --insights              # Profile summary with coach insights
  superacao chat "como estou indo?"        # Talk to the coach
  superacao ranking                        # Local leaderboard
  superacao watch                          # Keep task statuses fresh
  superacao serve                          # Run the sync backend

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > config file > defaults

  SUPERACAO_CONFIG_FILE                    YAML config file path
  SUPERACAO_DB_DIR                         Backend database directory (default: ~/.superacao)
  SUPERACAO_DB_FILENAME                    Backend database filename (default: superacao.db)
  SUPERACAO_STORAGE_DIR                    Local state directory (default: ~/.superacao/state)
  SUPERACAO_SERVER_ADDR                    Backend listen address (default: :8080)
  SUPERACAO_SERVER_RANKING_LIMIT           Default leaderboard size (default: 10)
  SUPERACAO_SCHEDULER_INTERVAL             Status refresh cadence (default: 60s)
  SUPERACAO_APP_VERBOSE                    Enable verbose output (default: false)

GETTING HELP:
  superacao [command] --help               # Get help for any specific command`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.getConfigFromFlags()
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

// localApp opens the local store and wires the engine and coach for the
// planner commands. The backend serve command does not go through here.
func (r *RootCommand) localApp() (*App, error) {
	return NewAppFromConfig(r.config)
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("db-dir", "", "Backend database directory (overrides SUPERACAO_DB_DIR)")
	flags.String("db-filename", "", "Backend database filename (overrides SUPERACAO_DB_FILENAME)")
	flags.String("storage-dir", "", "Local state directory (overrides SUPERACAO_STORAGE_DIR)")
	flags.String("addr", "", "Backend listen address (overrides SUPERACAO_SERVER_ADDR)")
	flags.Int("ranking-limit", 0, "Default leaderboard size (overrides SUPERACAO_SERVER_RANKING_LIMIT)")
	flags.Duration("refresh-interval", 0, "Status refresh cadence (overrides SUPERACAO_SCHEDULER_INTERVAL)")
	flags.Bool("verbose", false, "Enable verbose output (overrides SUPERACAO_APP_VERBOSE)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	addCmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add a task to the schedule",
		Long: `Add a task to today's schedule. Points are awarded on completion based
on the category and the length of the time window.

Example:
  superacao add "Caminhada matinal" --start 07:00 --end 07:30 --category exercise`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := r.localApp()
			if err != nil {
				return err
			}

			input := domain.TaskInput{Title: strings.Join(args, " ")}
			input.Description, _ = cmd.Flags().GetString("desc")
			input.Category, _ = cmd.Flags().GetString("category")
			input.StartTime, _ = cmd.Flags().GetString("start")
			input.EndTime, _ = cmd.Flags().GetString("end")
			input.Date, _ = cmd.Flags().GetString("date")

			return NewAddCommand(app, input).Execute()
		},
	}
	addCmd.Flags().String("desc", "", "Task description")
	addCmd.Flags().String("category", string(domain.CategoryOther), "Task category")
	addCmd.Flags().String("start", "", "Start of the time window (HH:MM)")
	addCmd.Flags().String("end", "", "End of the time window (HH:MM)")
	addCmd.Flags().String("date", "", "Task date (YYYY-MM-DD, defaults to today)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List scheduled tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := r.localApp()
			if err != nil {
				return err
			}
			return NewListCommand(app).Execute()
		},
	}

	completeCmd := &cobra.Command{
		Use:   "complete [task id]",
		Short: "Complete a task and collect its points",
		Long:  "Mark a task as completed. A unique ID prefix is enough.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := r.localApp()
			if err != nil {
				return err
			}
			return NewCompleteCommand(app, args[0]).Execute()
		},
	}

	startCmd := &cobra.Command{
		Use:   "start [task id]",
		Short: "Start working on a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := r.localApp()
			if err != nil {
				return err
			}
			return NewStartCommand(app, args[0]).Execute()
		},
	}

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show profile, points, streak and achievements",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := r.localApp()
			if err != nil {
				return err
			}
			insights, _ := cmd.Flags().GetBool("insights")
			return NewStatusCommand(app, insights).Execute()
		},
	}
	statusCmd.Flags().Bool("insights", false, "Include coach insights and recommendations")

	chatCmd := &cobra.Command{
		Use:   "chat [message]",
		Short: "Talk to the virtual coach",
		Long: `Send a message to the virtual coach and read the reply.

Examples:
  superacao chat "preciso de motivação"
  superacao chat --history                 # Show the conversation so far`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := r.localApp()
			if err != nil {
				return err
			}

			history, _ := cmd.Flags().GetBool("history")
			if !history && len(args) == 0 {
				return fmt.Errorf("provide a message or use --history")
			}
			return NewChatCommand(app, strings.Join(args, " "), history).Execute()
		},
	}
	chatCmd.Flags().Bool("history", false, "Show the conversation history")

	rankingCmd := &cobra.Command{
		Use:   "ranking",
		Short: "Show the leaderboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := r.localApp()
			if err != nil {
				return err
			}
			limit, _ := cmd.Flags().GetInt("limit")
			return NewRankingCommand(app, limit).Execute()
		},
	}
	rankingCmd.Flags().Int("limit", 0, "Number of leaderboard entries")

	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "Seed the demo schedule into an empty planner",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := r.localApp()
			if err != nil {
				return err
			}
			if err := app.engine.SeedSampleTasks(); err != nil {
				return err
			}
			return NewListCommand(app).Execute()
		},
	}

	activitiesCmd := &cobra.Command{
		Use:   "activities",
		Short: "List recorded GPS activities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := r.localApp()
			if err != nil {
				return err
			}
			return NewActivitiesCommand(app).Execute()
		},
	}

	watchCmd := &cobra.Command{
		Use:   "watch",
		Short: "Keep task statuses up to date",
		Long:  "Run the periodic status refresher in the foreground until interrupted.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := r.localApp()
			if err != nil {
				return err
			}

			log, closeLog, err := logging.ForVerbosity(r.config.Application.Verbose)
			if err != nil {
				return err
			}
			defer closeLog()

			return NewWatchCommand(app, log).Execute()
		},
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the sync backend HTTP server",
		Long:  "Run the HTTP backend used by clients to sync accounts, tasks and the global ranking.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, closeLog, err := logging.ForVerbosity(r.config.Application.Verbose)
			if err != nil {
				return err
			}
			defer closeLog()

			return NewServeCommand(r.config, log).Execute()
		},
	}

	r.cmd.AddCommand(
		addCmd,
		listCmd,
		completeCmd,
		startCmd,
		statusCmd,
		chatCmd,
		rankingCmd,
		demoCmd,
		activitiesCmd,
		watchCmd,
		serveCmd,
	)
}

// getConfigFromFlags updates the configuration with values from command-line flags
func (r *RootCommand) getConfigFromFlags() error {
	if r.config == nil {
		return fmt.Errorf("configuration not initialized")
	}

	flags := r.cmd.PersistentFlags()

	if dbDir, _ := flags.GetString("db-dir"); dbDir != "" {
		r.config.Database.Dir = dbDir
	}
	if dbFilename, _ := flags.GetString("db-filename"); dbFilename != "" {
		r.config.Database.Filename = dbFilename
	}
	if storageDir, _ := flags.GetString("storage-dir"); storageDir != "" {
		r.config.Storage.Dir = storageDir
	}
	if addr, _ := flags.GetString("addr"); addr != "" {
		r.config.Server.Addr = addr
	}
	if limit, _ := flags.GetInt("ranking-limit"); limit > 0 {
		r.config.Server.DefaultRankingLimit = limit
	}
	if interval, _ := flags.GetDuration("refresh-interval"); interval > 0 {
		r.config.Scheduler.RefreshInterval = interval
	}
	if verbose, _ := flags.GetBool("verbose"); verbose {
		r.config.Application.Verbose = verbose
	}

	return r.config.Validate()
}
