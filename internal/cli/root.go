package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Skyhigh44/Productivity/internal/clock"
	"github.com/Skyhigh44/Productivity/internal/config"
	"github.com/Skyhigh44/Productivity/internal/format"
	"github.com/Skyhigh44/Productivity/internal/logging"
	"github.com/Skyhigh44/Productivity/internal/tui"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"go.uber.org/automaxprocs/maxprocs"
)

type App struct {
	ConfigPath string
	EnvFile    string
	PrettyJSON bool
	Format     string

	Theme    string
	Glyphs   string
	Clock24h bool

	// Resolved in PersistentPreRunE.
	Config config.Config
	Logger *logrus.Logger

	clock    clock.Clock
	closeLog func() error
}

func NewRootCmd() *cobra.Command {
	return newRootCmd(&App{clock: clock.Real{}})
}

func newRootCmd(app *App) *cobra.Command {
	if app.clock == nil {
		app.clock = clock.Real{}
	}

	cmd := &cobra.Command{
		Use:           "daily",
		Short:         "Daily dashboard: calendar notes, projects and a clock in your terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: strings.TrimSpace(`
  # Start the interactive dashboard
  daily

  # Print a month grid (shortcut for: daily calendar 2026-10)
  daily 2026-10

  # Keyboard reference
  daily docs keys --render
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if len(args) == 0 {
				return runTUI(cmd, app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if _, err := maxprocs.Set(); err != nil {
			return errors.Wrap(err, "set GOMAXPROCS")
		}
		return app.load(cmd)
	}
	cmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		return app.close()
	}

	cmd.PersistentFlags().StringVar(&app.ConfigPath, "config", envOr("DAILY_CONFIG", ""), "Path to config file (default ~/.daily/config.json)")
	cmd.PersistentFlags().StringVar(&app.EnvFile, "env-file", "", "Load environment variables from a dotenv file first")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("DAILY_FORMAT", "json"), "Output format (json|text)")
	cmd.PersistentFlags().StringVar(&app.Theme, "theme", "", "Color theme (auto|light|dark)")
	cmd.PersistentFlags().StringVar(&app.Glyphs, "glyphs", "", "Glyph set (unicode|ascii)")
	cmd.PersistentFlags().BoolVar(&app.Clock24h, "24h", false, "Show the clock in 24-hour format")

	cmd.AddCommand(newCalendarCmd(app))
	cmd.AddCommand(newClockCmd(app))
	cmd.AddCommand(newProjectsCmd(app))
	cmd.AddCommand(newConfigCmd(app))
	cmd.AddCommand(newDocsCmd(app))

	return cmd
}

// load resolves configuration (defaults < file < env < flags) and opens the
// logger.
func (app *App) load(cmd *cobra.Command) error {
	cfg, err := config.Load(config.LoadOptions{Path: app.ConfigPath, EnvFile: app.EnvFile})
	if err != nil {
		return writeErr(cmd, err)
	}

	var o config.Overrides
	flags := cmd.Flags()
	if flags.Changed("theme") {
		o.Theme = &app.Theme
	}
	if flags.Changed("glyphs") {
		o.Glyphs = &app.Glyphs
	}
	if flags.Changed("24h") {
		o.Clock24h = &app.Clock24h
	}
	app.Config = cfg.Override(o)

	logger, closeLog, err := logging.New(app.Config.LogFile, app.Config.LogLevel)
	if err != nil {
		return writeErr(cmd, err)
	}
	app.Logger = logger
	app.closeLog = closeLog
	logging.Component(logger, "cli").WithFields(logrus.Fields{
		"command": cmd.CommandPath(),
		"config":  app.Config.Source,
	}).Debug("start")
	return nil
}

func (app *App) close() error {
	if app.closeLog == nil {
		return nil
	}
	err := app.closeLog()
	app.closeLog = nil
	return err
}

func runTUI(cmd *cobra.Command, app *App) error {
	err := tui.Run(cmd.Context(), tui.Options{
		Config: app.Config,
		Logger: app.Logger,
		Clock:  app.clock,
	})
	if err != nil {
		return writeErr(cmd, err)
	}
	return nil
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

// envelope is the {"data": ...} wrapper every command prints.
type envelope struct {
	Data any `json:"data"`
}

func (e envelope) Text() string {
	if t, ok := e.Data.(format.Texter); ok {
		return t.Text()
	}
	b, err := json.MarshalIndent(e.Data, "", "  ")
	if err != nil {
		return fmt.Sprint(e.Data)
	}
	return string(b)
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), envelope{Data: v}, app.Format, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return reportedError{err: err}
}

// reportedError marks an error that was already printed to stderr.
type reportedError struct{ err error }

func (e reportedError) Error() string { return e.err.Error() }
func (e reportedError) Unwrap() error { return e.err }

// Report prints err to w unless a command already did.
func Report(w io.Writer, err error) {
	if err == nil {
		return
	}
	var r reportedError
	if errors.As(err, &r) {
		return
	}
	fmt.Fprintln(w, "Error:", err.Error())
}
