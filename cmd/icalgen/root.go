package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/luxifer/icalgen/internal/config"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
)

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}

// app carries the state shared by all subcommands.
type app struct {
	cfgFile string
	verbose bool

	cfg    *config.Config
	logger *log.Logger
}

// An ExitError carries the process status a subcommand wants main to exit
// with. lint returns one when a calendar fails to decode or check.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error { return e.Err }

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "icalgen",
		Short: "Encode and check iCalendar (RFC 5545) files",
		Long: `icalgen turns calendar descriptions written in YAML or TOML into
iCalendar files, and checks existing .ics files against the content line
grammar.

Examples:
  icalgen encode team.yaml -o team.ics   Encode a descriptor
  icalgen encode team.toml --no-fold     Encode without folding long lines
  icalgen lint team.ics                  Check a calendar file`,
		Version:       getVersionString(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is ./icalgen.yaml)")

	rootCmd.AddCommand(newEncodeCmd(a))
	rootCmd.AddCommand(newLintCmd(a))
	return rootCmd
}

// setup reads in the config file and ENV variables, and sets up logging.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(config.LoadOptions{ConfigFilePath: a.cfgFile})
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	a.cfg = cfg

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	if a.verbose {
		level = log.DebugLevel
	}
	a.logger = log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
		Prefix: config.AppName,
		Level:  level,
	})
	return nil
}
