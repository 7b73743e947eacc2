package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/companion/benefit"
	"github.com/katalvlaran/companion/internal/config"
	"github.com/katalvlaran/companion/internal/logging"
	"github.com/katalvlaran/companion/relstore"
)

// app carries state shared by every subcommand of one invocation.
type app struct {
	stdout io.Writer
	stderr io.Writer

	configPath string
	envFile    string

	// flag values; applied over cfg only when set on the command line
	dataPath   string
	format     string
	sheet      string
	table      string
	duplicates string
	logLevel   string
	logFormat  string
	output     string

	cfg    config.Config
	logger *slog.Logger
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr, logger: logging.Discard()}

	root := &cobra.Command{
		Use:   "companion",
		Short: "Plan garden beds from companion-plant relationships",
		Long: `companion groups the plants you want to grow into garden beds so that
plants sharing a bed help each other, and suggests extra plants that
would help them further.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML configuration file")
	pf.StringVar(&a.envFile, "env-file", ".env", "dotenv file with COMPANION_* overrides (ignored if missing)")
	pf.StringVar(&a.dataPath, "data", "", "relationship dataset (.csv, .json, .yaml, .xlsx, .db); bundled dataset if empty")
	pf.StringVar(&a.format, "format", "", "dataset format, overrides the file extension")
	pf.StringVar(&a.sheet, "sheet", "", "XLSX sheet name")
	pf.StringVar(&a.table, "table", "", "SQLite table name")
	pf.StringVar(&a.duplicates, "duplicates", "", "duplicate relationship policy: last-write-wins|reject")
	pf.StringVar(&a.logLevel, "log-level", "", "debug|info|warn|error")
	pf.StringVar(&a.logFormat, "log-format", "", "text|json")
	pf.StringVarP(&a.output, "output", "o", "", "text|json|yaml")

	root.AddCommand(
		newPlanCmd(a),
		newCompanionsCmd(a),
		newHelpersCmd(a),
		newPlantsCmd(a),
	)

	return root
}

// setup merges configuration sources and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath, a.envFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	override := func(name string, dst *string, v string) {
		if flags.Changed(name) {
			*dst = v
		}
	}
	override("data", &cfg.Data.Path, a.dataPath)
	override("format", &cfg.Data.Format, a.format)
	override("sheet", &cfg.Data.Sheet, a.sheet)
	override("table", &cfg.Data.Table, a.table)
	override("duplicates", &cfg.Data.DuplicatePolicy, a.duplicates)
	override("log-level", &cfg.Log.Level, a.logLevel)
	override("log-format", &cfg.Log.Format, a.logFormat)
	override("output", &cfg.Output, a.output)
	if err = cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	a.logger = logging.New(logging.Config{Level: level, Format: cfg.Log.Format, Writer: a.stderr}).
		With("run_id", uuid.NewString())
	a.logger.Debug("configuration loaded", "command", cmd.Name(), "data", cfg.Data.Path, "output", cfg.Output)

	return nil
}

// loadGraph loads the configured dataset, or the bundled one.
func (a *app) loadGraph(ctx context.Context) (*benefit.Graph, error) {
	policy, err := benefit.ParseDuplicatePolicy(a.cfg.Data.DuplicatePolicy)
	if err != nil {
		return nil, err
	}
	opts := []relstore.Option{
		relstore.WithLogger(a.logger),
		relstore.WithDuplicatePolicy(policy),
	}
	if a.cfg.Data.Sheet != "" {
		opts = append(opts, relstore.WithSheet(a.cfg.Data.Sheet))
	}
	if a.cfg.Data.Table != "" {
		opts = append(opts, relstore.WithTable(a.cfg.Data.Table))
	}
	if a.cfg.Data.Format != "" {
		f, err := relstore.ParseFormat(a.cfg.Data.Format)
		if err != nil {
			return nil, err
		}
		opts = append(opts, relstore.WithFormat(f))
	}

	if a.cfg.Data.Path == "" {
		return relstore.LoadDefault(ctx, opts...)
	}
	g, err := relstore.LoadFile(ctx, a.cfg.Data.Path, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", a.cfg.Data.Path, err)
	}

	return g, nil
}

// renderer returns the output renderer selected by configuration.
func (a *app) renderer() renderer {
	return newRenderer(a.stdout, a.cfg.Output)
}
