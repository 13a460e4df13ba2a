// Package main is the VisaMarker terminal client. Without a subcommand it
// runs the interactive planner; subcommands print single documents.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/pkordes/visamarker/internal/config"
	"github.com/pkordes/visamarker/internal/repo"
	"github.com/pkordes/visamarker/internal/service"
	"github.com/pkordes/visamarker/internal/tui"
)

// app holds what every command shares once PersistentPreRunE has run.
type app struct {
	cfg     config.Config
	log     *slog.Logger
	logFile *os.File

	// delay overrides cfg.GenerationDelay when the --delay flag is set.
	delay time.Duration

	// prefill holds the root command's optional form values.
	prefill tripFlags
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "visamarker",
		Short: "Plan the visa paperwork for a trip",
		Long: `VisaMarker builds a visa checklist for a trip, plus a sample cover letter,
a 7-day itinerary and a budget estimate.

Run without arguments to start the interactive planner.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if a.logFile != nil {
				_ = a.logFile.Close()
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runInteractive(cmd)
		},
	}
	root.PersistentFlags().DurationVar(&a.delay, "delay", -1,
		"simulated generation delay (defaults to GENERATION_DELAY or 500ms)")
	root.Flags().StringVar(&a.prefill.nationality, "nationality", "", "pre-select a nationality in the form")
	root.Flags().StringVar(&a.prefill.destination, "destination", "", "pre-select a destination")
	root.Flags().StringVar(&a.prefill.date, "date", "", "pre-fill the travel date, YYYY-MM-DD")
	root.Flags().StringVar(&a.prefill.purpose, "purpose", "", "pre-select a purpose")

	root.AddCommand(newDocumentCmds(a)...)
	root.AddCommand(newOptionsCmd(), newSeedCmd(a))
	return root
}

// setup loads configuration and the logger. Logs go to the file named by
// VISAMARKER_LOG; without it they are discarded, because the terminal
// belongs to the UI.
func (a *app) setup(cmd *cobra.Command) error {
	// A missing .env file is fine: the environment may already be set.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}
	if cmd.Flags().Changed("delay") {
		cfg.GenerationDelay = a.delay
	}
	a.cfg = cfg

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	var w io.Writer = io.Discard
	if path := os.Getenv("VISAMARKER_LOG"); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		a.logFile = f
		w = f
	}
	a.log = slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
	return nil
}

// planService wires the planner the same way the API server does, always
// reading the YAML visa table.
func (a *app) planService() (*service.PlanService, error) {
	visas, err := repo.LoadYAMLVisaRepo(a.cfg.VisaTablePath)
	if err != nil {
		return nil, err
	}
	planner := service.NewPlannerService(visas, a.cfg.GenerationDelay, a.log)
	return service.NewPlanService(repo.NewMemoryPlanRepo(), planner, service.WithLogger(a.log)), nil
}

func (a *app) runInteractive(cmd *cobra.Command) error {
	plans, err := a.planService()
	if err != nil {
		return err
	}
	req, err := a.prefill.request()
	if err != nil {
		return err
	}
	model := tui.New(cmd.Context(), plans, tui.WithLogger(a.log), tui.WithTrip(req))
	_, err = tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithContext(cmd.Context()),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	).Run()
	return err
}
