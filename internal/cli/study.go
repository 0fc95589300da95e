package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"prepdeck/internal/catalog"
	"prepdeck/internal/config"
	"prepdeck/internal/content"
	"prepdeck/internal/logger"
	"prepdeck/internal/store"
	"prepdeck/internal/ui"
)

// runProgram launches the Bubble Tea program; swappable in tests.
var runProgram = func(model tea.Model) error {
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}

func runStudy(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		configPath := fs.String("config", "", "Path to config file (default: auto-detect)")
		uiMode := fs.String("ui", "auto", "UI mode: auto, live, or plain")
		noColor := fs.Bool("no-color", false, "Disable colored output")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}

		cfg, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}
		if *noColor {
			cfg.NoColor = true
		}

		cat, err := loadCatalog(cfg)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load catalog: %v\n", err)
			return ExitError
		}

		decision, err := resolveUIMode(*uiMode, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return ExitUsage
		}
		if decision.warning != "" {
			fmt.Fprintln(stderr, decision.warning)
		}
		if !decision.useLive {
			printCatalogSummary(stdout, cat)
			return ExitOK
		}

		log := logger.New(cfg.StateDir)
		defer func() { _ = log.Sync() }()
		st := store.NewFileStore(cfg.StateDir, log)

		model := ui.New(cat, st, ui.Options{
			NoColor:      cfg.NoColor,
			ExamLength:   cfg.Exam.Length,
			ExamDuration: cfg.Exam.DurationSeconds,
			Logger:       log,
		})
		if err := runProgram(model); err != nil {
			fmt.Fprintf(stderr, "Study shell failed: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}

// loadConfig loads an explicit config path, a discovered one, or defaults
// when no config exists anywhere up the tree.
func loadConfig(path string) (config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	found, err := config.FindConfigPath("")
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return config.Default(), nil
		}
		return config.Config{}, err
	}
	return config.Load(found)
}

// loadCatalog loads the configured catalog file or the embedded default.
func loadCatalog(cfg config.Config) (catalog.Catalog, error) {
	if cfg.Catalog != "" {
		return catalog.Load(cfg.Catalog)
	}
	return content.Default()
}

func printCatalogSummary(w io.Writer, cat catalog.Catalog) {
	fmt.Fprintln(w, "prepdeck catalog summary:")
	fmt.Fprintf(w, "  questions:  %d\n", len(cat.Questions))
	fmt.Fprintf(w, "  cards:      %d\n", len(cat.Cards))
	fmt.Fprintf(w, "  flashcards: %d\n", len(cat.Flashcards))
	fmt.Fprintf(w, "  mind maps:  %d\n", len(cat.MindMaps))
	fmt.Fprintf(w, "  interview:  %d\n", len(cat.Interview))
	fmt.Fprintf(w, "  news:       %d\n", len(cat.News))
	fmt.Fprintln(w, "\nRun in a terminal (or with --ui live) for the interactive shell.")
}
