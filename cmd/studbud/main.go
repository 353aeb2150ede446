package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/alexanderramin/studbud/internal/classifier"
	"github.com/alexanderramin/studbud/internal/cli"
	"github.com/alexanderramin/studbud/internal/db"
	"github.com/alexanderramin/studbud/internal/planner"
	"github.com/alexanderramin/studbud/internal/repository"
	"github.com/alexanderramin/studbud/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.studbud/studbud.db
	dbPath := os.Getenv("STUDBUD_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".studbud", "studbud.db")
	}

	// Open database
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories and unit of work
	profileRepo := repository.NewSQLiteProfileRepo(database)
	planRepo := repository.NewSQLitePlanRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	// Wire the sentiment classifier (only when enabled)
	clfCfg := classifier.LoadConfig()
	var clf classifier.Classifier
	if clfCfg.Enabled {
		var observer classifier.Observer = classifier.NoopObserver{}
		if clfCfg.LogCalls {
			observer = classifier.NewLogObserver(os.Stderr)
		}
		clf = classifier.NewHTTPClassifier(clfCfg, observer)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	builder := planner.NewDayBuilder(planner.NewPrioritizer(clf, logger), nil)

	var planObservers []service.UseCaseObserver
	if os.Getenv("STUDBUD_VERBOSE") == "1" {
		planObservers = append(planObservers, service.NewLogUseCaseObserver(os.Stderr))
	}

	app := &cli.App{
		Profiles: service.NewProfileService(profileRepo),
		Plans: service.NewPlanService(
			profileRepo,
			planRepo,
			planner.NewGenerator(builder),
			planner.WeaknessFocus{},
			uow,
			planObservers...,
		),
		IsInteractive: isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()),
	}

	return cli.NewRootCmd(app).Execute()
}
