package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/alexanderramin/vital/internal/cli"
	"github.com/alexanderramin/vital/internal/db"
	"github.com/alexanderramin/vital/internal/narrative"
	"github.com/alexanderramin/vital/internal/repository"
	"github.com/alexanderramin/vital/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.vital/vital.db
	dbPath := os.Getenv("VITAL_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".vital", "vital.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	healthRepo := repository.NewSQLiteHealthRepo(database)
	moodRepo := repository.NewSQLiteMoodRepo(database)
	profileRepo := repository.NewSQLiteProfileRepo(database)

	// Use-case logging goes to stderr when VITAL_LOG is set, so that it
	// never interleaves with command output.
	var observers []service.UseCaseObserver
	if os.Getenv("VITAL_LOG") != "" {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	entrySvc := service.NewEntryService(healthRepo, moodRepo, profileRepo, observers...)

	app := &cli.App{
		Entries:   entrySvc,
		Analytics: service.NewAnalyticsService(entrySvc, profileRepo, narrative.NewEngine(), observers...),
		Forecast:  service.NewForecastService(healthRepo, observers...),
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
