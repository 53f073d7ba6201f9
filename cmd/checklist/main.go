package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alexanderramin/checklist/internal/api"
	"github.com/alexanderramin/checklist/internal/cli"
	"github.com/alexanderramin/checklist/internal/config"
	"github.com/alexanderramin/checklist/internal/db"
	"github.com/alexanderramin/checklist/internal/listing"
	"github.com/alexanderramin/checklist/internal/notify"
	"github.com/alexanderramin/checklist/internal/repository"
	"github.com/alexanderramin/checklist/internal/service"
	"github.com/alexanderramin/checklist/internal/session"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	app := &cli.App{}
	var closers []io.Closer
	defer func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i].Close()
		}
	}()

	// Detect interactive terminal for the TUI and credential prompts.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Wiring waits for flag parsing so --api-url, --locale and --verbose apply.
	app.Boot = func(o cli.Overrides) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if o.APIURL != "" {
			cfg.APIURL = o.APIURL
		}
		if o.Locale != "" {
			cfg.Locale = o.Locale
		}

		logOut, err := logDestination(cfg, o.Verbose)
		if err != nil {
			return err
		}
		if c, ok := logOut.(io.Closer); ok && logOut != os.Stderr {
			closers = append(closers, c)
		}
		logger := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: slog.LevelInfo}))

		database, err := db.OpenDB(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		closers = append(closers, database)

		return wire(app, cfg, database, logger)
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}

// wire builds the session, API client, repositories and services.
func wire(app *cli.App, cfg config.Config, database *sql.DB, logger *slog.Logger) error {
	sessions, err := session.NewManager(context.Background(), session.NewSQLiteStore(database))
	if err != nil {
		return err
	}

	observer := service.NewSlogUseCaseObserver(logger)
	client := api.NewHTTPClient(api.Config{BaseURL: cfg.APIURL, Timeout: cfg.APITimeout}, api.NewSlogObserver(logger))

	checklistRepo := repository.NewRemoteChecklistRepo(client, sessions)
	itemRepo := repository.NewRemoteItemRepo(client, sessions)

	progress := service.NewProgressService(itemRepo, cfg.ProgressWorkers, observer)

	app.Auth = service.NewAuthService(client, sessions, observer)
	app.Checklists = service.NewChecklistService(checklistRepo, progress, observer)
	app.Items = service.NewItemService(itemRepo, observer)
	app.Progress = progress
	app.Session = sessions

	app.Catalog = notify.NewCatalog(cfg.Locale)
	app.Sorter = listing.NewSorter(app.Catalog.Locale())
	app.APIURL = cfg.APIURL
	app.ToastTTL = cfg.ToastTTL
	return nil
}

// logDestination picks where structured logs go. The TUI owns the screen,
// so stderr is only used when asked for.
func logDestination(cfg config.Config, verbose bool) (io.Writer, error) {
	switch {
	case cfg.LogFile != "":
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		return f, nil
	case verbose || cfg.LogCalls:
		return os.Stderr, nil
	default:
		return io.Discard, nil
	}
}
