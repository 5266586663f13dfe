package main

//
//  @title           trainpulse API
//  @version         1.0
//  @description     Competitor training dashboard: hours series, targets, goals and exam progress.
//  @contact.name    API Support
//  @contact.url     https://github.com/guttosm/trainpulse
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        dashboard
//  @tag.description Training hours series and period filters
//
//  @tag.name        progress
//  @tag.description Exam and competitor score comparisons
//
//  @tag.name        targets
//  @tag.description Monthly hours and score targets
//
//  @tag.name        goals
//  @tag.description Competitor goals
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata" // APP_TIMEZONE must resolve in minimal images

	"github.com/guttosm/trainpulse/config"
	_ "github.com/guttosm/trainpulse/docs" // swagger docs
	"github.com/guttosm/trainpulse/internal/app"
	"github.com/guttosm/trainpulse/internal/ingestion"
	"github.com/guttosm/trainpulse/internal/logger"
)

// startServer initializes and starts the HTTP server in a separate goroutine.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown blocks until SIGINT or SIGTERM, then drains the server
// and runs cleanup.
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(quit)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Error().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// options are the command line flags.
type options struct {
	mode     string
	dir      string
	parallel int
	force    bool
	port     string
}

func parseFlags(args []string, defaultPort string) (options, error) {
	var o options
	fs := flag.NewFlagSet("trainpulse", flag.ContinueOnError)
	fs.StringVar(&o.mode, "mode", "api", "Mode: api, import or migrate")
	fs.StringVar(&o.dir, "dir", "./data/input", "Directory with session .csv files (import mode)")
	fs.IntVar(&o.parallel, "parallel", 0, "How many files to import concurrently (0=auto up to CPU, max 8)")
	fs.BoolVar(&o.force, "force", false, "Re-import files already imported (replaces their sessions)")
	fs.StringVar(&o.port, "port", defaultPort, "Port for API mode")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	switch o.mode {
	case "api", "import", "migrate":
	default:
		return o, fmt.Errorf("unknown mode %q", o.mode)
	}
	return o, nil
}

// withDB opens Postgres for the one-shot modes and closes it afterwards.
func withDB(fn func(db *sql.DB) error) error {
	db, err := app.InitPostgres(config.AppConfig)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()
	return fn(db)
}

// main is the entry point of the trainpulse application.
//
// Modes (selected via --mode flag):
//   - api:     Starts the REST API serving the dashboard.
//   - import:  Loads every *.csv session export found in --dir.
//   - migrate: Applies the embedded database migrations and exits.
func main() {
	ctx := context.Background()

	config.LoadConfig()
	logger.Init(config.AppConfig.Log.Level, config.AppConfig.Log.Pretty)

	opts, err := parseFlags(os.Args[1:], config.AppConfig.Server.Port)
	if err != nil {
		logger.L().Fatal().Err(err).Msg("invalid flags")
	}

	switch opts.mode {
	case "migrate":
		if err := withDB(app.Migrate); err != nil {
			logger.L().Fatal().Err(err).Msg("migration failed")
		}
		logger.L().Info().Msg("migrations applied")

	case "import":
		logger.L().Info().Str("dir", opts.dir).Msg("running import")
		err := withDB(func(db *sql.DB) error {
			return ingestion.ProcessDirectory(ctx, opts.dir, db, opts.parallel, opts.force)
		})
		if err != nil {
			logger.L().Fatal().Err(err).Msg("import failed")
		}
		logger.L().Info().Msg("import completed successfully")

	case "api":
		logger.L().Info().Msg("starting API server")

		router, cleanup, err := app.InitializeApp()
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		server := startServer(router, opts.port)
		gracefulShutdown(ctx, server, cleanup)
	}
}
