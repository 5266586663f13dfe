package app

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/trainpulse/config"
	"github.com/guttosm/trainpulse/internal/api"
	"github.com/guttosm/trainpulse/internal/domain/models"
	"github.com/guttosm/trainpulse/internal/logger"
	"github.com/guttosm/trainpulse/internal/service"
	"github.com/guttosm/trainpulse/internal/storage"
)

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Connects to PostgreSQL using InitPostgres().
//   - Opens the target store selected by TARGET_STORE (postgres or sqlite).
//   - Resolves APP_TIMEZONE used to snapshot "now" for every aggregation.
//   - Wires repositories, services and the HTTP handler layer.
//   - Registers health and readiness probes for the pool and the target store.
//
// Returns:
//   - *gin.Engine: the configured Gin HTTP router.
//   - func(): cleanup function to be executed on shutdown.
//   - error: any initialization error that occurred.
func InitializeApp() (*gin.Engine, func(), error) {
	cfg := config.AppConfig

	// indirection for unit testing
	db, err := postgresOpener(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize postgres: %w", err)
	}

	store, err := openTargetStore(cfg.Targets, db)
	if err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("failed to open target store: %w", err)
	}

	loc := loadLocation(cfg.Timezone)

	sessions := storage.NewSessionsRepository(db)
	assessments := storage.NewAssessmentsRepository(db)
	goalsRepo := storage.NewGoalsRepository(db)

	defaults := models.Targets{
		MonthlyHours: cfg.Targets.DefaultMonthlyHours,
		Score:        cfg.Targets.DefaultScore,
	}
	targets := service.NewTargetsService(store, goalsRepo, defaults)
	dashboard := service.NewDashboardService(sessions, assessments, targets, time.Now, loc)
	goals := service.NewGoalService(goalsRepo, time.Now, loc)

	handler := api.NewHandler(dashboard, targets, goals)
	router := api.NewRouter(handler, api.RouterOptions{RateLimitPerMinute: cfg.Server.RateLimitPerMinute})

	healthHandler := api.NewHealthHandler(map[string]func(ctx context.Context) error{
		"postgres": db.PingContext,
		"targets": func(ctx context.Context) error {
			_, _, err := store.GetTarget(ctx, storage.KeyMonthlyHoursTarget)
			return err
		},
	})
	healthHandler.Register(router)

	logger.Component("app").Info().
		Str("target_store", storeName(cfg.Targets.Store)).
		Str("timezone", loc.String()).
		Msg("application initialized")

	cleanup := func() {
		if err := store.Close(); err != nil {
			logger.Component("app").Warn().Err(err).Msg("close target store")
		}
		_ = db.Close()
	}

	return router, cleanup, nil
}
