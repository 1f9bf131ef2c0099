package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"

	"github.com/abs-steel/abs-inventory/internal/app"
	"github.com/abs-steel/abs-inventory/internal/dashboard"
	"github.com/abs-steel/abs-inventory/internal/masterdata/districts"
	"github.com/abs-steel/abs-inventory/internal/masterdata/items"
	"github.com/abs-steel/abs-inventory/internal/masterdata/ledgers"
	"github.com/abs-steel/abs-inventory/internal/notify"
	"github.com/abs-steel/abs-inventory/internal/orders"
	"github.com/abs-steel/abs-inventory/internal/platform/cache"
	"github.com/abs-steel/abs-inventory/internal/platform/db"
	"github.com/abs-steel/abs-inventory/jobs"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
		return
	}

	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	dbpool, err := db.New(ctx, cfg.PGDSN)
	if err != nil {
		logger.Error("connect postgres", slog.Any("error", err))
		os.Exit(1)
	}
	defer dbpool.Close()

	redisClient, err := cache.New(ctx, cfg.RedisAddr)
	if err != nil {
		logger.Warn("redis unavailable, dashboard caching disabled", slog.Any("error", err))
		redisClient = nil
	}
	defer func() {
		if redisClient == nil {
			return
		}
		if err := redisClient.Close(); err != nil {
			logger.Warn("redis close", slog.Any("error", err))
		}
	}()

	itemsRepo := items.NewRepository(dbpool)
	itemsService := items.NewService(itemsRepo)
	itemsHandler := items.NewHandler(logger, itemsService)

	ledgersRepo := ledgers.NewRepository(dbpool)
	ledgersService := ledgers.NewService(ledgersRepo)
	ledgersHandler := ledgers.NewHandler(logger, ledgersService)

	districtsRepo := districts.NewRepository(dbpool)
	districtsService := districts.NewService(districtsRepo)
	districtsHandler := districts.NewHandler(logger, districtsService)

	ordersRepo := orders.NewRepository(dbpool)

	dashboardCache := dashboard.NewCache(redisClient, cfg.DashboardCacheTTL)
	dashboardService := dashboard.NewService(ordersRepo, ledgersRepo, itemsRepo, dashboardCache, logger)

	jobsClient, err := jobs.NewClient(asynq.RedisClientOpt{Addr: cfg.RedisAddr})
	if err != nil {
		logger.Error("init jobs client", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := jobsClient.Close(); err != nil {
			logger.Warn("jobs client close", slog.Any("error", err))
		}
	}()
	enqueueRefresh := func(ctx context.Context) error {
		_, err := jobsClient.EnqueueDashboardWarmup(ctx, jobs.DashboardWarmupPayload{Bump: true})
		return err
	}
	dashboardHandler := dashboard.NewHandler(logger, dashboardService, enqueueRefresh)

	ordersService := orders.NewService(ordersRepo, notify.Func(dashboardService.Invalidate), logger)
	ordersHandler := orders.NewHandler(logger, ordersService)

	router := app.NewRouter(app.RouterParams{
		Logger:           logger,
		Config:           cfg,
		ItemsHandler:     itemsHandler,
		LedgersHandler:   ledgersHandler,
		DistrictsHandler: districtsHandler,
		OrdersHandler:    ordersHandler,
		DashboardHandler: dashboardHandler,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}
