package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"equipmentCentral/internal/api"
	"equipmentCentral/internal/api/handlers/http/system"
	"equipmentCentral/internal/config"
	"equipmentCentral/internal/geoindex"
	"equipmentCentral/internal/redis"
	"equipmentCentral/internal/service"
	"equipmentCentral/internal/storage/postgres"
	"equipmentCentral/internal/workers"
	"equipmentCentral/pkg/logger"
)

type Components struct {
	logger     *slog.Logger
	HttpServer *api.Server
	Postgres   *postgres.Postgres
	Redis      *redis.Redis
	Services   *service.Service

	// nil when the feature is switched off
	IndexRefresher  *workers.IndexRefresher
	SearchLogWriter *workers.SearchLogWriter
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	logger.Info("Initializing Postgres")

	storage, err := postgres.NewPostgres(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to init postgres",
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("failed to init postgres: %w", err)
	}

	var redisClient *redis.Redis
	if !cfg.Search.CacheDisabled || !cfg.Search.LogDisabled {
		logger.Info("Initializing Redis")
		redisClient, err = redis.NewRedis(ctx, cfg, logger)
		if err != nil {
			storage.Close()
			return nil, fmt.Errorf("failed to init redis: %w", err)
		}
	}

	c := &Components{
		logger:   logger,
		Postgres: storage,
		Redis:    redisClient,
	}

	var (
		operators    service.OperatorStore = storage.Operator
		invalidators []service.CacheInvalidator
		events       service.SearchEventPublisher
	)

	if !cfg.Search.CacheDisabled {
		cache := redis.NewOperatorCache(redisClient.Client, storage.Operator, cfg.Search.CacheTTL, logger)
		operators = cache
		invalidators = append(invalidators, cache)
		logger.Info("Operator cache enabled", slog.Duration("ttl", cfg.Search.CacheTTL))
	}

	locator := service.NewScanLocator(operators)

	if cfg.Search.IndexEnabled {
		idx := geoindex.New(locator, logger)
		c.IndexRefresher = workers.NewIndexRefresher(storage.Operator, idx, cfg.Search.IndexRefresh, logger)
		invalidators = append(invalidators, c.IndexRefresher)
		locator = idx
		logger.Info("Geo index enabled", slog.Duration("refresh", cfg.Search.IndexRefresh))
	}

	if !cfg.Search.LogDisabled {
		queue := redis.NewSearchQueue(redisClient.Client, cfg.Search.LogQueueKey)
		events = queue
		c.SearchLogWriter = workers.NewSearchLogWriter(logger, queue, storage.SearchLog, time.Second)
	}

	searchSvc := service.NewProximityService(locator, storage.Equipment, events, logger, cfg.Search.DefaultRadiusMeters)
	operatorSvc := service.NewOperatorAdminService(storage.Operator, logger, invalidators...)
	equipmentSvc := service.NewEquipmentAdminService(storage.Equipment)
	statsSvc := service.NewStatsService(storage.SearchLog)

	c.Services = service.NewService(searchSvc, operatorSvc, equipmentSvc, statsSvc)

	deps := map[string]system.Pinger{"postgres": storage}
	if redisClient != nil {
		deps["redis"] = redisClient
	}
	c.HttpServer = api.NewServer(cfg, logger, c.Services, deps)
	logger.Info("Initialized server")

	return c, nil
}

// RunWorkers starts the enabled background workers and returns once they
// have all stopped after ctx is canceled.
func (c *Components) RunWorkers(ctx context.Context) {
	var wg sync.WaitGroup

	if c.IndexRefresher != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.IndexRefresher.Run(ctx)
		}()
	}

	if c.SearchLogWriter != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.SearchLogWriter.Run(ctx)
		}()
	}

	wg.Wait()
}

func SetupLogger(env string) *slog.Logger {
	switch env {
	case "local":
		return logger.SetupPrettySlog()
	case "dev":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	case "prod":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	default:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
}

func (c *Components) ShutdownAll() {
	start := time.Now()
	c.logger.Info("Shutting down components")

	c.Postgres.Close()
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("Redis close failed", slog.String("err", err.Error()))
		}
	}

	c.logger.Info("All components stopped",
		slog.Duration("latency", time.Since(start)))
}
