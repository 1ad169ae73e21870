package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"equipmentCentral/internal/components"
	"equipmentCentral/internal/config"
	"equipmentCentral/internal/domain"
	"equipmentCentral/internal/storage/postgres"

	"github.com/spf13/cobra"
)

var (
	migrateOnStart bool

	nearbyLat    float64
	nearbyLng    float64
	nearbyRadius float64
)

var rootCmd = &cobra.Command{
	Use:           "equipment-central",
	Short:         "Equipment rental marketplace backend",
	Long:          `Serves the equipment catalog and location based equipment search over HTTP.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API and background workers",
	RunE:  runServe,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the database schema",
	RunE:  runMigrate,
}

var nearbyCmd = &cobra.Command{
	Use:   "nearby",
	Short: "Search equipment near a point and print the results as JSON",
	RunE:  runNearby,
}

func init() {
	serveCmd.Flags().BoolVar(&migrateOnStart, "migrate", false, "Apply the database schema before serving")

	nearbyCmd.Flags().Float64Var(&nearbyLat, "lat", 0, "Latitude in degrees")
	nearbyCmd.Flags().Float64Var(&nearbyLng, "lng", 0, "Longitude in degrees")
	nearbyCmd.Flags().Float64VarP(&nearbyRadius, "radius", "r", 0, "Search radius in meters (default from SEARCH_DEFAULT_RADIUS_M)")

	rootCmd.AddCommand(serveCmd, migrateCmd, nearbyCmd)
}

func Execute() error {
	return rootCmd.Execute()
}

func loadConfig() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config failed", "err", err)
		return nil, nil, err
	}
	return cfg, components.SetupLogger(cfg.Env), nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.APIKey == "" {
		logger.Warn("API_KEY is empty, admin routes will reject every request")
	}

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	comps, err := components.InitComponents(appCtx, cfg, logger)
	if err != nil {
		logger.Error("could not init components", "err", err)
		return err
	}

	if migrateOnStart {
		if err := comps.Postgres.Migrate(appCtx, logger); err != nil {
			comps.ShutdownAll()
			return err
		}
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		if err := comps.HttpServer.Run(ctx); err != nil {
			logger.Error("http server failed", "err", err)
		}
		logger.Info("http server stopped")
	}()
	go func() {
		defer wg.Done()
		comps.RunWorkers(ctx)
		logger.Info("workers stopped")
	}()

	quitChan := make(chan os.Signal, 1)
	signal.Notify(quitChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quitChan

	stop()
	logger.Info("captured signal, initiating shutdown", "signal", sig.String())

	wg.Wait()

	logger.Info("shutting down the services...")
	comps.ShutdownAll()
	logger.Info("gracefully shutting down the servers")

	return nil
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}

	pg, err := postgres.NewPostgres(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}
	defer pg.Close()

	return pg.Migrate(cmd.Context(), logger)
}

func runNearby(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}
	// one-off lookups are not search traffic
	cfg.Search.LogDisabled = true
	cfg.Search.IndexEnabled = false

	comps, err := components.InitComponents(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}
	defer comps.ShutdownAll()

	req := domain.NearbyRequest{Lat: nearbyLat, Lng: nearbyLng}
	if cmd.Flags().Changed("radius") {
		req.RadiusMeters = &nearbyRadius
	}

	results, err := comps.Services.SearchService.FindNearby(cmd.Context(), req)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(results); err != nil {
		return fmt.Errorf("encode results: %w", err)
	}
	return nil
}
