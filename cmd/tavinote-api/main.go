package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tavinote/backend/internal/config"
	"github.com/tavinote/backend/internal/database"
	"github.com/tavinote/backend/internal/logging"
	"github.com/tavinote/backend/internal/lookup"
	"github.com/tavinote/backend/internal/planner"
	"github.com/tavinote/backend/internal/server"
	"go.uber.org/zap"
)

var (
	cfgFile string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tavinote-api",
		Short: "TaviNote trip planner backend service",
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context())
		},
	}

	setupFlags(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setupFlags(cmd *cobra.Command) {
	config.ApplyDefaults(viper.GetViper())
	defaults := config.NewViper()
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to configuration file")
	cmd.PersistentFlags().String("http-address", defaults.GetString("http.address"), "HTTP listen address")
	cmd.PersistentFlags().String("database-path", defaults.GetString("database.path"), "SQLite database path")
	cmd.PersistentFlags().String("document-slot", defaults.GetString("database.slot"), "Document storage slot name")
	cmd.PersistentFlags().String("log-level", defaults.GetString("log.level"), "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().String("geocode-url", defaults.GetString("lookup.geocode_url"), "Geocoding provider URL")
	cmd.PersistentFlags().String("rates-url", defaults.GetString("lookup.rates_url"), "Exchange rate provider URL")
	cmd.PersistentFlags().String("overpass-url", defaults.GetString("lookup.overpass_url"), "Nearby search provider URL")
	cmd.PersistentFlags().Int("lookup-timeout-seconds", defaults.GetInt("lookup.timeout_seconds"), "Lookup provider timeout in seconds")

	bindFlag(cmd, "http.address", "http-address")
	bindFlag(cmd, "database.path", "database-path")
	bindFlag(cmd, "database.slot", "document-slot")
	bindFlag(cmd, "log.level", "log-level")
	bindFlag(cmd, "lookup.geocode_url", "geocode-url")
	bindFlag(cmd, "lookup.rates_url", "rates-url")
	bindFlag(cmd, "lookup.overpass_url", "overpass-url")
	bindFlag(cmd, "lookup.timeout_seconds", "lookup-timeout-seconds")
}

func bindFlag(cmd *cobra.Command, key, flag string) {
	if err := viper.BindPFlag(key, cmd.PersistentFlags().Lookup(flag)); err != nil {
		panic(err)
	}
}

func initConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}

	if err := viper.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if cfgFile != "" && errors.As(err, &configNotFound) {
			return err
		}
	}

	return nil
}

func runServer(ctx context.Context) error {
	appConfig, err := config.Load(viper.GetViper())
	if err != nil {
		return err
	}

	logger, err := logging.NewLogger(appConfig.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	db, err := database.OpenSQLite(appConfig.DatabasePath, logger)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	store, err := planner.NewStore(planner.StoreConfig{
		Database: db,
		Slot:     appConfig.DocumentSlot,
		Clock:    time.Now,
		Logger:   logger,
	})
	if err != nil {
		return err
	}

	repository, err := planner.NewRepository(ctx, planner.RepositoryConfig{
		Store:      store,
		Clock:      time.Now,
		IDProvider: planner.NewUUIDProvider(),
		Logger:     logger,
	})
	if err != nil {
		return err
	}

	geocoder := lookup.NewGeocoder(lookup.GeocoderConfig{
		BaseURL: appConfig.GeocodeURL,
		Timeout: appConfig.LookupTimeout,
		Logger:  logger,
	})
	rateClient := lookup.NewRateClient(lookup.RateClientConfig{
		BaseURL: appConfig.RatesURL,
		Timeout: appConfig.LookupTimeout,
		Logger:  logger,
	})
	nearbyClient := lookup.NewNearbyClient(lookup.NearbyClientConfig{
		BaseURL: appConfig.OverpassURL,
		Timeout: appConfig.LookupTimeout,
		Logger:  logger,
	})

	handler, err := server.NewHTTPHandler(server.Dependencies{
		Repository: repository,
		Geocoder:   geocoder,
		Rates:      rateClient,
		Nearby:     nearbyClient,
		Clock:      time.Now,
		Logger:     logger,
	})
	if err != nil {
		return err
	}

	httpServer := &http.Server{
		Addr:    appConfig.HTTPAddress,
		Handler: handler,
	}

	signalCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", zap.String("address", appConfig.HTTPAddress))
		err := httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-signalCtx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}
