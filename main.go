package main

import (
	"fmt"
	"os"

	"github.com/jonesrussell/news-aggregator/internal/api"
	"github.com/jonesrussell/news-aggregator/internal/config"
	"github.com/jonesrussell/news-aggregator/internal/engine"
	"github.com/jonesrussell/news-aggregator/internal/scraper"
	"github.com/jonesrussell/news-aggregator/internal/source"
	"github.com/jonesrussell/news-aggregator/internal/telemetry"
	sharedconfig "github.com/jonesrussell/news-aggregator/pkg/config"
	"github.com/jonesrussell/news-aggregator/pkg/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load(sharedconfig.GetConfigPath("config.yml"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		return 1
	}

	log, err := createLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		return 1
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting news aggregator",
		logger.String("name", cfg.Service.Name),
		logger.String("version", cfg.Service.Version),
		logger.Int("port", cfg.Service.Port),
		logger.Bool("debug", cfg.Service.Debug),
	)

	registry, err := buildRegistry()
	if err != nil {
		log.Error("Failed to build source registry", logger.Error(err))
		return 1
	}
	log.Info("Source registry initialized", logger.Int("sources", registry.Len()))

	return runServer(cfg, registry, log)
}

// createLogger creates a logger instance from configuration.
func createLogger(cfg *config.Config) (logger.Logger, error) {
	log, err := logger.New(cfg.Logging)
	if err != nil {
		return nil, err
	}
	return log.With(logger.String("service", cfg.Service.Name)), nil
}

// buildRegistry assembles the fixed source set.
func buildRegistry() (*source.Registry, error) {
	descriptors, err := scraper.Descriptors()
	if err != nil {
		return nil, err
	}
	return source.NewRegistry(descriptors)
}

// runServer wires the engine and HTTP server, then runs with graceful
// shutdown.
func runServer(cfg *config.Config, registry *source.Registry, log logger.Logger) int {
	metrics := telemetry.NewMetrics()

	eng := engine.New(registry, log, metrics, engine.Options{
		MaxConcurrency: cfg.Aggregator.MaxConcurrency,
		FanoutTimeout:  cfg.Aggregator.FanoutTimeout,
	})
	log.Info("Aggregation engine initialized",
		logger.Int("max_concurrency", cfg.Aggregator.MaxConcurrency),
		logger.Duration("fanout_timeout", cfg.Aggregator.FanoutTimeout),
	)

	handler := api.NewHandler(eng, metrics, log)
	server := api.NewServer(handler, cfg, log)

	if runErr := server.Run(); runErr != nil {
		log.Error("Server error", logger.Error(runErr))
		return 1
	}

	log.Info("News aggregator exited cleanly")
	return 0
}
