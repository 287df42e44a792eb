// Package cli provides the start-up steps of the budgetbook binary: loading
// configuration, building the logger and the optional collaborators, and
// wiring shutdown signals.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"budgetbook/internal/amqp"
	"budgetbook/internal/config"
	"budgetbook/internal/log"
	"budgetbook/internal/seed"
	"budgetbook/internal/services"
)

// LoadEnvFile loads the .env file for local use.
// Errors are ignored silently as the file is optional.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration and validates it.
// Returns the config or exits the process on failure.
func LoadAndValidateConfig() *config.Config {
	cfg, err := config.Load()
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		slog.New(slog.NewTextHandler(os.Stderr, nil)).Error("Configuration validation failed",
			log.FieldComponent, log.ComponentConfig,
			log.FieldError, err)
		os.Exit(1)
	}
	return cfg
}

// SetupLogger builds the application logger from cfg and sets it as the
// default slog logger.
func SetupLogger(cfg *config.Config) *log.Logger {
	logCfg := log.DefaultConfig()
	// Validate has already rejected unknown levels.
	logCfg.Level, _ = log.ParseLevel(cfg.LogLevel)
	logCfg.Format = cfg.LogFormat

	logger := log.New(logCfg)
	log.SetDefault(logger)
	return logger
}

// InitPublisher connects to the event broker when one is configured. A broker
// that cannot be reached is logged and the session continues without events.
func InitPublisher(ctx context.Context, logger *log.Logger, cfg *config.Config) services.Publisher {
	logger = logger.WithComponent(log.ComponentAMQP)
	if !cfg.EventsEnabled() {
		logger.Debug("Event publishing disabled - no AMQP_URL provided")
		return nil
	}

	client, err := amqp.NewClient(ctx, cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPRoutingPrefix)
	if err != nil {
		logger.Warn("Failed to initialize AMQP client, continuing without events", log.FieldError, err)
		return nil
	}
	logger.Info("Initialized AMQP client", log.FieldExchange, cfg.AMQPExchange)
	return client
}

// SeedLedger applies the configured budget plan, if any.
func SeedLedger(ctx context.Context, logger *log.Logger, cfg *config.Config, target seed.Target) error {
	if cfg.SeedFile == "" {
		return nil
	}
	plan, err := seed.Load(cfg.SeedFile)
	if err != nil {
		return err
	}
	if err := seed.Apply(ctx, target, plan); err != nil {
		return fmt.Errorf("apply %s: %w", cfg.SeedFile, err)
	}
	logger.WithComponent(log.ComponentSeed).Info("Budget plan applied",
		log.FieldPath, cfg.SeedFile,
		"categories", len(plan.Categories))
	return nil
}

// GracefulShutdown returns a context that is cancelled on SIGINT or SIGTERM,
// and a stop function releasing the signal handler.
func GracefulShutdown(logger *log.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-sigChan:
			logger.Info("Shutdown signal received", "signal", sig.String())
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, func() {
		signal.Stop(sigChan)
		cancel()
	}
}
