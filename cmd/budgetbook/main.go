package main

import (
	"context"
	"errors"
	"os"

	"budgetbook/internal/chart"
	"budgetbook/internal/cli"
	"budgetbook/internal/core"
	"budgetbook/internal/log"
	"budgetbook/internal/menu"
	"budgetbook/internal/services"
)

func main() {
	// Load .env file for local use (ignored when missing)
	cli.LoadEnvFile()

	cfg := cli.LoadAndValidateConfig()
	logger := cli.SetupLogger(cfg)

	ctx, stop := cli.GracefulShutdown(logger)
	defer stop()
	ctx = log.ContextWithLogger(ctx, logger)

	logger.Info("Starting budgetbook", log.FieldOperation, log.OpStartup)

	publisher := cli.InitPublisher(ctx, logger, cfg)
	svc := services.NewLedgerService(core.NewLedger(), publisher, logger)
	defer func() {
		if err := svc.Close(); err != nil {
			logger.Error("Failed to close ledger service", log.FieldError, err)
		}
	}()

	if err := cli.SeedLedger(ctx, logger, cfg, svc); err != nil {
		logger.Error("Failed to apply budget plan", log.FieldError, err, log.FieldPath, cfg.SeedFile)
		os.Exit(1)
	}

	renderer := chart.New(chart.Options{
		Width:      cfg.ChartWidth,
		LabelWidth: cfg.ChartLabelWidth,
		Color:      cfg.ChartColor,
	})

	session := menu.New(svc, renderer, os.Stdin, os.Stdout)
	if err := session.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Menu stopped", log.FieldError, err)
		os.Exit(1)
	}

	logger.Info("budgetbook stopped", log.FieldOperation, log.OpShutdown)
}
