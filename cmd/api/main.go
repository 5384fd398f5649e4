package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/georgemunganga/backhouse/internal/config"
	"github.com/georgemunganga/backhouse/internal/database"
	"github.com/georgemunganga/backhouse/internal/logging"
	"github.com/georgemunganga/backhouse/internal/modules/alert"
	"github.com/georgemunganga/backhouse/internal/modules/dashboard"
	"github.com/georgemunganga/backhouse/internal/modules/inventory"
	"github.com/georgemunganga/backhouse/internal/modules/order"
	"github.com/georgemunganga/backhouse/internal/modules/treet"
	"github.com/georgemunganga/backhouse/internal/modules/vendor"
	"github.com/georgemunganga/backhouse/internal/server"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, envFileFound, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogLevel, cfg.Development())
	if err != nil {
		return err
	}
	defer logger.Sync()
	if !envFileFound {
		logger.Info("no .env file found, using process environment")
	}

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Open(ctx, cfg.DBDriver, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer db.Close()
	logger.Info("database ready", zap.String("driver", cfg.DBDriver), zap.String("timezone", loc.String()))

	// ── Stock ───────────────────────────────────────────────
	inventoryService := inventory.NewService(inventory.NewSQLRepository(db))
	treetService := treet.NewService(treet.NewSQLRepository(db))

	// ── Purchasing ──────────────────────────────────────────
	vendorService := vendor.NewService(vendor.NewSQLRepository(db))
	orderService := order.NewService(order.NewSQLRepository(db, loc), vendorService, inventoryService)

	// ── Read models ─────────────────────────────────────────
	alertService := alert.NewService(treetService, inventoryService)
	dashboardService := dashboard.NewService(inventoryService, treetService)

	router := server.NewRouter(logger,
		inventory.NewHandler(inventoryService, loc, logger),
		treet.NewHandler(treetService, logger),
		vendor.NewHandler(vendorService, logger),
		order.NewHandler(orderService, logger),
		alert.NewHandler(alertService, loc, logger),
		dashboard.NewHandler(dashboardService, logger),
	)

	return server.Run(ctx, ":"+cfg.Port, router, logger)
}
