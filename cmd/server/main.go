package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/tanvirdev/officebook/internal/config"
	"github.com/tanvirdev/officebook/internal/repository/mongodb"
	"github.com/tanvirdev/officebook/internal/repository/sheets"
	"github.com/tanvirdev/officebook/internal/scheduler"
	"github.com/tanvirdev/officebook/internal/server/handlers"
	"github.com/tanvirdev/officebook/internal/server/router"
	reportingsvc "github.com/tanvirdev/officebook/internal/service/reporting"
	"github.com/tanvirdev/officebook/pkg/clients/notify"
	"github.com/tanvirdev/officebook/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	connectCtx, cancelConnect := context.WithTimeout(context.Background(), 10*time.Second)
	repo, err := mongodb.New(connectCtx, cfg.MongoDB.URI, cfg.MongoDB.DBName, baseLogger.Named("repo.mongodb"))
	cancelConnect()
	if err != nil {
		baseLogger.Fatal("failed to init mongodb repository", zap.Error(err))
	}
	defer func() {
		if err := repo.Close(context.Background()); err != nil {
			baseLogger.Error("failed to close mongodb connection", zap.Error(err))
		}
	}()

	var notifier notify.Notifier
	if cfg.Reporting.WebhookURL != "" {
		notifier = notify.NewWebhookClient(cfg.Reporting.WebhookURL)
		baseLogger.Info("daily summary webhook enabled")
	}

	var exporter sheets.Exporter
	if cfg.Sheets.Enabled() {
		exporter, err = sheets.NewGoogleSheetExporter(context.Background(), cfg.Sheets, baseLogger.Named("repo.sheets"))
		if err != nil {
			baseLogger.Fatal("failed to init sheets exporter", zap.Error(err))
		}
		baseLogger.Info("daily summary sheet export enabled")
	}

	reportingSvc := reportingsvc.NewService(repo, notifier, exporter, baseLogger.Named("svc.reporting"))

	engine := router.New(router.Handlers{
		Employees:    handlers.NewEmployeeHandler(repo, baseLogger.Named("handlers.employees")),
		Attendance:   handlers.NewAttendanceHandler(repo, baseLogger.Named("handlers.attendance")),
		Advances:     handlers.NewAdvanceHandler(repo, baseLogger.Named("handlers.advances")),
		Customers:    handlers.NewCustomerHandler(repo, baseLogger.Named("handlers.customers")),
		SellingRates: handlers.NewSellingRateHandler(repo, baseLogger.Named("handlers.sellingrates")),
		Reports:      handlers.NewReportHandler(reportingSvc, baseLogger.Named("handlers.reports")),
	}, baseLogger.Named("router"))

	sched := scheduler.New(cfg.Reporting, reportingSvc, baseLogger.Named("scheduler"))
	sched.Start()
	defer sched.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
