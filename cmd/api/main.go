package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"recurring-task-engine/config"
	_ "recurring-task-engine/docs" // Swagger docs
	"recurring-task-engine/internal/httpserver"
	"recurring-task-engine/internal/interpreter"
	"recurring-task-engine/internal/middleware"
	"recurring-task-engine/internal/task"
	taskRepo "recurring-task-engine/internal/task/repository/badger"
	"recurring-task-engine/internal/task/usecase"
	pkgBadger "recurring-task-engine/pkg/badger"
	"recurring-task-engine/pkg/datemath"
	"recurring-task-engine/pkg/gcalendar"
	"recurring-task-engine/pkg/log"
	"recurring-task-engine/pkg/tracing"
)

// @title       Recurring Task Engine API
// @description Recurring tasks with natural-language schedules. Completing an instance materializes the next one of its series.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Recurring Task Engine...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	shutdownTracing, err := tracing.Init(tracing.Config{
		ServiceName: httpserver.ServiceName,
		Environment: cfg.Environment.Name,
		Exporter:    cfg.Tracing.Exporter,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize tracing: ", err)
		return
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Warnf(ctx, "tracing shutdown: %v", err)
		}
	}()

	// 3. Storage
	db, err := pkgBadger.OpenDB(pkgBadger.Config{
		Path:              cfg.Storage.Path,
		InMemory:          cfg.Storage.InMemory,
		SyncWrites:        cfg.Storage.SyncWrites,
		Logger:            logger,
		NumVersionsToKeep: 1,
		GCInterval:        cfg.Storage.GCInterval,
		GCDiscardRatio:    cfg.Storage.GCDiscardRatio,
	})
	if err != nil {
		logger.Error(ctx, "Failed to open storage: ", err)
		return
	}
	defer db.Close()
	logger.Infof(ctx, "Storage opened (path=%s in_memory=%t)", cfg.Storage.Path, cfg.Storage.InMemory)

	// 4. Date parser and interpreter
	timezone := cfg.Calendar.Timezone
	dateMathParser, err := datemath.NewParser(timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", timezone, err)
		dateMathParser, _ = datemath.NewParser("UTC")
	}
	interp := interpreter.New(dateMathParser, interpreter.Config{
		CacheSize: cfg.Interpreter.CacheSize,
		CacheTTL:  cfg.Interpreter.CacheTTL,
	})

	// 5. Google Calendar client (optional)
	var calendar task.CalendarSyncer
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, calErr := gcalendar.New(ctx, gcalendar.Config{
			CredentialsPath: cfg.GoogleCalendar.CredentialsPath,
			TokenPath:       cfg.GoogleCalendar.TokenPath,
		})
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
		} else {
			calendar = calendarClient
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 6. Task domain
	loc := dateMathParser.Location()
	repo := taskRepo.New(db, logger, loc)
	taskUC := usecase.New(logger, repo, interp, usecase.Config{
		Calendar:   calendar,
		CalendarID: cfg.GoogleCalendar.CalendarID,
		Location:   loc,
		Now:        time.Now,
	})

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Security: middleware.Config{
			APIKey:          cfg.Security.APIKey,
			RateLimitPerMin: cfg.Security.RateLimitPerMin,
		},
		TaskUseCase: taskUC,
		Ready: func(context.Context) error {
			if db.IsClosed() {
				return errors.New("storage is closed")
			}
			return nil
		},
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
