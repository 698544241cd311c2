package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"plant-care-management/config"
	_ "plant-care-management/docs" // Swagger docs
	careRepo "plant-care-management/internal/care/repository/sqlite"
	careUC "plant-care-management/internal/care/usecase"
	"plant-care-management/internal/database"
	"plant-care-management/internal/httpserver"
	"plant-care-management/internal/middleware"
	suggestionRepo "plant-care-management/internal/suggestion/repository/sqlite"
	suggestionUC "plant-care-management/internal/suggestion/usecase"
	"plant-care-management/pkg/gcalendar"
	"plant-care-management/pkg/log"
)

// @title       Plant Care Management API
// @description Plant care tracking with derived task schedules, watering analysis, and Google Calendar reminders.
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

	logger.Info(ctx, "Starting Plant Care Management...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Database: %s", cfg.Database.Path)

	// 3. Database
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		logger.Error(ctx, "Failed to open database: ", err)
		return
	}
	defer db.Close()

	// 4. Repositories
	plantRepo := careRepo.New(db, logger)
	sgRepo := suggestionRepo.New(db, logger)

	// 5. Google Calendar client (optional)
	var calendarClient *gcalendar.Client
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, err = gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if err != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
			calendarClient = nil
		} else {
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 6. UseCases
	sgUC := suggestionUC.New(logger, sgRepo, plantRepo)
	cUC := careUC.New(logger, plantRepo, sgUC, calendarClient, careUC.CalendarConfig{
		CalendarID: cfg.GoogleCalendar.CalendarID,
		Timezone:   cfg.GoogleCalendar.Timezone,
	})

	// 7. HTTP Server
	mw := middleware.New(logger, cfg)
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:            logger,
		Port:              cfg.HTTPServer.Port,
		Mode:              cfg.HTTPServer.Mode,
		Environment:       cfg.Environment.Name,
		Middleware:        mw,
		CareUseCase:       cUC,
		SuggestionUseCase: sgUC,
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
