package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"fitforge/coaching-app/internal/api"
	"fitforge/coaching-app/internal/config"
	"fitforge/coaching-app/internal/repository/memory"
	"fitforge/coaching-app/internal/service"
)

func main() {
	log.Info("Starting FitForge Coaching Server...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Could not load config: %v", err)
	}
	if level, err := log.ParseLevel(cfg.Log.Level); err == nil {
		log.SetLevel(level)
	} else {
		log.Warnf("Unknown log level %q, keeping default", cfg.Log.Level)
	}
	log.Info("Configuration loaded.")

	// --- Initialize Repositories ---
	repos := memory.NewRepositories()
	if cfg.Seed.DemoData {
		if err := repos.SeedDemoData(context.Background()); err != nil {
			log.Fatalf("Could not seed demo data: %v", err)
		}
		log.Info("Demo data seeded.")
	}

	// --- Initialize Services ---
	sessionService := service.NewSessionService(repos.Completions, cfg.Session.TickInterval)
	metricService := service.NewMetricService(repos.Metrics, repos.CustomMetrics)
	habitService := service.NewHabitService(repos.Habits)
	programService := service.NewProgramService(repos.Programs, repos.Teams)
	teamService := service.NewTeamService(repos.Teams, repos.Programs)
	leaderboardService := service.NewLeaderboardService(repos.Users, repos.Metrics, repos.Completions)

	// --- Initialize Gin Engine ---
	if cfg.Server.Mode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery(), api.RequestLogger(), api.RequestMetrics())

	// --- Setup Routes ---
	api.SetupRoutes(router, sessionService, metricService, habitService, programService, teamService, leaderboardService)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Infof("Server starting on %s", cfg.Server.Address)

	// --- Graceful Shutdown ---
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("ListenAndServe error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	// Stop the shared session tick; running timers are transient state.
	sessionService.Shutdown()

	log.Info("Server exiting.")
}
