package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/thermora/backend/internal/catalog"
	"github.com/thermora/backend/internal/config"
	"github.com/thermora/backend/internal/delivery/http"
	"github.com/thermora/backend/internal/feeder"
	"github.com/thermora/backend/internal/repository"
	"github.com/thermora/backend/internal/service"
	"github.com/thermora/backend/internal/synth"
)

func main() {
	// Configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	loc := cfg.Location()

	// Store connection
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	store, closeStore := repository.Open(ctx, cfg)
	cancel()
	defer closeStore()

	// Dependency Injection: Services
	thermalSvc := service.NewThermalService(store,
		service.WithTimeZone(loc),
		service.WithSeed(cfg.RandomSeed),
	)

	// In-process feeder keeps the persisted path warm outside production
	runCtx, stopFeeder := context.WithCancel(context.Background())
	defer stopFeeder()
	if cfg.Env == "development" && cfg.StoreDriver != config.DriverMemory {
		seedCtx, cancel := context.WithTimeout(runCtx, 10*time.Second)
		if err := feeder.SeedTopology(seedCtx, store); err != nil {
			log.Printf("Warning: %v", err)
		}
		if err := feeder.SeedHotspots(seedCtx, store, time.Now(), loc); err != nil {
			log.Printf("Warning: %v", err)
		}
		cancel()

		f := feeder.New(synth.NewRand(cfg.RandomSeed), loc, catalog.Locations(), cfg.FeederInterval, feeder.NewStoreSink(store))
		go func() {
			if err := f.Run(runCtx); err != nil {
				log.Printf("Feeder error: %v", err)
			}
		}()
	}

	// Fiber App
	app := fiber.New(fiber.Config{
		AppName:      "Thermora API v1.0",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorHandler: http.ErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path} (${latency})\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))

	limiter := http.NewIPRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, 5*time.Minute)
	defer limiter.Stop()

	// Routes
	http.SetupRoutes(app, thermalSvc, limiter)

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on :%s", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	stopFeeder()
	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited gracefully")
}
