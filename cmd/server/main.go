package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/city-issue-tracker/internal/classify"
	"github.com/iliyamo/city-issue-tracker/internal/config"
	"github.com/iliyamo/city-issue-tracker/internal/database"
	"github.com/iliyamo/city-issue-tracker/internal/handler"
	"github.com/iliyamo/city-issue-tracker/internal/middleware"
	"github.com/iliyamo/city-issue-tracker/internal/queue"
	"github.com/iliyamo/city-issue-tracker/internal/repository"
	"github.com/iliyamo/city-issue-tracker/internal/router"
	queue_publisher "github.com/iliyamo/city-issue-tracker/internal/service"
	"github.com/iliyamo/city-issue-tracker/internal/triage"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}

	// Explicit first-access initialization: provision the collections
	// and the fixed admin account before serving.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := database.Migrate(ctx, db); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	users := repository.NewUserRepo(db)
	if err := users.EnsureAdmin(ctx); err != nil {
		log.Fatalf("seed admin: %v", err)
	}

	complaints := repository.NewComplaintRepo(db)
	analyzer := classify.NewAnalyzer(cfg.ClassifyDelay, cfg.SuggestDelay)
	svc := triage.NewService(complaints, users, analyzer, queue_publisher.NewPublisher())

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; caching and rate limiting disabled")
	}
	cache := middleware.NewListingCache(config.LoadCacheConfig(), rdb)

	go queue.StartTriageConsumer()

	e := echo.New()
	router.RegisterRoutes(e, cfg, rdb, cache,
		handler.NewAuthHandler(cfg, users),
		handler.NewComplaintHandler(svc, cache),
		handler.NewAdminHandler(svc, cache))

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
