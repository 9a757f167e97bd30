package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/teammerch/merch-store/internal/adapter/handler"
	"github.com/teammerch/merch-store/internal/adapter/storage"
	"github.com/teammerch/merch-store/internal/config"
	"github.com/teammerch/merch-store/internal/core/domain"
	"github.com/teammerch/merch-store/internal/core/service"
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	// .env is optional; real deployments set variables directly.
	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize MySQL
	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect mysql")
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to ping mysql")
	}
	log.Info().Msg("connected to mysql")

	// Initialize Redis
	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatal().Err(err).Msg("failed to connect redis")
	}
	log.Info().Str("addr", cfg.RedisAddr).Msg("connected to redis")

	// Catalog is fixed at startup.
	catalog := domain.NewCatalog(cfg.Catalog)
	log.Info().Int("products", len(cfg.Catalog)).Msg("catalog loaded")

	// Adapters
	cartRepo := storage.NewRedisCartAdapter(rdb)
	sessionRepo := storage.NewRedisSessionAdapter(rdb)
	orderRepo := storage.NewMySQLOrderAdapter(db)

	// Services
	cartService := service.NewCartService(catalog, cartRepo)
	checkoutService := service.NewCheckoutService(catalog, cartRepo, orderRepo)
	adminService := service.NewAdminService(cfg.AdminPassword, sessionRepo, orderRepo)

	// HTTP server
	storeHandler := handler.NewStoreHandler(catalog, cartService, checkoutService)
	adminHandler := handler.NewAdminHandler(adminService)
	router := handler.NewRouter(storeHandler, adminHandler)

	httpServer := &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.ListenAddr).Msg("HTTP server listening")
		if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
			log.Error().Err(err).Msg("HTTP server error")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	httpServer.Shutdown(shutdownCtx)
	log.Info().Msg("HTTP server stopped")

	rdb.Close()
	db.Close()
	log.Info().Msg("connections closed")
}
