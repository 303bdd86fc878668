package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkpu-id/tagihan/config"
	mysqldb "github.com/pkpu-id/tagihan/infra/mysql"
	redisdb "github.com/pkpu-id/tagihan/infra/redis"
	"github.com/pkpu-id/tagihan/internal/model"
	"github.com/pkpu-id/tagihan/pkg/mailer"
	ratelimiter "github.com/pkpu-id/tagihan/pkg/rate-limiter"
	"github.com/pkpu-id/tagihan/pkg/telemetry"
	"github.com/pkpu-id/tagihan/presenter"
	"github.com/pkpu-id/tagihan/router"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func main() {
	slog.Info("Starting application setup...")

	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		slog.Error("No .env file found, using system environment variables", "error", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(fmt.Sprintf("Failed to load configuration: %v", err))
	}

	tel, err := telemetry.New(ctx, cfg)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize monitoring: %v", err))
	}

	db, err := mysqldb.InitializeDatabase(cfg)
	if err != nil {
		slog.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}

	defer func() {
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.SHUTDOWN_TIMEOUT)
		defer cancelShutdown()

		zap.L().Info("Closing MySQL Connection...")
		if err := mysqldb.Close(db, shutdownCtx); err != nil {
			zap.L().Error("Error disconnecting from MySQL", zap.Error(err))
		} else {
			zap.L().Info("Disconnected from MySQL.")
		}

		zap.L().Info("Shutting down monitoring...")
		if err := tel.Shutdown(shutdownCtx); err != nil {
			zap.L().Error("Error during monitoring shutdown", zap.Error(err))
		} else {
			zap.L().Info("Monitoring shutdown complete.")
		}
	}()

	if err := model.AutoMigrate(db); err != nil {
		slog.Error("Failed to migrate database", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migration completed!")

	SeedSifatTagihans(db)
	SeedTipeDokumens(db)

	if err := mysqldb.Ping(db, ctx); err != nil {
		slog.Error("Database ping failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database connection successful!")

	stats := mysqldb.GetStats(db)
	slog.Info("Database stats:", "stats", stats)

	redisClient := redisdb.MonitorRedis(cfg)
	go redisdb.WatchConnectionRedis(&redisClient, cfg)

	limiter := ratelimiter.NewRateLimiter(redisClient, 10, 20, 5*time.Minute)

	mail := mailer.NewSMTP(cfg)

	presenter := presenter.NewPresenter(db, mail, cfg, tel)
	router := router.NewRouter(presenter, db, tel, cfg, limiter)

	addr := ":" + cfg.SERVER_PORT

	listenErr := make(chan error, 1)

	go func() {
		zap.L().Info("Server starting", zap.String("address", addr))
		if err := router.Listen(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			listenErr <- err
		} else {
			listenErr <- nil
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	// Blokir sampai menerima sinyal shutdown atau error dari Listen
	select {
	case sig := <-shutdown:
		zap.L().Info("Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-listenErr:
		if err != nil {
			zap.L().Error("Server listen error", zap.Error(err))
			os.Exit(1)
		}
	}

	zap.L().Info("Starting graceful shutdown...")
	if err := router.ShutdownWithTimeout(cfg.SHUTDOWN_TIMEOUT); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			zap.L().Warn("Server shutdown timed out", zap.Duration("timeout", cfg.SHUTDOWN_TIMEOUT))
		} else {
			zap.L().Error("Server shutdown error", zap.Error(err))
		}
	} else {
		zap.L().Info("Server gracefully stopped.")
	}

	zap.L().Info("Application shutdown complete.")
}

func SeedSifatTagihans(db *gorm.DB) {
	slog.Info("Seeding master sifat tagihan...")

	sifats := []model.SifatTagihan{
		{ID: 1, Nama: "Tagihan Preferen"},
		{ID: 2, Nama: "Tagihan Konkuren"},
		{ID: 3, Nama: "Tagihan Separatis"},
	}

	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "nama"}},
		DoNothing: true,
	}).Create(&sifats).Error; err != nil {
		slog.Error("Failed to seed sifat tagihan", "error", err)
		os.Exit(1)
	}

	slog.Info("Master sifat tagihan seeded successfully.")
}

func SeedTipeDokumens(db *gorm.DB) {
	slog.Info("Seeding master tipe dokumen...")

	tipes := []model.TipeDokumen{
		{ID: 1, Nama: "Surat Perjanjian"},
		{ID: 2, Nama: "Invoice"},
		{ID: 3, Nama: "Kwitansi"},
		{ID: 4, Nama: "Surat Jalan"},
		{ID: 5, Nama: "Dokumen Pendukung Lainnya"},
	}

	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "nama"}},
		DoNothing: true,
	}).Create(&tipes).Error; err != nil {
		slog.Error("Failed to seed tipe dokumen", "error", err)
		os.Exit(1)
	}

	slog.Info("Master tipe dokumen seeded successfully.")
}
