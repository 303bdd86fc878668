package mysqldb

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/pkpu-id/tagihan/config"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// BuildDSN builds the MySQL DSN from the service configuration.
func BuildDSN(cfg *config.Config) string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
		cfg.MYSQL_USER, cfg.MYSQL_PASSWORD, cfg.MYSQL_HOST, cfg.MYSQL_PORT, cfg.MYSQL_DBNAME,
	)
}

// Connect establishes the database connection
func Connect(cfg *config.Config) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.New(
			log.New(os.Stdout, "\r\n", log.LstdFlags),
			logger.Config{
				SlowThreshold:             time.Second,
				LogLevel:                  logger.Silent,
				IgnoreRecordNotFoundError: true,
				Colorful:                  true,
			},
		),
		NowFunc: func() time.Time {
			return time.Now().Local()
		},
		// Duplicate-key violations surface as gorm.ErrDuplicatedKey so the
		// kreditor repository can map them to the registered-email message.
		TranslateError: true,
	}

	db, err := gorm.Open(mysql.Open(BuildDSN(cfg)), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// Connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

// ConnectWithRetry connects to the database with a retry mechanism
func ConnectWithRetry(cfg *config.Config, maxRetries int, retryDelay time.Duration) (db *gorm.DB, err error) {
	for i := range maxRetries {
		db, err := Connect(cfg)
		if err == nil {
			log.Printf("Successfully connected to database on attempt %d", i+1)
			return db, nil
		}

		log.Printf("Failed to connect to database (attempt %d/%d): %v", i+1, maxRetries, err)

		if i < maxRetries-1 {
			time.Sleep(retryDelay)
		}
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxRetries, err)
}

// InitializeDatabase initializes the database connection with service config
func InitializeDatabase(cfg *config.Config) (*gorm.DB, error) {
	return ConnectWithRetry(cfg, 5, time.Second*2)
}

// Close closes the database connection
func Close(db *gorm.DB, ctx context.Context) error {
	sqlDB, err := db.WithContext(ctx).DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	return sqlDB.Close()
}

// Ping checks if the database connection is alive
func Ping(db *gorm.DB, ctx context.Context) error {
	sqlDB, err := db.WithContext(ctx).DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	return sqlDB.Ping()
}

// GetStats returns database connection statistics
func GetStats(db *gorm.DB) map[string]any {
	sqlDB, err := db.DB()
	if err != nil {
		return map[string]any{
			"error": err.Error(),
		}
	}

	stats := sqlDB.Stats()
	return map[string]any{
		"max_open_connections": stats.MaxOpenConnections,
		"open_connections":     stats.OpenConnections,
		"in_use":               stats.InUse,
		"idle":                 stats.Idle,
	}
}

// EnableDebugMode enables GORM debug mode for development
func EnableDebugMode(db *gorm.DB) *gorm.DB {
	return db.Debug()
}
