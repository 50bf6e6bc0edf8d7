package database

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/sondregut/trackspeed-site/internal/config"
	"github.com/sondregut/trackspeed-site/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func Connect(cfg *config.Config) error {
	var err error
	DB, err = gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}

	// Supabase poolers cap connections well below the Postgres default.
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	slog.Info("database connected")
	return nil
}

// Migrate runs AutoMigrate for every model.
func Migrate() error {
	return DB.AutoMigrate(
		&models.Subscription{},
		&models.SubscriptionEvent{},
		&models.PromoCode{},
		&models.PromoRedemption{},
		&models.Influencer{},
		&models.FeedbackPost{},
		&models.FeedbackComment{},
		&models.FeedbackVote{},
		&models.Contact{},
		&models.EmailSendLog{},
		&models.SMSSendLog{},
		&models.NotificationLog{},
		&models.SystemLog{},
	)
}

func Ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
