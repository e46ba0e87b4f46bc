package postgres

import (
	"fmt"

	"github.com/go-api-notifications/internal/config"
	"github.com/go-api-notifications/internal/domain"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewDB opens the postgres connection and migrates the schema.
func NewDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(pgdriver.Open(cfg.DB.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}

	if err := db.AutoMigrate(
		&domain.Notification{},
		&domain.NotificationChannel{},
		&domain.NotificationMethod{},
	); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	return db, nil
}
