package database

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgres подключается к PostgreSQL с повторами - база в
// контейнере может подняться позже приложения.
func NewPostgres(dsn string) (*gorm.DB, error) {
	var db *gorm.DB
	var err error

	for i := 1; i <= 10; i++ {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Warn),
		})
		if err == nil {
			sqlDB, _ := db.DB()
			if pingErr := sqlDB.Ping(); pingErr == nil {
				log.Printf("database connected (attempt %d)", i)
				return db, nil
			}
		}

		log.Printf("database attempt %d failed: %v", i, err)

		wait := time.Duration(1<<uint(i-1)) * time.Second
		if wait > 10*time.Second {
			wait = 10 * time.Second
		}
		time.Sleep(wait)
	}

	return nil, fmt.Errorf("не удалось подключиться к базе после 10 попыток: %w", err)
}

// AutoMigrateTables создает таблицы для переданных моделей.
func AutoMigrateTables(db *gorm.DB, models ...interface{}) error {
	for _, model := range models {
		if err := db.AutoMigrate(model); err != nil {
			return fmt.Errorf("миграция %T: %w", model, err)
		}
	}
	return nil
}
