package database

import (
	"log/slog"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/jobhive/jobhive/internal/models"
)

// Connect opens the Postgres connection and runs migrations.
// TranslateError surfaces constraint violations as gorm sentinel
// errors so services can map duplicates to validation failures.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}
	slog.Info("database connection established")

	if err := db.AutoMigrate(
		&models.Company{},
		&models.Job{},
		&models.User{},
		&models.Application{},
	); err != nil {
		return nil, err
	}
	return db, nil
}
