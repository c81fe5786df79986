package db

import (
	"log"
	"time"

	"github.com/p0rkchop/ward-sub000/internal/config"
	"github.com/p0rkchop/ward-sub000/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
		// Surfaces unique-violations as gorm.ErrDuplicatedKey so the
		// repository can map them to a retryable conflict.
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Resource{},
		&models.Shift{},
		&models.Booking{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// Capacity-1 rule: at most one live confirmed booking per
	// (shift, slot). The engine also rechecks inside the transaction;
	// the index backstops it at the database level.
	db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS uq_bookings_shift_slot
        ON bookings (shift_id, start_time, end_time)
        WHERE status = 'CONFIRMED' AND deleted_at IS NULL
    `)

	return db
}
