package db

import (
	"log"
	"time"

	"github.com/kuaforun/booking-backend/internal/config"
	"github.com/kuaforun/booking-backend/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
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

	db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`)

	if err := db.AutoMigrate(
		&models.Shop{},
		&models.Staff{},
		&models.Service{},
		&models.ShopHours{},
		&models.Booking{},
		&models.BookingService{},
		&models.Comment{},
		&models.CommentReply{},
		&models.ReplyModeration{},
		&models.ReplyHistory{},
		&models.LogRecord{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// Partial unique indexes backstopping the comment dedupe rules.
	db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS idx_comment_booking_author
        ON comments (tenant_id, booking_id, author_id)
        WHERE booking_id IS NOT NULL
    `)
	db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS idx_comment_shop_author
        ON comments (tenant_id, shop_id, author_id)
        WHERE booking_id IS NULL
    `)

	// Overlap scans always hit one staff member's (or shop's) day.
	db.Exec(`
        CREATE INDEX IF NOT EXISTS idx_booking_staff_day
        ON bookings (tenant_id, staff_id, date)
    `)
	db.Exec(`
        CREATE INDEX IF NOT EXISTS idx_booking_shop_day
        ON bookings (tenant_id, shop_id, date)
    `)

	return db
}
