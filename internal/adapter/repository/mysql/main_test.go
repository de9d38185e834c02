package mysql

import (
	"testing"

	"studentloan-backend/internal/domain/history"
	"studentloan-backend/internal/domain/process"
	"studentloan-backend/internal/domain/submission"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// openTestDB creates an in-memory sqlite DB with every table migrated.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	// one connection: every :memory: connection is its own database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(&submission.Submission{}, &history.LoanHistory{}, &process.Status{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}
