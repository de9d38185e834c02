package db

import (
	"studentloan-backend/internal/domain/history"
	"studentloan-backend/internal/domain/process"
	"studentloan-backend/internal/domain/submission"

	"gorm.io/gorm"
)

// Models lists every table the service owns.
func Models() []any {
	return []any{&submission.Submission{}, &history.LoanHistory{}, &process.Status{}}
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
