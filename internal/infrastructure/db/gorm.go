package db

import (
	"context"
	"fmt"
	"strings"
	"time"

	"studentloan-backend/internal/logging"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenGorm connects with the named driver: mysql or postgres.
func OpenGorm(driver, dsn string) (*gorm.DB, error) {
	var dial gorm.Dialector
	switch strings.ToLower(driver) {
	case "", "mysql":
		dial = mysql.Open(dsn)
	case "postgres", "postgresql":
		dial = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported db driver %q", driver)
	}
	return OpenGormWithDialector(dial)
}

// OpenGormWithDialector configures the pool and pings once.
func OpenGormWithDialector(dial gorm.Dialector) (*gorm.DB, error) {
	cfg := &gorm.Config{
		Logger: logger.New(slogWriter{}, logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
		DisableAutomaticPing: true,
	}
	db, err := gorm.Open(dial, cfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(30)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}
	logging.Info(context.Background(), "gorm: connected", "dialect", dial.Name())
	return db, nil
}

// slogWriter routes gorm's logger through the application logger.
type slogWriter struct{}

func (slogWriter) Printf(format string, args ...any) {
	logging.Warn(context.Background(), strings.TrimSpace(fmt.Sprintf(format, args...)), "component", "gorm")
}
