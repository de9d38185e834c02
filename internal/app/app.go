// Package app assembles the portal's dependencies from configuration.
package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"studentloan-backend/internal/adapter/notifier"
	"studentloan-backend/internal/adapter/repository/mysql"
	"studentloan-backend/internal/config"
	"studentloan-backend/internal/domain/document"
	"studentloan-backend/internal/infrastructure/blob"
	"studentloan-backend/internal/infrastructure/cache"
	"studentloan-backend/internal/infrastructure/db"
	"studentloan-backend/internal/logging"
	historyUC "studentloan-backend/internal/usecase/history"
	processUC "studentloan-backend/internal/usecase/process"
	"studentloan-backend/internal/usecase/review"
	submissionUC "studentloan-backend/internal/usecase/submission"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type App struct {
	Cfg     *config.Config
	DB      *gorm.DB
	Redis   *redis.Client // nil when REDIS_ADDR is unset
	Catalog *document.Catalog

	Submissions *submissionUC.Usecase
	Reviews     *review.Usecase
	Processes   *processUC.Tracker
	Histories   *historyUC.Usecase

	closers []func() error
}

// OpenDB connects and migrates. Used alone by commands that only touch tables.
func OpenDB(cfg *config.Config) (*gorm.DB, error) {
	gdb, err := db.OpenGorm(cfg.DBDriver, cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if err := db.Migrate(gdb); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return gdb, nil
}

func LoadCatalog(path string) (*document.Catalog, error) {
	if path == "" {
		return document.DefaultCatalog(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog labels: %w", err)
	}
	defer f.Close()
	return document.LoadCatalog(f)
}

func New(ctx context.Context, cfg *config.Config) (*App, error) {
	a := &App{Cfg: cfg}
	ok := false
	defer func() {
		if !ok {
			_ = a.Close()
		}
	}()

	gdb, err := OpenDB(cfg)
	if err != nil {
		return nil, err
	}
	a.DB = gdb
	if sqlDB, err := gdb.DB(); err == nil {
		a.closers = append(a.closers, sqlDB.Close)
	}

	if a.Catalog, err = LoadCatalog(cfg.CatalogLabelsFile); err != nil {
		return nil, err
	}

	var procCache processUC.Cache = processUC.NewMemoryCache(cfg.CacheTTL)
	if cfg.RedisAddr != "" {
		rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
		if err != nil {
			return nil, fmt.Errorf("open redis: %w", err)
		}
		a.Redis = rdb
		a.closers = append(a.closers, rdb.Close)
		procCache = cache.NewProcessCache(rdb, cfg.CacheTTL)
	} else {
		logging.Warn(ctx, "REDIS_ADDR not set; idempotency disabled and process cache is in-memory")
	}

	var blobs submissionUC.BlobStore
	if cfg.S3Endpoint != "" {
		st, err := blob.New(blob.Config{
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			UseSSL:    cfg.S3UseSSL,
		})
		if err != nil {
			return nil, fmt.Errorf("open blob storage: %w", err)
		}
		bctx, cancel := context.WithTimeout(ctx, 10*time.Second)
		err = st.EnsureBucket(bctx)
		cancel()
		if err != nil {
			return nil, fmt.Errorf("ensure bucket: %w", err)
		}
		blobs = st
	} else {
		logging.Warn(ctx, "S3_ENDPOINT not set; document file uploads disabled")
	}

	var n review.Notifier = notifier.LogNotifier{}
	if len(cfg.KafkaBrokers) > 0 {
		kn := notifier.NewKafkaNotifier(cfg.KafkaBrokers, cfg.KafkaTopic)
		a.closers = append(a.closers, kn.Close)
		n = kn
	}

	tx := mysql.NewGormUoW(gdb)
	settings := cfg.Settings()
	a.Submissions = submissionUC.NewUsecase(tx, mysql.NewSubmissionRepository(gdb), blobs, a.Catalog, settings)
	a.Reviews = review.NewUsecase(tx, n)
	a.Processes = processUC.NewTracker(tx, mysql.NewProcessRepository(gdb), procCache)
	a.Histories = historyUC.NewUsecase(mysql.NewHistoryRepository(gdb))

	ok = true
	return a, nil
}

// Close releases resources in reverse order of acquisition.
func (a *App) Close() error {
	var first error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil && first == nil {
			first = err
		}
	}
	a.closers = nil
	return first
}
