package db

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/wen89126-oss/lab-compound-db/pkg/middleware/logger"
)

type LogConf struct {
	Level string
}

type Config struct {
	Host   string
	Port   int
	User   string
	PW     string
	DBName string

	// Pool bounds. The store is a shared, connection-constrained service;
	// AcquireTimeout caps how long a request waits for a free connection.
	MaxOpenConns   int
	MaxIdleConns   int
	AcquireTimeout time.Duration

	LogConf LogConf
}

// Datastore wraps the gorm handle together with the acquire bound so repos can
// scope every operation with WithAcquireTimeout.
type Datastore struct {
	db             *gorm.DB
	acquireTimeout time.Duration
}

var datastore *Datastore

func InitPostgres(ctx context.Context, conf *Config) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=require",
		conf.Host, conf.Port, conf.User, conf.PW, conf.DBName)

	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormLevel(conf.LogConf.Level)),
	})
	if err != nil {
		logger.Fatalf(ctx, "init postgres fail err: %+v", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		logger.Fatalf(ctx, "get sql.DB fail err: %+v", err)
	}

	maxOpen := conf.MaxOpenConns
	if maxOpen <= 0 {
		maxOpen = 5
	}
	maxIdle := conf.MaxIdleConns
	if maxIdle <= 0 {
		maxIdle = 1
	}
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxIdle)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	acquire := conf.AcquireTimeout
	if acquire <= 0 {
		acquire = 10 * time.Second
	}

	datastore = &Datastore{db: gdb, acquireTimeout: acquire}
}

func ClosePostgres(_ context.Context) {
	if datastore == nil {
		return
	}
	if sqlDB, err := datastore.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// DB returns the process-wide datastore, nil before InitPostgres.
func DB() *Datastore {
	return datastore
}

func (d *Datastore) DBIns() *gorm.DB {
	return d.db
}

func (d *Datastore) DBWithContext(ctx context.Context) *gorm.DB {
	return d.db.WithContext(ctx)
}

// WithAcquireTimeout bounds ctx by the configured pool wait. A store call that
// exceeds it fails with context.DeadlineExceeded, which repos surface as a
// retryable busy error rather than an empty result.
func (d *Datastore) WithAcquireTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, d.acquireTimeout)
}

func gormLevel(s string) gormlogger.LogLevel {
	switch strings.ToLower(s) {
	case "debug":
		return gormlogger.Info
	case "error":
		return gormlogger.Error
	default:
		return gormlogger.Warn
	}
}
