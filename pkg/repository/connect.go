package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v5"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite" // registers the pure Go "sqlite" database/sql driver
	"moul.io/zapgorm2"

	"droscher.com/BeerBase/configs"
)

type Repository struct {
	DB       *gorm.DB
	Logger   *zap.Logger
	location string
	mu       sync.RWMutex
}

const (
	maxIdleTime      = 5 * time.Minute
	maxLifetime      = time.Hour
	sqliteDriverName = "sqlite"
)

var (
	ErrConnection     = errors.New("cannot connect to database")
	ErrNotInitialized = errors.New("repository not initialized")
	ErrAlreadyOpen    = errors.New("repository already open")
)

var (
	instanceMu sync.Mutex
	instance   *Repository
)

// Open initializes the process-wide repository. Later calls with the same location return the
// existing repository; a different location is rejected.
func Open(conf *configs.Config, logger *zap.Logger) (*Repository, error) {
	instanceMu.Lock()
	defer instanceMu.Unlock()

	if conf == nil {
		return nil, fmt.Errorf("%w: no database configuration", configs.ErrConfiguration)
	}

	if instance != nil {
		if instance.location != conf.DB.Location() {
			return nil, fmt.Errorf("%w: open on %q, requested %q", ErrAlreadyOpen, instance.location, conf.DB.Location())
		}

		return instance, nil
	}

	repo, err := Connect(conf, logger)
	if err != nil {
		return nil, err
	}

	instance = repo

	return instance, nil
}

// Current returns the repository created by Open.
func Current() (*Repository, error) {
	instanceMu.Lock()
	defer instanceMu.Unlock()

	if instance == nil {
		return nil, ErrNotInitialized
	}

	return instance, nil
}

// Connect opens a standalone repository without touching the process-wide one.
func Connect(conf *configs.Config, logger *zap.Logger) (*Repository, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}

	gormLogger := zapgorm2.New(logger)
	gormLogger.SetAsDefault()

	var (
		db  *gorm.DB
		err error
	)

	switch conf.DB.Driver {
	case configs.DriverPostgres:
		db, err = openPostgres(conf, logger, gormLogger)
	default:
		db, err = openSQLite(conf, gormLogger)
	}

	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrConnection, conf.DB.Location(), err)
	}

	return New(db, logger, conf.DB.Location()), nil
}

// New wraps an existing gorm handle.
func New(db *gorm.DB, logger *zap.Logger, location string) *Repository {
	return &Repository{DB: db, Logger: logger, location: location}
}

func openSQLite(conf *configs.Config, gormLogger zapgorm2.Logger) (*gorm.DB, error) {
	dir := filepath.Dir(conf.DB.Path)

	info, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}

	db, err := gorm.Open(sqlite.New(sqlite.Config{
		DriverName: sqliteDriverName,
		DSN:        conf.DB.Path,
	}), &gorm.Config{Logger: gormLogger})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	// one session per process
	sqlDB.SetMaxOpenConns(1)

	if err = sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()

		return nil, err
	}

	return db, nil
}

func openPostgres(conf *configs.Config, logger *zap.Logger, gormLogger zapgorm2.Logger) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=disable TimeZone=UTC",
		conf.DB.Host, conf.DB.User, conf.DB.Password, conf.DB.Database, conf.DB.Port)

	operation := func() (*gorm.DB, error) {
		return gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: gormLogger})
	}

	notify := func(err error, wait time.Duration) {
		logger.Warn("database not reachable, retrying", zap.Duration("wait", wait), zap.Error(err))
	}

	db, err := backoff.Retry(context.Background(), operation,
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxTries(conf.DB.ConnectAttempts),
		backoff.WithNotify(notify))
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(conf.DB.MaxIdleConnections)
	sqlDB.SetMaxOpenConns(conf.DB.MaxOpenConnections)
	sqlDB.SetConnMaxIdleTime(maxIdleTime)
	sqlDB.SetConnMaxLifetime(maxLifetime)

	return db, nil
}

func (r *Repository) Location() string {
	return r.location
}

func (r *Repository) Ping(ctx context.Context) error {
	sqlDB, err := r.DB.DB()
	if err != nil {
		return err
	}

	return sqlDB.PingContext(ctx)
}

func (r *Repository) Close() {
	sqlDB, err := r.DB.DB()
	if err == nil && sqlDB != nil {
		_ = sqlDB.Close()
	}
}

// inTransaction runs fn in a single transaction while holding the write lock. A failed commit is
// logged with the operation name before it is returned.
func (r *Repository) inTransaction(ctx context.Context, operation string, fn func(tx *gorm.DB) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var fnErr error

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fnErr = fn(tx)

		return fnErr
	})
	if err != nil && fnErr == nil {
		r.Logger.Error("commit failed", zap.String("operation", operation), zap.Error(err))
	}

	return err
}
