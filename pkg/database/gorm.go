package database

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

func parseLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}

func getLogger(level logger.LogLevel) logger.Interface {
	return logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags), // io writer
		logger.Config{
			SlowThreshold:             time.Second, // Slow SQL threshold
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true, // Ignore ErrRecordNotFound error for logger
			ParameterizedQueries:      true, // Don't include params in the SQL log
			Colorful:                  true,
		},
	)
}

func gormConfig(logLevel string) *gorm.Config {
	return &gorm.Config{
		Logger:         getLogger(parseLogLevel(logLevel)),
		TranslateError: true,
	}
}

func configureConnectionPool(db *gorm.DB, maxOpen int, maxLifetime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetConnMaxLifetime(maxLifetime)

	return nil
}

// Open connects to the configured driver.
func Open(driver, dsn, logLevel string) (*gorm.DB, error) {
	switch driver {
	case DriverPostgres, "":
		return NewGormDBFromDSN(dsn, logLevel)
	case DriverSQLite:
		return NewSQLiteDB(dsn, logLevel)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

func NewGormDBFromDSN(dsn, logLevel string) (*gorm.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("postgres DSN is empty")
	}

	db, err := gorm.Open(postgres.Open(dsn), gormConfig(logLevel))
	if err != nil {
		return nil, err
	}

	if err := configureConnectionPool(db, 100, time.Hour); err != nil {
		return nil, err
	}

	return db, nil
}

// NewSQLiteDB opens a pure-Go SQLite database. A single connection is kept
// so ":memory:" databases survive for the lifetime of the handle and writers
// are serialised.
func NewSQLiteDB(dsn, logLevel string) (*gorm.DB, error) {
	if dsn == "" {
		dsn = ":memory:"
	}

	db, err := gorm.Open(sqlite.Open(dsn), gormConfig(logLevel))
	if err != nil {
		return nil, err
	}

	if err := configureConnectionPool(db, 1, 0); err != nil {
		return nil, err
	}

	return db, nil
}

// AutoMigrate creates or updates the given tables.
func AutoMigrate(db *gorm.DB, models ...interface{}) error {
	return db.AutoMigrate(models...)
}
