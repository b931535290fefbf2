package db

import (
	"fmt"
	"time"

	"cibil-mock-backend/internal/config"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Dialector picks the user-directory driver from config.
func Dialector(cfg *config.Config) (gorm.Dialector, error) {
	switch cfg.UserStoreDriver {
	case config.DriverSQLite:
		return sqlite.Open(cfg.SQLiteDSN), nil
	case config.DriverMySQL:
		return mysql.Open(cfg.MySQLDSN()), nil
	default:
		return nil, fmt.Errorf("unsupported user store driver %q", cfg.UserStoreDriver)
	}
}

func OpenGorm(cfg *config.Config, level logger.LogLevel) (*gorm.DB, error) {
	d, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}
	return openGorm(d, level)
}

// OpenGormWithDialector opens with a silent logger; used by tests and tools.
func OpenGormWithDialector(d gorm.Dialector) (*gorm.DB, error) {
	return openGorm(d, logger.Silent)
}

func openGorm(d gorm.Dialector, level logger.LogLevel) (*gorm.DB, error) {
	cfg := &gorm.Config{
		Logger: logger.Default.LogMode(level),
		// we ping ourselves after sizing the pool
		DisableAutomaticPing: true,
	}
	db, err := gorm.Open(d, cfg)
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
		return nil, fmt.Errorf("ping user store: %w", err)
	}
	return db, nil
}
