package gormstore

import (
	"fmt"

	"github.com/roastery/storefront/internal/domain/catalog"
	gormlogger "gorm.io/gorm/logger"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Database wraps the GORM connection for the SQLite-backed store.
type Database struct {
	DB *gorm.DB
}

// Open opens (or creates) the SQLite database and migrates the schema.
// The default DSN "file::memory:?cache=shared" keeps process-lifetime
// semantics; a file path makes the store durable.
func Open(dsn string, logger gormlogger.Interface) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	if err := db.AutoMigrate(
		&catalog.Product{},
		&orderRecord{},
		&messageRecord{},
		&subscriptionRecord{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return &Database{DB: db}, nil
}

// Close closes the underlying connection
func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
