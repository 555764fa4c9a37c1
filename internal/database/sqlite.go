package database

import (
	"fmt"

	sqlite "github.com/glebarez/sqlite"
	"github.com/tavinote/backend/internal/planner"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// OpenSQLite establishes a SQLite connection and creates the document
// schema when absent.
func OpenSQLite(path string, logger *zap.Logger) (*gorm.DB, error) {
	if path == "" {
		return nil, fmt.Errorf("database path is required")
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&planner.DocumentRecord{}); err != nil {
		return nil, err
	}

	if logger != nil {
		logger.Info("database initialized", zap.String("path", path))
	}

	return db, nil
}
