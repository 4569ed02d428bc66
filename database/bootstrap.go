// database/bootstrap.go
package database

import (
	"fmt"
	"strings"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"farmcare/entities"
	"farmcare/pkg/logger"
)

// Open connects to the sqlite file at path and migrates the schema.
// ":memory:" is pinned to one connection so every query sees the same database.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn(path)), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if strings.Contains(path, ":memory:") {
		sqlDB.SetMaxOpenConns(1)
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// OpenSQLite is Open for process start-up: any failure is fatal.
func OpenSQLite(path string) *gorm.DB {
	db, err := Open(path)
	if err != nil {
		logger.Fatal().Err(err).Str("path", path).Msg("database")
	}
	return db
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&entities.PlantingRecord{},
		&entities.CareTask{},
		&entities.EarnedBadge{},
		&entities.Notification{},
	); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}
	return nil
}

// sqlite serializes writers; a busy timeout turns lock contention into a wait.
func dsn(path string) string {
	if path == ":memory:" || strings.Contains(path, "?") {
		return path
	}
	return path + "?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"
}
