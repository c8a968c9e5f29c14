// Package dbtest opens a migrated in-memory database for tests.
package dbtest

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Skotchmaster/hotel_menu/internal/db"
)

func New(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := db.Config()
	cfg.Logger = logger.Default.LogMode(logger.Silent)

	gdb, err := gorm.Open(sqlite.Open(":memory:"), cfg)
	if err != nil {
		t.Fatalf("failed to connect to in-memory db: %v", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	// every pooled connection to :memory: is a separate database
	sqlDB.SetMaxOpenConns(1)

	if err := db.Migrate(context.Background(), gdb); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}

	t.Cleanup(func() { _ = sqlDB.Close() })
	return gdb
}
