package database

import (
	"Ronghua/internal/api/config"
	"path/filepath"
	"testing"

	"gorm.io/gorm"
)

// NewTestDB 在临时目录中创建已迁移的 sqlite 库
func NewTestDB(t testing.TB) *gorm.DB {
	t.Helper()
	db, err := NewGormDB(&config.DBConfig{
		Driver:      DriverSQLite,
		DSN:         filepath.Join(t.TempDir(), "test.db"),
		AutoMigrate: true,
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}
