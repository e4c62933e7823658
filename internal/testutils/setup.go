package testutils

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/crumpledflowers/vault-guard-cli/internal/db"
	"github.com/crumpledflowers/vault-guard-cli/internal/model"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbSeq atomic.Int64

// SetupDB 创建一个隔离的内存数据库并完成迁移
// 每次调用用独立的命名内存库，避免测试间互相污染
func SetupDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:vg_%d?mode=memory&cache=shared", dbSeq.Add(1))
	gormDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("无法打开内存数据库: %v", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		t.Fatalf("无法获取 sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := gormDB.AutoMigrate(&model.User{}, &model.Setting{}, &model.Credential{}); err != nil {
		t.Fatalf("数据库迁移失败: %v", err)
	}

	previous := db.DB
	db.DB = gormDB
	t.Cleanup(func() {
		db.DB = previous
		sqlDB.Close()
	})

	return gormDB
}
