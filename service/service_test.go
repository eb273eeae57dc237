package service

import (
	"testing"
	"time"

	"weiblog/model"
	"weiblog/utils"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB 建一个内存 sqlite 库并迁移全部业务表
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// 内存库只能走单连接，否则连接池里的新连接看不到表
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, utils.Migrate(db))
	return db
}

// createUser 插入一个测试用户，可指定注册时间以便断言排序
func createUser(t *testing.T, db *gorm.DB, username string, createdAt time.Time) *model.User {
	t.Helper()

	user := &model.User{
		Username:  username,
		Password:  "secret",
		Role:      model.RoleOrdinary,
		CreatedAt: createdAt,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}
