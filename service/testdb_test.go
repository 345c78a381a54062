package service

import (
	"Yatube/models"
	"Yatube/pkg/database"
	"Yatube/pkg/snowflake"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB 内存 sqlite，每个测试独立建表
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	// 内存库多连接会各开各的库，收紧到单连接
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) *models.Users {
	t.Helper()

	user := &models.Users{
		ID:        uint64(snowflake.GenUserID()),
		Username:  username,
		Password:  "x",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user %s: %v", username, err)
	}
	return user
}

// seedPost 直接落库，createdAt 由调用方指定以便断言排序
func seedPost(t *testing.T, db *gorm.DB, authorID uint64, text string, createdAt time.Time) *models.Post {
	t.Helper()

	post := &models.Post{
		ID:        uint64(snowflake.GenID()),
		AuthorID:  authorID,
		Text:      text,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	if err := db.Create(post).Error; err != nil {
		t.Fatalf("seed post: %v", err)
	}
	return post
}

func seedGroup(t *testing.T, db *gorm.DB, title, slug string) *models.Group {
	t.Helper()

	group := &models.Group{
		Title:     title,
		Slug:      slug,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := db.Create(group).Error; err != nil {
		t.Fatalf("seed group %s: %v", slug, err)
	}
	return group
}
