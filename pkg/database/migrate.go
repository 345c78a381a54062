package database

import (
	"Yatube/models"

	"gorm.io/gorm"
)

// Migrate 建表/补索引，启动时执行
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Users{},
		&models.Group{},
		&models.Post{},
		&models.Comment{},
		&models.Follow{},
		&models.Rating{},
		&models.Image{},
	)
}
