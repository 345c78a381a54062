package models

import "time"

type Image struct {
	ID        int64     `gorm:"column:id;primaryKey" json:"id"`
	UserID    uint64    `gorm:"column:user_id;not null;index:idx_user_id" json:"user_id"`
	OssKey    string    `gorm:"column:oss_key;type:varchar(255);not null" json:"oss_key"`
	Width     int       `gorm:"column:width;not null" json:"width"`
	Height    int       `gorm:"column:height;not null" json:"height"`
	CreatedAt time.Time `gorm:"column:created_at;not null;index:idx_image_created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null" json:"updated_at"`
}

func (Image) TableName() string {
	return "image"
}
