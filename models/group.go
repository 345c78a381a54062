package models

import "time"

type Group struct {
	ID          uint64    `gorm:"column:id;primary_key;AUTO_INCREMENT" json:"id"`
	Title       string    `gorm:"column:title;type:varchar(200);not null" json:"title"`
	Slug        string    `gorm:"column:slug;type:varchar(200);not null;uniqueIndex:idx_slug" json:"slug"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	CreatedAt   time.Time `gorm:"column:created_at;not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;not null" json:"updated_at"`
}

func (Group) TableName() string {
	return "groups"
}
