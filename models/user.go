package models

import "time"

type Users struct {
	ID        uint64    `gorm:"column:id;primary_key" json:"id"`
	Username  string    `gorm:"column:username;type:varchar(150);not null;uniqueIndex:idx_username" json:"username"`
	Password  string    `gorm:"column:password;type:varchar(255);not null" json:"-"`
	Nickname  string    `gorm:"column:nickname;type:varchar(100);not null;default:''" json:"nickname"`
	CreatedAt time.Time `gorm:"column:created_at;not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null" json:"updated_at"`
}

func (Users) TableName() string {
	return "users"
}
