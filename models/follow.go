package models

import "time"

// Follow 关注关系：user 关注 author，有序对唯一
type Follow struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID    uint64    `gorm:"column:user_id;not null;uniqueIndex:idx_user_author,priority:1" json:"user_id"`
	AuthorID  uint64    `gorm:"column:author_id;not null;uniqueIndex:idx_user_author,priority:2;index:idx_follows_author_id" json:"author_id"`
	CreatedAt time.Time `gorm:"column:created_at;not null" json:"created_at"`
}

func (Follow) TableName() string {
	return "follows"
}
