package models

import "time"

// Rating 用户对帖子的评分，(post_id, user_id) 唯一；
// 重新评分是删旧插新，不是 update
type Rating struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	PostID    uint64    `gorm:"column:post_id;not null;uniqueIndex:idx_post_user,priority:1" json:"post_id"`
	UserID    uint64    `gorm:"column:user_id;not null;uniqueIndex:idx_post_user,priority:2" json:"user_id"`
	Rate      int       `gorm:"column:rate;not null" json:"rate"`
	CreatedAt time.Time `gorm:"column:created_at;not null" json:"created_at"`
}

func (Rating) TableName() string {
	return "ratings"
}
