package models

import "time"

// Comment 帖子评论，随帖子级联删除，不支持编辑
type Comment struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	PostID    uint64    `gorm:"column:post_id;not null;index:idx_post_id" json:"post_id"`
	AuthorID  uint64    `gorm:"column:author_id;not null;index:idx_author_id" json:"author_id"`
	Text      string    `gorm:"column:text;type:text;not null" json:"text"`
	CreatedAt time.Time `gorm:"column:created_at;not null;<-:create" json:"created_at"`
}

func (Comment) TableName() string {
	return "comments"
}
