package models

import (
	"time"

	"gorm.io/datatypes"
)

type Post struct {
	ID       uint64  `gorm:"column:id;primary_key" json:"id"`
	AuthorID uint64  `gorm:"column:author_id;not null;index:idx_author_created,priority:1" json:"author_id"`
	GroupID  *uint64 `gorm:"column:group_id;index:idx_group_id" json:"group_id,omitempty"`
	Text     string  `gorm:"column:text;type:text;not null" json:"text"`
	// ImageKey 对象存储 key，空串表示无图
	ImageKey  string         `gorm:"column:image_key;type:varchar(255);not null;default:''" json:"image_key"`
	ImageMeta datatypes.JSON `gorm:"column:image_meta" json:"image_meta,omitempty"`
	// AverageRating 派生字段，评分变更时同步重算；无评分时为 NULL
	AverageRating *float64  `gorm:"column:average_rating" json:"average_rating,omitempty"`
	CreatedAt     time.Time `gorm:"column:created_at;not null;<-:create;index:idx_author_created,priority:2;index:idx_created_at" json:"created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at;not null" json:"updated_at"`
}

func (Post) TableName() string {
	return "posts"
}
