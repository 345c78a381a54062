package dao

import (
	"Yatube/models"
	"context"
	"time"

	"gorm.io/gorm"
)

type FollowDAO struct {
	Repo[models.Follow]
}

func NewFollowDAO(db *gorm.DB) *FollowDAO {
	return &FollowDAO{
		Repo: NewRepo[models.Follow](db),
	}
}

// IsFollowing 检查是否已关注
func (d *FollowDAO) IsFollowing(ctx context.Context, userID, authorID uint64) (bool, error) {
	return d.IsExist(ctx, "user_id = ? AND author_id = ?", userID, authorID)
}

// Ensure 建立关注边，已存在时不重复插入
func (d *FollowDAO) Ensure(ctx context.Context, userID, authorID uint64) error {
	follow := models.Follow{
		UserID:    userID,
		AuthorID:  authorID,
		CreatedAt: time.Now(),
	}
	return d.Db.WithContext(ctx).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		FirstOrCreate(&follow).Error
}

// Remove 删除关注边，不存在时无事发生
func (d *FollowDAO) Remove(ctx context.Context, userID, authorID uint64) error {
	return d.Db.WithContext(ctx).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Delete(&models.Follow{}).Error
}

// FollowerCount 获取粉丝数
func (d *FollowDAO) FollowerCount(ctx context.Context, authorID uint64) (int64, error) {
	var count int64
	err := d.Db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("author_id = ?", authorID).
		Count(&count).Error
	return count, err
}

// FollowingCount 获取关注数
func (d *FollowDAO) FollowingCount(ctx context.Context, userID uint64) (int64, error) {
	var count int64
	err := d.Db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

// FollowingIDs 获取用户关注的作者ID列表
func (d *FollowDAO) FollowingIDs(ctx context.Context, userID uint64) ([]uint64, error) {
	var ids []uint64
	err := d.Db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("user_id = ?", userID).
		Pluck("author_id", &ids).Error
	return ids, err
}
