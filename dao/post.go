package dao

import (
	"Yatube/models"
	"context"

	"gorm.io/gorm"
)

type PostDAO struct {
	Repo[models.Post]
}

func NewPostDAO(db *gorm.DB) *PostDAO {
	return &PostDAO{Repo: NewRepo[models.Post](db)}
}

// ListAll 全量按发布时间倒序分页
func (d *PostDAO) ListAll(ctx context.Context, limit, offset int) ([]*models.Post, int64, error) {
	var total int64
	if err := d.Db.WithContext(ctx).Model(&models.Post{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []*models.Post
	err := d.Db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	return posts, total, err
}

// ListByAuthors 指定作者集合的帖子，按发布时间倒序分页
func (d *PostDAO) ListByAuthors(ctx context.Context, authorIDs []uint64, limit, offset int) ([]*models.Post, int64, error) {
	if len(authorIDs) == 0 {
		return []*models.Post{}, 0, nil
	}

	var total int64
	if err := d.Db.WithContext(ctx).
		Model(&models.Post{}).
		Where("author_id IN ?", authorIDs).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []*models.Post
	err := d.Db.WithContext(ctx).
		Where("author_id IN ?", authorIDs).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	return posts, total, err
}

// ListByAuthor 单个作者的帖子，按发布时间倒序分页
func (d *PostDAO) ListByAuthor(ctx context.Context, authorID uint64, limit, offset int) ([]*models.Post, int64, error) {
	return d.ListByAuthors(ctx, []uint64{authorID}, limit, offset)
}

// ListByGroup 群组内帖子，按发布时间倒序分页
func (d *PostDAO) ListByGroup(ctx context.Context, groupID uint64, limit, offset int) ([]*models.Post, int64, error) {
	var total int64
	if err := d.Db.WithContext(ctx).
		Model(&models.Post{}).
		Where("group_id = ?", groupID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []*models.Post
	err := d.Db.WithContext(ctx).
		Where("group_id = ?", groupID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	return posts, total, err
}

// UpdateByID 局部更新，author_id/created_at 不在此入口修改
func (d *PostDAO) UpdateByID(ctx context.Context, postID uint64, data map[string]any) error {
	return d.Db.WithContext(ctx).
		Model(&models.Post{}).
		Where("id = ?", postID).
		Updates(data).Error
}

// DeleteCascade 删除帖子并级联清理评论与评分，单事务执行
func (d *PostDAO) DeleteCascade(ctx context.Context, postID uint64) error {
	return d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", postID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", postID).Delete(&models.Rating{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", postID).Delete(&models.Post{}).Error
	})
}
