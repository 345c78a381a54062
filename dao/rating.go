package dao

import (
	"Yatube/models"
	"context"
	"time"

	"gorm.io/gorm"
)

type RatingDAO struct {
	Repo[models.Rating]
}

func NewRatingDAO(db *gorm.DB) *RatingDAO {
	return &RatingDAO{Repo: NewRepo[models.Rating](db)}
}

// ListRates 帖子当前全部评分值
func (d *RatingDAO) ListRates(ctx context.Context, postID uint64) ([]int, error) {
	var rates []int
	err := d.Db.WithContext(ctx).
		Model(&models.Rating{}).
		Where("post_id = ?", postID).
		Pluck("rate", &rates).Error
	return rates, err
}

// GetByPostUser 查询指定用户对指定帖子的评分记录
func (d *RatingDAO) GetByPostUser(ctx context.Context, postID, userID uint64) (*models.Rating, error) {
	var item models.Rating
	err := d.Db.WithContext(ctx).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Limit(1).
		Find(&item).Error
	if err != nil {
		return nil, err
	}
	if item.ID == 0 {
		return nil, nil
	}
	return &item, nil
}

// Replace 替换 (post, user) 的评分并同步重算帖子均分，单事务执行：
// 删旧行、插新行、按当前全部评分更新 posts.average_rating。
// avg 为纯函数，由调用方传入舍入策略。
func (d *RatingDAO) Replace(ctx context.Context, postID, userID uint64, rate int, avg func([]int) *float64) error {
	return d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ? AND user_id = ?", postID, userID).
			Delete(&models.Rating{}).Error; err != nil {
			return err
		}
		item := models.Rating{
			PostID:    postID,
			UserID:    userID,
			Rate:      rate,
			CreatedAt: time.Now(),
		}
		if err := tx.Create(&item).Error; err != nil {
			return err
		}
		return recomputeAverage(tx, postID, avg)
	})
}

// Delete 删除 (post, user) 的评分并同步重算均分，无评分时不报错
func (d *RatingDAO) Delete(ctx context.Context, postID, userID uint64, avg func([]int) *float64) error {
	return d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ? AND user_id = ?", postID, userID).
			Delete(&models.Rating{}).Error; err != nil {
			return err
		}
		return recomputeAverage(tx, postID, avg)
	})
}

func recomputeAverage(tx *gorm.DB, postID uint64, avg func([]int) *float64) error {
	var rates []int
	if err := tx.Model(&models.Rating{}).
		Where("post_id = ?", postID).
		Pluck("rate", &rates).Error; err != nil {
		return err
	}
	return tx.Model(&models.Post{}).
		Where("id = ?", postID).
		Update("average_rating", avg(rates)).Error
}
