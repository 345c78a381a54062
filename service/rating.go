package service

import (
	"Yatube/config"
	"Yatube/dao"
	"context"
	"math"
)

var _ IRatingService = (*RatingService)(nil)

type IRatingService interface {
	Rate(ctx context.Context, postID, userID uint64, rate int) error
	Unrate(ctx context.Context, postID, userID uint64) error
}

type RatingService struct {
	RatingDAO *dao.RatingDAO
	PostDAO   *dao.PostDAO
	Rating    *config.Rating
}

// AverageOf 当前评分集合的算术平均，四舍六入五取偶（runtime 的
// round-half-to-even），保留 0 位小数；空集合返回 nil
func AverageOf(rates []int) *float64 {
	if len(rates) == 0 {
		return nil
	}
	sum := 0
	for _, r := range rates {
		sum += r
	}
	avg := math.RoundToEven(float64(sum) / float64(len(rates)))
	return &avg
}

// Rate 替换 (post, user) 的评分并重算均分。
// 校验失败不产生任何写入；替换与重算在 DAO 层同一事务内完成。
func (s *RatingService) Rate(ctx context.Context, postID, userID uint64, rate int) error {
	if rate < s.Rating.Min || rate > s.Rating.Max {
		return ErrInvalidRate
	}

	exist, err := s.PostDAO.IsExist(ctx, "id = ?", postID)
	if err != nil {
		return err
	}
	if !exist {
		return ErrNotFound
	}

	return s.RatingDAO.Replace(ctx, postID, userID, rate, AverageOf)
}

// Unrate 撤销自己的评分并重算均分，未评过分时是 no-op
func (s *RatingService) Unrate(ctx context.Context, postID, userID uint64) error {
	exist, err := s.PostDAO.IsExist(ctx, "id = ?", postID)
	if err != nil {
		return err
	}
	if !exist {
		return ErrNotFound
	}

	return s.RatingDAO.Delete(ctx, postID, userID, AverageOf)
}
