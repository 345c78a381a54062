package service

import (
	"Yatube/dao"
	"Yatube/models"
	"context"
	"errors"

	"gorm.io/gorm"
)

var _ IFollowService = (*FollowService)(nil)

type IFollowService interface {
	Follow(ctx context.Context, viewerID uint64, targetUsername string) error
	Unfollow(ctx context.Context, viewerID uint64, targetUsername string) error
	IsFollowing(ctx context.Context, viewerID uint64, targetUsername string) (bool, error)
	FollowerCount(ctx context.Context, targetUsername string) (int64, error)
	FollowingCount(ctx context.Context, userID uint64) (int64, error)
}

type FollowService struct {
	FollowDAO *dao.FollowDAO
	UserDAO   *dao.Users
}

func (s *FollowService) resolve(ctx context.Context, username string) (*models.Users, error) {
	author, err := s.UserDAO.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return author, nil
}

// Follow 建立 viewer -> target 的关注边。
// 自关注在这里统一拦截，不散落到各个 handler；重复关注是幂等 no-op。
func (s *FollowService) Follow(ctx context.Context, viewerID uint64, targetUsername string) error {
	author, err := s.resolve(ctx, targetUsername)
	if err != nil {
		return err
	}

	if author.ID == viewerID {
		return ErrSelfFollow
	}

	return s.FollowDAO.Ensure(ctx, viewerID, author.ID)
}

// Unfollow 删除关注边，边不存在时也算成功
func (s *FollowService) Unfollow(ctx context.Context, viewerID uint64, targetUsername string) error {
	author, err := s.resolve(ctx, targetUsername)
	if err != nil {
		return err
	}

	return s.FollowDAO.Remove(ctx, viewerID, author.ID)
}

func (s *FollowService) IsFollowing(ctx context.Context, viewerID uint64, targetUsername string) (bool, error) {
	author, err := s.resolve(ctx, targetUsername)
	if err != nil {
		return false, err
	}
	return s.FollowDAO.IsFollowing(ctx, viewerID, author.ID)
}

func (s *FollowService) FollowerCount(ctx context.Context, targetUsername string) (int64, error) {
	author, err := s.resolve(ctx, targetUsername)
	if err != nil {
		return 0, err
	}
	return s.FollowDAO.FollowerCount(ctx, author.ID)
}

func (s *FollowService) FollowingCount(ctx context.Context, userID uint64) (int64, error) {
	return s.FollowDAO.FollowingCount(ctx, userID)
}
