package service

import (
	"Yatube/dao"
	"Yatube/types"
	"context"
	"errors"

	"gorm.io/gorm"
)

var _ IUserService = (*UserService)(nil)

type IUserService interface {
	Profile(ctx context.Context, username string, viewerID uint64, page, pageSize int) (*types.Profile, error)
}

type UserService struct {
	UserDAO   *dao.Users
	PostDAO   *dao.PostDAO
	FollowDAO *dao.FollowDAO
}

// Profile 作者主页：帖子分页 + 帖子数 + 粉丝数 + 我是否已关注。
// viewerID 为 0 表示匿名访问，is_following 恒为 false。
func (s *UserService) Profile(ctx context.Context, username string, viewerID uint64, page, pageSize int) (*types.Profile, error) {
	user, err := s.UserDAO.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	limit, offset := pageBounds(page, pageSize)
	posts, total, err := s.PostDAO.ListByAuthor(ctx, user.ID, limit, offset)
	if err != nil {
		return nil, err
	}

	followerCount, err := s.FollowDAO.FollowerCount(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	isFollowing := false
	if viewerID != 0 && viewerID != user.ID {
		isFollowing, err = s.FollowDAO.IsFollowing(ctx, viewerID, user.ID)
		if err != nil {
			return nil, err
		}
	}

	return &types.Profile{
		UserID:        user.ID,
		Username:      user.Username,
		Nickname:      user.Nickname,
		PostCount:     total,
		FollowerCount: followerCount,
		IsFollowing:   isFollowing,
		PostPage:      *newPostPage(posts, total, page, pageSize),
	}, nil
}
