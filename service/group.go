package service

import (
	"Yatube/dao"
	"Yatube/models"
	"Yatube/types"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var _ IGroupService = (*GroupService)(nil)

type IGroupService interface {
	CreateGroup(ctx context.Context, req *types.CreateGroupRequest) (*models.Group, error)
	GetBySlug(ctx context.Context, slug string) (*models.Group, error)
	GroupPosts(ctx context.Context, slug string, page, pageSize int) (*types.GroupPostsResponse, error)
}

type GroupService struct {
	GroupDAO *dao.Group
	PostDAO  *dao.PostDAO
}

func (s *GroupService) CreateGroup(ctx context.Context, req *types.CreateGroupRequest) (*models.Group, error) {
	taken, err := s.GroupDAO.IsSlugExist(ctx, req.Slug)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrSlugTaken
	}

	group := &models.Group{
		Title:       req.Title,
		Slug:        req.Slug,
		Description: req.Description,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if err := s.GroupDAO.Create(ctx, group); err != nil {
		return nil, err
	}
	return group, nil
}

func (s *GroupService) GetBySlug(ctx context.Context, slug string) (*models.Group, error) {
	group, err := s.GroupDAO.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return group, nil
}

// GroupPosts 群组帖子页，分页规则与 feed 一致
func (s *GroupService) GroupPosts(ctx context.Context, slug string, page, pageSize int) (*types.GroupPostsResponse, error) {
	group, err := s.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	limit, offset := pageBounds(page, pageSize)
	posts, total, err := s.PostDAO.ListByGroup(ctx, group.ID, limit, offset)
	if err != nil {
		return nil, err
	}

	return &types.GroupPostsResponse{
		Group:    group,
		PostPage: *newPostPage(posts, total, page, pageSize),
	}, nil
}
