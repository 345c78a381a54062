package service

import (
	"Yatube/dao"
	"Yatube/models"
	"Yatube/types"
	"context"
)

var _ IFeedService = (*FeedService)(nil)

type IFeedService interface {
	GlobalFeed(ctx context.Context, page, pageSize int) (*types.PostPage, error)
	FollowingFeed(ctx context.Context, viewerID uint64, page, pageSize int) (*types.PostPage, error)
}

type FeedService struct {
	PostDAO   *dao.PostDAO
	FollowDAO *dao.FollowDAO
}

// GlobalFeed 全站帖子流，按发布时间倒序；超出末页返回空页而不是错误
func (s *FeedService) GlobalFeed(ctx context.Context, page, pageSize int) (*types.PostPage, error) {
	limit, offset := pageBounds(page, pageSize)
	posts, total, err := s.PostDAO.ListAll(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	return newPostPage(posts, total, page, pageSize), nil
}

// FollowingFeed 已关注作者的帖子流。
// 未登录（viewerID == 0）或没有任何关注时返回空页，不报错。
func (s *FeedService) FollowingFeed(ctx context.Context, viewerID uint64, page, pageSize int) (*types.PostPage, error) {
	if viewerID == 0 {
		return newPostPage(nil, 0, page, pageSize), nil
	}

	authorIDs, err := s.FollowDAO.FollowingIDs(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	limit, offset := pageBounds(page, pageSize)
	posts, total, err := s.PostDAO.ListByAuthors(ctx, authorIDs, limit, offset)
	if err != nil {
		return nil, err
	}
	return newPostPage(posts, total, page, pageSize), nil
}

func pageBounds(page, pageSize int) (limit, offset int) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = types.DefaultPageSize
	}
	return pageSize, (page - 1) * pageSize
}

func newPostPage(posts []*models.Post, total int64, page, pageSize int) *types.PostPage {
	if posts == nil {
		posts = []*models.Post{}
	}
	if pageSize <= 0 {
		pageSize = types.DefaultPageSize
	}
	return &types.PostPage{
		Posts:    posts,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
		HasMore:  int64(page*pageSize) < total,
	}
}
