package service

import (
	"Yatube/dao"
	"Yatube/models"
	"context"
	"strings"
	"time"
)

var _ ICommentService = (*CommentService)(nil)

type ICommentService interface {
	CreateComment(ctx context.Context, postID, authorID uint64, text string) (uint64, error)
	ListComments(ctx context.Context, postID uint64) ([]*models.Comment, error)
}

type CommentService struct {
	CommentDAO *dao.Comment
	PostDAO    *dao.PostDAO
}

// CreateComment 任何登录用户都可以评论任何帖子；评论不可编辑不可单独删除
func (s *CommentService) CreateComment(ctx context.Context, postID, authorID uint64, text string) (uint64, error) {
	if strings.TrimSpace(text) == "" {
		return 0, ErrEmptyText
	}

	exist, err := s.PostDAO.IsExist(ctx, "id = ?", postID)
	if err != nil {
		return 0, err
	}
	if !exist {
		return 0, ErrNotFound
	}

	comment := &models.Comment{
		PostID:    postID,
		AuthorID:  authorID,
		Text:      text,
		CreatedAt: time.Now(),
	}
	if err := s.CommentDAO.Create(ctx, comment); err != nil {
		return 0, err
	}
	return comment.ID, nil
}

func (s *CommentService) ListComments(ctx context.Context, postID uint64) ([]*models.Comment, error) {
	exist, err := s.PostDAO.IsExist(ctx, "id = ?", postID)
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, ErrNotFound
	}
	return s.CommentDAO.ListByPost(ctx, postID)
}
