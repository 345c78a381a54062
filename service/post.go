package service

import (
	"Yatube/dao"
	"Yatube/models"
	"Yatube/pkg/snowflake"
	"Yatube/types"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

var _ IPostService = (*PostService)(nil)

type IPostService interface {
	CreatePost(ctx context.Context, authorID uint64, req *types.CreatePostRequest) (uint64, error)
	GetPost(ctx context.Context, postID uint64) (*types.PostDetail, error)
	UpdatePost(ctx context.Context, postID, callerID uint64, req *types.UpdatePostRequest) (types.AuthzOutcome, error)
	DeletePost(ctx context.Context, postID, callerID uint64) (types.AuthzOutcome, error)
}

type PostService struct {
	PostDAO    *dao.PostDAO
	GroupDAO   *dao.Group
	CommentDAO *dao.Comment
	UserDAO    *dao.Users
}

// PostViewRoute 帖子的只读视图路由，软失败授权的跳转目标
func PostViewRoute(postID uint64) string {
	return fmt.Sprintf("/api/v1/posts/%d", postID)
}

// Authorize 变更授权：只有作者本人可以编辑/删除，
// 其他人得到跳转到只读视图的结果，而不是错误
func Authorize(post *models.Post, callerID uint64) types.AuthzOutcome {
	if post.AuthorID == callerID {
		return types.Allowed()
	}
	return types.RedirectTo(PostViewRoute(post.ID))
}

// CreatePost 创建帖子。作者永远取自调用方身份，不信任客户端字段；
// created_at 由服务端赋值且不可变更。
func (s *PostService) CreatePost(ctx context.Context, authorID uint64, req *types.CreatePostRequest) (uint64, error) {
	if strings.TrimSpace(req.Text) == "" {
		return 0, ErrEmptyText
	}

	if req.GroupID != nil {
		exist, err := s.GroupDAO.IsExist(ctx, "id = ?", *req.GroupID)
		if err != nil {
			return 0, err
		}
		if !exist {
			return 0, ErrNotFound
		}
	}

	post := &models.Post{
		ID:        uint64(snowflake.GenID()),
		AuthorID:  authorID,
		GroupID:   req.GroupID,
		Text:      req.Text,
		ImageKey:  req.ImageKey,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if req.ImageMeta != nil {
		meta, err := json.Marshal(req.ImageMeta)
		if err != nil {
			return 0, err
		}
		post.ImageMeta = meta
	}

	if err := s.PostDAO.Create(ctx, post); err != nil {
		return 0, err
	}

	return post.ID, nil
}

func (s *PostService) GetPost(ctx context.Context, postID uint64) (*types.PostDetail, error) {
	post, err := s.PostDAO.FindByID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	comments, err := s.CommentDAO.ListByPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	detail := &types.PostDetail{Post: post, Comments: comments}
	if author, err := s.UserDAO.FindByID(ctx, post.AuthorID); err == nil {
		detail.Author = author.Username
	}
	return detail, nil
}

// UpdatePost 编辑帖子正文/群组/图片；作者与发布时间不可改。
// 非作者拿到 redirect 结果，帖子原样保留。
func (s *PostService) UpdatePost(ctx context.Context, postID, callerID uint64, req *types.UpdatePostRequest) (types.AuthzOutcome, error) {
	post, err := s.PostDAO.FindByID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return types.AuthzOutcome{}, ErrNotFound
		}
		return types.AuthzOutcome{}, err
	}

	outcome := Authorize(post, callerID)
	if !outcome.Allowed {
		return outcome, nil
	}

	if strings.TrimSpace(req.Text) == "" {
		return outcome, ErrEmptyText
	}

	data := map[string]any{
		"text":       req.Text,
		"group_id":   req.GroupID,
		"updated_at": time.Now(),
	}
	if req.GroupID != nil {
		exist, err := s.GroupDAO.IsExist(ctx, "id = ?", *req.GroupID)
		if err != nil {
			return outcome, err
		}
		if !exist {
			return outcome, ErrNotFound
		}
	}
	if req.ImageKey != nil {
		data["image_key"] = *req.ImageKey
	}

	if err := s.PostDAO.UpdateByID(ctx, postID, data); err != nil {
		return outcome, err
	}
	return outcome, nil
}

// DeletePost 删除帖子并级联清理评论与评分；同样走软失败授权
func (s *PostService) DeletePost(ctx context.Context, postID, callerID uint64) (types.AuthzOutcome, error) {
	post, err := s.PostDAO.FindByID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return types.AuthzOutcome{}, ErrNotFound
		}
		return types.AuthzOutcome{}, err
	}

	outcome := Authorize(post, callerID)
	if !outcome.Allowed {
		return outcome, nil
	}

	if err := s.PostDAO.DeleteCascade(ctx, postID); err != nil {
		return outcome, err
	}
	return outcome, nil
}
