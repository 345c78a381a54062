package service

import (
	"Yatube/dao"
	"Yatube/models"
	"Yatube/types"
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"
)

func newPostService(t *testing.T) (*PostService, *gorm.DB) {
	t.Helper()

	db := newTestDB(t)
	svc := &PostService{
		PostDAO:    dao.NewPostDAO(db),
		GroupDAO:   dao.NewGroup(db),
		CommentDAO: dao.NewComment(db),
		UserDAO:    dao.NewUsers(db),
	}
	return svc, db
}

func TestCreatePost_EmptyText(t *testing.T) {
	svc, db := newPostService(t)
	author := seedUser(t, db, "leo")

	_, err := svc.CreatePost(context.Background(), author.ID, &types.CreatePostRequest{Text: "   "})
	if !errors.Is(err, ErrEmptyText) {
		t.Fatalf("expected ErrEmptyText, got %v", err)
	}
}

func TestCreatePost_UnknownGroup(t *testing.T) {
	svc, db := newPostService(t)
	author := seedUser(t, db, "leo")
	missing := uint64(12345)

	_, err := svc.CreatePost(context.Background(), author.ID, &types.CreatePostRequest{
		Text:    "hello",
		GroupID: &missing,
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCreateAndGetPost(t *testing.T) {
	svc, db := newPostService(t)
	ctx := context.Background()
	author := seedUser(t, db, "leo")
	group := seedGroup(t, db, "Cats", "cats")

	id, err := svc.CreatePost(ctx, author.ID, &types.CreatePostRequest{
		Text:    "hello cats",
		GroupID: &group.ID,
	})
	if err != nil {
		t.Fatalf("create post: %v", err)
	}

	detail, err := svc.GetPost(ctx, id)
	if err != nil {
		t.Fatalf("get post: %v", err)
	}
	if detail.Post.Text != "hello cats" {
		t.Fatalf("expected text round trip, got %q", detail.Post.Text)
	}
	if detail.Post.AuthorID != author.ID {
		t.Fatalf("expected author %d, got %d", author.ID, detail.Post.AuthorID)
	}
	if detail.Author != "leo" {
		t.Fatalf("expected author name leo, got %q", detail.Author)
	}
	if detail.Post.GroupID == nil || *detail.Post.GroupID != group.ID {
		t.Fatalf("expected group %d, got %v", group.ID, detail.Post.GroupID)
	}
}

func TestGetPost_NotFound(t *testing.T) {
	svc, _ := newPostService(t)

	_, err := svc.GetPost(context.Background(), 404)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdatePost_NonAuthorRedirected(t *testing.T) {
	svc, db := newPostService(t)
	ctx := context.Background()
	author := seedUser(t, db, "leo")
	intruder := seedUser(t, db, "mia")
	post := seedPost(t, db, author.ID, "original", time.Now())

	outcome, err := svc.UpdatePost(ctx, post.ID, intruder.ID, &types.UpdatePostRequest{Text: "hacked"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if outcome.Allowed {
		t.Fatal("expected non-author to be denied")
	}
	if outcome.RedirectTo != PostViewRoute(post.ID) {
		t.Fatalf("expected redirect to post view, got %q", outcome.RedirectTo)
	}

	// 帖子原样保留
	fresh, err := svc.PostDAO.FindByID(ctx, post.ID)
	if err != nil {
		t.Fatalf("find post: %v", err)
	}
	if fresh.Text != "original" {
		t.Fatalf("expected text unchanged, got %q", fresh.Text)
	}
}

func TestUpdatePost_Author(t *testing.T) {
	svc, db := newPostService(t)
	ctx := context.Background()
	author := seedUser(t, db, "leo")
	post := seedPost(t, db, author.ID, "original", time.Now())

	outcome, err := svc.UpdatePost(ctx, post.ID, author.ID, &types.UpdatePostRequest{Text: "edited"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !outcome.Allowed {
		t.Fatal("expected author to be allowed")
	}

	fresh, err := svc.PostDAO.FindByID(ctx, post.ID)
	if err != nil {
		t.Fatalf("find post: %v", err)
	}
	if fresh.Text != "edited" {
		t.Fatalf("expected edited text, got %q", fresh.Text)
	}
	if fresh.AuthorID != author.ID {
		t.Fatalf("author must not change, got %d", fresh.AuthorID)
	}
}

func TestDeletePost_Cascade(t *testing.T) {
	svc, db := newPostService(t)
	ctx := context.Background()
	author := seedUser(t, db, "leo")
	commenter := seedUser(t, db, "mia")
	post := seedPost(t, db, author.ID, "doomed", time.Now())

	comment := &models.Comment{PostID: post.ID, AuthorID: commenter.ID, Text: "nice", CreatedAt: time.Now()}
	if err := db.Create(comment).Error; err != nil {
		t.Fatalf("seed comment: %v", err)
	}
	rating := &models.Rating{PostID: post.ID, UserID: commenter.ID, Rate: 5, CreatedAt: time.Now()}
	if err := db.Create(rating).Error; err != nil {
		t.Fatalf("seed rating: %v", err)
	}

	// 非作者先试一次，什么都不该少
	outcome, err := svc.DeletePost(ctx, post.ID, commenter.ID)
	if err != nil {
		t.Fatalf("delete by non-author: %v", err)
	}
	if outcome.Allowed {
		t.Fatal("expected non-author to be denied")
	}

	outcome, err = svc.DeletePost(ctx, post.ID, author.ID)
	if err != nil {
		t.Fatalf("delete by author: %v", err)
	}
	if !outcome.Allowed {
		t.Fatal("expected author to be allowed")
	}

	var comments, ratings, posts int64
	db.Model(&models.Comment{}).Where("post_id = ?", post.ID).Count(&comments)
	db.Model(&models.Rating{}).Where("post_id = ?", post.ID).Count(&ratings)
	db.Model(&models.Post{}).Where("id = ?", post.ID).Count(&posts)
	if comments != 0 || ratings != 0 || posts != 0 {
		t.Fatalf("expected cascade delete, got comments=%d ratings=%d posts=%d", comments, ratings, posts)
	}
}
