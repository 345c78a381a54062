package service

import (
	"Yatube/config"
	"Yatube/dao"
	"Yatube/models"
	"context"
	"errors"
	"testing"
	"time"
)

func newRatingService(t *testing.T) (*RatingService, *dao.RatingDAO, *dao.PostDAO) {
	t.Helper()

	db := newTestDB(t)
	ratingDAO := dao.NewRatingDAO(db)
	postDAO := dao.NewPostDAO(db)
	svc := &RatingService{
		RatingDAO: ratingDAO,
		PostDAO:   postDAO,
		Rating:    config.DefaultRating(),
	}
	return svc, ratingDAO, postDAO
}

func TestAverageOf(t *testing.T) {
	cases := []struct {
		name  string
		rates []int
		want  *float64
	}{
		{"empty", nil, nil},
		{"single", []int{4}, ptr(4.0)},
		{"half rounds to even up", []int{3, 4}, ptr(4.0)}, // 3.5 -> 4
		{"half rounds to even down", []int{0, 5}, ptr(2.0)}, // 2.5 -> 2
		{"below half", []int{1, 1, 2}, ptr(1.0)}, // 1.33 -> 1
		{"all zero", []int{0, 0}, ptr(0.0)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := AverageOf(tc.rates)
			if (got == nil) != (tc.want == nil) {
				t.Fatalf("AverageOf(%v) = %v, want %v", tc.rates, got, tc.want)
			}
			if got != nil && *got != *tc.want {
				t.Fatalf("AverageOf(%v) = %v, want %v", tc.rates, *got, *tc.want)
			}
		})
	}
}

func ptr(f float64) *float64 { return &f }

func TestRate_PostNotFound(t *testing.T) {
	svc, _, _ := newRatingService(t)

	err := svc.Rate(context.Background(), 404, 1, 3)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRate_OutOfRange(t *testing.T) {
	svc, ratingDAO, postDAO := newRatingService(t)
	author := seedUser(t, ratingDAO.Db, "leo")
	post := seedPost(t, ratingDAO.Db, author.ID, "first", time.Now())

	for _, rate := range []int{-1, 6, 100} {
		if err := svc.Rate(context.Background(), post.ID, author.ID, rate); !errors.Is(err, ErrInvalidRate) {
			t.Fatalf("rate %d: expected ErrInvalidRate, got %v", rate, err)
		}
	}

	// 校验失败不能留下任何写入
	rates, err := ratingDAO.ListRates(context.Background(), post.ID)
	if err != nil {
		t.Fatalf("list rates: %v", err)
	}
	if len(rates) != 0 {
		t.Fatalf("expected no ratings, got %v", rates)
	}

	fresh, err := postDAO.FindByID(context.Background(), post.ID)
	if err != nil {
		t.Fatalf("find post: %v", err)
	}
	if fresh.AverageRating != nil {
		t.Fatalf("expected nil average, got %v", *fresh.AverageRating)
	}
}

func TestRate_ReplacePreviousRating(t *testing.T) {
	svc, ratingDAO, postDAO := newRatingService(t)
	ctx := context.Background()
	author := seedUser(t, ratingDAO.Db, "leo")
	rater := seedUser(t, ratingDAO.Db, "mia")
	post := seedPost(t, ratingDAO.Db, author.ID, "first", time.Now())

	if err := svc.Rate(ctx, post.ID, rater.ID, 4); err != nil {
		t.Fatalf("first rate: %v", err)
	}
	if err := svc.Rate(ctx, post.ID, rater.ID, 2); err != nil {
		t.Fatalf("re-rate: %v", err)
	}

	// 同一 (post, user) 只能有一行，且是新值
	var rows []models.Rating
	if err := ratingDAO.Db.Where("post_id = ? AND user_id = ?", post.ID, rater.ID).Find(&rows).Error; err != nil {
		t.Fatalf("query ratings: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 rating row, got %d", len(rows))
	}
	if rows[0].Rate != 2 {
		t.Fatalf("expected rate 2, got %d", rows[0].Rate)
	}

	fresh, err := postDAO.FindByID(ctx, post.ID)
	if err != nil {
		t.Fatalf("find post: %v", err)
	}
	if fresh.AverageRating == nil || *fresh.AverageRating != 2 {
		t.Fatalf("expected average 2, got %v", fresh.AverageRating)
	}
}

func TestRate_AverageAcrossUsers(t *testing.T) {
	svc, ratingDAO, postDAO := newRatingService(t)
	ctx := context.Background()
	author := seedUser(t, ratingDAO.Db, "leo")
	u1 := seedUser(t, ratingDAO.Db, "mia")
	u2 := seedUser(t, ratingDAO.Db, "ned")
	post := seedPost(t, ratingDAO.Db, author.ID, "first", time.Now())

	if err := svc.Rate(ctx, post.ID, u1.ID, 3); err != nil {
		t.Fatalf("rate u1: %v", err)
	}
	if err := svc.Rate(ctx, post.ID, u2.ID, 4); err != nil {
		t.Fatalf("rate u2: %v", err)
	}

	fresh, err := postDAO.FindByID(ctx, post.ID)
	if err != nil {
		t.Fatalf("find post: %v", err)
	}
	// (3+4)/2 = 3.5，半数取偶到 4
	if fresh.AverageRating == nil || *fresh.AverageRating != 4 {
		t.Fatalf("expected average 4, got %v", fresh.AverageRating)
	}
}

func TestUnrate(t *testing.T) {
	svc, ratingDAO, postDAO := newRatingService(t)
	ctx := context.Background()
	author := seedUser(t, ratingDAO.Db, "leo")
	u1 := seedUser(t, ratingDAO.Db, "mia")
	u2 := seedUser(t, ratingDAO.Db, "ned")
	post := seedPost(t, ratingDAO.Db, author.ID, "first", time.Now())

	if err := svc.Rate(ctx, post.ID, u1.ID, 5); err != nil {
		t.Fatalf("rate u1: %v", err)
	}
	if err := svc.Rate(ctx, post.ID, u2.ID, 1); err != nil {
		t.Fatalf("rate u2: %v", err)
	}

	if err := svc.Unrate(ctx, post.ID, u2.ID); err != nil {
		t.Fatalf("unrate u2: %v", err)
	}

	fresh, err := postDAO.FindByID(ctx, post.ID)
	if err != nil {
		t.Fatalf("find post: %v", err)
	}
	if fresh.AverageRating == nil || *fresh.AverageRating != 5 {
		t.Fatalf("expected average 5 after unrate, got %v", fresh.AverageRating)
	}

	// 最后一个评分撤销后回到 NULL
	if err := svc.Unrate(ctx, post.ID, u1.ID); err != nil {
		t.Fatalf("unrate u1: %v", err)
	}
	fresh, err = postDAO.FindByID(ctx, post.ID)
	if err != nil {
		t.Fatalf("find post: %v", err)
	}
	if fresh.AverageRating != nil {
		t.Fatalf("expected nil average, got %v", *fresh.AverageRating)
	}

	// 没评过分也不报错
	if err := svc.Unrate(ctx, post.ID, u1.ID); err != nil {
		t.Fatalf("unrate twice: %v", err)
	}
}
