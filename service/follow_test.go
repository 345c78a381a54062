package service

import (
	"Yatube/dao"
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"
)

func newFollowService(t *testing.T) (*FollowService, *gorm.DB) {
	t.Helper()

	db := newTestDB(t)
	svc := &FollowService{
		FollowDAO: dao.NewFollowDAO(db),
		UserDAO:   dao.NewUsers(db),
	}
	return svc, db
}

func TestFollow_Self(t *testing.T) {
	svc, db := newFollowService(t)
	leo := seedUser(t, db, "leo")

	err := svc.Follow(context.Background(), leo.ID, "leo")
	if !errors.Is(err, ErrSelfFollow) {
		t.Fatalf("expected ErrSelfFollow, got %v", err)
	}

	count, err := svc.FollowerCount(context.Background(), "leo")
	if err != nil {
		t.Fatalf("follower count: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected 0 followers, got %d", count)
	}
}

func TestFollow_UnknownAuthor(t *testing.T) {
	svc, db := newFollowService(t)
	leo := seedUser(t, db, "leo")

	if err := svc.Follow(context.Background(), leo.ID, "ghost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFollow_Idempotent(t *testing.T) {
	svc, db := newFollowService(t)
	ctx := context.Background()
	leo := seedUser(t, db, "leo")
	seedUser(t, db, "mia")

	// 重复关注不报错，也不产生重复边
	for i := 0; i < 3; i++ {
		if err := svc.Follow(ctx, leo.ID, "mia"); err != nil {
			t.Fatalf("follow #%d: %v", i+1, err)
		}
	}

	following, err := svc.IsFollowing(ctx, leo.ID, "mia")
	if err != nil {
		t.Fatalf("is following: %v", err)
	}
	if !following {
		t.Fatal("expected leo to follow mia")
	}

	count, err := svc.FollowerCount(ctx, "mia")
	if err != nil {
		t.Fatalf("follower count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 follower, got %d", count)
	}
}

func TestUnfollow(t *testing.T) {
	svc, db := newFollowService(t)
	ctx := context.Background()
	leo := seedUser(t, db, "leo")
	seedUser(t, db, "mia")

	if err := svc.Follow(ctx, leo.ID, "mia"); err != nil {
		t.Fatalf("follow: %v", err)
	}
	if err := svc.Unfollow(ctx, leo.ID, "mia"); err != nil {
		t.Fatalf("unfollow: %v", err)
	}

	following, err := svc.IsFollowing(ctx, leo.ID, "mia")
	if err != nil {
		t.Fatalf("is following: %v", err)
	}
	if following {
		t.Fatal("expected edge removed")
	}

	// 边不存在时再取关也算成功
	if err := svc.Unfollow(ctx, leo.ID, "mia"); err != nil {
		t.Fatalf("unfollow twice: %v", err)
	}
}

func TestFollowCounts(t *testing.T) {
	svc, db := newFollowService(t)
	ctx := context.Background()
	leo := seedUser(t, db, "leo")
	mia := seedUser(t, db, "mia")
	seedUser(t, db, "ned")

	if err := svc.Follow(ctx, leo.ID, "ned"); err != nil {
		t.Fatalf("leo follows ned: %v", err)
	}
	if err := svc.Follow(ctx, mia.ID, "ned"); err != nil {
		t.Fatalf("mia follows ned: %v", err)
	}
	if err := svc.Follow(ctx, leo.ID, "mia"); err != nil {
		t.Fatalf("leo follows mia: %v", err)
	}

	followers, err := svc.FollowerCount(ctx, "ned")
	if err != nil {
		t.Fatalf("follower count: %v", err)
	}
	if followers != 2 {
		t.Fatalf("expected ned to have 2 followers, got %d", followers)
	}

	following, err := svc.FollowingCount(ctx, leo.ID)
	if err != nil {
		t.Fatalf("following count: %v", err)
	}
	if following != 2 {
		t.Fatalf("expected leo to follow 2 users, got %d", following)
	}
}
