package service

import (
	"Yatube/dao"
	"Yatube/types"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"gorm.io/gorm"
)

func newUserService(t *testing.T) (*UserService, *gorm.DB) {
	t.Helper()

	db := newTestDB(t)
	svc := &UserService{
		UserDAO:   dao.NewUsers(db),
		PostDAO:   dao.NewPostDAO(db),
		FollowDAO: dao.NewFollowDAO(db),
	}
	return svc, db
}

func TestProfile(t *testing.T) {
	svc, db := newUserService(t)
	ctx := context.Background()
	leo := seedUser(t, db, "leo")
	mia := seedUser(t, db, "mia")

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 13; i++ {
		seedPost(t, db, leo.ID, fmt.Sprintf("post %d", i), base.Add(time.Duration(i)*time.Minute))
	}
	if err := svc.FollowDAO.Ensure(ctx, mia.ID, leo.ID); err != nil {
		t.Fatalf("ensure follow: %v", err)
	}

	profile, err := svc.Profile(ctx, "leo", mia.ID, 1, types.DefaultPageSize)
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	if profile.PostCount != 13 {
		t.Fatalf("expected 13 posts, got %d", profile.PostCount)
	}
	if len(profile.Posts) != 10 {
		t.Fatalf("expected first page of 10, got %d", len(profile.Posts))
	}
	if profile.FollowerCount != 1 {
		t.Fatalf("expected 1 follower, got %d", profile.FollowerCount)
	}
	if !profile.IsFollowing {
		t.Fatal("expected is_following for mia")
	}

	// 匿名访问 is_following 恒为 false
	anon, err := svc.Profile(ctx, "leo", 0, 1, types.DefaultPageSize)
	if err != nil {
		t.Fatalf("anonymous profile: %v", err)
	}
	if anon.IsFollowing {
		t.Fatal("expected is_following=false for anonymous viewer")
	}
}

func TestProfile_UnknownUser(t *testing.T) {
	svc, _ := newUserService(t)

	_, err := svc.Profile(context.Background(), "ghost", 0, 1, types.DefaultPageSize)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
