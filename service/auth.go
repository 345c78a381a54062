package service

import (
	"Yatube/config"
	"Yatube/dao"
	"Yatube/models"
	"Yatube/pkg/jwt"
	"Yatube/pkg/snowflake"
	"Yatube/types"
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const accessTokenTTL = 24 * time.Hour

var _ IAuthService = (*AuthService)(nil)

type IAuthService interface {
	Register(ctx context.Context, req *types.RegisterRequest) (*types.TokenResponse, error)
	Login(ctx context.Context, req *types.LoginRequest) (*types.TokenResponse, error)
}

type AuthService struct {
	UserDAO *dao.Users
	Config  *config.Config
}

func (s *AuthService) Register(ctx context.Context, req *types.RegisterRequest) (*types.TokenResponse, error) {
	if s.UserDAO.IsUsernameExist(ctx, req.Username) {
		return nil, ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.Users{
		ID:        uint64(snowflake.GenUserID()),
		Username:  req.Username,
		Password:  string(hash),
		Nickname:  req.Nickname,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := s.UserDAO.Create(ctx, user); err != nil {
		return nil, err
	}

	return s.issueToken(user)
}

func (s *AuthService) Login(ctx context.Context, req *types.LoginRequest) (*types.TokenResponse, error) {
	user, err := s.UserDAO.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBadLogin
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return nil, ErrBadLogin
	}

	return s.issueToken(user)
}

func (s *AuthService) issueToken(user *models.Users) (*types.TokenResponse, error) {
	token, err := jwt.GenerateToken(
		[]byte(s.Config.Jwt.Secret),
		user.ID,
		user.Username,
		"access",
		accessTokenTTL,
	)
	if err != nil {
		return nil, err
	}
	return &types.TokenResponse{
		UserID:      user.ID,
		Username:    user.Username,
		AccessToken: token,
	}, nil
}
