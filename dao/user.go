package dao

import (
	"Yatube/models"
	"context"

	"gorm.io/gorm"
)

type Users struct {
	Repo[models.Users]
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{
		Repo: NewRepo[models.Users](db),
	}
}

// FindByUsername 用户名查询
func (u *Users) FindByUsername(ctx context.Context, username string) (*models.Users, error) {
	return u.Repo.FindByWhere(ctx, "username = ?", username)
}

// IsUsernameExist 判断用户名是否存在
func (u *Users) IsUsernameExist(ctx context.Context, username string) bool {
	exist, _ := u.Repo.IsExist(ctx, "username = ?", username)
	return exist
}

func (u *Users) UpdateById(ctx context.Context, id uint64, data map[string]any) error {
	if id == 0 {
		return gorm.ErrRecordNotFound
	}
	return u.Db.WithContext(ctx).
		Model(&models.Users{}).
		Where("id = ?", id).
		Updates(data).Error
}
