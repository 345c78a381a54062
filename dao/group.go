package dao

import (
	"Yatube/models"
	"context"

	"gorm.io/gorm"
)

type Group struct {
	Repo[models.Group]
}

func NewGroup(db *gorm.DB) *Group {
	return &Group{Repo: NewRepo[models.Group](db)}
}

// FindBySlug slug 查询
func (g *Group) FindBySlug(ctx context.Context, slug string) (*models.Group, error) {
	return g.Repo.FindByWhere(ctx, "slug = ?", slug)
}

// IsSlugExist 判断 slug 是否已占用
func (g *Group) IsSlugExist(ctx context.Context, slug string) (bool, error) {
	return g.Repo.IsExist(ctx, "slug = ?", slug)
}
