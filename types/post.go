package types

import "Yatube/models"

type CreatePostRequest struct {
	Text      string  `json:"text" form:"text"`
	GroupID   *uint64 `json:"group_id" form:"group_id"`
	ImageKey  string  `json:"image_key" form:"image_key"`
	ImageMeta *ImageMeta
}

type UpdatePostRequest struct {
	Text     string  `json:"text" form:"text"`
	GroupID  *uint64 `json:"group_id" form:"group_id"`
	ImageKey *string `json:"image_key" form:"image_key"`
}

type ImageMeta struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Format string `json:"format"`
}

// PostPage 固定大小分页结果，超出末页时 Posts 为空
type PostPage struct {
	Posts    []*models.Post `json:"posts"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
	HasMore  bool           `json:"has_more"`
}

type PostDetail struct {
	Post     *models.Post      `json:"post"`
	Author   string            `json:"author"`
	Comments []*models.Comment `json:"comments"`
}
