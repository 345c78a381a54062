package types

import "Yatube/models"

type CreateGroupRequest struct {
	Title       string `json:"title" binding:"required,min=1,max=200"`
	Slug        string `json:"slug" binding:"required,min=1,max=200"`
	Description string `json:"description" binding:"omitempty"`
}

type GroupPostsResponse struct {
	Group *models.Group `json:"group"`
	PostPage
}
