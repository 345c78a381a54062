package handler

import (
	"Yatube/config"
	"Yatube/middleware"
	"Yatube/pkg/context"
	"Yatube/pkg/response"
	"Yatube/service"
	"Yatube/types"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Feed struct {
	Config      *config.Config
	FeedService service.IFeedService
}

func (h *Feed) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	g := r.Group("/v1/feed")
	g.GET("/following", authorize, context.Wrap(h.FollowingFeed))
}

// FollowingFeed 已关注作者的帖子流；没关注任何人时就是空页
func (h *Feed) FollowingFeed(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	var req types.PageRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数错误: "+err.Error())
	}
	req.Normalize()

	page, err := h.FeedService.FollowingFeed(c.Request.Context(), userID, req.Page, req.PageSize)
	if err != nil {
		return asBizError(err)
	}

	response.Success(c, page)
	return nil
}
