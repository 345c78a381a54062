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
	"github.com/redis/go-redis/v9"
)

type GroupHandler struct {
	Config       *config.Config
	GroupService service.IGroupService
	Redis        *redis.Client
}

func (h *GroupHandler) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	g := r.Group("/v1/groups")
	g.POST("", authorize, context.Wrap(h.CreateGroup))
	g.GET("/:slug", context.Wrap(h.GetGroup))
	g.GET("/:slug/posts", middleware.PageCache(h.Redis, middleware.PageTTL), context.Wrap(h.GroupPosts))
}

func (h *GroupHandler) CreateGroup(c *gin.Context) error {
	var req types.CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数错误: "+err.Error())
	}

	group, err := h.GroupService.CreateGroup(c.Request.Context(), &req)
	if err != nil {
		return asBizError(err)
	}

	response.Success(c, group)
	return nil
}

func (h *GroupHandler) GetGroup(c *gin.Context) error {
	group, err := h.GroupService.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		return asBizError(err)
	}

	response.Success(c, group)
	return nil
}

func (h *GroupHandler) GroupPosts(c *gin.Context) error {
	var req types.PageRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数错误: "+err.Error())
	}
	req.Normalize()

	resp, err := h.GroupService.GroupPosts(c.Request.Context(), c.Param("slug"), req.Page, req.PageSize)
	if err != nil {
		return asBizError(err)
	}

	response.Success(c, resp)
	return nil
}
