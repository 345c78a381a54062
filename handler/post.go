package handler

import (
	"Yatube/config"
	"Yatube/middleware"
	"Yatube/pkg/context"
	"Yatube/pkg/response"
	"Yatube/service"
	"Yatube/types"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type Post struct {
	Config      *config.Config
	PostService service.IPostService
	FeedService service.IFeedService
	OssService  service.IOssService
	Redis       *redis.Client
}

func (h *Post) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	g := r.Group("/v1/posts")
	g.GET("", middleware.PageCache(h.Redis, middleware.PageTTL), context.Wrap(h.ListPosts))
	g.POST("", authorize, context.Wrap(h.CreatePost))
	g.POST("/upload", authorize, context.Wrap(h.UploadImage))
	g.GET("/:post_id", context.Wrap(h.GetPost))
	g.PUT("/:post_id", authorize, context.Wrap(h.UpdatePost))
	g.DELETE("/:post_id", authorize, context.Wrap(h.DeletePost))
}

// parsePostID 数字段不合法时在进服务层之前拒绝
func parsePostID(c *gin.Context) (uint64, error) {
	raw := c.Param("post_id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, response.NewError(http.StatusBadRequest, "post_id 格式错误")
	}
	return id, nil
}

// ListPosts 全站帖子流（可缓存，TTL 内允许读到旧页）
func (h *Post) ListPosts(c *gin.Context) error {
	var req types.PageRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数错误: "+err.Error())
	}
	req.Normalize()

	page, err := h.FeedService.GlobalFeed(c.Request.Context(), req.Page, req.PageSize)
	if err != nil {
		return asBizError(err)
	}

	response.Success(c, page)
	return nil
}

func (h *Post) CreatePost(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	var req types.CreatePostRequest
	if err := c.ShouldBind(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数错误: "+err.Error())
	}

	postID, err := h.PostService.CreatePost(c.Request.Context(), userID, &req)
	if err != nil {
		return asBizError(err)
	}

	response.Success(c, gin.H{"post_id": postID})
	return nil
}

func (h *Post) GetPost(c *gin.Context) error {
	postID, err := parsePostID(c)
	if err != nil {
		return err
	}

	detail, err := h.PostService.GetPost(c.Request.Context(), postID)
	if err != nil {
		return asBizError(err)
	}

	response.Success(c, detail)
	return nil
}

// UpdatePost 仅作者可编辑；非作者 303 跳回只读视图，不报 403
func (h *Post) UpdatePost(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	postID, err := parsePostID(c)
	if err != nil {
		return err
	}

	var req types.UpdatePostRequest
	if err := c.ShouldBind(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数错误: "+err.Error())
	}

	outcome, err := h.PostService.UpdatePost(c.Request.Context(), postID, userID, &req)
	if err != nil {
		return asBizError(err)
	}
	if !outcome.Allowed {
		c.Redirect(http.StatusSeeOther, outcome.RedirectTo)
		return nil
	}

	response.Success(c, gin.H{"post_id": postID})
	return nil
}

func (h *Post) DeletePost(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	postID, err := parsePostID(c)
	if err != nil {
		return err
	}

	outcome, err := h.PostService.DeletePost(c.Request.Context(), postID, userID)
	if err != nil {
		return asBizError(err)
	}
	if !outcome.Allowed {
		c.Redirect(http.StatusSeeOther, outcome.RedirectTo)
		return nil
	}

	response.Success(c, gin.H{"deleted": true})
	return nil
}

func (h *Post) UploadImage(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	header, err := c.FormFile("image")
	if err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	resp, err := h.OssService.UploadImage(c.Request.Context(), userID, header)
	if err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	response.Success(c, resp)
	return nil
}
