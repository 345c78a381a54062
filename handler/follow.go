package handler

import (
	"Yatube/config"
	"Yatube/middleware"
	"Yatube/pkg/context"
	"Yatube/pkg/response"
	"Yatube/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Follow struct {
	Config        *config.Config
	FollowService service.IFollowService
}

func (f *Follow) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(f.Config.Jwt.Secret))
	g := r.Group("/v1/users")
	g.POST("/:username/follow", authorize, context.Wrap(f.FollowUser))
	g.DELETE("/:username/follow", authorize, context.Wrap(f.UnfollowUser))
	g.GET("/:username/follow", authorize, context.Wrap(f.GetFollowStatus))
	g.GET("/:username/followers/count", context.Wrap(f.GetFollowerCount))
}

// FollowUser 关注作者（幂等：重复关注不会产生第二条边）
func (f *Follow) FollowUser(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	username := c.Param("username")
	if username == "" {
		return response.NewError(http.StatusBadRequest, "缺少 username")
	}

	if err := f.FollowService.Follow(c.Request.Context(), userID, username); err != nil {
		return asBizError(err)
	}

	response.Success(c, gin.H{"followed": true})
	return nil
}

// UnfollowUser 取消关注（幂等：边不存在也算成功）
func (f *Follow) UnfollowUser(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	username := c.Param("username")
	if username == "" {
		return response.NewError(http.StatusBadRequest, "缺少 username")
	}

	if err := f.FollowService.Unfollow(c.Request.Context(), userID, username); err != nil {
		return asBizError(err)
	}

	response.Success(c, gin.H{"followed": false})
	return nil
}

// GetFollowStatus 查询是否已关注
func (f *Follow) GetFollowStatus(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	isFollowing, err := f.FollowService.IsFollowing(c.Request.Context(), userID, c.Param("username"))
	if err != nil {
		return asBizError(err)
	}

	response.Success(c, gin.H{"is_following": isFollowing})
	return nil
}

// GetFollowerCount 查询粉丝数，匿名可访问
func (f *Follow) GetFollowerCount(c *gin.Context) error {
	count, err := f.FollowService.FollowerCount(c.Request.Context(), c.Param("username"))
	if err != nil {
		return asBizError(err)
	}

	response.Success(c, gin.H{"follower_count": count})
	return nil
}
