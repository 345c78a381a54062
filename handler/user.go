package handler

import (
	"Yatube/config"
	"Yatube/pkg/context"
	"Yatube/pkg/jwt"
	"Yatube/pkg/response"
	"Yatube/service"
	"Yatube/types"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type User struct {
	Config      *config.Config
	UserService service.IUserService
}

func (u *User) RegisterRouter(r gin.IRouter) {
	g := r.Group("/v1/users")
	g.GET("/:username", context.Wrap(u.Profile))
}

// Profile 作者主页，匿名可访问；带 token 时 is_following 按访问者计算
func (u *User) Profile(c *gin.Context) error {
	var req types.PageRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数错误: "+err.Error())
	}
	req.Normalize()

	profile, err := u.UserService.Profile(
		c.Request.Context(),
		c.Param("username"),
		u.viewerID(c),
		req.Page,
		req.PageSize,
	)
	if err != nil {
		return asBizError(err)
	}

	response.Success(c, profile)
	return nil
}

// viewerID 可选登录：token 缺失或无效按匿名处理
func (u *User) viewerID(c *gin.Context) uint64 {
	if id, err := context.GetUserID(c); err == nil {
		return id
	}

	authHeader := c.GetHeader("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return 0
	}
	claims, err := jwt.ParseToken([]byte(u.Config.Jwt.Secret), "access", parts[1])
	if err != nil {
		return 0
	}
	return claims.UserID
}
