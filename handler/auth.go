package handler

import (
	"Yatube/pkg/context"
	"Yatube/pkg/response"
	"Yatube/service"
	"Yatube/types"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Auth struct {
	AuthService service.IAuthService
}

func (a *Auth) RegisterRouter(r gin.IRouter) {
	g := r.Group("/v1/auth")
	g.POST("/register", context.Wrap(a.Register))
	g.POST("/login", context.Wrap(a.Login))
}

func (a *Auth) Register(c *gin.Context) error {
	var req types.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数错误: "+err.Error())
	}

	token, err := a.AuthService.Register(c.Request.Context(), &req)
	if err != nil {
		return asBizError(err)
	}

	response.Success(c, token)
	return nil
}

func (a *Auth) Login(c *gin.Context) error {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数错误: "+err.Error())
	}

	token, err := a.AuthService.Login(c.Request.Context(), &req)
	if err != nil {
		return asBizError(err)
	}

	response.Success(c, token)
	return nil
}
