package handler

import (
	"Yatube/config"
	"Yatube/middleware"
	"Yatube/pkg/context"
	"Yatube/pkg/response"
	"Yatube/service"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type RatingHandler struct {
	Config        *config.Config
	RatingService service.IRatingService
}

func (h *RatingHandler) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	g := r.Group("/v1/posts/:post_id/rate")
	g.POST("/:rate", authorize, context.Wrap(h.RatePost))
	g.DELETE("", authorize, context.Wrap(h.UnratePost))
}

// RatePost 评分走路径参数；非数字或越界在进聚合器之前就拒绝
func (h *RatingHandler) RatePost(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	postID, err := parsePostID(c)
	if err != nil {
		return err
	}

	rate, err := strconv.Atoi(c.Param("rate"))
	if err != nil {
		return response.NewError(http.StatusBadRequest, "rate 格式错误")
	}
	if rate < h.Config.Rating.Min || rate > h.Config.Rating.Max {
		return response.NewError(http.StatusBadRequest, "评分超出允许范围")
	}

	if err := h.RatingService.Rate(c.Request.Context(), postID, userID, rate); err != nil {
		return asBizError(err)
	}

	response.Success(c, gin.H{"rated": rate})
	return nil
}

func (h *RatingHandler) UnratePost(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	postID, err := parsePostID(c)
	if err != nil {
		return err
	}

	if err := h.RatingService.Unrate(c.Request.Context(), postID, userID); err != nil {
		return asBizError(err)
	}

	response.Success(c, gin.H{"rated": false})
	return nil
}
