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

type CommentsHandler struct {
	Config         *config.Config
	CommentService service.ICommentService
}

func (h *CommentsHandler) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	g := r.Group("/v1/posts/:post_id/comments")
	g.GET("", context.Wrap(h.ListComments))
	g.POST("", authorize, context.Wrap(h.CreateComment))
}

func (h *CommentsHandler) CreateComment(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	postID, err := parsePostID(c)
	if err != nil {
		return err
	}

	var req types.CreateCommentRequest
	if err := c.ShouldBind(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数错误: "+err.Error())
	}

	commentID, err := h.CommentService.CreateComment(c.Request.Context(), postID, userID, req.Text)
	if err != nil {
		return asBizError(err)
	}

	response.Success(c, gin.H{"comment_id": commentID})
	return nil
}

func (h *CommentsHandler) ListComments(c *gin.Context) error {
	postID, err := parsePostID(c)
	if err != nil {
		return err
	}

	comments, err := h.CommentService.ListComments(c.Request.Context(), postID)
	if err != nil {
		return asBizError(err)
	}

	response.Success(c, gin.H{"comments": comments})
	return nil
}
