package server

import (
	"Yatube/handler"
)

type Handlers struct {
	Auth     *handler.Auth
	User     *handler.User
	Post     *handler.Post
	Comments *handler.CommentsHandler
	Follow   *handler.Follow
	Rating   *handler.RatingHandler
	Feed     *handler.Feed
	Group    *handler.GroupHandler
}
