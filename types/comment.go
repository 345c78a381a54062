package types

type CreateCommentRequest struct {
	Text string `json:"text" form:"text"`
}
