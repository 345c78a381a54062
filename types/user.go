package types

type Profile struct {
	UserID        uint64 `json:"user_id"`
	Username      string `json:"username"`
	Nickname      string `json:"nickname"`
	PostCount     int64  `json:"post_count"`
	FollowerCount int64  `json:"follower_count"`
	IsFollowing   bool   `json:"is_following"`
	PostPage
}
