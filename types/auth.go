package types

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=1,max=150"`
	Password string `json:"password" binding:"required,min=6,max=72"`
	Nickname string `json:"nickname" binding:"omitempty,max=100"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type TokenResponse struct {
	UserID      uint64 `json:"user_id"`
	Username    string `json:"username"`
	AccessToken string `json:"access_token"`
}
