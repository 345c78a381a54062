package types

// AuthzOutcome 软失败授权结果：拒绝时给出跳转目标（帖子的只读视图），
// 而不是抛 403
type AuthzOutcome struct {
	Allowed    bool   `json:"allowed"`
	RedirectTo string `json:"redirect_to,omitempty"`
}

func Allowed() AuthzOutcome {
	return AuthzOutcome{Allowed: true}
}

func RedirectTo(view string) AuthzOutcome {
	return AuthzOutcome{RedirectTo: view}
}
