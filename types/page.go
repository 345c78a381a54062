package types

// DefaultPageSize 每页固定 10 条
const DefaultPageSize = 10

type PageRequest struct {
	Page     int `form:"page"`
	PageSize int `form:"pageSize"`
}

// Normalize 兜底：页码从 1 开始，页大小默认 10
func (r *PageRequest) Normalize() {
	if r.Page < 1 {
		r.Page = 1
	}
	if r.PageSize <= 0 {
		r.PageSize = DefaultPageSize
	}
}
