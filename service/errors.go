package service

import "errors"

// 业务错误，handler 层统一映射成响应码
var (
	ErrNotFound    = errors.New("资源不存在")
	ErrSelfFollow  = errors.New("不能关注自己")
	ErrInvalidRate = errors.New("评分超出允许范围")
	ErrEmptyText   = errors.New("内容不能为空")
	ErrSlugTaken   = errors.New("slug 已被占用")
	ErrUserExists  = errors.New("用户名已存在")
	ErrBadLogin    = errors.New("用户名或密码错误")
)
