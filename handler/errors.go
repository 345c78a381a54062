package handler

import (
	"Yatube/pkg/response"
	"Yatube/service"
	"errors"
	"net/http"
)

// asBizError 服务层错误到响应码的统一映射
func asBizError(err error) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return response.NewError(http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrSelfFollow),
		errors.Is(err, service.ErrInvalidRate),
		errors.Is(err, service.ErrEmptyText),
		errors.Is(err, service.ErrSlugTaken),
		errors.Is(err, service.ErrUserExists):
		return response.NewError(http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrBadLogin):
		return response.NewError(http.StatusUnauthorized, err.Error())
	default:
		return response.NewError(http.StatusInternalServerError, err.Error())
	}
}
