//go:build wireinject
// +build wireinject

package main

import (
	"Yatube/config"
	"Yatube/dao"
	"Yatube/handler"
	"Yatube/pkg/client"
	"Yatube/pkg/database"
	"Yatube/pkg/oss"
	"Yatube/pkg/server"
	"Yatube/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(

		client.NewRedisClient,
		oss.GetOssClient,
		config.ProvideOssConfig,
		config.ProvideRatingConfig,
		server.NewGinEngine,
		wire.Struct(new(handler.Auth), "*"),
		wire.Struct(new(handler.User), "*"),
		wire.Struct(new(handler.Post), "*"),
		wire.Struct(new(handler.CommentsHandler), "*"),
		wire.Struct(new(handler.Follow), "*"),
		wire.Struct(new(handler.RatingHandler), "*"),
		wire.Struct(new(handler.Feed), "*"),
		wire.Struct(new(handler.GroupHandler), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),

		dao.ProviderSet,

		service.ProviderSet,
		database.NewDB,
	)
	return nil
}
