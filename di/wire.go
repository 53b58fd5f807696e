//go:build wireinject
// +build wireinject

package di

import (
	"roombook/config"
	"roombook/infras/database"
	"roombook/infras/kafka"
	"roombook/infras/otel"
	"roombook/infras/redis"
	"roombook/infras/s3"
	"roombook/shared/cache"
	"roombook/transport/http"
	"roombook/transport/http/middleware"
	"roombook/transport/http/router"

	bookingRepository "roombook/internal/domains/booking/repository"
	bookingService "roombook/internal/domains/booking/service"
	roomService "roombook/internal/domains/room/service"

	"github.com/google/wire"

	bookingHandler "roombook/internal/handlers/booking"
	roomHandler "roombook/internal/handlers/room"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	database.New,
	otel.New,
	redis.New,
	s3.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var roomDomain = wire.NewSet(
	roomService.New,
)

var domains = wire.NewSet(
	bookingDomain,
	roomDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	bookingHandler.New,
	roomHandler.New,
	router.New,
)

func InitializeService() (*http.HTTP, error) {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}, nil
}
