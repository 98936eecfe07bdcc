//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"oceanview/config"
	"oceanview/infras/kafka"
	"oceanview/infras/lock"
	"oceanview/infras/otel"
	"oceanview/infras/postgres"
	"oceanview/infras/redis"
	"oceanview/infras/s3"
	"oceanview/internal/domains/notification"
	"oceanview/internal/domains/payment"
	"oceanview/shared/cache"
	"oceanview/transport/http"
	"oceanview/transport/http/middleware"
	"oceanview/transport/http/router"

	bookingService "oceanview/internal/domains/booking/service"
	guestRepository "oceanview/internal/domains/guest/repository"
	guestService "oceanview/internal/domains/guest/service"
	reservationRepository "oceanview/internal/domains/reservation/repository"
	roomRepository "oceanview/internal/domains/room/repository"
	roomService "oceanview/internal/domains/room/service"

	adminHandler "oceanview/internal/handlers/admin"
	bookingHandler "oceanview/internal/handlers/booking"
	guestHandler "oceanview/internal/handlers/guest"
	roomHandler "oceanview/internal/handlers/room"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	kafka.New,
	s3.New,
	lock.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var guestDomain = wire.NewSet(
	guestRepository.New,
	guestService.New,
)

var bookingDomain = wire.NewSet(
	reservationRepository.New,
	payment.FromConfig,
	notification.New,
	bookingService.New,
)

var domains = wire.NewSet(
	roomDomain,
	guestDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	roomHandler.New,
	guestHandler.New,
	bookingHandler.New,
	adminHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
