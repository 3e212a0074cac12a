//go:build wireinject
// +build wireinject

package di

import (
	"hms/config"
	"hms/infras/jwt"
	"hms/infras/kafka"
	"hms/infras/otel"
	"hms/infras/redis"
	"hms/infras/s3"
	"hms/internal/domains/report/export"
	"hms/internal/domains/room/inventory"
	"hms/shared/cache"
	"hms/transport/http"
	"hms/transport/http/middleware"
	"hms/transport/http/router"

	"github.com/google/wire"

	authService "hms/internal/domains/auth/service"
	availabilityService "hms/internal/domains/availability/service"
	bookingRepository "hms/internal/domains/booking/repository"
	bookingService "hms/internal/domains/booking/service"
	reportService "hms/internal/domains/report/service"
	roomRepository "hms/internal/domains/room/repository"
	roomService "hms/internal/domains/room/service"
	authHandler "hms/internal/handlers/auth"
	availabilityHandler "hms/internal/handlers/availability"
	bookingHandler "hms/internal/handlers/booking"
	reportHandler "hms/internal/handlers/report"
	roomHandler "hms/internal/handlers/room"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	redis.New,
	jwt.New,
	s3.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.New,
	export.NewPublisher,
)

var roomDomain = wire.NewSet(
	inventory.Generate,
	roomRepository.New,
	roomService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var domains = wire.NewSet(
	roomDomain,
	bookingDomain,
	availabilityService.New,
	reportService.New,
	authService.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	roomHandler.New,
	availabilityHandler.New,
	bookingHandler.New,
	reportHandler.New,
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
