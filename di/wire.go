//go:build wireinject
// +build wireinject

package di

import (
	"garage/config"
	"garage/infras/jwt"
	"garage/infras/kafka"
	"garage/infras/otel"
	"garage/infras/postgres"
	"garage/infras/redis"
	"garage/internal/bootstrap"
	"garage/permissions"
	"garage/pricing"
	"garage/shared/cache"
	"garage/transport/http"
	"garage/transport/http/middleware"
	"garage/transport/http/router"

	"github.com/google/wire"

	authService "garage/internal/domains/auth/service"
	bookingRepository "garage/internal/domains/booking/repository"
	bookingService "garage/internal/domains/booking/service"
	inventoryRepository "garage/internal/domains/inventory/repository"
	inventoryService "garage/internal/domains/inventory/service"
	testimonialRepository "garage/internal/domains/testimonial/repository"
	testimonialService "garage/internal/domains/testimonial/service"
	userRepository "garage/internal/domains/user/repository"
	vehicleHistoryRepository "garage/internal/domains/vehiclehistory/repository"
	vehicleHistoryService "garage/internal/domains/vehiclehistory/service"

	authHandler "garage/internal/handlers/auth"
	bookingHandler "garage/internal/handlers/booking"
	healthHandler "garage/internal/handlers/health"
	inventoryHandler "garage/internal/handlers/inventory"
	testimonialHandler "garage/internal/handlers/testimonial"
	vehicleHistoryHandler "garage/internal/handlers/vehiclehistory"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	permissions.Get,
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	pricing.Get,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var vehicleHistoryDomain = wire.NewSet(
	vehicleHistoryRepository.New,
	vehicleHistoryService.New,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
)

var inventoryDomain = wire.NewSet(
	inventoryRepository.New,
	inventoryService.New,
)

var testimonialDomain = wire.NewSet(
	testimonialRepository.New,
	testimonialService.New,
)

var domains = wire.NewSet(
	bookingDomain,
	vehicleHistoryDomain,
	authDomain,
	inventoryDomain,
	testimonialDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	bookingHandler.New,
	healthHandler.New,
	inventoryHandler.New,
	testimonialHandler.New,
	vehicleHistoryHandler.New,
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

func InitializeSeeder() *bootstrap.Seeder {
	wire.Build(
		configurations,
		postgres.New,
		otel.New,
		userRepository.New,
		vehicleHistoryRepository.New,
		bootstrap.NewSeeder,
	)

	return &bootstrap.Seeder{}
}
