//go:build wireinject
// +build wireinject

package di

import (
	"kmc/config"
	"kmc/infras/jwt"
	"kmc/infras/kafka"
	"kmc/infras/mail"
	"kmc/infras/otel"
	"kmc/infras/postgres"
	"kmc/infras/redis"
	"kmc/infras/s3"
	"kmc/permissions"
	"kmc/shared/cache"
	"kmc/shared/event"
	"kmc/shared/session"
	"kmc/transport/http"
	"kmc/transport/http/middleware"
	"kmc/transport/http/router"

	"github.com/google/wire"

	adminRepository "kmc/internal/domains/admin/repository"
	authService "kmc/internal/domains/auth/service"
	dashboardService "kmc/internal/domains/dashboard/service"
	importerRepository "kmc/internal/domains/importer/repository"
	importerService "kmc/internal/domains/importer/service"
	mealRepository "kmc/internal/domains/meal/repository"
	mealService "kmc/internal/domains/meal/service"
	missionaryRepository "kmc/internal/domains/missionary/repository"
	missionaryService "kmc/internal/domains/missionary/service"
	reservationRepository "kmc/internal/domains/reservation/repository"
	reservationService "kmc/internal/domains/reservation/service"
	roomRepository "kmc/internal/domains/room/repository"
	roomService "kmc/internal/domains/room/service"
	vacationRepository "kmc/internal/domains/vacation/repository"
	vacationService "kmc/internal/domains/vacation/service"

	authHandler "kmc/internal/handlers/auth"
	dashboardHandler "kmc/internal/handlers/dashboard"
	importerHandler "kmc/internal/handlers/importer"
	mealHandler "kmc/internal/handlers/meal"
	missionaryHandler "kmc/internal/handlers/missionary"
	reservationHandler "kmc/internal/handlers/reservation"
	roomHandler "kmc/internal/handlers/room"
	vacationHandler "kmc/internal/handlers/vacation"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	mail.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	session.NewRedisStore,
	event.NewPublisher,
)

var authDomain = wire.NewSet(
	adminRepository.New,
	authService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var reservationDomain = wire.NewSet(
	reservationRepository.New,
	reservationService.New,
)

var dashboardDomain = wire.NewSet(
	dashboardService.New,
)

var importerDomain = wire.NewSet(
	importerRepository.New,
	importerService.New,
)

var mealDomain = wire.NewSet(
	mealRepository.New,
	mealService.New,
)

var vacationDomain = wire.NewSet(
	vacationRepository.New,
	vacationService.New,
)

var missionaryDomain = wire.NewSet(
	missionaryRepository.New,
	missionaryService.New,
)

var domains = wire.NewSet(
	authDomain,
	roomDomain,
	reservationDomain,
	dashboardDomain,
	importerDomain,
	mealDomain,
	vacationDomain,
	missionaryDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	roomHandler.New,
	dashboardHandler.New,
	reservationHandler.New,
	importerHandler.New,
	mealHandler.New,
	vacationHandler.New,
	missionaryHandler.New,
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

func InitializeConsumer() *event.Consumer {
	wire.Build(
		config.Get,
		otel.New,
		redis.New,
		kafka.New,
		cache.NewRedisCache,
		event.NewConsumer,
	)

	return &event.Consumer{}
}
