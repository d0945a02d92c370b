//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"github.com/Reece-Nunez/meridian-travel-sub000/config"
	"github.com/Reece-Nunez/meridian-travel-sub000/infras/jwt"
	"github.com/Reece-Nunez/meridian-travel-sub000/infras/kafka"
	"github.com/Reece-Nunez/meridian-travel-sub000/infras/mailer"
	"github.com/Reece-Nunez/meridian-travel-sub000/infras/otel"
	"github.com/Reece-Nunez/meridian-travel-sub000/infras/postgres"
	"github.com/Reece-Nunez/meridian-travel-sub000/infras/redis"
	"github.com/Reece-Nunez/meridian-travel-sub000/infras/s3"
	"github.com/Reece-Nunez/meridian-travel-sub000/permissions"
	"github.com/Reece-Nunez/meridian-travel-sub000/shared/cache"
	"github.com/Reece-Nunez/meridian-travel-sub000/transport/http"
	"github.com/Reece-Nunez/meridian-travel-sub000/transport/http/middleware"
	"github.com/Reece-Nunez/meridian-travel-sub000/transport/http/router"

	authService "github.com/Reece-Nunez/meridian-travel-sub000/internal/domains/auth/service"
	bookingRepository "github.com/Reece-Nunez/meridian-travel-sub000/internal/domains/booking/repository"
	bookingService "github.com/Reece-Nunez/meridian-travel-sub000/internal/domains/booking/service"
	contentRepository "github.com/Reece-Nunez/meridian-travel-sub000/internal/domains/content/repository"
	contentService "github.com/Reece-Nunez/meridian-travel-sub000/internal/domains/content/service"
	destinationRepository "github.com/Reece-Nunez/meridian-travel-sub000/internal/domains/destination/repository"
	destinationService "github.com/Reece-Nunez/meridian-travel-sub000/internal/domains/destination/service"
	notificationService "github.com/Reece-Nunez/meridian-travel-sub000/internal/domains/notification/service"
	quoteRepository "github.com/Reece-Nunez/meridian-travel-sub000/internal/domains/quote/repository"
	quoteService "github.com/Reece-Nunez/meridian-travel-sub000/internal/domains/quote/service"
	quoteTokenRepository "github.com/Reece-Nunez/meridian-travel-sub000/internal/domains/quotetoken/repository"
	quoteTokenService "github.com/Reece-Nunez/meridian-travel-sub000/internal/domains/quotetoken/service"
	tourRepository "github.com/Reece-Nunez/meridian-travel-sub000/internal/domains/tour/repository"
	tourService "github.com/Reece-Nunez/meridian-travel-sub000/internal/domains/tour/service"
	userRepository "github.com/Reece-Nunez/meridian-travel-sub000/internal/domains/user/repository"

	authHandler "github.com/Reece-Nunez/meridian-travel-sub000/internal/handlers/auth"
	bookingHandler "github.com/Reece-Nunez/meridian-travel-sub000/internal/handlers/booking"
	contentHandler "github.com/Reece-Nunez/meridian-travel-sub000/internal/handlers/content"
	destinationHandler "github.com/Reece-Nunez/meridian-travel-sub000/internal/handlers/destination"
	quoteHandler "github.com/Reece-Nunez/meridian-travel-sub000/internal/handlers/quote"
	quoteTokenHandler "github.com/Reece-Nunez/meridian-travel-sub000/internal/handlers/quotetoken"
	tourHandler "github.com/Reece-Nunez/meridian-travel-sub000/internal/handlers/tour"
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
	s3.New,
	mailer.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
)

var quoteDomain = wire.NewSet(
	quoteRepository.New,
	quoteService.New,
	quoteTokenRepository.New,
	quoteTokenService.New,
	notificationService.New,
)

var catalogDomain = wire.NewSet(
	destinationRepository.New,
	destinationService.New,
	tourRepository.New,
	tourService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var contentDomain = wire.NewSet(
	contentRepository.New,
	contentService.New,
)

var domains = wire.NewSet(
	authDomain,
	quoteDomain,
	catalogDomain,
	bookingDomain,
	contentDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	quoteHandler.New,
	quoteTokenHandler.New,
	destinationHandler.New,
	tourHandler.New,
	bookingHandler.New,
	contentHandler.New,
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
