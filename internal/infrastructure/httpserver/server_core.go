package httpserver

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pokebingo/pokebingo/internal/core/ports"
	customMiddleware "github.com/pokebingo/pokebingo/internal/infrastructure/httpserver/middleware"
	"github.com/sirupsen/logrus"
)

type ServerConfig struct {
	Host         string
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	TLSCertFile  string
	TLSKeyFile   string
}

type ServerDeps struct {
	CardService      ports.CardService
	ImageService     ports.ImageService
	AnalyticsService ports.AnalyticsService
	HealthCheckers   []ports.HealthChecker
}

type Server struct {
	echo           *echo.Echo
	config         *ServerConfig
	logger         *logrus.Logger
	cardSvc        ports.CardService
	imageSvc       ports.ImageService
	analyticsSvc   ports.AnalyticsService
	middleware     *customMiddleware.MiddlewareCollection
	healthCheckers []ports.HealthChecker
}

func NewServer(serverConfig *ServerConfig, logger *logrus.Logger, deps ServerDeps) *Server {
	e := echo.New()
	e.HideBanner = true

	server := &Server{
		echo:           e,
		config:         serverConfig,
		logger:         logger,
		cardSvc:        deps.CardService,
		imageSvc:       deps.ImageService,
		analyticsSvc:   deps.AnalyticsService,
		healthCheckers: deps.HealthCheckers,
		middleware: customMiddleware.NewMiddlewareCollection(
			logger,
			GetRequestsTotal(),
			GetRequestDuration(),
		),
	}

	server.setupMiddleware()
	server.setupRoutes()

	return server
}
