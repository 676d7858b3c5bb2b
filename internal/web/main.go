// Package web wires the fiber application: middleware, handlers and
// the graceful shutdown sequence.
package web

import (
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/coachly/coach-backend/internal/config"
	"github.com/coachly/coach-backend/internal/identity"
	fiberlogger "github.com/coachly/coach-backend/internal/logger/adapter/fiber"
	"github.com/coachly/coach-backend/internal/token"
	"github.com/coachly/coach-backend/internal/web/errhandler"
	"github.com/coachly/coach-backend/internal/web/handler"
	authhandler "github.com/coachly/coach-backend/internal/web/handler/auth"
	"github.com/coachly/coach-backend/internal/web/handler/health"
	"github.com/coachly/coach-backend/internal/web/handler/me"
)

const hoursPerDay = 24

// Service represents the web service.
type Service struct {
	App    *fiber.App
	cfg    *config.Config
	db     *gorm.DB
	tokens *token.Service
	alive  atomic.Bool
}

// Start starts the web service on the given address.
func (s *Service) Start(addr string) error {
	var doneFiber = make(chan bool)

	go func() {
		if err := s.App.Listen(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msgf("fiber listen error: %v", err)
		}

		doneFiber <- true
	}()

	<-doneFiber // wait for fiber to stop

	return nil
}

// WaitShutdown waits for SIGINT/SIGTERM and shuts the service down
// gracefully: the health endpoint returns 503 for the configured drain
// window before the listener stops.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	log.Info().Msgf(
		"graceful shutdown: return 503 for %d seconds to let the LB remove this instance from active targets",
		s.cfg.Webserver.ShutDownTime,
	)

	s.alive.Store(false)
	time.Sleep(time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second)

	serverShutdown := make(chan struct{})

	go func() {
		log.Info().Msg("stopping http server ...")

		if err := s.App.Shutdown(); err != nil {
			log.Error().Err(err).Msg("")
		}

		serverShutdown <- struct{}{}
	}()

	<-serverShutdown
	log.Info().Msg("http server was stopped ... good bye...")
}

// New creates a new web service with the given configuration.
func New(cfg *config.Config, db *gorm.DB, idc identity.Client) *Service {
	if cfg == nil {
		panic("config cannot be nil")
	}

	if db == nil {
		panic("db cannot be nil")
	}

	if idc == nil {
		panic("identity client cannot be nil")
	}

	errHandler := errhandler.New(cfg.DevMode)

	app := fiber.New(
		fiber.Config{
			ReadBufferSize: 8192,
			AppName:        cfg.Title,
			CaseSensitive:  true,
			Prefork:        false,
			Immutable:      true,
			ErrorHandler:   errHandler.Handle,
		},
	)

	// access logging
	app.Use(fiberlogger.New(fiberlogger.Config{
		Config:        cfg.Log,
		CheckAliveURI: health.Path,
	}))

	tokens := token.NewService(
		cfg.Auth.JWT.Secret,
		time.Duration(cfg.Auth.JWT.ExpiryDays)*hoursPerDay*time.Hour,
	)

	service := &Service{
		cfg:    cfg,
		App:    app,
		db:     db,
		tokens: tokens,
	}
	service.alive.Store(true)

	// service banner
	app.Get(handler.RootPath, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": cfg.Title})
	})

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// init handlers (they register their own routes)
	health.Handler.Init(app, &service.alive)
	authhandler.Handler.Init(app, cfg, db, idc, tokens)
	me.Handler.Init(app, tokens)

	// fixed responder for unmatched routes
	app.Use(errhandler.NotFound)

	return service
}
