// Package daemon assembles the process: database, identity provider
// client and the web service.
package daemon

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/coachly/coach-backend/internal/config"
	"github.com/coachly/coach-backend/internal/db/dsn"
	"github.com/coachly/coach-backend/internal/db/models"
	"github.com/coachly/coach-backend/internal/identity"
	"github.com/coachly/coach-backend/internal/web"
)

// Daemon represents the main application daemon.
type Daemon struct {
	cfg        *config.Config
	webService *web.Service
}

// Start starts the Daemon's web service and blocks until shutdown.
func (d *Daemon) Start() error {
	go d.webService.WaitShutdown()

	return d.webService.Start(fmt.Sprintf(":%d", d.cfg.Webserver.Port))
}

// New creates a new Daemon instance with the provided configuration.
func New(cfg *config.Config) (*Daemon, error) {
	if cfg == nil {
		log.Fatal().Msg("config is nil")
		return nil, nil
	}

	db, err := openDB(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	if err = db.AutoMigrate(&models.User{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	idc, err := identity.NewGoogle(context.Background(), identity.GoogleConfig{
		ClientID:     cfg.Auth.Google.ClientID,
		ClientSecret: cfg.Auth.Google.ClientSecret,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize google identity client: %w", err)
	}

	log.Info().Msg("google identity provider initialized")

	return &Daemon{
		cfg:        cfg,
		webService: web.New(cfg, db, idc),
	}, nil
}

// openDB opens the configured gorm engine. TranslateError is on so the
// user directory can recognize uniqueness conflicts portably.
func openDB(cfg *config.Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{TranslateError: true}

	if cfg.DB.GormEngine == "mysql" {
		return gorm.Open(mysql.Open(dsn.Create(cfg)), gormCfg)
	}

	return gorm.Open(postgres.Open(dsn.Create(cfg)), gormCfg)
}
