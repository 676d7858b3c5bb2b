package config

import (
	"github.com/coachly/coach-backend/internal/logger"
)

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	Title     string
	DB        DB
	Log       logger.Log
	Auth      Auth
	Webserver Webserver
}

// Webserver implement webserver settings.
type Webserver struct {
	Domain       string // domain name for the webserver
	Port         int    `validate:"required"` // listening port for the webserver
	ShutDownTime int    // LB drain wait time before shutdown, seconds
	URL          string `validate:"required"` // base url for the webserver
}

// Auth groups the identity provider credentials and the session signing
// settings. Loaded once at startup and treated as immutable afterwards.
type Auth struct {
	Google GoogleOAuth
	JWT    JWT
}

// GoogleOAuth holds the OAuth2 client credentials for Google sign-in.
type GoogleOAuth struct {
	ClientID     string `validate:"required"`
	ClientSecret string `validate:"required"`
}

// JWT holds the session credential signing settings.
type JWT struct {
	// Secret is the symmetric signing secret for session credentials.
	Secret string `validate:"required"`
	// ExpiryDays is the credential validity window; 0 means the token
	// service default of 7 days.
	ExpiryDays int `toml:"expiryDays"`
}
