// Package me implements the protected endpoint returning the identity
// asserted by the caller's session credential. The token is the source
// of truth here: no directory lookup happens, so values embedded in the
// credential persist until it expires.
package me

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/coachly/coach-backend/internal/token"
	"github.com/coachly/coach-backend/internal/web/handler"
	authmw "github.com/coachly/coach-backend/internal/web/middleware/auth"
)

// Path is the path of the current-user endpoint.
const Path = "/me"

// userPayload mirrors the verified session claims.
type userPayload struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
}

// response is the current-user response body.
type response struct {
	User userPayload `json:"user"`
}

// Service is the current-user handler service.
type Service struct {
	tokens *token.Service
}

// Handler is the current-user handler.
var Handler = Service{}

// Init registers the route behind the auth guard.
func (s *Service) Init(app *fiber.App, tokens *token.Service) {
	if app == nil || tokens == nil {
		log.Fatal().Msg(handler.ErrNilDepsFatalLogMsg)
		return
	}

	s.tokens = tokens

	app.Get(Path, authmw.Middleware(tokens), s.Get)
}

// Get returns the session identity attached by the guard.
func (s *Service) Get(c *fiber.Ctx) error {
	sess, ok := authmw.Current(c)
	if !ok {
		// the guard always attaches a session before this handler runs
		return fiber.ErrUnauthorized
	}

	return c.JSON(response{
		User: userPayload{
			UserID: sess.UserID,
			Email:  sess.Email,
		},
	})
}
