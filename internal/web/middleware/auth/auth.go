// Package auth provides the request guard for protected routes: it
// requires a valid Bearer session credential and attaches the verified
// identity to the request context.
package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/coachly/coach-backend/internal/apperr"
	"github.com/coachly/coach-backend/internal/token"
)

// bearerPrefix is the only accepted Authorization scheme.
const bearerPrefix = "Bearer "

// localsKey is where the verified session lives in fiber locals.
const localsKey = "currentSession"

// Middleware is a fiber middleware that checks for a valid session
// credential. The token itself is the source of truth for the user id
// and email on every request; the user directory is never consulted
// here.
func Middleware(tokens *token.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(header, bearerPrefix) {
			return apperr.Unauthorized("Missing or invalid authorization header")
		}

		sess, ok := tokens.Verify(strings.TrimPrefix(header, bearerPrefix))
		if !ok {
			return apperr.Unauthorized("Invalid or expired token")
		}

		c.Locals(localsKey, sess)

		return c.Next()
	}
}

// Current returns the verified session attached by Middleware.
func Current(c *fiber.Ctx) (token.Session, bool) {
	sess, ok := c.Locals(localsKey).(token.Session)
	return sess, ok
}
