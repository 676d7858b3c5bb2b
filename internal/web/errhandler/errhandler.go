// Package errhandler is the single terminal point for request
// failures: it logs every error server-side in full and translates it
// into a client-safe JSON response. No other component formats an error
// response.
package errhandler

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/coachly/coach-backend/internal/apperr"
)

// Response is the error body shape of every failure response.
type Response struct {
	Error Payload `json:"error"`
}

// Payload carries the client-visible failure fields.
type Payload struct {
	Message string              `json:"message"`
	Code    string              `json:"code"`
	Errors  map[string][]string `json:"errors,omitempty"`
	Stack   string              `json:"stack,omitempty"`
}

// Handler converts failures into responses and log records.
type Handler struct {
	dev bool
}

// New creates an error handler. In dev mode responses include stack
// traces and the messages of bug-class failures.
func New(devMode bool) *Handler {
	return &Handler{dev: devMode}
}

// Handle is wired as the fiber app-level ErrorHandler. It logs the
// failure unconditionally, then dispatches on the taxonomy kind to
// build the response; untyped failures collapse to a 500 with a generic
// message outside dev mode.
func (h *Handler) Handle(c *fiber.Ctx, err error) error {
	h.logError(c, err)

	if e, ok := apperr.From(err); ok {
		return h.respondTyped(c, err, e)
	}

	var fe *fiber.Error
	if errors.As(err, &fe) {
		return h.respondFiber(c, fe)
	}

	return h.respondUntyped(c, err)
}

// logError records name, message, stack and cause for every failure,
// before any response formatting.
func (h *Handler) logError(c *fiber.Ctx, err error) {
	name := "error"
	if e, ok := apperr.From(err); ok {
		name = e.Code
	}

	ev := log.Error().
		Str("name", name).
		Str("message", err.Error()).
		Str("stack", fmt.Sprintf("%+v", err)).
		Str("method", c.Method()).
		Str("path", c.Path())

	if cause := errors.Unwrap(err); cause != nil {
		ev = ev.AnErr("cause", cause)
	}

	ev.Msg("request failed")
}

func (h *Handler) respondTyped(c *fiber.Ctx, err error, e *apperr.Error) error {
	payload := Payload{
		Message: e.Message,
		Code:    e.Code,
	}

	if e.Kind == apperr.KindValidation {
		payload.Errors = e.Errors
	}

	if h.dev {
		payload.Stack = fmt.Sprintf("%+v", err)
	}

	return c.Status(e.Kind.Status()).JSON(Response{Error: payload})
}

// respondFiber maps framework-raised errors (method not allowed, body
// limits, unmatched routes that slipped past the catch-all) onto the
// taxonomy's wire codes.
func (h *Handler) respondFiber(c *fiber.Ctx, fe *fiber.Error) error {
	return c.Status(fe.Code).JSON(Response{Error: Payload{
		Message: fe.Message,
		Code:    codeForStatus(fe.Code),
	}})
}

func (h *Handler) respondUntyped(c *fiber.Ctx, err error) error {
	// untyped failures are never operational: hide the message outside dev
	message := "An unexpected error occurred"
	if h.dev || apperr.IsOperational(err) {
		message = err.Error()
	}

	payload := Payload{
		Message: message,
		Code:    "INTERNAL_ERROR",
	}

	if h.dev {
		payload.Stack = fmt.Sprintf("%+v", err)
	}

	return c.Status(fiber.StatusInternalServerError).JSON(Response{Error: payload})
}

// NotFound is the fixed responder for unmatched routes, registered as
// the last handler in the chain.
func NotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(Response{Error: Payload{
		Message: fmt.Sprintf("Route %s %s not found", c.Method(), c.Path()),
		Code:    "NOT_FOUND",
	}})
}

func codeForStatus(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return "BAD_REQUEST"
	case fiber.StatusUnauthorized:
		return "UNAUTHORIZED"
	case fiber.StatusForbidden:
		return "FORBIDDEN"
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusConflict:
		return "CONFLICT"
	case fiber.StatusUnprocessableEntity:
		return "VALIDATION_ERROR"
	case fiber.StatusTooManyRequests:
		return "RATE_LIMIT_EXCEEDED"
	default:
		return "INTERNAL_ERROR"
	}
}
