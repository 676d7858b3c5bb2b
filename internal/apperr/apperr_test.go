package apperr

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindStatus(t *testing.T) {
	testCases := []struct {
		name        string
		err         *Error
		status      int
		code        string
		operational bool
	}{
		{"bad request", BadRequest("bad"), http.StatusBadRequest, "BAD_REQUEST", true},
		{"unauthorized", Unauthorized("nope"), http.StatusUnauthorized, "UNAUTHORIZED", true},
		{"forbidden", Forbidden("denied"), http.StatusForbidden, "FORBIDDEN", true},
		{"not found", NotFound("missing"), http.StatusNotFound, "NOT_FOUND", true},
		{"conflict", Conflict("exists"), http.StatusConflict, "CONFLICT", true},
		{"validation", Validation("invalid", nil), http.StatusUnprocessableEntity, "VALIDATION_ERROR", true},
		{"rate limited", RateLimited("slow down"), http.StatusTooManyRequests, "RATE_LIMIT_EXCEEDED", true},
		{"internal operational", Internal("boom", true), http.StatusInternalServerError, "INTERNAL_ERROR", true},
		{"internal bug", Internal("boom", false), http.StatusInternalServerError, "INTERNAL_ERROR", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.status, tc.err.Kind.Status())
			assert.Equal(t, tc.code, tc.err.Code)
			assert.Equal(t, tc.operational, tc.err.Operational)
		})
	}
}

func TestValidationCarriesFieldMap(t *testing.T) {
	errs := map[string][]string{"email": {"invalid"}}
	err := Validation("Validation failed", errs)

	require.Equal(t, KindValidation, err.Kind)
	assert.Equal(t, errs, err.Errors)
}

func TestFromUnwrapsWrappedErrors(t *testing.T) {
	inner := Unauthorized("token rejected")
	wrapped := errors.Wrap(inner, "login failed")

	e, ok := From(wrapped)
	require.True(t, ok)
	assert.Equal(t, KindUnauthorized, e.Kind)
	assert.True(t, IsKind(wrapped, KindUnauthorized))
}

func TestWithCauseKeepsChain(t *testing.T) {
	cause := errors.New("connection refused")
	err := Unauthorized("provider rejected code").WithCause(cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "UNAUTHORIZED")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestIsOperational(t *testing.T) {
	assert.True(t, IsOperational(BadRequest("bad")))
	assert.False(t, IsOperational(Internal("bug", false)))
	assert.False(t, IsOperational(errors.New("untyped")))
}
