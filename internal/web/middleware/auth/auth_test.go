package auth_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coachly/coach-backend/internal/token"
	"github.com/coachly/coach-backend/internal/web/errhandler"
	"github.com/coachly/coach-backend/internal/web/middleware/auth"
)

func newGuardedApp(tokens *token.Service) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: errhandler.New(false).Handle,
	})

	app.Get("/protected", auth.Middleware(tokens), func(c *fiber.Ctx) error {
		sess, ok := auth.Current(c)
		if !ok {
			return fiber.ErrInternalServerError
		}

		return c.JSON(fiber.Map{"userId": sess.UserID, "email": sess.Email})
	})

	return app
}

func TestGuardRejections(t *testing.T) {
	tokens := token.NewService("guard-secret", time.Hour)
	app := newGuardedApp(tokens)

	testCases := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"wrong scheme", "Basic dXNlcjpwYXNz"},
		{"bare token without scheme", "some-token"},
		{"garbage bearer token", "Bearer not-a-valid-token"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)

			defer resp.Body.Close()

			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			var out errhandler.Response
			require.NoError(t, json.Unmarshal(body, &out))
			assert.Equal(t, "UNAUTHORIZED", out.Error.Code)
		})
	}
}

func TestGuardAttachesSession(t *testing.T) {
	tokens := token.NewService("guard-secret", time.Hour)
	app := newGuardedApp(tokens)

	credential, err := tokens.Issue("user-1", "a@x.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+credential)

	resp, err := app.Test(req)
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "user-1", out["userId"])
	assert.Equal(t, "a@x.com", out["email"])
}

func TestGuardRejectsExpiredCredential(t *testing.T) {
	issuer := token.NewService("guard-secret", time.Hour)
	verifier := token.NewService("other-secret", time.Hour)
	app := newGuardedApp(verifier)

	credential, err := issuer.Issue("user-1", "a@x.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+credential)

	resp, err := app.Test(req)
	require.NoError(t, err)

	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
