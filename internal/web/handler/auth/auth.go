// Package auth implements the login endpoint: it exchanges a Google
// identity assertion for a locally issued session credential,
// provisioning the user record on first sign-in.
package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/coachly/coach-backend/internal/apperr"
	"github.com/coachly/coach-backend/internal/config"
	"github.com/coachly/coach-backend/internal/db/controller/user"
	"github.com/coachly/coach-backend/internal/identity"
	"github.com/coachly/coach-backend/internal/token"
	"github.com/coachly/coach-backend/internal/web/handler"
)

// Path is the login endpoint path.
const Path = "/auth/google"

// request is the login request body. Exactly one of the fields is
// required; when both are present the code takes precedence.
type request struct {
	Code    string `json:"code"`
	IDToken string `json:"idToken"`
}

// userPayload is the user object of the login response.
type userPayload struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	Name      *string `json:"name"`
	AvatarURL *string `json:"avatarUrl"`
}

// response is the login response body.
type response struct {
	AccessToken string      `json:"accessToken"`
	User        userPayload `json:"user"`
}

// Service is the login handler service.
type Service struct {
	cfg      *config.Config
	db       *gorm.DB
	identity identity.Client
	tokens   *token.Service
}

// Handler is the login handler.
var Handler = Service{}

// Init initializes the login handler and registers its route.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, idc identity.Client, tokens *token.Service) {
	if app == nil || cfg == nil || db == nil || idc == nil || tokens == nil {
		log.Fatal().Msg(handler.ErrNilDepsFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.db = db
	s.identity = idc
	s.tokens = tokens

	app.Post(Path, s.Post)
}

// Post handles the login request: verify the assertion with the
// provider, find or create the local user, issue the session
// credential.
func (s *Service) Post(c *fiber.Ctx) error {
	req := new(request)
	if err := c.BodyParser(req); err != nil {
		return apperr.BadRequest("Invalid request body").WithCause(err)
	}

	var (
		verified *identity.Verified
		err      error
	)

	switch {
	case req.Code != "":
		// code wins when both are supplied
		verified, err = s.identity.ExchangeCode(c.UserContext(), req.Code)
	case req.IDToken != "":
		verified, err = s.identity.VerifyToken(c.UserContext(), req.IDToken)
	default:
		return apperr.BadRequest("Missing code or idToken")
	}

	if err != nil {
		return err
	}

	u, err := user.FindOrCreate(s.db, verified)
	if err != nil {
		return err
	}

	accessToken, err := s.tokens.Issue(u.ID, u.Email)
	if err != nil {
		return apperr.Internal("Failed to issue session credential", false).WithCause(err)
	}

	log.Info().Str("user_id", u.ID).Msg("user logged in via google")

	return c.JSON(response{
		AccessToken: accessToken,
		User: userPayload{
			ID:        u.ID,
			Email:     u.Email,
			Name:      u.Name,
			AvatarURL: u.AvatarURL,
		},
	})
}
