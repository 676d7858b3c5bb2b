package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"

	"github.com/coachly/coach-backend/internal/apperr"
)

// GoogleIssuer is Google's OIDC discovery URL.
const GoogleIssuer = "https://accounts.google.com"

// ErrNoIDToken is returned when the token endpoint response carries no
// ID token. This usually means the auth code was not requested with the
// openid scope.
var ErrNoIDToken = errors.New("no id_token in token response")

// GoogleConfig holds the OAuth2 client credentials for the Google
// identity provider.
type GoogleConfig struct {
	// ClientID is the OAuth2 client identifier; ID token audiences are
	// pinned to it.
	ClientID string
	// ClientSecret is the OAuth2 client secret used for the code exchange.
	ClientSecret string
}

// Google verifies Google identity assertions.
type Google struct {
	oauth2   oauth2.Config
	verifier *oidc.IDTokenVerifier
}

// NewGoogle creates a Google identity client. It fetches the provider's
// discovery document, so it needs network access at construction time.
func NewGoogle(ctx context.Context, cfg GoogleConfig) (*Google, error) {
	provider, err := oidc.NewProvider(ctx, GoogleIssuer)
	if err != nil {
		return nil, fmt.Errorf("failed to create OIDC provider: %w", err)
	}

	verifier := provider.Verifier(&oidc.Config{
		ClientID: cfg.ClientID,
	})

	// no redirect URL: codes come from native clients doing the
	// authorization leg themselves
	oauth2Config := oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		Endpoint:     provider.Endpoint(),
		Scopes:       []string{oidc.ScopeOpenID, "profile", "email"},
	}

	return &Google{
		oauth2:   oauth2Config,
		verifier: verifier,
	}, nil
}

// ExchangeCode exchanges the authorization code at Google's token
// endpoint and verifies the ID token in the response. Provider
// rejections surface as Unauthorized, never Internal: a refused code is
// a client-data condition, not a bug.
func (g *Google) ExchangeCode(ctx context.Context, code string) (*Verified, error) {
	oauth2Token, err := g.oauth2.Exchange(ctx, code)
	if err != nil {
		return nil, apperr.Unauthorized("Failed to exchange authorization code").WithCause(err)
	}

	rawIDToken, ok := oauth2Token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		return nil, apperr.Unauthorized("Failed to get ID token from Google").WithCause(ErrNoIDToken)
	}

	return g.VerifyToken(ctx, rawIDToken)
}

// VerifyToken verifies a raw ID token against Google's public keys with
// the audience pinned to the configured client ID.
func (g *Google) VerifyToken(ctx context.Context, rawIDToken string) (*Verified, error) {
	idToken, err := g.verifier.Verify(ctx, rawIDToken)
	if err != nil {
		return nil, apperr.Unauthorized("Failed to verify ID token").WithCause(err)
	}

	var claims googleClaims
	if err = idToken.Claims(&claims); err != nil {
		return nil, apperr.Unauthorized("Failed to parse ID token claims").WithCause(err)
	}

	return claims.verified()
}

// googleClaims is the subset of ID token claims the service consumes.
type googleClaims struct {
	Sub     string `json:"sub"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// verified maps claims to a Verified identity, requiring subject and
// email to be present.
func (c googleClaims) verified() (*Verified, error) {
	if c.Sub == "" || c.Email == "" {
		return nil, apperr.Unauthorized("Invalid Google token payload")
	}

	v := &Verified{
		ProviderID: c.Sub,
		Email:      c.Email,
	}

	if c.Name != "" {
		v.Name = &c.Name
	}

	if c.Picture != "" {
		v.AvatarURL = &c.Picture
	}

	return v, nil
}
