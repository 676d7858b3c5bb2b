// Package token issues and verifies the signed session credentials that
// represent an authenticated session. Credentials are stateless: validity
// is determined by signature and expiry alone, there is no server-side
// session table and no revocation list.
package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL is the validity window of an issued credential.
const DefaultTTL = 7 * 24 * time.Hour

// signingMethod is pinned; tokens signed with anything else are invalid.
var signingMethod = jwt.SigningMethodHS256

// Session is the identity a verified credential asserts.
type Session struct {
	UserID string
	Email  string
}

// Claims is the JWT payload of a session credential.
type Claims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// Service signs and verifies session credentials with a single
// process-wide symmetric secret.
type Service struct {
	secret []byte
	ttl    time.Duration
}

// NewService creates a token service. A non-positive ttl falls back to
// DefaultTTL.
func NewService(secret string, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &Service{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue builds and signs a credential for the given user. The issued-at
// timestamp is now, expiry is now plus the service TTL.
func (s *Service) Issue(userID, email string) (string, error) {
	now := time.Now()

	claims := Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	return jwt.NewWithClaims(signingMethod, claims).SignedString(s.secret)
}

// Verify checks the credential's signature and expiry. It returns an
// explicit invalid result instead of an error: malformed encoding,
// signature mismatch and expiry are all expected, high-frequency
// outcomes the caller decides how to react to. Verify never panics on
// arbitrary input.
func (s *Service) Verify(credential string) (Session, bool) {
	claims := new(Claims)

	parsed, err := jwt.ParseWithClaims(
		credential,
		claims,
		func(_ *jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{signingMethod.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !parsed.Valid {
		return Session{}, false
	}

	return Session{UserID: claims.UserID, Email: claims.Email}, true
}
