// Package identity exchanges third-party identity assertions for
// verified claims. The Google implementation talks to the provider's
// token endpoint and validates ID tokens against its published keys;
// handlers depend on the Client interface so tests can substitute a
// provider double.
package identity

import "context"

// Verified is the transient identity a successful exchange produces.
// It is consumed by the user directory and never persisted itself.
type Verified struct {
	// ProviderID is the provider's stable subject identifier.
	ProviderID string
	// Email is the verified email address, always present.
	Email string
	// Name is the display name, nil when the provider omits it.
	Name *string
	// AvatarURL is the profile picture URL, nil when omitted.
	AvatarURL *string
}

// Client turns an authorization code or a raw ID token into a verified
// identity. Both calls perform network I/O to the external provider.
type Client interface {
	// ExchangeCode sends the authorization code to the provider's token
	// endpoint, then verifies the returned ID token.
	ExchangeCode(ctx context.Context, code string) (*Verified, error)

	// VerifyToken verifies a caller-supplied ID token directly,
	// bypassing the code exchange.
	VerifyToken(ctx context.Context, rawIDToken string) (*Verified, error)
}
