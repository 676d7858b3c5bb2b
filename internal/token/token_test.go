package token

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-signing-secret"

func TestIssueVerifyRoundTrip(t *testing.T) {
	svc := NewService(testSecret, 0)

	credential, err := svc.Issue("user-1", "a@x.com")
	require.NoError(t, err)
	require.NotEmpty(t, credential)

	sess, ok := svc.Verify(credential)
	require.True(t, ok)
	assert.Equal(t, "user-1", sess.UserID)
	assert.Equal(t, "a@x.com", sess.Email)
}

func TestVerifyExpiredCredential(t *testing.T) {
	// NewService clamps non-positive TTLs, so force an already-expired window.
	svc := NewService(testSecret, time.Hour)
	svc.ttl = -time.Minute

	credential, err := svc.Issue("user-1", "a@x.com")
	require.NoError(t, err)

	_, ok := svc.Verify(credential)
	assert.False(t, ok)
}

func TestVerifyRejectsTamperedSignature(t *testing.T) {
	svc := NewService(testSecret, time.Hour)

	credential, err := svc.Issue("user-1", "a@x.com")
	require.NoError(t, err)

	parts := strings.Split(credential, ".")
	require.Len(t, parts, 3)

	// flip every byte of the signature segment in turn
	sig := []byte(parts[2])
	for i := range sig {
		mutated := make([]byte, len(sig))
		copy(mutated, sig)

		if mutated[i] == 'A' {
			mutated[i] = 'B'
		} else {
			mutated[i] = 'A'
		}

		tampered := parts[0] + "." + parts[1] + "." + string(mutated)
		if tampered == credential {
			continue
		}

		_, ok := svc.Verify(tampered)
		assert.False(t, ok, "byte %d", i)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	issuer := NewService(testSecret, time.Hour)
	verifier := NewService("other-secret", time.Hour)

	credential, err := issuer.Issue("user-1", "a@x.com")
	require.NoError(t, err)

	_, ok := verifier.Verify(credential)
	assert.False(t, ok)
}

func TestVerifyMalformedInput(t *testing.T) {
	svc := NewService(testSecret, time.Hour)

	testCases := []struct {
		name       string
		credential string
	}{
		{"empty", ""},
		{"garbage", "not-a-token"},
		{"two segments", "aaaa.bbbb"},
		{"binary junk", string([]byte{0x00, 0xff, 0x13, 0x37})},
		{"header only", "eyJhbGciOiJIUzI1NiJ9.."},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, ok := svc.Verify(tc.credential)
			assert.False(t, ok)
		})
	}
}

func TestIssueSetsSevenDayDefaultExpiry(t *testing.T) {
	svc := NewService(testSecret, 0)

	credential, err := svc.Issue("user-1", "a@x.com")
	require.NoError(t, err)

	// round trip still valid well within the window
	_, ok := svc.Verify(credential)
	assert.True(t, ok)
	assert.Equal(t, DefaultTTL, svc.ttl)
}
