package auth

import (
	"testing"
	"time"

	"github.com/dmitrijs2005/versa/internal/common"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func newService(t *testing.T, secret string) (*TokenService, *clock) {
	t.Helper()
	c := &clock{t: epoch}
	s, err := NewTokenService([]byte(secret), DefaultTTL, WithClock(c.now))
	require.NoError(t, err)
	return s, c
}

func TestNewTokenService_EmptySecret(t *testing.T) {
	_, err := NewTokenService(nil, time.Hour)
	assert.ErrorIs(t, err, ErrEmptySecret)
}

func TestNewTokenService_DefaultTTL(t *testing.T) {
	s, err := NewTokenService([]byte("k"), 0)
	require.NoError(t, err)
	assert.Equal(t, 7*24*time.Hour, s.TTL())
}

func TestIssueAndVerify_Success(t *testing.T) {
	t.Parallel()

	s, _ := newService(t, "super-secret")

	tok, err := s.Issue("user-123")
	require.NoError(t, err)

	got, err := s.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "user-123", got)
}

func TestIssue_ClaimsShape(t *testing.T) {
	s, _ := newService(t, "k")
	tok, err := s.Issue("u1")
	require.NoError(t, err)

	claims := &Claims{}
	_, _, err = jwt.NewParser().ParseUnverified(tok, claims)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.Subject)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, epoch, claims.IssuedAt.Time.UTC())
	assert.Equal(t, epoch.Add(DefaultTTL), claims.ExpiresAt.Time.UTC())
}

func TestVerify_ExpiryWindow(t *testing.T) {
	s, c := newService(t, "k")
	tok, err := s.Issue("u1")
	require.NoError(t, err)

	c.t = epoch.Add(DefaultTTL - time.Second)
	_, err = s.Verify(tok)
	assert.NoError(t, err, "one second before exp is still valid")

	c.t = epoch.Add(DefaultTTL)
	_, err = s.Verify(tok)
	assert.ErrorIs(t, err, common.ErrTokenExpired, "at exp")

	c.t = epoch.Add(DefaultTTL + time.Hour)
	_, err = s.Verify(tok)
	assert.ErrorIs(t, err, common.ErrTokenExpired, "after exp")
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	a, _ := newService(t, "right-secret")
	b, _ := newService(t, "wrong-secret")

	tok, err := a.Issue("u2")
	require.NoError(t, err)

	_, err = b.Verify(tok)
	assert.ErrorIs(t, err, common.ErrTokenInvalid)
}

func TestVerify_ForeignAlgorithms(t *testing.T) {
	s, _ := newService(t, "k")
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "u1",
			ExpiresAt: jwt.NewNumericDate(epoch.Add(time.Hour)),
		},
		UserID: "u1",
	}

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = s.Verify(none)
	assert.ErrorIs(t, err, common.ErrTokenInvalid)

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("k"))
	require.NoError(t, err)
	_, err = s.Verify(hs512)
	assert.ErrorIs(t, err, common.ErrTokenInvalid)
}

func TestVerify_BadClaims(t *testing.T) {
	s, _ := newService(t, "k")
	exp := jwt.NewNumericDate(epoch.Add(time.Hour))

	sign := func(c Claims) string {
		tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString([]byte("k"))
		require.NoError(t, err)
		return tok
	}

	tests := []struct {
		name   string
		claims Claims
	}{
		{"no subject", Claims{RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: exp}}},
		{"no expiry", Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "u1"}}},
		{"mismatched ids", Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "u1", ExpiresAt: exp}, UserID: "u2"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Verify(sign(tt.claims))
			assert.ErrorIs(t, err, common.ErrTokenInvalid)
		})
	}

	// userId alone is accepted
	got, err := s.Verify(sign(Claims{RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: exp}, UserID: "legacy"}))
	require.NoError(t, err)
	assert.Equal(t, "legacy", got)
}

func TestVerify_Malformed(t *testing.T) {
	s, _ := newService(t, "k")
	for _, tok := range []string{"", "not.a.jwt", "abc"} {
		_, err := s.Verify(tok)
		assert.ErrorIs(t, err, common.ErrTokenInvalid, tok)
	}
}
