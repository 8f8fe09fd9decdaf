// Package auth issues and verifies the HS256 session tokens that identify an
// account to the API.
package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/versa/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL is the lifetime of a session token.
const DefaultTTL = 7 * 24 * time.Hour

var ErrEmptySecret = errors.New("token signing secret is empty")

// Claims carries the standard claims plus the account id under "userId",
// which older clients read instead of "sub".
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"userId"`
}

// TokenService is immutable after construction and safe for concurrent use.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

type Option func(*TokenService)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *TokenService) { s.now = now }
}

func NewTokenService(secret []byte, ttl time.Duration, opts ...Option) (*TokenService, error) {
	if len(secret) == 0 {
		return nil, ErrEmptySecret
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	s := &TokenService{
		secret: append([]byte(nil), secret...),
		ttl:    ttl,
		now:    time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s, nil
}

func (s *TokenService) TTL() time.Duration { return s.ttl }

// Issue returns a signed token for accountID expiring TTL from now.
func (s *TokenService) Issue(accountID string) (string, error) {
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   accountID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		UserID: accountID,
	})

	return token.SignedString(s.secret)
}

// Verify checks the signature, algorithm and expiry of tokenString and
// returns the account id it was issued for. It returns common.ErrTokenExpired
// once now reaches exp and common.ErrTokenInvalid for anything else wrong.
func (s *TokenService) Verify(tokenString string) (string, error) {
	claims := &Claims{}

	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) {
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", common.ErrTokenExpired
		}
		return "", common.ErrTokenInvalid
	}

	subject := claims.Subject
	if subject == "" {
		subject = claims.UserID
	}
	if subject == "" || (claims.UserID != "" && claims.UserID != subject) {
		return "", common.ErrTokenInvalid
	}

	return subject, nil
}
