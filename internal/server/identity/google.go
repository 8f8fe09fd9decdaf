// Package identity signs users in through an external OpenID Connect
// provider and yields the verified email address the provider vouches for.
package identity

import (
	"context"
	"fmt"
	"strings"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/dmitrijs2005/versa/internal/common"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// Provider is the part of an OAuth2 identity provider the API needs.
type Provider interface {
	AuthCodeURL(state string) string
	// Exchange trades an authorization code for the user's verified email.
	Exchange(ctx context.Context, code string) (string, error)
}

// googleOIDC lists Google's published endpoints so that startup does not
// depend on the discovery document being reachable.
var googleOIDC = oidc.ProviderConfig{
	IssuerURL:   "https://accounts.google.com",
	AuthURL:     google.Endpoint.AuthURL,
	TokenURL:    google.Endpoint.TokenURL,
	UserInfoURL: "https://openidconnect.googleapis.com/v1/userinfo",
	JWKSURL:     "https://www.googleapis.com/oauth2/v3/certs",
	Algorithms:  []string{oidc.RS256},
}

// GoogleProvider implements Provider with Google's OpenID Connect endpoints.
// The email is read from the ID token returned with the access token, after
// its signature, issuer, audience and expiry have been checked.
type GoogleProvider struct {
	conf     *oauth2.Config
	verifier *oidc.IDTokenVerifier
}

type GoogleOption func(*oidc.ProviderConfig)

// WithEndpoint replaces Google's issuer, OAuth2 and key endpoints.
func WithEndpoint(pc oidc.ProviderConfig) GoogleOption {
	return func(c *oidc.ProviderConfig) { *c = pc }
}

func NewGoogleProvider(clientID, clientSecret, redirectURL string, opts ...GoogleOption) *GoogleProvider {
	pc := googleOIDC
	for _, o := range opts {
		o(&pc)
	}

	// keys are fetched lazily on the first verification
	op := pc.NewProvider(context.Background())

	return &GoogleProvider{
		conf: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       []string{oidc.ScopeOpenID, "email", "profile"},
			Endpoint:     op.Endpoint(),
		},
		verifier: op.Verifier(&oidc.Config{ClientID: clientID}),
	}
}

func (p *GoogleProvider) AuthCodeURL(state string) string {
	return p.conf.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

type emailClaims struct {
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
}

// Exchange returns common.ErrUpstreamIdentity, possibly wrapped, when the
// provider fails, the ID token does not verify or it does not vouch for a
// verified email.
func (p *GoogleProvider) Exchange(ctx context.Context, code string) (string, error) {
	tok, err := p.conf.Exchange(ctx, code)
	if err != nil {
		return "", fmt.Errorf("%w: exchange: %v", common.ErrUpstreamIdentity, err)
	}

	rawIDToken, ok := tok.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		return "", fmt.Errorf("%w: token response carries no id_token", common.ErrUpstreamIdentity)
	}

	idToken, err := p.verifier.Verify(ctx, rawIDToken)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrUpstreamIdentity, err)
	}

	var claims emailClaims
	if err := idToken.Claims(&claims); err != nil {
		return "", fmt.Errorf("%w: claims: %v", common.ErrUpstreamIdentity, err)
	}

	email := strings.TrimSpace(claims.Email)
	if email == "" || !claims.EmailVerified {
		return "", fmt.Errorf("%w: email missing or unverified", common.ErrUpstreamIdentity)
	}

	return email, nil
}
