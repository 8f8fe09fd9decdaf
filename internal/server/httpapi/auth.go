package httpapi

import (
	"crypto/subtle"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/versa/internal/common"
)

const (
	stateCookie = "versa_oauth_state"

	// only ever sent to the frontend login page
	codeInvalidState = "INVALID_STATE"
)

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	res, err := s.accounts.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	JSON(w, http.StatusCreated, authResponse{Token: res.Token, User: toUser(res.Account)})
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	res, err := s.accounts.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	JSON(w, http.StatusOK, authResponse{Token: res.Token, User: toUser(res.Account)})
}

// googleLogin starts the authorization code flow. The state value is kept
// in a short-lived cookie and checked on the callback.
func (s *Server) googleLogin(w http.ResponseWriter, r *http.Request) {
	state, err := common.MakeRandHexString(16)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     stateCookie,
		Value:    state,
		Path:     "/api/auth/google",
		MaxAge:   600,
		HttpOnly: true,
		Secure:   !s.opts.Development,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, s.provider.AuthCodeURL(state), http.StatusFound)
}

// googleCallback finishes the flow and hands the session token to the
// frontend as a query parameter. Failures go to the frontend login page.
func (s *Server) googleCallback(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{Name: stateCookie, Path: "/api/auth/google", MaxAge: -1})

	q := r.URL.Query()
	if e := q.Get("error"); e != "" {
		s.log.Warn(r.Context(), "identity provider returned error", "error", e)
		s.redirectFailure(w, r, common.CodeUpstreamIdentity)
		return
	}

	c, err := r.Cookie(stateCookie)
	state := q.Get("state")
	if err != nil || state == "" || subtle.ConstantTimeCompare([]byte(c.Value), []byte(state)) != 1 {
		s.redirectFailure(w, r, codeInvalidState)
		return
	}

	code := q.Get("code")
	if code == "" {
		s.redirectFailure(w, r, common.CodeInvalidInput)
		return
	}

	email, err := s.provider.Exchange(r.Context(), code)
	if err != nil {
		s.log.Warn(r.Context(), "identity exchange failed", "error", err)
		s.redirectFailure(w, r, common.CodeUpstreamIdentity)
		return
	}

	res, _, err := s.accounts.LoginExternal(r.Context(), email)
	if err != nil {
		s.log.Error(r.Context(), "external login failed", "error", err)
		s.redirectFailure(w, r, common.ErrorCode(err))
		return
	}

	http.Redirect(w, r, withQuery(s.opts.FrontendCallbackURL, "token", res.Token), http.StatusFound)
}

func (s *Server) redirectFailure(w http.ResponseWriter, r *http.Request, code string) {
	http.Redirect(w, r, withQuery(s.opts.FrontendLoginURL, "error", code), http.StatusFound)
}

func withQuery(base, key, value string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	q := u.Query()
	q.Set(key, value)
	u.RawQuery = q.Encode()
	return u.String()
}
