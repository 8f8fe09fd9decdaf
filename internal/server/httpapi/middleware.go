package httpapi

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/versa/internal/logging"
	"github.com/dmitrijs2005/versa/internal/server/models"
)

type ctxKey struct{}

// authenticate resolves the caller from the Authorization header and stores
// it in the request context for the handlers behind it.
func (s *Server) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		account, err := s.auth.Authenticate(r.Context(), r.Header.Get("Authorization"))
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		ctx := logging.WithFields(r.Context(), "account_id", account.ID)
		next.ServeHTTP(w, r.WithContext(context.WithValue(ctx, ctxKey{}, account)))
	})
}

func accountFrom(ctx context.Context) *models.Account {
	a, _ := ctx.Value(ctxKey{}).(*models.Account)
	return a
}
