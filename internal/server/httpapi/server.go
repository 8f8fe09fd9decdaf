// Package httpapi is the JSON-over-HTTP transport. Handlers decode and
// validate requests, call the services and map their errors to statuses.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/dmitrijs2005/versa/internal/logging"
	"github.com/dmitrijs2005/versa/internal/server/identity"
	"github.com/dmitrijs2005/versa/internal/server/models"
	"github.com/dmitrijs2005/versa/internal/server/observability"
	"github.com/dmitrijs2005/versa/internal/server/services"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-playground/validator/v10"
	"github.com/unrolled/secure"
)

type AccountService interface {
	Register(ctx context.Context, email, password string) (*services.AuthResult, error)
	Login(ctx context.Context, email, password string) (*services.AuthResult, error)
	LoginExternal(ctx context.Context, email string) (*services.AuthResult, bool, error)
	Me(ctx context.Context, account *models.Account) (*models.Account, error)
	Credits(ctx context.Context, account *models.Account) ([]models.CreditEntry, error)
}

type PostService interface {
	Create(ctx context.Context, actor *models.Account, content string, creditsUsed int) (*models.Post, *models.Account, error)
	Edit(ctx context.Context, actor *models.Account, postID, content string) (*models.Post, error)
	Delete(ctx context.Context, actor *models.Account, postID string) (*models.Account, error)
	ListMine(ctx context.Context, actor *models.Account) ([]models.Post, error)
	ListAll(ctx context.Context, actor *models.Account) ([]models.Post, error)
}

type Authenticator interface {
	Authenticate(ctx context.Context, header string) (*models.Account, error)
}

type Options struct {
	AllowedOrigins      []string
	DefaultPostCost     int
	FrontendCallbackURL string
	FrontendLoginURL    string
	Development         bool
	RequestTimeout      time.Duration
}

type Server struct {
	accounts AccountService
	posts    PostService
	auth     Authenticator
	provider identity.Provider
	metrics  *observability.Metrics
	opts     Options
	log      logging.Logger
	validate *validator.Validate
}

// NewServer wires the transport. provider may be nil, in which case the
// external sign-in routes are not mounted.
func NewServer(accounts AccountService, posts PostService, auth Authenticator, provider identity.Provider,
	metrics *observability.Metrics, opts Options, log logging.Logger) *Server {
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 30 * time.Second
	}
	return &Server{
		accounts: accounts,
		posts:    posts,
		auth:     auth,
		provider: provider,
		metrics:  metrics,
		opts:     opts,
		log:      log.With("module", "http"),
		validate: newValidator(),
	}
}

// Handler builds the chi router with the full middleware stack.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	secureMiddleware := secure.New(secure.Options{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
		SSLProxyHeaders:    map[string]string{"X-Forwarded-Proto": "https"},
		IsDevelopment:      s.opts.Development,
	})

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(s.metrics.Middleware)
	r.Use(secureMiddleware.Handler)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.opts.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(middleware.Timeout(s.opts.RequestTimeout))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		JSON(w, http.StatusOK, map[string]string{"status": "OK"})
	})
	r.Handle("/metrics", s.metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", s.register)
		r.Post("/auth/login", s.login)
		if s.provider != nil {
			r.Get("/auth/google/login", s.googleLogin)
			r.Get("/auth/google/callback", s.googleCallback)
		}

		r.Group(func(r chi.Router) {
			r.Use(s.authenticate)

			r.Get("/me", s.me)
			r.Get("/me/credits", s.credits)
			r.Get("/posts", s.listMine)
			r.Get("/posts/all", s.listAll)
			r.Post("/posts", s.createPost)
			r.Patch("/posts/{id}", s.editPost)
			r.Delete("/posts/{id}", s.deletePost)
		})
	})

	return r
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ctx := logging.WithFields(r.Context(), "request_id", middleware.GetReqID(r.Context()))
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r.WithContext(ctx))
		s.log.Info(ctx, "http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
		)
	})
}
