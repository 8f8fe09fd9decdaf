// Package grpc serves the versa.v1.Versa service next to the HTTP API.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/versa/internal/logging"
	pb "github.com/dmitrijs2005/versa/internal/proto"
	"github.com/dmitrijs2005/versa/internal/server/models"
	"github.com/dmitrijs2005/versa/internal/server/observability"
	"github.com/dmitrijs2005/versa/internal/server/services"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type AccountService interface {
	Register(ctx context.Context, email, password string) (*services.AuthResult, error)
	Login(ctx context.Context, email, password string) (*services.AuthResult, error)
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

type GRPCServer struct {
	pb.UnimplementedVersaServer
	address         string
	accounts        AccountService
	posts           PostService
	auth            Authenticator
	metrics         *observability.Metrics
	defaultPostCost int
	logger          logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, as AccountService, ps PostService, auth Authenticator,
	m *observability.Metrics, defaultPostCost int) *GRPCServer {
	return &GRPCServer{
		address:         a,
		logger:          l.With("module", "grpc_server"),
		accounts:        as,
		posts:           ps,
		auth:            auth,
		metrics:         m,
		defaultPostCost: defaultPostCost,
	}
}

// newServer builds the grpc.Server with the service, the health service
// and the interceptor chain registered.
func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(
		s.metrics.UnaryServerInterceptor(),
		s.recoverInterceptor,
		s.accessTokenInterceptor,
	))

	pb.RegisterVersaServer(srv, s)

	hs := health.NewServer()
	hs.SetServingStatus(pb.Versa_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(srv, hs)

	return srv
}

// Run listens on the configured address and serves until ctx is done.
func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is done, then stops gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.newServer()

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	// starts accepting incoming connections
	if err := srv.Serve(lis); err != nil {
		return err
	}

	<-stopped
	return nil
}
