package grpc

import (
	"context"
	"runtime/debug"
	"strings"

	"github.com/dmitrijs2005/versa/internal/common"
	"github.com/dmitrijs2005/versa/internal/logging"
	pb "github.com/dmitrijs2005/versa/internal/proto"
	"github.com/dmitrijs2005/versa/internal/server/models"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const AccountKey ctxKey = "account"

var publicMethods = map[string]bool{
	pb.Versa_Register_FullMethodName: true,
	pb.Versa_Login_FullMethodName:    true,
	pb.Versa_Ping_FullMethodName:     true,
}

// accessTokenInterceptor resolves the caller for every Versa method except
// the public ones. Other services (health) pass through.
func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	ctx = logging.WithFields(ctx, "method", info.FullMethod)

	if !strings.HasPrefix(info.FullMethod, "/"+pb.Versa_ServiceDesc.ServiceName+"/") || publicMethods[info.FullMethod] {
		return handler(ctx, req)
	}

	var header string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(common.AuthorizationHeaderName); len(values) > 0 {
			header = values[0]
		}
	}

	account, err := s.auth.Authenticate(ctx, header)
	if err != nil {
		return nil, s.toStatus(ctx, info.FullMethod, err)
	}

	ctx = logging.WithFields(ctx, "account_id", account.ID)
	ctx = context.WithValue(ctx, AccountKey, account)

	return handler(ctx, req)
}

func (s *GRPCServer) recoverInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error(ctx, "panic in handler", "method", info.FullMethod, "panic", r, "stack", string(debug.Stack()))
			err = status.Error(codes.Internal, common.CodeInternal)
		}
	}()
	return handler(ctx, req)
}

func accountFrom(ctx context.Context) *models.Account {
	a, _ := ctx.Value(AccountKey).(*models.Account)
	return a
}

// CodeFor maps an API error code to its gRPC status code.
func CodeFor(code string) codes.Code {
	switch code {
	case common.CodeEmailTaken:
		return codes.AlreadyExists
	case common.CodeInvalidCredentials, common.CodeMissingToken, common.CodeTokenExpired,
		common.CodeTokenInvalid, common.CodeAccountNotFound:
		return codes.Unauthenticated
	case common.CodePostNotFound:
		return codes.NotFound
	case common.CodeInsufficientCredits:
		return codes.FailedPrecondition
	case common.CodeForbidden:
		return codes.PermissionDenied
	case common.CodeUpstreamIdentity:
		return codes.Unavailable
	case common.CodeInvalidInput:
		return codes.InvalidArgument
	default:
		return codes.Internal
	}
}

// toStatus converts a service error to a status whose message is the API
// error code, so clients can recover the sentinel with common.ErrorForCode.
func (s *GRPCServer) toStatus(ctx context.Context, method string, err error) error {
	code := common.ErrorCode(err)
	c := CodeFor(code)
	if c == codes.Internal {
		s.logger.Error(ctx, "rpc failed", "method", method, "error", err)
	}
	return status.Error(c, code)
}
