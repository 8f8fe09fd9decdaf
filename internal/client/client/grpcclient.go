package client

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/dmitrijs2005/versa/internal/common"
	pb "github.com/dmitrijs2005/versa/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/timestamppb"
)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.VersaClient

	mu          sync.RWMutex
	accessToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	if token := s.token(); token != "" {
		ctx = withAccessToken(ctx, token)
	}

	return invoker(ctx, method, req, reply, cc, opts...)
}

func NewVersaClient(endpointURL string, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	if err := c.InitGRPCClient(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

// InitGRPCClient creates the connection. Extra options are appended after
// the defaults, which is how tests plug in a bufconn dialer.
func (s *GRPCClient) InitGRPCClient(opts ...grpc.DialOption) error {

	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(s.endpointURL, opts...)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewVersaClient(conn)
	return nil
}

func (s *GRPCClient) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken = token
}

func (s *GRPCClient) token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) Register(ctx context.Context, email, password string) (*Session, error) {

	resp, err := s.client.Register(ctx, &pb.RegisterRequest{Email: email, Password: password})
	if err != nil {
		return nil, s.mapError(err)
	}

	return toSession(resp), nil
}

func (s *GRPCClient) Login(ctx context.Context, email, password string) (*Session, error) {

	resp, err := s.client.Login(ctx, &pb.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, s.mapError(err)
	}

	return toSession(resp), nil
}

func (s *GRPCClient) Me(ctx context.Context) (*User, error) {

	resp, err := s.client.Me(ctx, &pb.MeRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}

	return toUser(resp.User), nil
}

func (s *GRPCClient) CreatePost(ctx context.Context, content string, creditsUsed *int) (*Post, *User, error) {

	req := &pb.CreatePostRequest{Content: content}
	if creditsUsed != nil {
		if *creditsUsed < 0 || *creditsUsed > math.MaxInt32 {
			return nil, nil, common.ErrInvalidInput
		}
		req.CreditsUsed = proto.Int32(int32(*creditsUsed))
	}

	resp, err := s.client.CreatePost(ctx, req)
	if err != nil {
		return nil, nil, s.mapError(err)
	}

	return toPost(resp.Post), toUser(resp.User), nil
}

func (s *GRPCClient) EditPost(ctx context.Context, id, content string) (*Post, error) {

	resp, err := s.client.EditPost(ctx, &pb.EditPostRequest{Id: id, Content: content})
	if err != nil {
		return nil, s.mapError(err)
	}

	return toPost(resp.Post), nil
}

func (s *GRPCClient) DeletePost(ctx context.Context, id string) (*User, error) {

	resp, err := s.client.DeletePost(ctx, &pb.DeletePostRequest{Id: id})
	if err != nil {
		return nil, s.mapError(err)
	}

	return toUser(resp.User), nil
}

func (s *GRPCClient) ListMyPosts(ctx context.Context) ([]Post, error) {

	resp, err := s.client.ListMyPosts(ctx, &pb.ListPostsRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}

	return toPosts(resp.Posts), nil
}

func (s *GRPCClient) ListAllPosts(ctx context.Context) ([]Post, error) {

	resp, err := s.client.ListAllPosts(ctx, &pb.ListPostsRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}

	return toPosts(resp.Posts), nil
}

func (s *GRPCClient) ListCredits(ctx context.Context) ([]CreditEntry, error) {

	resp, err := s.client.ListCredits(ctx, &pb.ListCreditsRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}

	res := make([]CreditEntry, 0, len(resp.Entries))
	for _, e := range resp.Entries {
		res = append(res, CreditEntry{
			ID:           e.GetId(),
			PostID:       e.GetPostId(),
			Kind:         e.GetKind(),
			Amount:       int(e.GetAmount()),
			BalanceAfter: int(e.GetBalanceAfter()),
			CreatedAt:    asTime(e.GetCreatedAt()),
		})
	}
	return res, nil
}

func (s *GRPCClient) Ping(ctx context.Context) error {

	resp, err := s.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}

	if resp.Status != "OK" {
		return ErrUnavailable
	}

	return nil
}

// mapError turns a status back into the server's sentinel error. The server
// puts the API error code in the status message.
func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return fmt.Errorf("rpc error: %w", err)
	}
	switch st.Code() {
	case codes.Unavailable:
		if st.Message() == common.CodeUpstreamIdentity {
			return common.ErrUpstreamIdentity
		}
		return ErrUnavailable
	case codes.DeadlineExceeded:
		return ErrUnavailable
	}
	if sentinel := common.ErrorForCode(st.Message()); sentinel != common.ErrorInternal {
		return sentinel
	}
	return fmt.Errorf("rpc error: %w", err)
}

func toSession(resp *pb.AuthResponse) *Session {
	s := &Session{Token: resp.Token}
	if u := toUser(resp.User); u != nil {
		s.User = *u
	}
	return s
}

func toUser(u *pb.User) *User {
	if u == nil {
		return nil
	}
	return &User{ID: u.Id, Email: u.Email, Credits: int(u.GetCredits()), Role: u.Role}
}

func toPost(p *pb.Post) *Post {
	if p == nil {
		return nil
	}
	return &Post{
		ID:          p.Id,
		UserID:      p.UserId,
		Content:     p.Content,
		CreditsUsed: int(p.GetCreditsUsed()),
		CreatedAt:   asTime(p.GetCreatedAt()),
		UpdatedAt:   asTime(p.GetUpdatedAt()),
	}
}

// asTime keeps an absent timestamp as the zero time rather than the epoch.
func asTime(ts *timestamppb.Timestamp) time.Time {
	if ts == nil {
		return time.Time{}
	}
	return ts.AsTime()
}

func toPosts(ps []*pb.Post) []Post {
	res := make([]Post, 0, len(ps))
	for _, p := range ps {
		if p != nil {
			res = append(res, *toPost(p))
		}
	}
	return res
}
