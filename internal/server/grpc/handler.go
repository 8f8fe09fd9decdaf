package grpc

import (
	"context"

	"github.com/dmitrijs2005/versa/internal/common"
	pb "github.com/dmitrijs2005/versa/internal/proto"
	"github.com/dmitrijs2005/versa/internal/server/models"
	"github.com/go-playground/validator/v10"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

var validate = validator.New()

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.AuthResponse, error) {

	if validate.Var(req.Email, "required,email") != nil || validate.Var(req.Password, "required,min=8") != nil {
		return nil, status.Error(codes.InvalidArgument, common.CodeInvalidInput)
	}

	result, err := s.accounts.Register(ctx, req.Email, req.Password)
	if err != nil {
		return nil, s.toStatus(ctx, pb.Versa_Register_FullMethodName, err)
	}

	s.logger.Info(ctx, "Registered", "account_id", result.Account.ID)
	return &pb.AuthResponse{Token: result.Token, User: toUser(result.Account)}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.AuthResponse, error) {

	result, err := s.accounts.Login(ctx, req.Email, req.Password)
	if err != nil {
		return nil, s.toStatus(ctx, pb.Versa_Login_FullMethodName, err)
	}

	return &pb.AuthResponse{Token: result.Token, User: toUser(result.Account)}, nil
}

func (s *GRPCServer) Me(ctx context.Context, req *pb.MeRequest) (*pb.UserResponse, error) {

	account, err := s.accounts.Me(ctx, accountFrom(ctx))
	if err != nil {
		return nil, s.toStatus(ctx, pb.Versa_Me_FullMethodName, err)
	}

	return &pb.UserResponse{User: toUser(account)}, nil
}

func (s *GRPCServer) CreatePost(ctx context.Context, req *pb.CreatePostRequest) (*pb.PostResponse, error) {

	cost := s.defaultPostCost
	if req.CreditsUsed != nil {
		cost = int(req.GetCreditsUsed())
	}

	post, owner, err := s.posts.Create(ctx, accountFrom(ctx), req.Content, cost)
	if err != nil {
		return nil, s.toStatus(ctx, pb.Versa_CreatePost_FullMethodName, err)
	}

	return &pb.PostResponse{Post: toPost(post), User: toUser(owner)}, nil
}

func (s *GRPCServer) EditPost(ctx context.Context, req *pb.EditPostRequest) (*pb.PostResponse, error) {

	actor := accountFrom(ctx)
	post, err := s.posts.Edit(ctx, actor, req.Id, req.Content)
	if err != nil {
		return nil, s.toStatus(ctx, pb.Versa_EditPost_FullMethodName, err)
	}

	return &pb.PostResponse{Post: toPost(post), User: toUser(actor)}, nil
}

func (s *GRPCServer) DeletePost(ctx context.Context, req *pb.DeletePostRequest) (*pb.PostResponse, error) {

	owner, err := s.posts.Delete(ctx, accountFrom(ctx), req.Id)
	if err != nil {
		return nil, s.toStatus(ctx, pb.Versa_DeletePost_FullMethodName, err)
	}

	return &pb.PostResponse{User: toUser(owner)}, nil
}

func (s *GRPCServer) ListMyPosts(ctx context.Context, req *pb.ListPostsRequest) (*pb.ListPostsResponse, error) {

	posts, err := s.posts.ListMine(ctx, accountFrom(ctx))
	if err != nil {
		return nil, s.toStatus(ctx, pb.Versa_ListMyPosts_FullMethodName, err)
	}

	return &pb.ListPostsResponse{Posts: toPosts(posts)}, nil
}

func (s *GRPCServer) ListAllPosts(ctx context.Context, req *pb.ListPostsRequest) (*pb.ListPostsResponse, error) {

	posts, err := s.posts.ListAll(ctx, accountFrom(ctx))
	if err != nil {
		return nil, s.toStatus(ctx, pb.Versa_ListAllPosts_FullMethodName, err)
	}

	return &pb.ListPostsResponse{Posts: toPosts(posts)}, nil
}

func (s *GRPCServer) ListCredits(ctx context.Context, req *pb.ListCreditsRequest) (*pb.ListCreditsResponse, error) {

	entries, err := s.accounts.Credits(ctx, accountFrom(ctx))
	if err != nil {
		return nil, s.toStatus(ctx, pb.Versa_ListCredits_FullMethodName, err)
	}

	return &pb.ListCreditsResponse{Entries: toCreditEntries(entries)}, nil
}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {

	return &pb.PingResponse{Status: "OK"}, nil

}

func toUser(a *models.Account) *pb.User {
	if a == nil {
		return nil
	}
	return &pb.User{Id: a.ID, Email: a.Email, Credits: int32(a.Credits), Role: string(a.Role)}
}

func toPost(p *models.Post) *pb.Post {
	if p == nil {
		return nil
	}
	return &pb.Post{
		Id:          p.ID,
		UserId:      p.OwnerID,
		Content:     p.Content,
		CreditsUsed: int32(p.CreditsUsed),
		CreatedAt:   timestamppb.New(p.CreatedAt),
		UpdatedAt:   timestamppb.New(p.UpdatedAt),
	}
}

func toPosts(ps []models.Post) []*pb.Post {
	res := make([]*pb.Post, 0, len(ps))
	for i := range ps {
		res = append(res, toPost(&ps[i]))
	}
	return res
}

func toCreditEntries(es []models.CreditEntry) []*pb.CreditEntry {
	res := make([]*pb.CreditEntry, 0, len(es))
	for _, e := range es {
		res = append(res, &pb.CreditEntry{
			Id:           e.ID,
			PostId:       e.PostID,
			Kind:         string(e.Kind),
			Amount:       int32(e.Amount),
			BalanceAfter: int32(e.BalanceAfter),
			CreatedAt:    timestamppb.New(e.CreatedAt),
		})
	}
	return res
}
