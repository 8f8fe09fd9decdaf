package services

import (
	"context"

	"github.com/dmitrijs2005/versa/internal/client/client"
)

// PostService is the post-management surface of the CLI. creditsUsed nil
// lets the server apply its default cost.
type PostService interface {
	Create(ctx context.Context, content string, creditsUsed *int) (*client.Post, *client.User, error)
	Edit(ctx context.Context, id, content string) (*client.Post, error)
	Delete(ctx context.Context, id string) (*client.User, error)
	ListMine(ctx context.Context) ([]client.Post, error)
	ListAll(ctx context.Context) ([]client.Post, error)
	Credits(ctx context.Context) ([]client.CreditEntry, error)
}

type postService struct {
	client client.Client
}

func NewPostService(client client.Client) PostService {
	return &postService{client: client}
}

func (s *postService) Create(ctx context.Context, content string, creditsUsed *int) (*client.Post, *client.User, error) {
	return s.client.CreatePost(ctx, content, creditsUsed)
}

func (s *postService) Edit(ctx context.Context, id, content string) (*client.Post, error) {
	return s.client.EditPost(ctx, id, content)
}

func (s *postService) Delete(ctx context.Context, id string) (*client.User, error) {
	return s.client.DeletePost(ctx, id)
}

func (s *postService) ListMine(ctx context.Context) ([]client.Post, error) {
	return s.client.ListMyPosts(ctx)
}

func (s *postService) ListAll(ctx context.Context) ([]client.Post, error) {
	return s.client.ListAllPosts(ctx)
}

// Credits returns the caller's credit journal, oldest first.
func (s *postService) Credits(ctx context.Context) ([]client.CreditEntry, error) {
	return s.client.ListCredits(ctx)
}
