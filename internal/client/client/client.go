package client

import (
	"context"
)

// Client is the transport-agnostic contract the CLI services talk to.
type Client interface {
	Close() error
	SetToken(token string)
	Register(ctx context.Context, email, password string) (*Session, error)
	Login(ctx context.Context, email, password string) (*Session, error)
	Me(ctx context.Context) (*User, error)
	CreatePost(ctx context.Context, content string, creditsUsed *int) (*Post, *User, error)
	EditPost(ctx context.Context, id, content string) (*Post, error)
	DeletePost(ctx context.Context, id string) (*User, error)
	ListMyPosts(ctx context.Context) ([]Post, error)
	ListAllPosts(ctx context.Context) ([]Post, error)
	ListCredits(ctx context.Context) ([]CreditEntry, error)
	Ping(ctx context.Context) error
}
