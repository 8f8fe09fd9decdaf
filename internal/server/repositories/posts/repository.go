package posts

import (
	"context"

	"github.com/dmitrijs2005/versa/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, post *models.Post) (*models.Post, error)
	GetByID(ctx context.Context, id string) (*models.Post, error)
	UpdateContent(ctx context.Context, id, content string) (*models.Post, error)
	Delete(ctx context.Context, id string) (*models.Post, error)
	ListByOwner(ctx context.Context, ownerID string) ([]models.Post, error)
	ListAll(ctx context.Context) ([]models.Post, error)
}
