package ports

import (
	"context"

	model "post-sync-client/internal/domain/models"
)

// PostClient mirrors the remote post collection. Each call is a single attempt.
//
//go:generate mockery --name PostClient --dir . --output ../../../../mocks --outpkg mocks --filename PostClient.go
type PostClient interface {
	ListAll(ctx context.Context) ([]*model.Post, error)
	Create(ctx context.Context, input *model.PostInput) (*model.Post, error)
	Update(ctx context.Context, id int64, input *model.PostInput) (*model.Post, error)
	Delete(ctx context.Context, id int64) error
}
