package post_service

import (
	"context"

	model "post-sync-client/internal/domain/models"
)

//go:generate mockery --name Service --dir . --output ../../../../../mocks --outpkg mocks --structname PostSyncService --filename PostSyncService.go
type Service interface {
	Load(ctx context.Context) error
	Create(ctx context.Context, input *model.PostInput) (*model.Post, error)
	// Update saves input over the post currently being edited.
	Update(ctx context.Context, input *model.PostInput) (*model.Post, error)
	UpdateByID(ctx context.Context, id int64, input *model.PostInput) (*model.Post, error)
	Delete(ctx context.Context, id int64) error

	BeginCreate()
	BeginEdit(id int64) error
	CancelEdit()
	ToggleThemeCycling() bool

	State() model.AppState
	Subscribe(fn func(model.AppState)) (unsubscribe func())
}
