package memory_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"post-sync-client/internal/custom_errors"
	model "post-sync-client/internal/domain/models"
	"post-sync-client/internal/infrastructure/logger"
	"post-sync-client/internal/infrastructure/outbound/client/post/memory"
)

func TestPostClient(t *testing.T) {
	ctx := context.Background()
	log := logger.New("test")

	t.Run("SeedAndList", func(t *testing.T) {
		client := memory.NewPostClient(log,
			model.Post{ID: 5, Title: "E", Body: "e", UserID: 1},
			model.Post{ID: 2, Title: "B", Body: "b", UserID: 1},
		)

		posts, err := client.ListAll(ctx)

		require.NoError(t, err)
		require.Len(t, posts, 2)
		assert.Equal(t, int64(2), posts[0].ID)
		assert.Equal(t, int64(5), posts[1].ID)
	})

	t.Run("CreateAssignsNextID", func(t *testing.T) {
		client := memory.NewPostClient(log, model.Post{ID: 5, Title: "E", Body: "e", UserID: 1})

		post, err := client.Create(ctx, &model.PostInput{Title: "N", Body: "n", UserID: 2})

		require.NoError(t, err)
		assert.Equal(t, &model.Post{ID: 6, Title: "N", Body: "n", UserID: 2}, post)
	})

	t.Run("UpdateReplaces", func(t *testing.T) {
		client := memory.NewPostClient(log, model.Post{ID: 1, Title: "A", Body: "a", UserID: 1})

		post, err := client.Update(ctx, 1, &model.PostInput{Title: "A2", Body: "a2", UserID: 1})

		require.NoError(t, err)
		assert.Equal(t, &model.Post{ID: 1, Title: "A2", Body: "a2", UserID: 1}, post)

		posts, err := client.ListAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, "A2", posts[0].Title)
	})

	t.Run("UpdateUnknown", func(t *testing.T) {
		client := memory.NewPostClient(log)

		_, err := client.Update(ctx, 42, &model.PostInput{Title: "A", Body: "a", UserID: 1})

		assert.ErrorIs(t, err, custom_errors.ErrTransport)
		assert.ErrorIs(t, err, custom_errors.ErrPostNotFound)
		var transportErr *custom_errors.TransportError
		require.True(t, errors.As(err, &transportErr))
		assert.Equal(t, http.StatusNotFound, transportErr.StatusCode)
	})

	t.Run("Delete", func(t *testing.T) {
		client := memory.NewPostClient(log, model.Post{ID: 1, Title: "A", Body: "a", UserID: 1})

		require.NoError(t, client.Delete(ctx, 1))
		assert.ErrorIs(t, client.Delete(ctx, 1), custom_errors.ErrTransport)

		posts, err := client.ListAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, posts)
	})

	t.Run("ReturnedPostsAreCopies", func(t *testing.T) {
		client := memory.NewPostClient(log, model.Post{ID: 1, Title: "A", Body: "a", UserID: 1})

		posts, err := client.ListAll(ctx)
		require.NoError(t, err)
		posts[0].Title = "mutated"

		again, err := client.ListAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, "A", again[0].Title)
	})
}
