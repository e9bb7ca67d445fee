package post_http_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"post-sync-client/internal/custom_errors"
	model "post-sync-client/internal/domain/models"
)

func TestCreatePostHandler_CreatePost(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		router, svc := newRouter(t)
		input := &model.PostInput{Title: "B", Body: "b", UserID: 1}
		svc.On("Create", mock.Anything, input).Return(&model.Post{ID: 2, Title: "B", Body: "b", UserID: 1}, nil).Once()

		rec := do(t, router, http.MethodPost, "/api/posts", input)

		require.Equal(t, http.StatusCreated, rec.Code)
		var got model.Post
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, model.Post{ID: 2, Title: "B", Body: "b", UserID: 1}, got)
	})

	t.Run("MissingTitle", func(t *testing.T) {
		router, svc := newRouter(t)

		rec := do(t, router, http.MethodPost, "/api/posts", map[string]any{"body": "b"})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "invalid request", errorBody(t, rec))
		svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("MalformedJSON", func(t *testing.T) {
		router, svc := newRouter(t)

		rec := do(t, router, http.MethodPost, "/api/posts", "{")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("RemoteFailure", func(t *testing.T) {
		router, svc := newRouter(t)
		svc.On("Create", mock.Anything, mock.Anything).Return(nil, &custom_errors.OperationError{
			Op:      "create",
			Message: "Failed to create post",
			Err:     &custom_errors.TransportError{Method: "POST", URL: "x", StatusCode: 500},
		}).Once()

		rec := do(t, router, http.MethodPost, "/api/posts", &model.PostInput{Title: "B", Body: "b"})

		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Equal(t, "Failed to create post", errorBody(t, rec))
	})
}
