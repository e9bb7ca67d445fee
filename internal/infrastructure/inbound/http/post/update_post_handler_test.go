package post_http_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"post-sync-client/internal/custom_errors"
	model "post-sync-client/internal/domain/models"
)

func TestUpdatePostHandler_UpdatePost(t *testing.T) {
	input := &model.PostInput{Title: "A2", Body: "a2", UserID: 1}

	t.Run("Success", func(t *testing.T) {
		router, svc := newRouter(t)
		svc.On("UpdateByID", mock.Anything, int64(1), input).Return(&model.Post{ID: 1, Title: "A2", Body: "a2", UserID: 1}, nil).Once()

		rec := do(t, router, http.MethodPut, "/api/posts/1", input)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"id":1,"title":"A2","body":"a2","userId":1}`, rec.Body.String())
	})

	t.Run("InvalidID", func(t *testing.T) {
		router, svc := newRouter(t)

		rec := do(t, router, http.MethodPut, "/api/posts/abc", input)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "UpdateByID", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("EmptyBody", func(t *testing.T) {
		router, svc := newRouter(t)

		rec := do(t, router, http.MethodPut, "/api/posts/1", map[string]any{"title": "A2", "body": ""})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "UpdateByID", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("InProgress", func(t *testing.T) {
		router, svc := newRouter(t)
		svc.On("UpdateByID", mock.Anything, int64(1), input).Return(nil, &custom_errors.OperationError{
			Op:      "update",
			Message: "Another change to this post is still in progress",
			Err:     fmt.Errorf("post 1: %w", custom_errors.ErrOperationInProgress),
		}).Once()

		rec := do(t, router, http.MethodPut, "/api/posts/1", input)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestUpdatePostHandler_SubmitEdit(t *testing.T) {
	input := &model.PostInput{Title: "A2", Body: "a2"}

	t.Run("Success", func(t *testing.T) {
		router, svc := newRouter(t)
		svc.On("Update", mock.Anything, input).Return(&model.Post{ID: 1, Title: "A2", Body: "a2", UserID: 1}, nil).Once()

		rec := do(t, router, http.MethodPut, "/api/edit", input)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("NothingBeingEdited", func(t *testing.T) {
		router, svc := newRouter(t)
		svc.On("Update", mock.Anything, input).Return(nil, custom_errors.ErrNoEditTarget).Once()

		rec := do(t, router, http.MethodPut, "/api/edit", input)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}
