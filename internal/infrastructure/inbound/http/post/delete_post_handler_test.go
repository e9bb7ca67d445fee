package post_http_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"post-sync-client/internal/custom_errors"
)

func TestDeletePostHandler_DeletePost(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		router, svc := newRouter(t)
		svc.On("Delete", mock.Anything, int64(2)).Return(nil).Once()

		rec := do(t, router, http.MethodDelete, "/api/posts/2", nil)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("ZeroID", func(t *testing.T) {
		router, svc := newRouter(t)

		rec := do(t, router, http.MethodDelete, "/api/posts/0", nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("RemoteFailure", func(t *testing.T) {
		router, svc := newRouter(t)
		svc.On("Delete", mock.Anything, int64(2)).Return(&custom_errors.OperationError{
			Op:      "delete",
			Message: "Failed to delete post",
			Err:     &custom_errors.TransportError{Method: "DELETE", URL: "x", StatusCode: 500},
		}).Once()

		rec := do(t, router, http.MethodDelete, "/api/posts/2", nil)

		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Equal(t, "Failed to delete post", errorBody(t, rec))
	})

	t.Run("UnexpectedError", func(t *testing.T) {
		router, svc := newRouter(t)
		svc.On("Delete", mock.Anything, int64(2)).Return(errors.New("boom")).Once()

		rec := do(t, router, http.MethodDelete, "/api/posts/2", nil)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
