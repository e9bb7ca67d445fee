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

func TestEditHandler(t *testing.T) {
	t.Run("BeginCreate", func(t *testing.T) {
		router, svc := newRouter(t)
		svc.On("BeginCreate").Return().Once()
		svc.On("State").Return(model.AppState{Editing: &model.EditTarget{Mode: model.EditModeCreate}}).Once()

		rec := do(t, router, http.MethodPost, "/api/edit", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		var state model.AppState
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &state))
		require.NotNil(t, state.Editing)
		assert.Equal(t, model.EditModeCreate, state.Editing.Mode)
	})

	t.Run("BeginEditUnknownPost", func(t *testing.T) {
		router, svc := newRouter(t)
		svc.On("BeginEdit", int64(42)).Return(custom_errors.ErrPostNotFound).Once()

		rec := do(t, router, http.MethodPost, "/api/edit/42", nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("BeginEdit", func(t *testing.T) {
		router, svc := newRouter(t)
		post := &model.Post{ID: 1, Title: "A", Body: "a", UserID: 1}
		svc.On("BeginEdit", int64(1)).Return(nil).Once()
		svc.On("State").Return(model.AppState{Editing: &model.EditTarget{Mode: model.EditModeUpdate, Post: post}}).Once()

		rec := do(t, router, http.MethodPost, "/api/edit/1", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("CancelEdit", func(t *testing.T) {
		router, svc := newRouter(t)
		svc.On("CancelEdit").Return().Once()
		svc.On("State").Return(model.AppState{}).Once()

		rec := do(t, router, http.MethodDelete, "/api/edit", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("ToggleTheme", func(t *testing.T) {
		router, svc := newRouter(t)
		svc.On("ToggleThemeCycling").Return(true).Once()

		rec := do(t, router, http.MethodPost, "/api/theme/cycle", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"themeCycling":true}`, rec.Body.String())
	})
}

func TestLoadPostsHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		router, svc := newRouter(t)
		svc.On("Load", mock.Anything).Return(nil).Once()
		svc.On("State").Return(model.AppState{Posts: []model.Post{{ID: 1, Title: "A", Body: "a", UserID: 1}}}).Once()

		rec := do(t, router, http.MethodPost, "/api/posts/load", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		svc.AssertNumberOfCalls(t, "State", 1)
	})

	t.Run("Failure", func(t *testing.T) {
		router, svc := newRouter(t)
		svc.On("Load", mock.Anything).Return(&custom_errors.OperationError{
			Op:      "load",
			Message: "Failed to fetch posts",
			Err:     &custom_errors.DecodeError{URL: "x"},
		}).Once()

		rec := do(t, router, http.MethodPost, "/api/posts/load", nil)

		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Equal(t, "Failed to fetch posts", errorBody(t, rec))
	})
}

func TestListPostsHandler(t *testing.T) {
	router, svc := newRouter(t)
	svc.On("State").Return(model.AppState{Posts: []model.Post{{ID: 2}, {ID: 1}}})

	rec := do(t, router, http.MethodGet, "/api/posts", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	var posts []model.Post
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &posts))
	assert.Equal(t, []model.Post{{ID: 2}, {ID: 1}}, posts)

	rec = do(t, router, http.MethodGet, "/api/state", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
