package post_http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	model "post-sync-client/internal/domain/models"
)

type StateReader interface {
	State() model.AppState
}

type ListPostsHandler struct {
	postService StateReader
}

func NewListPostsHandler(postService StateReader) *ListPostsHandler {
	return &ListPostsHandler{postService: postService}
}

func (h *ListPostsHandler) ListPosts(c *gin.Context) {
	c.JSON(http.StatusOK, h.postService.State().Posts)
}

func (h *ListPostsHandler) GetState(c *gin.Context) {
	c.JSON(http.StatusOK, h.postService.State())
}
