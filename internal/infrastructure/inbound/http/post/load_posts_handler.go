package post_http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	model "post-sync-client/internal/domain/models"
	ports "post-sync-client/internal/domain/ports/output"
)

type PostLoader interface {
	Load(ctx context.Context) error
	State() model.AppState
}

type LoadPostsHandler struct {
	postService PostLoader
	log         ports.Logger
}

func NewLoadPostsHandler(postService PostLoader, log ports.Logger) *LoadPostsHandler {
	return &LoadPostsHandler{
		postService: postService,
		log:         log,
	}
}

func (h *LoadPostsHandler) LoadPosts(c *gin.Context) {
	h.log.Debug("Received LoadPosts request")

	if err := h.postService.Load(c.Request.Context()); err != nil {
		writeError(c, h.log, err)
		return
	}

	state := h.postService.State()
	c.JSON(http.StatusOK, state)
	h.log.Debug("Posts reloaded", slog.Int("count", len(state.Posts)))
}
