package post_http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	ports "post-sync-client/internal/domain/ports/output"
)

type PostDeleter interface {
	Delete(ctx context.Context, id int64) error
}

type DeletePostHandler struct {
	postService PostDeleter
	log         ports.Logger
}

func NewDeletePostHandler(postService PostDeleter, log ports.Logger) *DeletePostHandler {
	return &DeletePostHandler{
		postService: postService,
		log:         log,
	}
}

func (h *DeletePostHandler) DeletePost(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		invalidRequest(c)
		return
	}

	h.log.Debug("Received DeletePost request", slog.Int64("post_id", id))

	if err := h.postService.Delete(c.Request.Context(), id); err != nil {
		writeError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
