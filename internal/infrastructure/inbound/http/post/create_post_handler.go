package post_http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	model "post-sync-client/internal/domain/models"
	ports "post-sync-client/internal/domain/ports/output"
)

type PostCreator interface {
	Create(ctx context.Context, input *model.PostInput) (*model.Post, error)
}

type CreatePostHandler struct {
	postService PostCreator
	validate    *validator.Validate
	log         ports.Logger
}

func NewCreatePostHandler(postService PostCreator, validate *validator.Validate, log ports.Logger) *CreatePostHandler {
	return &CreatePostHandler{
		postService: postService,
		validate:    validate,
		log:         log,
	}
}

func (h *CreatePostHandler) CreatePost(c *gin.Context) {
	var input model.PostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.log.Debug("Malformed CreatePost body", slog.String("error", err.Error()))
		invalidRequest(c)
		return
	}
	if err := h.validate.Struct(&input); err != nil {
		h.log.Debug("Request validation failed", slog.String("error", err.Error()))
		invalidRequest(c)
		return
	}

	created, err := h.postService.Create(c.Request.Context(), &input)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	h.log.Debug("Post created via API", slog.Int64("post_id", created.ID))
	c.JSON(http.StatusCreated, created)
}
