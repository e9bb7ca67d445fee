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

type PostUpdater interface {
	Update(ctx context.Context, input *model.PostInput) (*model.Post, error)
	UpdateByID(ctx context.Context, id int64, input *model.PostInput) (*model.Post, error)
}

type UpdatePostHandler struct {
	postService PostUpdater
	validate    *validator.Validate
	log         ports.Logger
}

func NewUpdatePostHandler(postService PostUpdater, validate *validator.Validate, log ports.Logger) *UpdatePostHandler {
	return &UpdatePostHandler{
		postService: postService,
		validate:    validate,
		log:         log,
	}
}

// UpdatePost handles PUT /api/posts/:id.
func (h *UpdatePostHandler) UpdatePost(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		invalidRequest(c)
		return
	}
	input, ok := h.bind(c)
	if !ok {
		return
	}

	updated, err := h.postService.UpdateByID(c.Request.Context(), id, input)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// SubmitEdit handles PUT /api/edit, saving over whichever post is open in the form.
func (h *UpdatePostHandler) SubmitEdit(c *gin.Context) {
	input, ok := h.bind(c)
	if !ok {
		return
	}

	updated, err := h.postService.Update(c.Request.Context(), input)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *UpdatePostHandler) bind(c *gin.Context) (*model.PostInput, bool) {
	var input model.PostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.log.Debug("Malformed UpdatePost body", slog.String("error", err.Error()))
		invalidRequest(c)
		return nil, false
	}
	if err := h.validate.Struct(&input); err != nil {
		h.log.Debug("Request validation failed", slog.String("error", err.Error()))
		invalidRequest(c)
		return nil, false
	}
	return &input, true
}
