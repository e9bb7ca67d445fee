package post_http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	model "post-sync-client/internal/domain/models"
	ports "post-sync-client/internal/domain/ports/output"
)

type EditController interface {
	BeginCreate()
	BeginEdit(id int64) error
	CancelEdit()
	ToggleThemeCycling() bool
	State() model.AppState
}

type EditHandler struct {
	postService EditController
	log         ports.Logger
}

func NewEditHandler(postService EditController, log ports.Logger) *EditHandler {
	return &EditHandler{
		postService: postService,
		log:         log,
	}
}

func (h *EditHandler) BeginCreate(c *gin.Context) {
	h.postService.BeginCreate()
	c.JSON(http.StatusOK, h.postService.State())
}

func (h *EditHandler) BeginEdit(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		invalidRequest(c)
		return
	}
	if err := h.postService.BeginEdit(id); err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, h.postService.State())
}

func (h *EditHandler) CancelEdit(c *gin.Context) {
	h.postService.CancelEdit()
	c.JSON(http.StatusOK, h.postService.State())
}

func (h *EditHandler) ToggleTheme(c *gin.Context) {
	running := h.postService.ToggleThemeCycling()
	c.JSON(http.StatusOK, gin.H{"themeCycling": running})
}
