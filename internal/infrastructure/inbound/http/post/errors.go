package post_http

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"post-sync-client/internal/custom_errors"
	ports "post-sync-client/internal/domain/ports/output"
)

var errInvalidID = errors.New("invalid post id")

func parseID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}

// writeError maps sync failures to a status code. The body carries the user-facing message only.
func writeError(c *gin.Context, log ports.Logger, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, custom_errors.ErrOperationInProgress):
		status = http.StatusConflict
	case errors.Is(err, custom_errors.ErrTransport), errors.Is(err, custom_errors.ErrDecode):
		status = http.StatusBadGateway
	case errors.Is(err, custom_errors.ErrNoEditTarget):
		status = http.StatusConflict
	case errors.Is(err, custom_errors.ErrPostNotFound):
		status = http.StatusNotFound
	case errors.Is(err, custom_errors.ErrInvalidInput), errors.Is(err, errInvalidID):
		status = http.StatusBadRequest
	default:
		log.Error("Unexpected error", slog.String("path", c.FullPath()), slog.String("error", err.Error()))
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func invalidRequest(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
}
