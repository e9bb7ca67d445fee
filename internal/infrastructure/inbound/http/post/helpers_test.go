package post_http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	post_http "post-sync-client/internal/infrastructure/inbound/http/post"
	"post-sync-client/internal/infrastructure/logger"
	"post-sync-client/mocks"
)

func newRouter(t *testing.T) (*gin.Engine, *mocks.PostSyncService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := mocks.NewPostSyncService(t)
	router := gin.New()
	post_http.NewPostHTTPAPI(svc, logger.New("test")).Register(router.Group("/api"))
	return router, svc
}

func do(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(t, json.NewEncoder(&buf).Encode(b))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func errorBody(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body["error"]
}
