package post_service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"post-sync-client/internal/application/store"
	model "post-sync-client/internal/domain/models"
	"post-sync-client/internal/infrastructure/logger"
	http_client "post-sync-client/internal/infrastructure/outbound/client/post/http"
	"post-sync-client/internal/infrastructure/outbound/metrics/prometheus"
	"post-sync-client/internal/infrastructure/outbound/notify"
)

// fixedIDRemote behaves like the public test backend: creates are echoed with id 101 and nothing persists.
func fixedIDRemote(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.Method {
		case http.MethodGet:
			_, _ = w.Write([]byte(`[{"id":1,"title":"A","body":"a","userId":1}]`))
		case http.MethodPost:
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"id":101,"title":"B","body":"b","userId":1}`))
		case http.MethodPut:
			_, _ = w.Write([]byte(`{"id":101,"title":"B2","body":"b2","userId":1}`))
		case http.MethodDelete:
			_, _ = w.Write([]byte(`{}`))
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestPostSyncService_FixedIDRemote(t *testing.T) {
	log := logger.New("test")
	srv := fixedIDRemote(t)
	svc := NewPostSyncService(
		http_client.NewPostClient(srv.URL+"/posts", 0, log),
		store.NewPostStore(),
		notify.NewLogSink(log),
		log,
		prometheus.NewPrometheusMetricsProvider(),
	)
	ctx := context.Background()

	require.NoError(t, svc.Load(ctx))
	for i := 0; i < 2; i++ {
		_, err := svc.Create(ctx, &model.PostInput{Title: "B", Body: "b"})
		require.NoError(t, err)
	}
	require.Len(t, svc.State().Posts, 3)

	_, err := svc.UpdateByID(ctx, 101, &model.PostInput{Title: "B2", Body: "b2"})
	require.NoError(t, err)
	for _, p := range svc.State().Posts {
		if p.ID == 101 {
			assert.Equal(t, "B2", p.Title)
		}
	}

	require.NoError(t, svc.Delete(ctx, 101))
	assert.Equal(t, []model.Post{{ID: 1, Title: "A", Body: "a", UserID: 1}}, svc.State().Posts)
}
