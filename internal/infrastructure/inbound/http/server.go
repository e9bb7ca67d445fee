package delivery_http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	model "post-sync-client/internal/domain/models"
	post_service "post-sync-client/internal/domain/ports/input/post"
	ports "post-sync-client/internal/domain/ports/output"
	post_http "post-sync-client/internal/infrastructure/inbound/http/post"
	"post-sync-client/internal/infrastructure/inbound/http/stream"
)

type Server struct {
	postHTTPAPI *post_http.PostHTTPAPI
	postService post_service.Service
	hub         *stream.Hub
	log         ports.Logger
	metrics     ports.MetricsProvider

	upgrader websocket.Upgrader
	engine   *gin.Engine
	server   *http.Server
}

func NewServer(
	postHTTPAPI *post_http.PostHTTPAPI,
	postService post_service.Service,
	hub *stream.Hub,
	address string,
	port int,
	log ports.Logger,
	metrics ports.MetricsProvider,
) *Server {
	s := &Server{
		postHTTPAPI: postHTTPAPI,
		postService: postService,
		hub:         hub,
		log:         log,
		metrics:     metrics,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
	s.engine = s.routes()
	s.server = &http.Server{
		Addr:              fmt.Sprintf("%s:%d", address, port),
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

func (s *Server) routes() *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery(), RequestLogger(s.log, s.metrics))

	engine.GET("/healthz", s.handleHealthz)

	api := engine.Group("/api")
	s.postHTTPAPI.Register(api)
	api.GET("/stream", s.handleStream)

	return engine
}

// Handler exposes the router without binding a listener.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) handleHealthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handleStream sends the current state first, then every later state change and toast.
func (s *Server) handleStream(c *gin.Context) {
	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.log.Warn("Failed to upgrade websocket", slog.String("error", err.Error()))
		return
	}
	s.hub.Serve(conn, model.StreamMessage{Type: model.StreamMessageState, Data: s.postService.State()})
}

func (s *Server) Run() error {
	s.log.Info("Starting HTTP server", slog.String("address", s.server.Addr))
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to serve: %w", err)
	}
	return nil
}

// Shutdown disconnects stream subscribers before draining in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	s.hub.Close()
	return s.server.Shutdown(ctx)
}
