package post_service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"post-sync-client/internal/application/store"
	"post-sync-client/internal/application/theme"
	"post-sync-client/internal/custom_errors"
	model "post-sync-client/internal/domain/models"
	post_service "post-sync-client/internal/domain/ports/input/post"
	ports "post-sync-client/internal/domain/ports/output"
)

const (
	opLoad   = "load"
	opCreate = "create"
	opUpdate = "update"
	opDelete = "delete"
)

const (
	MsgLoadFailed   = "Failed to fetch posts"
	MsgCreateFailed = "Failed to create post"
	MsgUpdateFailed = "Failed to update post"
	MsgDeleteFailed = "Failed to delete post"
	MsgInProgress   = "Another change to this post is still in progress"

	MsgCreated = "Post created successfully!"
	MsgUpdated = "Post updated successfully!"
	MsgDeleted = "Post deleted successfully!"
)

type PostSyncService struct {
	client  ports.PostClient
	store   *store.PostStore
	sink    ports.NotificationSink
	log     ports.Logger
	metrics ports.MetricsProvider
	cycler  *theme.Cycler

	mu       sync.Mutex
	loading  bool
	lastErr  string
	editing  *model.EditTarget
	inFlight map[int64]struct{}

	subMu       sync.RWMutex
	subscribers map[uint64]func(model.AppState)
	nextSubID   uint64
}

type Option func(*PostSyncService)

// WithThemeCycler exposes the cycler's color and running flag through the state stream.
func WithThemeCycler(c *theme.Cycler) Option {
	return func(s *PostSyncService) {
		s.cycler = c
	}
}

func NewPostSyncService(
	client ports.PostClient,
	postStore *store.PostStore,
	sink ports.NotificationSink,
	log ports.Logger,
	metrics ports.MetricsProvider,
	opts ...Option,
) *PostSyncService {
	s := &PostSyncService{
		client:      client,
		store:       postStore,
		sink:        sink,
		log:         log,
		metrics:     metrics,
		loading:     true,
		inFlight:    make(map[int64]struct{}),
		subscribers: make(map[uint64]func(model.AppState)),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.cycler != nil {
		s.cycler.SetOnChange(func(theme.Color) {
			s.metrics.IncrementThemeChanges()
			s.publish()
		})
	}
	return s
}

var _ post_service.Service = (*PostSyncService)(nil)

// Load replaces the store with the remote collection. A failed load leaves the store empty.
func (s *PostSyncService) Load(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()
	s.publish()

	posts, err := s.client.ListAll(context.WithoutCancel(ctx))
	if err != nil {
		s.log.Error("Failed to fetch posts", slog.String("error", err.Error()))
		s.store.Replace(nil)
		s.metrics.SetStoreSize(0)
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
		return s.fail(opLoad, MsgLoadFailed, err)
	}

	s.store.Replace(posts)

	s.mu.Lock()
	s.loading = false
	s.lastErr = ""
	s.mu.Unlock()

	s.log.Info("Posts loaded", slog.Int("count", s.store.Len()))
	s.succeed(opLoad, "")
	return nil
}

func (s *PostSyncService) Create(ctx context.Context, input *model.PostInput) (*model.Post, error) {
	if input == nil {
		return nil, s.fail(opCreate, MsgCreateFailed, custom_errors.ErrInvalidInput)
	}
	in := input.WithOwner(nil)

	created, err := s.client.Create(context.WithoutCancel(ctx), &in)
	if err != nil {
		s.log.Error("Failed to create post", slog.String("title", in.Title), slog.String("error", err.Error()))
		return nil, s.fail(opCreate, MsgCreateFailed, err)
	}

	s.store.Prepend(*created)

	s.mu.Lock()
	if s.editing != nil && s.editing.Mode == model.EditModeCreate {
		s.editing = nil
	}
	s.mu.Unlock()

	s.log.Debug("Post created", slog.Int64("id", created.ID))
	s.succeed(opCreate, MsgCreated)
	return created.Clone(), nil
}

func (s *PostSyncService) Update(ctx context.Context, input *model.PostInput) (*model.Post, error) {
	s.mu.Lock()
	var target *model.Post
	if s.editing != nil && s.editing.Mode == model.EditModeUpdate {
		target = s.editing.Post.Clone()
	}
	s.mu.Unlock()

	if target == nil {
		s.log.Debug("Update requested with no post being edited")
		return nil, custom_errors.ErrNoEditTarget
	}
	return s.UpdateByID(ctx, target.ID, input)
}

// UpdateByID sends input for id without checking that the store knows the post.
func (s *PostSyncService) UpdateByID(ctx context.Context, id int64, input *model.PostInput) (*model.Post, error) {
	if input == nil {
		return nil, s.fail(opUpdate, MsgUpdateFailed, custom_errors.ErrInvalidInput)
	}
	if !s.acquire(id) {
		return nil, s.reject(opUpdate, id)
	}
	defer s.release(id)

	var owner *model.Post
	if current, ok := s.store.Get(id); ok {
		owner = &current
	}
	in := input.WithOwner(owner)

	updated, err := s.client.Update(context.WithoutCancel(ctx), id, &in)
	if err != nil {
		s.log.Error("Failed to update post", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, s.fail(opUpdate, MsgUpdateFailed, err)
	}

	// The entry is keyed by the id that was edited, whatever the response claims.
	replacement := *updated
	replacement.ID = id
	if !s.store.ReplaceByID(replacement) {
		s.log.Debug("Updated post is not in the store", slog.Int64("id", id))
	}

	s.mu.Lock()
	if s.editing != nil && s.editing.Mode == model.EditModeUpdate && s.editing.Post != nil && s.editing.Post.ID == id {
		s.editing = nil
	}
	s.mu.Unlock()

	s.succeed(opUpdate, MsgUpdated)
	return replacement.Clone(), nil
}

func (s *PostSyncService) Delete(ctx context.Context, id int64) error {
	if !s.acquire(id) {
		return s.reject(opDelete, id)
	}
	defer s.release(id)

	if err := s.client.Delete(context.WithoutCancel(ctx), id); err != nil {
		s.log.Error("Failed to delete post", slog.Int64("id", id), slog.String("error", err.Error()))
		return s.fail(opDelete, MsgDeleteFailed, err)
	}

	s.store.RemoveByID(id)

	s.mu.Lock()
	if s.editing != nil && s.editing.Post != nil && s.editing.Post.ID == id {
		s.editing = nil
	}
	s.mu.Unlock()

	s.succeed(opDelete, MsgDeleted)
	return nil
}

func (s *PostSyncService) BeginCreate() {
	s.mu.Lock()
	s.editing = &model.EditTarget{Mode: model.EditModeCreate}
	s.mu.Unlock()
	s.publish()
}

func (s *PostSyncService) BeginEdit(id int64) error {
	post, ok := s.store.Get(id)
	if !ok {
		return custom_errors.ErrPostNotFound
	}

	s.mu.Lock()
	s.editing = &model.EditTarget{Mode: model.EditModeUpdate, Post: &post}
	s.mu.Unlock()
	s.publish()
	return nil
}

func (s *PostSyncService) CancelEdit() {
	s.mu.Lock()
	s.editing = nil
	s.mu.Unlock()
	s.publish()
}

// ToggleThemeCycling returns false when no cycler is configured.
func (s *PostSyncService) ToggleThemeCycling() bool {
	if s.cycler == nil {
		return false
	}
	return s.cycler.Toggle()
}

func (s *PostSyncService) State() model.AppState {
	state := model.AppState{
		Posts: s.store.Snapshot(),
	}

	s.mu.Lock()
	state.Loading = s.loading
	state.Error = s.lastErr
	if s.editing != nil {
		state.Editing = &model.EditTarget{Mode: s.editing.Mode, Post: s.editing.Post.Clone()}
	}
	state.InFlight = make([]int64, 0, len(s.inFlight))
	for id := range s.inFlight {
		state.InFlight = append(state.InFlight, id)
	}
	s.mu.Unlock()

	sort.Slice(state.InFlight, func(i, j int) bool { return state.InFlight[i] < state.InFlight[j] })

	if s.cycler != nil {
		state.Theme = string(s.cycler.Current())
		state.ThemeCycling = s.cycler.Running()
	}
	return state
}

// Subscribe registers fn for every state change. fn runs on the goroutine that caused the change and must not block.
func (s *PostSyncService) Subscribe(fn func(model.AppState)) func() {
	s.subMu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn
	s.subMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.subMu.Lock()
			delete(s.subscribers, id)
			s.subMu.Unlock()
		})
	}
}

func (s *PostSyncService) publish() {
	s.subMu.RLock()
	if len(s.subscribers) == 0 {
		s.subMu.RUnlock()
		return
	}
	fns := make([]func(model.AppState), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		fns = append(fns, fn)
	}
	s.subMu.RUnlock()

	state := s.State()
	for _, fn := range fns {
		fn(state)
	}
}

func (s *PostSyncService) acquire(id int64) bool {
	s.mu.Lock()
	if _, busy := s.inFlight[id]; busy {
		s.mu.Unlock()
		return false
	}
	s.inFlight[id] = struct{}{}
	s.mu.Unlock()
	s.publish()
	return true
}

func (s *PostSyncService) release(id int64) {
	s.mu.Lock()
	delete(s.inFlight, id)
	s.mu.Unlock()
	s.publish()
}

func (s *PostSyncService) reject(op string, id int64) error {
	s.log.Warn("Rejected overlapping request", slog.String("operation", op), slog.Int64("id", id))
	s.metrics.IncrementRejectedOperations(op)
	s.sink.Error(MsgInProgress)
	return &custom_errors.OperationError{
		Op:      op,
		Message: MsgInProgress,
		Err:     fmt.Errorf("post %d: %w", id, custom_errors.ErrOperationInProgress),
	}
}

func (s *PostSyncService) fail(op, message string, cause error) error {
	s.mu.Lock()
	s.lastErr = message
	s.mu.Unlock()

	s.metrics.IncrementSyncOperations(op, false)
	s.sink.Error(message)
	s.publish()

	return &custom_errors.OperationError{Op: op, Message: message, Err: cause}
}

func (s *PostSyncService) succeed(op, message string) {
	s.metrics.IncrementSyncOperations(op, true)
	s.metrics.SetStoreSize(s.store.Len())
	if message != "" {
		s.sink.Success(message)
	}
	s.publish()
}
