package memory

import (
	"context"
	"log/slog"
	"net/http"
	"sort"
	"strconv"
	"sync"

	"post-sync-client/internal/custom_errors"
	model "post-sync-client/internal/domain/models"
	ports "post-sync-client/internal/domain/ports/output"
)

// PostClient is an in-process stand-in for the remote collection.
type PostClient struct {
	log    ports.Logger
	mu     sync.RWMutex
	posts  map[int64]*model.Post
	nextID int64
}

func NewPostClient(log ports.Logger, seed ...model.Post) *PostClient {
	c := &PostClient{
		log:    log,
		posts:  make(map[int64]*model.Post),
		nextID: 1,
	}
	for _, p := range seed {
		post := p
		c.posts[post.ID] = &post
		if post.ID >= c.nextID {
			c.nextID = post.ID + 1
		}
	}
	return c
}

func (c *PostClient) ListAll(ctx context.Context) ([]*model.Post, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result := make([]*model.Post, 0, len(c.posts))
	for _, post := range c.posts {
		result = append(result, post.Clone())
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result, nil
}

func (c *PostClient) Create(ctx context.Context, input *model.PostInput) (*model.Post, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	newPost := &model.Post{
		ID:     c.nextID,
		Title:  input.Title,
		Body:   input.Body,
		UserID: input.UserID,
	}
	c.nextID++

	c.posts[newPost.ID] = newPost
	c.log.Debug("Post created in memory collection", slog.Int64("id", newPost.ID))

	return newPost.Clone(), nil
}

func (c *PostClient) Update(ctx context.Context, id int64, input *model.PostInput) (*model.Post, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.posts[id]; !exists {
		c.log.Debug("Post not found for update", slog.Int64("id", id))
		return nil, notFound(http.MethodPut, id)
	}

	post := &model.Post{
		ID:     id,
		Title:  input.Title,
		Body:   input.Body,
		UserID: input.UserID,
	}
	c.posts[id] = post

	return post.Clone(), nil
}

func (c *PostClient) Delete(ctx context.Context, id int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.posts[id]; !exists {
		c.log.Debug("Post not found for delete", slog.Int64("id", id))
		return notFound(http.MethodDelete, id)
	}

	delete(c.posts, id)
	return nil
}

func notFound(method string, id int64) error {
	return &custom_errors.TransportError{
		Method:     method,
		URL:        "memory://posts/" + strconv.FormatInt(id, 10),
		StatusCode: http.StatusNotFound,
		Err:        custom_errors.ErrPostNotFound,
	}
}
