package store

import (
	"sync"

	model "post-sync-client/internal/domain/models"
)

// PostStore keeps the last acknowledged remote state, newest first.
// Lookups are linear; collections are expected to be small.
type PostStore struct {
	mu    sync.RWMutex
	posts []model.Post
}

func NewPostStore() *PostStore {
	return &PostStore{posts: []model.Post{}}
}

// Replace discards the current contents.
func (s *PostStore) Replace(posts []*model.Post) {
	next := make([]model.Post, 0, len(posts))
	for _, p := range posts {
		if p != nil {
			next = append(next, *p)
		}
	}

	s.mu.Lock()
	s.posts = next
	s.mu.Unlock()
}

func (s *PostStore) Prepend(post model.Post) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]model.Post, 0, len(s.posts)+1)
	next = append(next, post)
	s.posts = append(next, s.posts...)
}

// ReplaceByID swaps every entry with the same id, since remotes may hand out an id twice.
// It reports whether any was found.
func (s *PostStore) ReplaceByID(post model.Post) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	var next []model.Post
	for i := range s.posts {
		if s.posts[i].ID != post.ID {
			continue
		}
		if next == nil {
			next = make([]model.Post, len(s.posts))
			copy(next, s.posts)
		}
		next[i] = post
	}
	if next == nil {
		return false
	}
	s.posts = next
	return true
}

// RemoveByID drops every entry with id. It reports whether any was removed.
func (s *PostStore) RemoveByID(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]model.Post, 0, len(s.posts))
	for _, p := range s.posts {
		if p.ID != id {
			next = append(next, p)
		}
	}
	if len(next) == len(s.posts) {
		return false
	}
	s.posts = next
	return true
}

func (s *PostStore) Get(id int64) (model.Post, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.posts {
		if p.ID == id {
			return p, true
		}
	}
	return model.Post{}, false
}

func (s *PostStore) Snapshot() []model.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Post, len(s.posts))
	copy(out, s.posts)
	return out
}

func (s *PostStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.posts)
}
