package mocks

import (
	"sync"

	"github.com/19900531-kt/blog/graph/model"
)

// MockPostStorage implements post.PostStorage for testing. It mirrors the
// in-memory repository's copy discipline and additionally counts inserts so
// tests can assert that failed operations left no side effects.
type MockPostStorage struct {
	mu      sync.Mutex
	posts   []*model.Post
	inserts int
}

func NewMockPostStorage() *MockPostStorage {
	return &MockPostStorage{}
}

func (m *MockPostStorage) ListPosts() []*model.Post {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]*model.Post, 0, len(m.posts))
	for _, p := range m.posts {
		out = append(out, p.Clone())
	}
	return out
}

func (m *MockPostStorage) GetPostByID(id string) (*model.Post, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, p := range m.posts {
		if p.ID == id {
			return p.Clone(), true
		}
	}
	return nil, false
}

func (m *MockPostStorage) InsertPost(p *model.Post) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.posts = append(m.posts, p.Clone())
	m.inserts++
}

func (m *MockPostStorage) DeletePostByID(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	kept := m.posts[:0]
	for _, p := range m.posts {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	removed := len(kept) < len(m.posts)
	m.posts = kept
	return removed
}

// InsertCount reports how many inserts the mock has seen.
func (m *MockPostStorage) InsertCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.inserts
}
