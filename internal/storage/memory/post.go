package memory

import (
	"sync"

	"github.com/19900531-kt/blog/graph/model"
)

// PostMemoryStorage is the in-memory post repository. Posts are kept in a
// slice so ListPosts returns them in insertion order. All access goes
// through an RWMutex: reads share the lock, writes exclude everything, and
// the lock is scoped tightly around the collection operation itself.
type PostMemoryStorage struct {
	mu    sync.RWMutex
	posts []*model.Post
}

func NewPostMemoryStorage() *PostMemoryStorage {
	return &PostMemoryStorage{}
}

func (s *PostMemoryStorage) ListPosts() []*model.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*model.Post, 0, len(s.posts))
	for _, p := range s.posts {
		out = append(out, p.Clone())
	}
	return out
}

func (s *PostMemoryStorage) GetPostByID(id string) (*model.Post, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.posts {
		if p.ID == id {
			return p.Clone(), true
		}
	}
	return nil, false
}

func (s *PostMemoryStorage) InsertPost(p *model.Post) {
	cp := p.Clone()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.posts = append(s.posts, cp)
}

// DeletePostByID removes every post matching id. Ids are unique by
// construction, so at most one entry should ever match, but removing all
// matches keeps deletion correct even if uniqueness were ever violated.
func (s *PostMemoryStorage) DeletePostByID(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.posts[:0]
	for _, p := range s.posts {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	removed := len(kept) < len(s.posts)
	for i := len(kept); i < len(s.posts); i++ {
		s.posts[i] = nil
	}
	s.posts = kept
	return removed
}
