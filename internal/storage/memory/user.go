package memory

import (
	"sync"

	"github.com/19900531-kt/blog/graph/model"
)

// UserMemoryStorage is the in-memory author catalog. The set of users is
// fixed at construction; only reads happen afterwards, but lookups still take
// the read lock so the catalog stays safe if a mutation path is ever added.
type UserMemoryStorage struct {
	mu    sync.RWMutex
	users map[string]*model.User
}

// NewUserMemoryStorage builds a catalog from the seed users. The seed values
// are copied in, so the caller keeps no handle into catalog state.
func NewUserMemoryStorage(seed []*model.User) *UserMemoryStorage {
	users := make(map[string]*model.User, len(seed))
	for _, u := range seed {
		users[u.ID] = u.Clone()
	}
	return &UserMemoryStorage{users: users}
}

func (s *UserMemoryStorage) GetUserByID(id string) (*model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, false
	}
	return u.Clone(), true
}
