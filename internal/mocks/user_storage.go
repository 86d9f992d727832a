package mocks

import (
	"sync"

	"github.com/19900531-kt/blog/graph/model"
)

// MockUserStorage implements user.UserStorage for testing.
type MockUserStorage struct {
	mu    sync.Mutex
	users map[string]*model.User
}

func NewMockUserStorage() *MockUserStorage {
	return &MockUserStorage{
		users: make(map[string]*model.User),
	}
}

// AddUser seeds a user into the mock catalog.
func (m *MockUserStorage) AddUser(u *model.User) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.users[u.ID] = u.Clone()
}

func (m *MockUserStorage) GetUserByID(id string) (*model.User, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[id]
	if !ok {
		return nil, false
	}
	return u.Clone(), true
}
