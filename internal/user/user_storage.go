package user

import (
	"github.com/19900531-kt/blog/graph/model"
)

// UserStorage is the author catalog. It is populated once at startup and
// read-only afterwards, so absence is reported with a bool rather than an
// error.
type UserStorage interface {
	GetUserByID(id string) (*model.User, bool)
}
