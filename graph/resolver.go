package graph

import (
	"time"

	"github.com/google/uuid"

	"github.com/19900531-kt/blog/graph/model"
	"github.com/19900531-kt/blog/internal/post"
	"github.com/19900531-kt/blog/internal/user"
	"github.com/19900531-kt/blog/pkg/util"
)

// Resolver is the root of all query and mutation resolvers. The stores are
// injected at construction; NewID and Now are the identifier and timestamp
// providers, overridable in tests.
type Resolver struct {
	UserStore user.UserStorage
	PostStore post.PostStorage
	NewID     func() string
	Now       func() time.Time
}

// NewResolver wires a resolver with uuid identifiers and wall-clock time.
func NewResolver(users user.UserStorage, posts post.PostStorage) *Resolver {
	return &Resolver{
		UserStore: users,
		PostStore: posts,
		NewID:     uuid.NewString,
		Now:       time.Now,
	}
}

// Posts returns all posts in insertion order.
func (r *Resolver) Posts() []*model.Post {
	return r.PostStore.ListPosts()
}

// Post returns the post with the given id, or nil if there is none.
func (r *Resolver) Post(id string) *model.Post {
	p, ok := r.PostStore.GetPostByID(id)
	if !ok {
		return nil
	}
	return p
}

// User returns the author with the given id, or nil if there is none.
func (r *Resolver) User(id string) *model.User {
	u, ok := r.UserStore.GetUserByID(id)
	if !ok {
		return nil
	}
	return u
}

// CreatePost resolves the author, then synthesizes and stores a new post.
// The author must exist in the catalog: on a miss nothing happens — no id is
// generated, no post is inserted. The stored author is a value snapshot of
// the user at this moment, not a live reference.
func (r *Resolver) CreatePost(input model.CreatePostInput) (*model.Post, error) {
	author, ok := r.UserStore.GetUserByID(input.AuthorID)
	if !ok {
		return nil, util.NewNotFound("author")
	}

	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}

	p := &model.Post{
		ID:          r.NewID(),
		Title:       input.Title,
		Author:      *author,
		Body:        input.Body,
		Tags:        tags,
		PublishedAt: model.NewDateTime(r.Now()),
	}

	r.PostStore.InsertPost(p)
	return p, nil
}

// DeletePost removes any post matching id and reports whether one existed.
// A missing id is a normal false outcome, never an error.
func (r *Resolver) DeletePost(id string) bool {
	return r.PostStore.DeletePostByID(id)
}
