package post

import (
	"github.com/19900531-kt/blog/graph/model"
)

// PostStorage is the post repository. It stores fully-constructed posts and
// does no validation of its own: resolving the author and generating the id
// and timestamp are the resolver's job.
//
// Every post crossing this boundary, in either direction, is an independent
// copy of the stored value.
type PostStorage interface {
	// ListPosts returns all posts in insertion order.
	ListPosts() []*model.Post
	// GetPostByID returns the post with the given id, or false if absent.
	GetPostByID(id string) (*model.Post, bool)
	// InsertPost appends an already-validated post.
	InsertPost(p *model.Post)
	// DeletePostByID removes every post with the given id and reports
	// whether anything was removed. Absence is a normal false, not an error.
	DeletePostByID(id string) bool
}
