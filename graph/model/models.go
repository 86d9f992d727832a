package model

// User is an author. The catalog is fixed at startup, so there is no
// create/update path for users anywhere in the API.
type User struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	AvatarURL *string `json:"avatarUrl"`
}

// Clone returns an independent copy of the user.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	cp := *u
	if u.AvatarURL != nil {
		url := *u.AvatarURL
		cp.AvatarURL = &url
	}
	return &cp
}

// Post is a published entry. Author is a value snapshot taken at creation
// time, not a reference into the user catalog: later changes to the catalog
// (if such a path ever appears) must not show through stored posts.
type Post struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Author      User     `json:"author"`
	Body        string   `json:"body"`
	Tags        []string `json:"tags"`
	PublishedAt DateTime `json:"publishedAt"`
}

// Clone returns an independent copy of the post, including its tag slice,
// so callers can never mutate stored state through a returned value.
func (p *Post) Clone() *Post {
	if p == nil {
		return nil
	}
	cp := *p
	if p.Author.AvatarURL != nil {
		url := *p.Author.AvatarURL
		cp.Author.AvatarURL = &url
	}
	if p.Tags != nil {
		cp.Tags = make([]string, len(p.Tags))
		copy(cp.Tags, p.Tags)
	}
	return &cp
}

// CreatePostInput carries the caller-supplied fields of createPost.
// Tags may be nil (absent), which the resolver normalizes to empty.
type CreatePostInput struct {
	Title    string   `json:"title"`
	Body     string   `json:"body"`
	Tags     []string `json:"tags"`
	AuthorID string   `json:"authorId"`
}
