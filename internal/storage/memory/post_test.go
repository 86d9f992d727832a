package memory

import (
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/19900531-kt/blog/graph/model"
)

func newTestPost(id, title string) *model.Post {
	return &model.Post{
		ID:    id,
		Title: title,
		Author: model.User{
			ID:   "1",
			Name: "Keisuke Takahashi",
		},
		Body:        "body of " + title,
		Tags:        []string{"tag-" + id},
		PublishedAt: model.NewDateTime(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)),
	}
}

func TestPostMemoryStorage_InsertAndGet(t *testing.T) {
	storage := NewPostMemoryStorage()

	t.Run("Get inserted post", func(t *testing.T) {
		storage.InsertPost(newTestPost("a", "Post A"))

		got, ok := storage.GetPostByID("a")
		require.True(t, ok)
		assert.Equal(t, "a", got.ID)
		assert.Equal(t, "Post A", got.Title)
		assert.Equal(t, []string{"tag-a"}, got.Tags)
	})

	t.Run("Get missing post", func(t *testing.T) {
		got, ok := storage.GetPostByID("does-not-exist")
		assert.False(t, ok)
		assert.Nil(t, got)
	})
}

func TestPostMemoryStorage_ListPosts(t *testing.T) {
	storage := NewPostMemoryStorage()

	storage.InsertPost(newTestPost("1", "first"))
	storage.InsertPost(newTestPost("2", "second"))
	storage.InsertPost(newTestPost("3", "third"))

	t.Run("Returns posts in insertion order", func(t *testing.T) {
		posts := storage.ListPosts()
		require.Len(t, posts, 3)
		assert.Equal(t, "1", posts[0].ID)
		assert.Equal(t, "2", posts[1].ID)
		assert.Equal(t, "3", posts[2].ID)
	})

	t.Run("Repeated reads are equal", func(t *testing.T) {
		first := storage.ListPosts()
		second := storage.ListPosts()
		assert.Equal(t, first, second)
	})

	t.Run("No two posts share an id", func(t *testing.T) {
		seen := make(map[string]bool)
		for _, p := range storage.ListPosts() {
			assert.False(t, seen[p.ID], "duplicate id %s", p.ID)
			seen[p.ID] = true
		}
	})
}

func TestPostMemoryStorage_Copies(t *testing.T) {
	storage := NewPostMemoryStorage()

	t.Run("Mutating the inserted value does not change stored state", func(t *testing.T) {
		p := newTestPost("x", "original title")
		storage.InsertPost(p)

		p.Title = "mutated after insert"
		p.Tags[0] = "mutated"

		got, ok := storage.GetPostByID("x")
		require.True(t, ok)
		assert.Equal(t, "original title", got.Title)
		assert.Equal(t, []string{"tag-x"}, got.Tags)
	})

	t.Run("Mutating a returned value does not change stored state", func(t *testing.T) {
		got, ok := storage.GetPostByID("x")
		require.True(t, ok)

		got.Title = "reader scribbles"
		got.Tags[0] = "reader scribbles"
		got.Author.Name = "someone else"

		again, ok := storage.GetPostByID("x")
		require.True(t, ok)
		assert.Equal(t, "original title", again.Title)
		assert.Equal(t, []string{"tag-x"}, again.Tags)
		assert.Equal(t, "Keisuke Takahashi", again.Author.Name)
	})

	t.Run("Mutating a listed value does not change stored state", func(t *testing.T) {
		posts := storage.ListPosts()
		require.NotEmpty(t, posts)
		posts[0].Title = "list scribbles"

		got, ok := storage.GetPostByID(posts[0].ID)
		require.True(t, ok)
		assert.NotEqual(t, "list scribbles", got.Title)
	})
}

func TestPostMemoryStorage_DeletePostByID(t *testing.T) {
	storage := NewPostMemoryStorage()
	storage.InsertPost(newTestPost("1", "first"))
	storage.InsertPost(newTestPost("2", "second"))

	t.Run("Delete existing post", func(t *testing.T) {
		removed := storage.DeletePostByID("1")
		assert.True(t, removed)

		_, ok := storage.GetPostByID("1")
		assert.False(t, ok)
		assert.Len(t, storage.ListPosts(), 1)
	})

	t.Run("Delete missing post", func(t *testing.T) {
		before := storage.ListPosts()

		removed := storage.DeletePostByID("unknown")
		assert.False(t, removed)
		assert.Equal(t, before, storage.ListPosts())
	})

	t.Run("Delete removes all entries matching the id", func(t *testing.T) {
		// Ids are unique by construction; this guards the repository's
		// behavior if that ever breaks upstream.
		storage.InsertPost(newTestPost("dup", "one"))
		storage.InsertPost(newTestPost("dup", "two"))

		removed := storage.DeletePostByID("dup")
		assert.True(t, removed)

		_, ok := storage.GetPostByID("dup")
		assert.False(t, ok)
	})
}

func TestPostMemoryStorage_ConcurrentOperations(t *testing.T) {
	storage := NewPostMemoryStorage()

	t.Run("Concurrent inserts lose nothing", func(t *testing.T) {
		var wg sync.WaitGroup
		numGoroutines := 10

		for i := 0; i < numGoroutines; i++ {
			wg.Add(1)
			go func(idx int) {
				defer wg.Done()
				id := strconv.Itoa(idx)
				storage.InsertPost(newTestPost(id, "Post "+id))
			}(i)
		}

		wg.Wait()

		posts := storage.ListPosts()
		assert.Len(t, posts, numGoroutines)

		seen := make(map[string]bool)
		for _, p := range posts {
			assert.False(t, seen[p.ID])
			seen[p.ID] = true
		}
	})

	t.Run("Concurrent readers and writers", func(t *testing.T) {
		var wg sync.WaitGroup

		for i := 0; i < 5; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < 20; j++ {
					storage.ListPosts()
					storage.GetPostByID("3")
				}
			}()
		}

		for i := 0; i < 5; i++ {
			wg.Add(1)
			go func(idx int) {
				defer wg.Done()
				id := "w" + strconv.Itoa(idx)
				storage.InsertPost(newTestPost(id, "writer post"))
				storage.DeletePostByID(id)
			}(i)
		}

		wg.Wait()
	})
}
