package repository

import (
	"fmt"
	"sync"

	"github.com/microblog/blogsvc/internal/post"
)

// MemoryRepo is the in-memory post store. Posts are kept in insertion
// order and ids come from a monotonic counter, so a deleted id is never
// handed out again. A single mutex serializes all operations.
type MemoryRepo struct {
	mu     sync.Mutex
	posts  []post.Post
	nextID int64
}

// NewMemoryRepo creates a store, optionally pre-loaded with seed posts.
// The id counter starts above the highest seed id.
func NewMemoryRepo(seed ...post.Post) *MemoryRepo {
	r := &MemoryRepo{nextID: 1}
	for _, p := range seed {
		r.posts = append(r.posts, p)
		if p.ID >= r.nextID {
			r.nextID = p.ID + 1
		}
	}
	return r
}

func validate(f post.Fields) error {
	switch {
	case f.Title == "":
		return fmt.Errorf("%w: title", post.ErrMissingField)
	case f.Content == "":
		return fmt.Errorf("%w: content", post.ErrMissingField)
	case f.Author == "":
		return fmt.Errorf("%w: author", post.ErrMissingField)
	}
	return nil
}

// List returns a snapshot of all posts in insertion order.
func (r *MemoryRepo) List() []post.Post {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]post.Post, len(r.posts))
	copy(out, r.posts)
	return out
}

// Create validates the required fields, assigns the next id and appends
// the post to the collection.
func (r *MemoryRepo) Create(f post.Fields) (post.Post, error) {
	if err := validate(f); err != nil {
		return post.Post{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	p := post.Post{
		ID:          r.nextID,
		Title:       f.Title,
		Content:     f.Content,
		Author:      f.Author,
		PublishDate: f.PublishDate,
	}
	r.nextID++
	r.posts = append(r.posts, p)
	return p, nil
}

// Replace overwrites every field of the matched post except its id. This
// is a full replace, not a merge: a field omitted from f ends up empty in
// the result. The post keeps its position in insertion order.
func (r *MemoryRepo) Replace(id int64, f post.Fields) (post.Post, error) {
	if err := validate(f); err != nil {
		return post.Post{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.posts {
		if r.posts[i].ID == id {
			r.posts[i] = post.Post{
				ID:          id,
				Title:       f.Title,
				Content:     f.Content,
				Author:      f.Author,
				PublishDate: f.PublishDate,
			}
			return r.posts[i], nil
		}
	}
	return post.Post{}, post.ErrNotFound
}

// Delete removes the post with the given id. The id is retired: the
// counter never goes backwards, so later creates cannot reuse it.
func (r *MemoryRepo) Delete(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.posts {
		if r.posts[i].ID == id {
			r.posts = append(r.posts[:i], r.posts[i+1:]...)
			return nil
		}
	}
	return post.ErrNotFound
}
