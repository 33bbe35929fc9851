package post

import "errors"

var (
	// ErrNotFound is returned when no post exists for the requested id.
	ErrNotFound = errors.New("post not found")
	// ErrMissingField is returned when a required field is empty or absent.
	// It is wrapped with the field name, so check it with errors.Is.
	ErrMissingField = errors.New("missing required field")
)

// Post is a single blog post record. The id is assigned by the store on
// creation and never changes or gets reused afterwards.
type Post struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	Author      string `json:"author"`
	PublishDate string `json:"publishdate,omitempty"`
}

// Fields is the caller-supplied payload for create and update. Title,
// Content and Author are required; PublishDate is optional and opaque to
// the store (no parsing or validation).
type Fields struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	Author      string `json:"author"`
	PublishDate string `json:"publishdate,omitempty"`
}

// SamplePosts returns the demo data the service can be seeded with.
// Seeding a store with these starts its id counter above them.
func SamplePosts() []Post {
	return []Post{
		{ID: 1, Title: "hello world", Content: "the very first post", Author: "admin"},
		{ID: 2, Title: "second post", Content: "more sample content", Author: "admin", PublishDate: "january 2, 2018"},
	}
}
