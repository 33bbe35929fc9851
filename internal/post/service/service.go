package service

import (
	"github.com/microblog/blogsvc/internal/post"
	"github.com/microblog/blogsvc/internal/post/repository"
)

// Service defines the post operations used by the handler layer.
type Service interface {
	List() []post.Post
	Create(f post.Fields) (post.Post, error)
	Update(id int64, f post.Fields) (post.Post, error)
	Delete(id int64) error
}

// NewMemoryService returns a Service backed by the in-memory store,
// optionally pre-loaded with seed posts.
func NewMemoryService(seed ...post.Post) Service {
	return &memoryService{repo: repository.NewMemoryRepo(seed...)}
}

type memoryService struct {
	repo *repository.MemoryRepo
}

func (m *memoryService) List() []post.Post {
	return m.repo.List()
}

func (m *memoryService) Create(f post.Fields) (post.Post, error) {
	return m.repo.Create(f)
}

func (m *memoryService) Update(id int64, f post.Fields) (post.Post, error) {
	return m.repo.Replace(id, f)
}

func (m *memoryService) Delete(id int64) error {
	return m.repo.Delete(id)
}
