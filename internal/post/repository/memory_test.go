package repository

import (
	"testing"

	"github.com/microblog/blogsvc/internal/post"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepoCRUD(t *testing.T) {
	r := NewMemoryRepo()

	p, err := r.Create(post.Fields{Title: "blogpost 1", Content: "my first blog post", Author: "steve romm"})
	require.NoError(t, err)
	require.NotZero(t, p.ID)
	require.Equal(t, "blogpost 1", p.Title)
	require.Empty(t, p.PublishDate)

	list := r.List()
	require.Len(t, list, 1)
	require.Equal(t, p, list[0])

	updated, err := r.Replace(p.ID, post.Fields{Title: "Blog post EDIT", Content: "This is a revised blogpost", Author: "Steve Romm", PublishDate: "april 7, 2018"})
	require.NoError(t, err)
	require.Equal(t, p.ID, updated.ID)
	require.Equal(t, "Blog post EDIT", updated.Title)
	require.Equal(t, "april 7, 2018", updated.PublishDate)

	err = r.Delete(p.ID)
	require.NoError(t, err)
	require.Empty(t, r.List())
}

func TestMemoryRepoAssignsUniqueIDs(t *testing.T) {
	r := NewMemoryRepo()
	seen := map[int64]bool{}
	for i := 0; i < 10; i++ {
		p, err := r.Create(post.Fields{Title: "t", Content: "c", Author: "a"})
		require.NoError(t, err)
		require.NotZero(t, p.ID)
		require.False(t, seen[p.ID], "id %d assigned twice", p.ID)
		seen[p.ID] = true
	}
	require.Len(t, r.List(), 10)
}

func TestMemoryRepoPreservesInsertionOrder(t *testing.T) {
	r := NewMemoryRepo()
	first, err := r.Create(post.Fields{Title: "first", Content: "c", Author: "a"})
	require.NoError(t, err)
	second, err := r.Create(post.Fields{Title: "second", Content: "c", Author: "a"})
	require.NoError(t, err)
	third, err := r.Create(post.Fields{Title: "third", Content: "c", Author: "a"})
	require.NoError(t, err)

	// updating the middle post must not move it
	_, err = r.Replace(second.ID, post.Fields{Title: "second v2", Content: "c", Author: "a"})
	require.NoError(t, err)

	list := r.List()
	require.Equal(t, []int64{first.ID, second.ID, third.ID}, []int64{list[0].ID, list[1].ID, list[2].ID})
	require.Equal(t, "second v2", list[1].Title)

	require.NoError(t, r.Delete(second.ID))
	list = r.List()
	require.Equal(t, []int64{first.ID, third.ID}, []int64{list[0].ID, list[1].ID})
}

func TestMemoryRepoCreateValidatesRequiredFields(t *testing.T) {
	r := NewMemoryRepo()

	_, err := r.Create(post.Fields{Content: "c", Author: "a"})
	require.ErrorIs(t, err, post.ErrMissingField)
	require.Contains(t, err.Error(), "title")

	_, err = r.Create(post.Fields{Title: "t", Author: "a"})
	require.ErrorIs(t, err, post.ErrMissingField)
	require.Contains(t, err.Error(), "content")

	_, err = r.Create(post.Fields{Title: "t", Content: "c"})
	require.ErrorIs(t, err, post.ErrMissingField)
	require.Contains(t, err.Error(), "author")

	require.Empty(t, r.List(), "failed creates must not grow the collection")
}

func TestMemoryRepoReplaceIsFullReplace(t *testing.T) {
	r := NewMemoryRepo()
	p, err := r.Create(post.Fields{Title: "t", Content: "c", Author: "a", PublishDate: "april 7, 2018"})
	require.NoError(t, err)

	updated, err := r.Replace(p.ID, post.Fields{Title: "t2", Content: "c2", Author: "a2"})
	require.NoError(t, err)
	require.Empty(t, updated.PublishDate, "omitted field must be absent after replace, not retained")

	_, err = r.Replace(p.ID, post.Fields{Content: "c", Author: "a"})
	require.ErrorIs(t, err, post.ErrMissingField)
}

func TestMemoryRepoNotFound(t *testing.T) {
	r := NewMemoryRepo()
	_, err := r.Replace(42, post.Fields{Title: "t", Content: "c", Author: "a"})
	require.ErrorIs(t, err, post.ErrNotFound)
	require.ErrorIs(t, r.Delete(42), post.ErrNotFound)
}

func TestMemoryRepoDeleteTwiceFails(t *testing.T) {
	r := NewMemoryRepo()
	p, err := r.Create(post.Fields{Title: "t", Content: "c", Author: "a"})
	require.NoError(t, err)

	require.NoError(t, r.Delete(p.ID))
	require.ErrorIs(t, r.Delete(p.ID), post.ErrNotFound)
}

func TestMemoryRepoNeverReusesIDs(t *testing.T) {
	r := NewMemoryRepo()
	p, err := r.Create(post.Fields{Title: "t", Content: "c", Author: "a"})
	require.NoError(t, err)
	require.NoError(t, r.Delete(p.ID))

	next, err := r.Create(post.Fields{Title: "t", Content: "c", Author: "a"})
	require.NoError(t, err)
	require.Greater(t, next.ID, p.ID)
}

func TestMemoryRepoSeedsCounterAboveSamples(t *testing.T) {
	samples := post.SamplePosts()
	r := NewMemoryRepo(samples...)
	require.Len(t, r.List(), len(samples))

	p, err := r.Create(post.Fields{Title: "t", Content: "c", Author: "a"})
	require.NoError(t, err)
	for _, s := range samples {
		require.Greater(t, p.ID, s.ID)
	}
}
