package service

import (
	"context"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-backend/internal/domains/author"
	"library-backend/internal/shared/types"
)

// fakeAuthorRepo is an in-memory author.Repository.
type fakeAuthorRepo struct {
	authors map[int64]author.Author
	nextID  int64
}

func newFakeAuthorRepo() *fakeAuthorRepo {
	return &fakeAuthorRepo{authors: map[int64]author.Author{}, nextID: 1}
}

func (f *fakeAuthorRepo) List(_ context.Context) ([]author.Author, error) {
	out := make([]author.Author, 0, len(f.authors))
	for _, a := range f.authors {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].LastName != out[j].LastName {
			return out[i].LastName < out[j].LastName
		}
		return out[i].FirstName < out[j].FirstName
	})
	return out, nil
}

func (f *fakeAuthorRepo) GetByID(_ context.Context, id int64) (*author.Author, error) {
	a, ok := f.authors[id]
	if !ok {
		return nil, author.ErrAuthorNotFound
	}
	return &a, nil
}

func (f *fakeAuthorRepo) NameExists(_ context.Context, firstName, lastName string, excludeID int64) (bool, error) {
	for id, a := range f.authors {
		if id == excludeID {
			continue
		}
		if strings.EqualFold(a.FirstName, firstName) && strings.EqualFold(a.LastName, lastName) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeAuthorRepo) CountByIDs(_ context.Context, ids []int64) (int, error) {
	count := 0
	for _, id := range ids {
		if _, ok := f.authors[id]; ok {
			count++
		}
	}
	return count, nil
}

func (f *fakeAuthorRepo) Create(_ context.Context, a *author.Author) (*author.Author, error) {
	created := *a
	created.ID = f.nextID
	f.nextID++
	f.authors[created.ID] = created
	return &created, nil
}

func (f *fakeAuthorRepo) Update(_ context.Context, a *author.Author) (*author.Author, error) {
	if _, ok := f.authors[a.ID]; !ok {
		return nil, author.ErrAuthorNotFound
	}
	f.authors[a.ID] = *a
	updated := *a
	return &updated, nil
}

func (f *fakeAuthorRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.authors[id]; !ok {
		return author.ErrAuthorNotFound
	}
	delete(f.authors, id)
	return nil
}

func newAuthorRequest(first, last string) *author.AuthorRequest {
	return &author.AuthorRequest{
		FirstName: first,
		LastName:  last,
		BirthDate: types.NewDate(1920, time.January, 2),
	}
}

func TestAuthorServiceCreate(t *testing.T) {
	repo := newFakeAuthorRepo()
	svc := NewAuthorService(repo)

	resp, err := svc.Create(context.Background(), newAuthorRequest("Isaac", "Asimov"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "Isaac", resp.FirstName)
}

func TestAuthorServiceCreateDuplicateName(t *testing.T) {
	repo := newFakeAuthorRepo()
	svc := NewAuthorService(repo)

	_, err := svc.Create(context.Background(), newAuthorRequest("Isaac", "Asimov"))
	require.NoError(t, err)

	// Same name with different casing is still a duplicate.
	_, err = svc.Create(context.Background(), newAuthorRequest("isaac", "ASIMOV"))
	assert.ErrorIs(t, err, author.ErrDuplicateAuthor)
	assert.Len(t, repo.authors, 1)
}

func TestAuthorServiceUpdate(t *testing.T) {
	repo := newFakeAuthorRepo()
	svc := NewAuthorService(repo)

	created, err := svc.Create(context.Background(), newAuthorRequest("Isak", "Asimov"))
	require.NoError(t, err)

	resp, err := svc.Update(context.Background(), created.ID, newAuthorRequest("Isaac", "Asimov"))
	require.NoError(t, err)
	assert.Equal(t, created.ID, resp.ID)
	assert.Equal(t, "Isaac", resp.FirstName)
}

// An author may keep its own name on update; only other rows conflict.
func TestAuthorServiceUpdateKeepsOwnName(t *testing.T) {
	repo := newFakeAuthorRepo()
	svc := NewAuthorService(repo)

	created, err := svc.Create(context.Background(), newAuthorRequest("Isaac", "Asimov"))
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), created.ID, newAuthorRequest("Isaac", "Asimov"))
	assert.NoError(t, err)
}

func TestAuthorServiceUpdateConflictsWithOther(t *testing.T) {
	repo := newFakeAuthorRepo()
	svc := NewAuthorService(repo)

	_, err := svc.Create(context.Background(), newAuthorRequest("Isaac", "Asimov"))
	require.NoError(t, err)
	second, err := svc.Create(context.Background(), newAuthorRequest("Arthur", "Clarke"))
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), second.ID, newAuthorRequest("Isaac", "Asimov"))
	assert.ErrorIs(t, err, author.ErrDuplicateAuthor)
}

// Not-found wins over duplicate when the target row does not exist.
func TestAuthorServiceUpdateNotFound(t *testing.T) {
	repo := newFakeAuthorRepo()
	svc := NewAuthorService(repo)

	_, err := svc.Create(context.Background(), newAuthorRequest("Isaac", "Asimov"))
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), 99, newAuthorRequest("Isaac", "Asimov"))
	assert.ErrorIs(t, err, author.ErrAuthorNotFound)
}

func TestAuthorServiceDelete(t *testing.T) {
	repo := newFakeAuthorRepo()
	svc := NewAuthorService(repo)

	created, err := svc.Create(context.Background(), newAuthorRequest("Isaac", "Asimov"))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	assert.ErrorIs(t, svc.Delete(context.Background(), created.ID), author.ErrAuthorNotFound)
}

func TestAuthorServiceListOrdered(t *testing.T) {
	repo := newFakeAuthorRepo()
	svc := NewAuthorService(repo)

	_, err := svc.Create(context.Background(), newAuthorRequest("Arthur", "Clarke"))
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), newAuthorRequest("Isaac", "Asimov"))
	require.NoError(t, err)

	authors, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, authors, 2)
	assert.Equal(t, "Asimov", authors[0].LastName)
	assert.Equal(t, "Clarke", authors[1].LastName)
}
