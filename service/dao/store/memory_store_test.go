package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/talentgrid/allocator/service/dao"
)

type record struct {
	ID    string
	State string
}

func newStore() *MemoryStore[string, record] {
	return NewMemoryStore[string, record](
		func(r *record) string { return r.ID },
		func(r *record) map[string]string { return map[string]string{"State": r.State} })
}

func TestMemoryStoreCRUD(t *testing.T) {
	ctx := context.Background()
	s := newStore()

	assert.ErrorIs(t, s.Save(ctx, nil), dao.ErrNilEntity)

	assert.NoError(t, s.Save(ctx, &record{ID: "r1", State: "pending"}))
	assert.NoError(t, s.Save(ctx, &record{ID: "r2", State: "committed"}))

	loaded, err := s.Load(ctx, "r1")
	assert.NoError(t, err)
	assert.Equal(t, "pending", loaded.State)

	_, err = s.Load(ctx, "missing")
	assert.ErrorIs(t, err, dao.ErrNotFound)

	all, err := s.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, all, 2)

	committed, err := s.List(ctx, dao.NewParameter("State", "committed"))
	assert.NoError(t, err)
	assert.Len(t, committed, 1)
	assert.Equal(t, "r2", committed[0].ID)

	multi, err := s.List(ctx, dao.NewParameter("State", "pending", "committed"))
	assert.NoError(t, err)
	assert.Len(t, multi, 2)

	assert.NoError(t, s.Delete(ctx, "r1"))
	assert.ErrorIs(t, s.Delete(ctx, "r1"), dao.ErrNotFound)
}
