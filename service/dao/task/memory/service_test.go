package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/talentgrid/allocator/model"
	"github.com/talentgrid/allocator/service/dao"
)

func TestServiceListOrdering(t *testing.T) {
	ctx := context.Background()
	s := New()

	base := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	tasks := []*model.Task{
		{ID: "t3", ProjectID: "p1", Title: "third", CreatedAt: base.Add(2 * time.Hour)},
		{ID: "t1", ProjectID: "p1", Title: "first", CreatedAt: base},
		{ID: "t2", ProjectID: "p2", Title: "second", CreatedAt: base.Add(time.Hour)},
	}
	for _, task := range tasks {
		assert.NoError(t, s.Save(ctx, task))
	}

	all, err := s.List(ctx)
	assert.NoError(t, err)
	assert.Equal(t, []string{"t1", "t2", "t3"}, ids(all))

	project1, err := s.List(ctx, dao.NewParameter("ProjectID", "p1"))
	assert.NoError(t, err)
	assert.Equal(t, []string{"t1", "t3"}, ids(project1))
}

func TestServiceCRUD(t *testing.T) {
	ctx := context.Background()
	s := New()

	assert.ErrorIs(t, s.Save(ctx, nil), dao.ErrNilEntity)
	assert.ErrorIs(t, s.Save(ctx, &model.Task{}), dao.ErrInvalidID)

	task := &model.Task{ID: "t1", ProjectID: "p1", Title: "task"}
	assert.NoError(t, s.Save(ctx, task))

	loaded, err := s.Load(ctx, "t1")
	assert.NoError(t, err)
	assert.Equal(t, "task", loaded.Title)

	_, err = s.Load(ctx, "nope")
	assert.ErrorIs(t, err, dao.ErrNotFound)

	assert.NoError(t, s.Delete(ctx, "t1"))
	assert.ErrorIs(t, s.Delete(ctx, "t1"), dao.ErrNotFound)
}

func ids(tasks []*model.Task) []string {
	ret := make([]string, 0, len(tasks))
	for _, t := range tasks {
		ret = append(ret, t.ID)
	}
	return ret
}
