package product_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Additional-Code/storehouse/internal/database/dbtest"
	"github.com/Additional-Code/storehouse/internal/entity"
	repo "github.com/Additional-Code/storehouse/internal/repository/product"
)

func newProduct(code string) *entity.Product {
	return &entity.Product{
		Name:        "Widget",
		CodeNumber:  code,
		BuildupDate: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Price:       9.99,
		Quantity:    5,
		Status:      true,
	}
}

func TestRepository_CreateAndGet(t *testing.T) {
	r := repo.NewRepository(dbtest.Open(t))
	ctx := context.Background()

	p := newProduct("PRO-0001")
	require.NoError(t, r.Create(ctx, p))
	assert.NotZero(t, p.ID)

	got, err := r.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "PRO-0001", got.CodeNumber)
	assert.Equal(t, 9.99, got.Price)
	assert.Equal(t, 5, got.Quantity)
	assert.True(t, got.Status)
	assert.Nil(t, got.OwnerID)
	assert.True(t, got.BuildupDate.Equal(p.BuildupDate))

	_, err = r.GetByID(ctx, p.ID+1)
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestRepository_Latest(t *testing.T) {
	r := repo.NewRepository(dbtest.Open(t))
	ctx := context.Background()

	latest, err := r.Latest(ctx)
	require.NoError(t, err)
	assert.Nil(t, latest)

	high := newProduct("PRO-0003")
	high.ID = 10
	require.NoError(t, r.Create(ctx, high))

	// A lexicographically greater code on a lower id does not win.
	low := newProduct("PRO-9000")
	low.ID = 4
	require.NoError(t, r.Create(ctx, low))

	latest, err = r.Latest(ctx)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, int64(10), latest.ID)
	assert.Equal(t, "PRO-0003", latest.CodeNumber)
}

func TestRepository_UpdateKeepsImmutableColumns(t *testing.T) {
	r := repo.NewRepository(dbtest.Open(t))
	ctx := context.Background()

	p := newProduct("PRO-0001")
	require.NoError(t, r.Create(ctx, p))
	original := p.BuildupDate

	p.Name = "Gadget"
	p.Price = 1.5
	p.Quantity = 0
	p.Status = false
	p.CodeNumber = "PRO-9999"
	p.BuildupDate = original.Add(-24 * time.Hour)
	require.NoError(t, r.Update(ctx, p))

	got, err := r.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Gadget", got.Name)
	assert.Equal(t, 1.5, got.Price)
	assert.Equal(t, 0, got.Quantity)
	assert.False(t, got.Status)
	assert.Equal(t, "PRO-0001", got.CodeNumber)
	assert.True(t, got.BuildupDate.Equal(original))
}

func TestRepository_Delete(t *testing.T) {
	r := repo.NewRepository(dbtest.Open(t))
	ctx := context.Background()

	p := newProduct("PRO-0001")
	require.NoError(t, r.Create(ctx, p))

	require.NoError(t, r.Delete(ctx, p.ID))
	assert.ErrorIs(t, r.Delete(ctx, p.ID), repo.ErrNotFound)

	n, err := r.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestRepository_ListOrdersByID(t *testing.T) {
	r := repo.NewRepository(dbtest.Open(t))
	ctx := context.Background()

	for _, id := range []int64{7, 2, 5} {
		p := newProduct("PRO-000" + string(rune('0'+id)))
		p.ID = id
		require.NoError(t, r.Create(ctx, p))
	}

	items, err := r.List(ctx, 0, 10)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, []int64{2, 5, 7}, []int64{items[0].ID, items[1].ID, items[2].ID})

	items, err = r.List(ctx, 2, 10)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int64(7), items[0].ID)
}
