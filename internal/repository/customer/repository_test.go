package customer_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Additional-Code/storehouse/internal/database/dbtest"
	"github.com/Additional-Code/storehouse/internal/entity"
	repo "github.com/Additional-Code/storehouse/internal/repository/customer"
)

func newCustomer(username string) *entity.Customer {
	return &entity.Customer{
		Account: entity.Account{
			Username:   username,
			Password:   "digest",
			Email:      username + "@example.com",
			FirstName:  "First",
			LastName:   "Last",
			IsActive:   true,
			DateJoined: time.Now().UTC(),
		},
		Address: "1 Main St",
		Phone:   "555-0100",
	}
}

func TestRepository_CreateAndGet(t *testing.T) {
	r := repo.NewRepository(dbtest.Open(t))
	ctx := context.Background()

	c := newCustomer("alice")
	require.NoError(t, r.Create(ctx, c))
	assert.NotZero(t, c.ID)

	got, err := r.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)
	assert.Equal(t, "1 Main St", got.Address)
	assert.Nil(t, got.LastLogin)

	byName, err := r.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, c.ID, byName.ID)

	ok, err := r.Exists(ctx, c.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = r.GetByID(ctx, c.ID+100)
	assert.ErrorIs(t, err, repo.ErrNotFound)

	ok, err = r.Exists(ctx, c.ID+100)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRepository_UpdateWritesProfileColumnsOnly(t *testing.T) {
	r := repo.NewRepository(dbtest.Open(t))
	ctx := context.Background()

	c := newCustomer("bob")
	require.NoError(t, r.Create(ctx, c))

	c.Email = "bob@new.example.com"
	c.Phone = "555-0199"
	c.Username = "mallory"
	c.Password = "tampered"
	require.NoError(t, r.Update(ctx, c))

	got, err := r.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "bob@new.example.com", got.Email)
	assert.Equal(t, "555-0199", got.Phone)
	assert.Equal(t, "bob", got.Username)
	assert.Equal(t, "digest", got.Password)
}

func TestRepository_DeleteCascadesToProducts(t *testing.T) {
	conns := dbtest.Open(t)
	r := repo.NewRepository(conns)
	ctx := context.Background()

	owner := newCustomer("carol")
	other := newCustomer("dave")
	require.NoError(t, r.Create(ctx, owner))
	require.NoError(t, r.Create(ctx, other))

	for i, ownerID := range []int64{owner.ID, owner.ID, other.ID} {
		id := ownerID
		p := &entity.Product{
			CodeNumber:  fmt.Sprintf("PRO-%04d", i+1),
			BuildupDate: time.Now().UTC(),
			Status:      true,
			OwnerID:     &id,
		}
		_, err := conns.Writer.NewInsert().Model(p).Exec(ctx)
		require.NoError(t, err)
	}

	require.NoError(t, r.Delete(ctx, owner.ID))

	_, err := r.GetByID(ctx, owner.ID)
	assert.ErrorIs(t, err, repo.ErrNotFound)

	var remaining []entity.Product
	require.NoError(t, conns.Reader.NewSelect().Model(&remaining).Scan(ctx))
	require.Len(t, remaining, 1)
	assert.Equal(t, other.ID, *remaining[0].OwnerID)

	assert.ErrorIs(t, r.Delete(ctx, owner.ID), repo.ErrNotFound)
}

func TestRepository_ListAndCount(t *testing.T) {
	r := repo.NewRepository(dbtest.Open(t))
	ctx := context.Background()

	for i := 0; i < 12; i++ {
		require.NoError(t, r.Create(ctx, newCustomer(fmt.Sprintf("user%02d", i))))
	}

	n, err := r.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 12, n)

	first, err := r.List(ctx, 0, 10)
	require.NoError(t, err)
	require.Len(t, first, 10)
	for i := 1; i < len(first); i++ {
		assert.Less(t, first[i-1].ID, first[i].ID)
	}

	second, err := r.List(ctx, 10, 10)
	require.NoError(t, err)
	require.Len(t, second, 2)
	assert.Equal(t, "user11", second[1].Username)
}
