package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"product-catalog/internal/model"
	"product-catalog/internal/store"
)

func TestGetAllEmptyStore(t *testing.T) {
	repo := NewMemoryProductRepository(store.New())

	all, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestCreateThenGetByID(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryProductRepository(store.Seed())

	created, err := repo.Create(ctx, model.Product{
		Name:        "Monitor",
		Price:       199.99,
		Description: "4K",
		Stock:       5,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(4), created.ID)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestCreateIsNotIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryProductRepository(store.New())

	p := model.Product{Name: "Cable", Price: 9.99, Stock: 3}
	first, err := repo.Create(ctx, p)
	require.NoError(t, err)
	second, err := repo.Create(ctx, p)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestGetByIDAbsent(t *testing.T) {
	repo := NewMemoryProductRepository(store.Seed())

	_, err := repo.GetByID(context.Background(), 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateOverwritesAllFields(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryProductRepository(store.Seed())

	err := repo.Update(ctx, model.Product{
		ID:          2,
		Name:        "Trackball",
		Price:       49.99,
		Description: "Ergonomic",
		Stock:       7,
	})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Trackball", got.Name)
	assert.Equal(t, 49.99, got.Price)
	assert.Equal(t, "Ergonomic", got.Description)
	assert.Equal(t, 7, got.Stock)
	assert.Equal(t, int64(2), got.ID)
}

func TestUpdateAbsentReportsNotFound(t *testing.T) {
	ctx := context.Background()
	st := store.Seed()
	repo := NewMemoryProductRepository(st)

	err := repo.Update(ctx, model.Product{ID: 999, Name: "ghost"})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 3, st.Len())
}

func TestDeleteRemovesExactlyOne(t *testing.T) {
	ctx := context.Background()
	st := store.Seed()
	repo := NewMemoryProductRepository(st)

	require.NoError(t, repo.Delete(ctx, 2))
	assert.Equal(t, 2, st.Len())

	_, err := repo.GetByID(ctx, 2)
	assert.ErrorIs(t, err, ErrNotFound)

	err = repo.Delete(ctx, 2)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 2, st.Len())
}
