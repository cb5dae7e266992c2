package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductRepoList_OrdenPorCreacion(t *testing.T) {
	rec := &execRecorder{}
	repo := NewProductRepository(rec)

	_, err := repo.List(context.Background())
	require.NoError(t, err)

	// el catálogo sale con los productos más nuevos primero
	require.Len(t, rec.queried, 1)
	assert.Contains(t, rec.queried[0], "ORDER BY created_at DESC")
}

func TestProductRepoListInStock_OrdenPorNombre(t *testing.T) {
	rec := &execRecorder{}
	repo := NewProductRepository(rec)

	_, err := repo.ListInStock(context.Background())
	require.NoError(t, err)

	require.Len(t, rec.queried, 1)
	assert.Contains(t, rec.queried[0], "stock > 0")
	assert.Contains(t, rec.queried[0], "ORDER BY name")
}
