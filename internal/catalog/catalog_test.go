package catalog

import (
	"context"
	"testing"

	"allurra/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllReturnsCopy(t *testing.T) {
	c := New(nil)

	providers := c.All()
	require.NotEmpty(t, providers)

	providers[0].Name = "mutated"
	assert.NotEqual(t, "mutated", c.All()[0].Name)
}

func TestGetByID(t *testing.T) {
	c := New(nil)

	provider, ok := c.GetByID("sp1")
	require.True(t, ok)
	assert.Equal(t, models.CategoryMC, provider.Category)

	_, ok = c.GetByID("no-such-provider")
	assert.False(t, ok)
}

func TestSearchByCategory(t *testing.T) {
	c := New(nil)

	providers := c.Search(context.Background(), "", models.CategoryCatering)
	require.NotEmpty(t, providers)
	for _, p := range providers {
		assert.Equal(t, models.CategoryCatering, p.Category)
	}
}

func TestSearchByQuery(t *testing.T) {
	c := New(nil)

	providers := c.Search(context.Background(), "photography", "")
	require.NotEmpty(t, providers)
	for _, p := range providers {
		assert.Equal(t, models.CategoryPhotography, p.Category)
	}

	assert.Empty(t, c.Search(context.Background(), "zzz-no-match", ""))
}

func TestSearchCaseInsensitive(t *testing.T) {
	c := New(nil)

	lower := c.Search(context.Background(), "lagos", "")
	upper := c.Search(context.Background(), "LAGOS", "")
	assert.Equal(t, lower, upper)
	assert.NotEmpty(t, lower)
}

// failingSearcher simulates an unreachable search backend
type failingSearcher struct{}

func (failingSearcher) Search(context.Context, string, models.ServiceCategory) ([]models.ServiceProvider, error) {
	return nil, assert.AnError
}

func TestSearchFallsBackWhenBackendFails(t *testing.T) {
	c := New(failingSearcher{})

	providers := c.Search(context.Background(), "", models.CategoryMC)
	require.NotEmpty(t, providers, "backend failure falls back to the linear filter")
	for _, p := range providers {
		assert.Equal(t, models.CategoryMC, p.Category)
	}
}
