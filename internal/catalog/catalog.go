package catalog

import (
	"context"
	"log/slog"
	"strings"

	"allurra/internal/models"
)

// Searcher is an optional full-text backend for catalog queries
type Searcher interface {
	Search(ctx context.Context, query string, category models.ServiceCategory) ([]models.ServiceProvider, error)
}

// Catalog serves the static list of bookable service providers. The list
// is reference data bundled with the binary; nothing in the application
// mutates it.
type Catalog struct {
	providers []models.ServiceProvider
	searcher  Searcher
}

// New creates a catalog over the bundled provider list. searcher may be
// nil; queries then use the in-process linear filter.
func New(searcher Searcher) *Catalog {
	return &Catalog{
		providers: defaultProviders,
		searcher:  searcher,
	}
}

// All returns a copy of the full provider list
func (c *Catalog) All() []models.ServiceProvider {
	out := make([]models.ServiceProvider, len(c.providers))
	copy(out, c.providers)
	return out
}

// GetByID returns the provider with the given id
func (c *Catalog) GetByID(id string) (models.ServiceProvider, bool) {
	for _, p := range c.providers {
		if p.ID == id {
			return p, true
		}
	}
	return models.ServiceProvider{}, false
}

// Search filters providers by category and a free-text query over name,
// description and location. When a search backend is configured it is
// tried first; any backend failure falls back to the linear filter.
func (c *Catalog) Search(ctx context.Context, query string, category models.ServiceCategory) []models.ServiceProvider {
	if c.searcher != nil {
		providers, err := c.searcher.Search(ctx, query, category)
		if err == nil {
			return providers
		}
		slog.Warn("Catalog search backend failed, falling back to linear filter", "error", err)
	}

	return c.filter(query, category)
}

func (c *Catalog) filter(query string, category models.ServiceCategory) []models.ServiceProvider {
	q := strings.ToLower(strings.TrimSpace(query))

	result := make([]models.ServiceProvider, 0, len(c.providers))
	for _, p := range c.providers {
		if category != "" && p.Category != category {
			continue
		}
		if q != "" && !matchesQuery(p, q) {
			continue
		}
		result = append(result, p)
	}
	return result
}

func matchesQuery(p models.ServiceProvider, q string) bool {
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Description), q) ||
		strings.Contains(strings.ToLower(p.Location), q)
}
