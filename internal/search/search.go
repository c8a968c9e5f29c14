// Package search finds menu items by name and section.
package search

import (
	"context"
	"strings"

	"github.com/Skotchmaster/hotel_menu/internal/models"
)

type Index interface {
	IndexItem(ctx context.Context, item models.MenuItem) error
	DeleteItem(ctx context.Context, id string) error
	Search(ctx context.Context, query, section string) ([]models.MenuItem, error)
	// IndexAll loads items in one pass and reports how many were stored.
	IndexAll(ctx context.Context, items []models.MenuItem) (int, error)
}

type menuSearcher interface {
	SearchMenu(ctx context.Context, query, section string) ([]models.MenuItem, error)
}

// DBIndex answers searches straight from the relational store, so indexing is
// a no-op.
type DBIndex struct {
	Repo menuSearcher
}

func (DBIndex) IndexItem(context.Context, models.MenuItem) error { return nil }
func (DBIndex) DeleteItem(context.Context, string) error         { return nil }

func (DBIndex) IndexAll(context.Context, []models.MenuItem) (int, error) { return 0, nil }

func (d DBIndex) Search(ctx context.Context, query, section string) ([]models.MenuItem, error) {
	return d.Repo.SearchMenu(ctx, query, section)
}

// NormalizeSection is the grouping key for section labels.
func NormalizeSection(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
