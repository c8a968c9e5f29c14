package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/Skotchmaster/hotel_menu/internal/logging"
	"github.com/Skotchmaster/hotel_menu/internal/models"
	"github.com/Skotchmaster/hotel_menu/internal/repo"
	"github.com/Skotchmaster/hotel_menu/internal/search"
	"github.com/Skotchmaster/hotel_menu/internal/transport"
)

type MenuService struct {
	Repo  *repo.GormRepo
	Index search.Index
}

func (s *MenuService) index() search.Index {
	if s.Index == nil {
		return search.DBIndex{Repo: s.Repo}
	}
	return s.Index
}

func (s *MenuService) List(ctx context.Context) ([]models.MenuItem, error) {
	return s.Repo.ListMenu(ctx)
}

func (s *MenuService) Create(ctx context.Context, req transport.CreateMenuItemRequest) (*models.MenuItem, error) {
	item := models.MenuItem{
		Name:    strings.TrimSpace(req.Name),
		Cuisine: strings.TrimSpace(req.Cuisine),
		Section: strings.TrimSpace(req.Section),
		Image:   strings.TrimSpace(req.Image),
		Info:    strings.TrimSpace(req.Info),
	}
	if item.Name == "" || item.Cuisine == "" || item.Section == "" || item.Image == "" || item.Info == "" {
		return nil, fmt.Errorf("name, cuisine, section, image and info are required: %w", ErrValidation)
	}
	if req.Price == nil || !req.Price.IsPositive() {
		return nil, fmt.Errorf("price must be positive: %w", ErrValidation)
	}
	item.Price = req.Price.InexactFloat64()

	if err := s.Repo.CreateMenuItem(ctx, &item); err != nil {
		return nil, err
	}

	if err := s.index().IndexItem(ctx, item); err != nil {
		logging.FromContext(ctx).Warn("menu_index_failed", "id", item.ID, "error", err)
	}
	return &item, nil
}

func (s *MenuService) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return fmt.Errorf("invalid menu item id %q: %w", id, ErrValidation)
	}
	if err := s.Repo.DeleteMenuItem(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("menu item %s: %w", id, ErrNotFound)
		}
		return err
	}

	if err := s.index().DeleteItem(ctx, id); err != nil {
		logging.FromContext(ctx).Warn("menu_unindex_failed", "id", id, "error", err)
	}
	return nil
}

func (s *MenuService) NameExists(ctx context.Context, name string) (bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return false, fmt.Errorf("name is required: %w", ErrValidation)
	}
	return s.Repo.MenuNameExists(ctx, name)
}

// Sections returns each distinct section once, grouped by its trimmed
// lower-case form and labelled as it was first written.
func (s *MenuService) Sections(ctx context.Context) ([]string, error) {
	raw, err := s.Repo.MenuSections(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(raw))
	out := make([]string, 0, len(raw))
	for _, sec := range raw {
		key := search.NormalizeSection(sec)
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, strings.TrimSpace(sec))
	}
	return out, nil
}

// Reindex pushes every stored menu item into the search index. It covers rows
// written before the index was attached and items whose indexing failed.
func (s *MenuService) Reindex(ctx context.Context) (int, error) {
	items, err := s.Repo.ListMenu(ctx)
	if err != nil {
		return 0, err
	}
	return s.index().IndexAll(ctx, items)
}

func (s *MenuService) Search(ctx context.Context, query, section string) ([]models.MenuItem, error) {
	return s.index().Search(ctx, query, section)
}
