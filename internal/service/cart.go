package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/Skotchmaster/hotel_menu/internal/models"
	"github.com/Skotchmaster/hotel_menu/internal/pricing"
	"github.com/Skotchmaster/hotel_menu/internal/repo"
	"github.com/Skotchmaster/hotel_menu/internal/session"
	"github.com/Skotchmaster/hotel_menu/internal/transport"
)

type CartService struct {
	Repo *repo.GormRepo
}

func (s *CartService) AddLine(ctx context.Context, req transport.AddCartLineRequest) (*models.CartLine, error) {
	if !session.Valid(req.SessionID) {
		return nil, fmt.Errorf("sessionId is required: %w", ErrValidation)
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("name is required: %w", ErrValidation)
	}
	if req.Price == nil || !req.Price.IsPositive() {
		return nil, fmt.Errorf("price must be positive: %w", ErrValidation)
	}
	if req.Quantity == nil || *req.Quantity < 1 {
		return nil, fmt.Errorf("quantity must be at least 1: %w", ErrValidation)
	}

	line := &models.CartLine{
		SessionID: req.SessionID,
		Name:      name,
		Price:     req.Price.InexactFloat64(),
		Quantity:  *req.Quantity,
		Image:     req.Image,
		Cuisine:   req.Cuisine,
		Section:   req.Section,
	}
	if err := s.Repo.AddCartLine(ctx, line); err != nil {
		return nil, err
	}
	return line, nil
}

func (s *CartService) ListLines(ctx context.Context, sessionID string) ([]models.CartLine, error) {
	if !session.Valid(sessionID) {
		return nil, fmt.Errorf("sessionId is required: %w", ErrValidation)
	}
	return s.Repo.ListCart(ctx, sessionID)
}

// RemoveLine deletes one line of the session. A line owned by another session
// is reported exactly like a missing one.
func (s *CartService) RemoveLine(ctx context.Context, sessionID, lineID string) error {
	if !session.Valid(sessionID) || lineID == "" {
		return fmt.Errorf("sessionId and _id are required: %w", ErrValidation)
	}
	if err := s.Repo.DeleteCartLine(ctx, sessionID, lineID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("cart line %s: %w", lineID, ErrNotFound)
		}
		return err
	}
	return nil
}

// ClearSession succeeds on an empty cart.
func (s *CartService) ClearSession(ctx context.Context, sessionID string) (int64, error) {
	if !session.Valid(sessionID) {
		return 0, fmt.Errorf("sessionId is required: %w", ErrValidation)
	}
	return s.Repo.ClearCart(ctx, sessionID)
}

func (s *CartService) Summary(ctx context.Context, sessionID string) (*transport.CartSummary, error) {
	lines, err := s.ListLines(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	items := pricing.Group(lines)
	totals := pricing.Calculate(items)
	return &transport.CartSummary{
		SessionID:  sessionID,
		Items:      items,
		TotalItems: pricing.TotalQuantity(items),
		Subtotal:   totals.Subtotal,
		GSTAmount:  totals.Tax,
		GrandTotal: totals.GrandTotal,
	}, nil
}
