package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/Skotchmaster/hotel_menu/internal/logging"
	"github.com/Skotchmaster/hotel_menu/internal/models"
	"github.com/Skotchmaster/hotel_menu/internal/pricing"
	"github.com/Skotchmaster/hotel_menu/internal/repo"
	"github.com/Skotchmaster/hotel_menu/internal/session"
	"github.com/Skotchmaster/hotel_menu/internal/transport"
)

// Archiver stores a copy of a ledger entry before it is completed. An entry
// that is already archived must not make it fail.
type Archiver interface {
	ArchiveOnce(ctx context.Context, rec *models.HistoryRecord) error
}

type OrderService struct {
	Repo    *repo.GormRepo
	Archive Archiver
	Now     func() time.Time
}

func (s *OrderService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

func validatePlaceOrder(req transport.PlaceOrderRequest) error {
	if !session.Valid(req.SessionID) ||
		strings.TrimSpace(req.Name) == "" ||
		strings.TrimSpace(req.Contact) == "" ||
		strings.TrimSpace(req.Address) == "" ||
		strings.TrimSpace(req.PaymentMethod) == "" {
		return fmt.Errorf("sessionId, name, contact, address and paymentMethod are required: %w", ErrValidation)
	}
	if len(req.Items) == 0 {
		return fmt.Errorf("items required: %w", ErrValidation)
	}
	if req.Subtotal == nil || req.GSTAmount == nil || req.GrandTotal == nil {
		return fmt.Errorf("subtotal, gstAmount and grandTotal are required: %w", ErrValidation)
	}
	for i, it := range req.Items {
		if strings.TrimSpace(it.Name) == "" {
			return fmt.Errorf("items[%d]: name required: %w", i, ErrValidation)
		}
	}
	return nil
}

// PlaceOrder stores the caller's totals after rounding them. They are compared
// with a server side computation only to log a warning on mismatch.
func (s *OrderService) PlaceOrder(ctx context.Context, req transport.PlaceOrderRequest) (*models.PlacedOrder, error) {
	if err := validatePlaceOrder(req); err != nil {
		return nil, err
	}

	order := &models.PlacedOrder{
		SessionID: req.SessionID,
		Customer: models.Customer{
			Name:    strings.TrimSpace(req.Name),
			Contact: strings.TrimSpace(req.Contact),
			Address: strings.TrimSpace(req.Address),
		},
		Items:         req.Items,
		PaymentMethod: req.PaymentMethod,
		Subtotal:      pricing.Round2(*req.Subtotal),
		GSTAmount:     pricing.Round2(*req.GSTAmount),
		GrandTotal:    pricing.Round2(*req.GrandTotal),
		OrderDate:     s.now(),
	}

	want := pricing.Calculate(req.Items)
	if want.Subtotal != order.Subtotal || want.Tax != order.GSTAmount || want.GrandTotal != order.GrandTotal {
		logging.FromContext(ctx).Warn("order_totals_mismatch",
			"session_id", order.SessionID,
			"subtotal", order.Subtotal, "expected_subtotal", want.Subtotal,
			"gst", order.GSTAmount, "expected_gst", want.Tax,
			"grand_total", order.GrandTotal, "expected_grand_total", want.GrandTotal,
		)
	}

	if err := s.Repo.CreateOrder(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) ListOrders(ctx context.Context, sessionID string) ([]models.PlacedOrder, error) {
	return s.Repo.ListOrders(ctx, strings.TrimSpace(sessionID))
}

func (s *OrderService) CompleteOrder(ctx context.Context, orderID string) error {
	if !validID(orderID) {
		return fmt.Errorf("invalid order id %q: %w", orderID, ErrValidation)
	}
	if err := s.Repo.DeleteOrder(ctx, orderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("order %s: %w", orderID, ErrNotFound)
		}
		return err
	}
	return nil
}

// MarkDone archives the order and then removes it from the ledger. When the
// archive step fails the ledger is left untouched. When the delete fails after
// a successful archive the order is present in both places and the returned
// record is non-nil alongside the error. A retry then finds the archived copy
// and only removes the ledger entry.
func (s *OrderService) MarkDone(ctx context.Context, orderID string) (*models.HistoryRecord, error) {
	if !validID(orderID) {
		return nil, fmt.Errorf("invalid order id %q: %w", orderID, ErrValidation)
	}
	if s.Archive == nil {
		return nil, errors.New("order archive is not configured")
	}

	order, err := s.Repo.GetOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("order %s: %w", orderID, ErrNotFound)
		}
		return nil, err
	}

	rec := models.HistoryRecord(*order)
	if err := s.Archive.ArchiveOnce(ctx, &rec); err != nil {
		return nil, fmt.Errorf("archive order %s: %w", orderID, err)
	}

	if err := s.CompleteOrder(ctx, orderID); err != nil {
		return &rec, fmt.Errorf("complete archived order %s: %w", orderID, err)
	}
	return &rec, nil
}
