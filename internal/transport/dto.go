package transport

import (
	"github.com/shopspring/decimal"

	"github.com/Skotchmaster/hotel_menu/internal/models"
)

// Prices accept both JSON numbers and numeric strings, since HTML form
// clients post the raw input value.
type CreateMenuItemRequest struct {
	Name    string           `json:"name"`
	Cuisine string           `json:"cuisine"`
	Section string           `json:"section"`
	Price   *decimal.Decimal `json:"price"`
	Image   string           `json:"image"`
	Info    string           `json:"info"`
}

type DeleteByIDRequest struct {
	ID string `json:"_id"`
}

type CheckNameRequest struct {
	Name string `json:"name"`
}

type AddCartLineRequest struct {
	SessionID string           `json:"sessionId"`
	Name      string           `json:"name"`
	Price     *decimal.Decimal `json:"price"`
	Quantity  *int             `json:"quantity"`
	Image     string           `json:"image"`
	Cuisine   string           `json:"cuisine"`
	Section   string           `json:"section"`
}

type RemoveCartLineRequest struct {
	SessionID string `json:"sessionId"`
	ID        string `json:"_id"`
}

type SessionRequest struct {
	SessionID string `json:"sessionId"`
}

type CartSummary struct {
	SessionID  string             `json:"sessionId"`
	Items      []models.OrderItem `json:"items"`
	TotalItems int                `json:"totalItems"`
	Subtotal   float64            `json:"subtotal"`
	GSTAmount  float64            `json:"gstAmount"`
	GrandTotal float64            `json:"grandTotal"`
}

// PlaceOrderRequest uses pointers for the amounts so that an absent field can
// be told apart from zero.
type PlaceOrderRequest struct {
	SessionID     string             `json:"sessionId"`
	Name          string             `json:"name"`
	Contact       string             `json:"contact"`
	Address       string             `json:"address"`
	PaymentMethod string             `json:"paymentMethod"`
	Items         []models.OrderItem `json:"items"`
	Subtotal      *float64           `json:"subtotal"`
	GSTAmount     *float64           `json:"gstAmount"`
	GrandTotal    *float64           `json:"grandTotal"`
}

type PlaceOrderResponse struct {
	Message      string `json:"message"`
	OrderID      string `json:"orderId"`
	SerialNumber int64  `json:"serialNumber"`
}

type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type VerifyResponse struct {
	Message   string `json:"message"`
	Token     string `json:"token,omitempty"`
	ExpiresAt int64  `json:"expiresAt,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
