package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Customer struct {
	Name    string `gorm:"not null" json:"name"`
	Contact string `gorm:"not null" json:"contact"`
	Address string `gorm:"not null" json:"address"`
}

// OrderItem is a snapshot of one (possibly grouped) cart line.
type OrderItem struct {
	Name       string   `json:"name"`
	Quantity   int      `json:"quantity"`
	Price      float64  `json:"price"`
	TotalPrice *float64 `json:"totalPrice,omitempty"`
	Image      string   `json:"image,omitempty"`
	Cuisine    string   `json:"cuisine,omitempty"`
	Section    string   `json:"section,omitempty"`
}

type PlacedOrder struct {
	ID            string                        `gorm:"type:varchar(36);primaryKey"            json:"_id"`
	SerialNumber  int64                         `gorm:"not null"                               json:"serialNumber"`
	SessionID     string                        `gorm:"index;not null"                         json:"sessionId"`
	Customer      Customer                      `gorm:"embedded;embeddedPrefix:customer_"      json:"customer"`
	Items         datatypes.JSONSlice[OrderItem] `gorm:"not null"                               json:"items"`
	PaymentMethod string                        `gorm:"not null"                               json:"paymentMethod"`
	Subtotal      float64                       `gorm:"not null"                               json:"subtotal"`
	GSTAmount     float64                       `gorm:"not null"                               json:"gstAmount"`
	GrandTotal    float64                       `gorm:"not null"                               json:"grandTotal"`
	OrderDate     time.Time                     `gorm:"not null"                               json:"orderDate"`
}

func (o *PlacedOrder) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}

func (PlacedOrder) TableName() string {
	return "customer_orders"
}

// HistoryRecord has the same shape as PlacedOrder and keeps the ledger id.
type HistoryRecord PlacedOrder

func (HistoryRecord) TableName() string {
	return "order_history"
}
