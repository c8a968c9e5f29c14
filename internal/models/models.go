package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MenuItem struct {
	ID      string  `gorm:"type:varchar(36);primaryKey" json:"_id"`
	Name    string  `gorm:"not null;index"              json:"name"`
	Cuisine string  `gorm:"not null"                    json:"cuisine"`
	Section string  `gorm:"not null"                    json:"section"`
	Price   float64 `gorm:"not null"                    json:"price"`
	Image   string  `gorm:"not null"                    json:"image"`
	Info    string  `json:"info"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"-"`
}

func (m *MenuItem) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

func (MenuItem) TableName() string {
	return "menu_items"
}

// CartLine copies the display attributes of a menu item at the time it was
// added. Later menu edits do not reach existing lines.
type CartLine struct {
	ID        string  `gorm:"type:varchar(36);primaryKey"      json:"_id"`
	SessionID string  `gorm:"index;not null"                   json:"sessionId"`
	Name      string  `gorm:"not null"                         json:"name"`
	Price     float64 `gorm:"not null"                         json:"price"`
	Quantity  int     `gorm:"default:1;check:quantity>0"       json:"quantity"`
	Image     string  `json:"image,omitempty"`
	Cuisine   string  `json:"cuisine,omitempty"`
	Section   string  `json:"section,omitempty"`
}

func (c *CartLine) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

func (CartLine) TableName() string {
	return "cart_lines"
}

// AdminCredential is a single row table; ID is always AdminCredentialID.
// Password is the bcrypt digest, never the plaintext, so clients check a
// typed password with POST /admin/verify rather than comparing it locally.
type AdminCredential struct {
	ID           uint   `gorm:"primaryKey" json:"-"`
	Username     string `gorm:"not null"   json:"username"`
	PasswordHash string `gorm:"not null"   json:"password"`
}

const AdminCredentialID uint = 1

func (AdminCredential) TableName() string {
	return "admin_credentials"
}

func All() []any {
	return []any{
		&MenuItem{},
		&CartLine{},
		&PlacedOrder{},
		&HistoryRecord{},
		&AdminCredential{},
	}
}
