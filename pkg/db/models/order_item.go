package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderItem references its product weakly by id; the product may be deleted
// while the item lives on. PriceAtOrder is a snapshot taken at creation and
// never recomputed from the product.
type OrderItem struct {
	ID           uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OrderID      uuid.UUID       `gorm:"column:order_id;type:uuid;not null;index" json:"order_id"`
	ProductID    uuid.UUID       `gorm:"column:product_id;type:uuid;not null" json:"product_id"`
	Quantity     int             `gorm:"column:quantity;not null" json:"quantity"`
	PriceAtOrder decimal.Decimal `gorm:"column:price_at_order;type:numeric(12,2);not null" json:"price_at_order"`
	Product      *Product        `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	CreatedAt    time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}
