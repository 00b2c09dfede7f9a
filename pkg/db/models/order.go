package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/storefrontlabs/storefront-backend/pkg/enums"
)

// Order owns its items exclusively. TotalAmount is derived: it always equals
// the sum of quantity * price_at_order across the order's live items.
type Order struct {
	ID          uuid.UUID         `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CustomerID  uuid.UUID         `gorm:"column:customer_id;type:uuid;not null" json:"customer_id"`
	TotalAmount decimal.Decimal   `gorm:"column:total_amount;type:numeric(12,2);not null;default:0" json:"total_amount"`
	Status      enums.OrderStatus `gorm:"column:status;not null;default:'pending'" json:"status"`
	Customer    *Customer         `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Items       []OrderItem       `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
	CreatedAt   time.Time         `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time         `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}
