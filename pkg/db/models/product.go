package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product carries the catalog entry plus its live stock count. Stock is only
// mutated through order transactions, never by direct field writes.
type Product struct {
	ID          uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name        string          `gorm:"column:name;not null" json:"name"`
	Description *string         `gorm:"column:description" json:"description,omitempty"`
	Price       decimal.Decimal `gorm:"column:price;type:numeric(12,2);not null" json:"price"`
	Stock       int             `gorm:"column:stock;not null;default:0" json:"stock"`
	ImageURL    *string         `gorm:"column:image_url" json:"image_url,omitempty"`
	CategoryID  *uuid.UUID      `gorm:"column:category_id;type:uuid" json:"category_id,omitempty"`
	CreatedAt   time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}
