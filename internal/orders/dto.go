package orders

import (
	"github.com/google/uuid"

	"github.com/storefrontlabs/storefront-backend/pkg/db/models"
	"github.com/storefrontlabs/storefront-backend/pkg/enums"
)

// OrderItemInput is one requested line in a new order.
type OrderItemInput struct {
	ProductID uuid.UUID
	Quantity  int
}

// CreateOrderInput captures everything needed to open an order.
type CreateOrderInput struct {
	CustomerID uuid.UUID
	Items      []OrderItemInput
}

// AddItemInput adds one line to an existing order.
type AddItemInput struct {
	ProductID uuid.UUID
	Quantity  int
}

// UpdateOrderInput carries the partial-update fields of an order. Nil fields
// are left untouched.
type UpdateOrderInput struct {
	CustomerID *uuid.UUID
	Status     *string
}

// OrderFilters describe the inputs supported by the orders list.
type OrderFilters struct {
	CustomerID *uuid.UUID
	Status     *enums.OrderStatus
}

// OrderList wraps the paginated orders plus the next page cursor.
type OrderList struct {
	Orders     []models.Order `json:"orders"`
	NextCursor string         `json:"next_cursor,omitempty"`
}
