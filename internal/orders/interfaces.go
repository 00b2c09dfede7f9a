package orders

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/storefrontlabs/storefront-backend/pkg/db/models"
	"github.com/storefrontlabs/storefront-backend/pkg/pagination"
)

// Repository defines persistence operations for the order tables plus the
// stock movements that only order transactions are allowed to make.
type Repository interface {
	WithTx(tx *gorm.DB) Repository

	CustomerExists(ctx context.Context, customerID uuid.UUID) (bool, error)
	FindProduct(ctx context.Context, productID uuid.UUID) (*models.Product, error)

	// DecrementStockGuarded atomically subtracts qty from the product's stock
	// only when enough stock remains. It reports how many rows changed; zero
	// means the product is missing or short on stock.
	DecrementStockGuarded(ctx context.Context, productID uuid.UUID, qty int) (int64, error)
	// IncrementStock returns qty units to the product. A missing product row
	// changes nothing and is not an error.
	IncrementStock(ctx context.Context, productID uuid.UUID, qty int) error
	GetStock(ctx context.Context, productID uuid.UUID) (int, error)

	CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error)
	CreateOrderItems(ctx context.Context, items []models.OrderItem) error
	FindOrder(ctx context.Context, orderID uuid.UUID) (*models.Order, error)
	FindOrderWithItems(ctx context.Context, orderID uuid.UUID) (*models.Order, error)
	FindOrderItem(ctx context.Context, itemID uuid.UUID) (*models.OrderItem, error)
	FindOrderItemWithProduct(ctx context.Context, itemID uuid.UUID) (*models.OrderItem, error)
	FindOrderItemsByOrder(ctx context.Context, orderID uuid.UUID) ([]models.OrderItem, error)
	FindOrderItemsWithProduct(ctx context.Context, orderID uuid.UUID) ([]models.OrderItem, error)
	UpdateOrder(ctx context.Context, orderID uuid.UUID, updates map[string]any) error
	UpdateOrderItem(ctx context.Context, itemID uuid.UUID, updates map[string]any) error
	DeleteOrderItem(ctx context.Context, itemID uuid.UUID) error
	DeleteOrderItemsByOrder(ctx context.Context, orderID uuid.UUID) error
	DeleteOrder(ctx context.Context, orderID uuid.UUID) error
	ListOrders(ctx context.Context, params pagination.Params, filters OrderFilters) (*OrderList, error)
}
