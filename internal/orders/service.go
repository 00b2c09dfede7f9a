package orders

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/storefrontlabs/storefront-backend/pkg/db/models"
	"github.com/storefrontlabs/storefront-backend/pkg/enums"
	pkgerrors "github.com/storefrontlabs/storefront-backend/pkg/errors"
	"github.com/storefrontlabs/storefront-backend/pkg/pagination"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Service owns every stock movement and total-amount write in the system.
// All mutations run inside a single transaction so that an order's total
// always equals the sum of quantity * price_at_order across its items, and
// no product's stock ever goes negative.
type Service interface {
	CreateOrder(ctx context.Context, input CreateOrderInput) (*models.Order, error)
	GetOrder(ctx context.Context, orderID uuid.UUID) (*models.Order, error)
	ListOrders(ctx context.Context, params pagination.Params, filters OrderFilters) (*OrderList, error)
	UpdateOrder(ctx context.Context, orderID uuid.UUID, input UpdateOrderInput) (*models.Order, error)
	DeleteOrder(ctx context.Context, orderID uuid.UUID) error

	AddItem(ctx context.Context, orderID uuid.UUID, input AddItemInput) (*models.OrderItem, error)
	GetItem(ctx context.Context, orderID, itemID uuid.UUID) (*models.OrderItem, error)
	ListItems(ctx context.Context, orderID uuid.UUID) ([]models.OrderItem, error)
	UpdateItemQuantity(ctx context.Context, orderID, itemID uuid.UUID, quantity int) (*models.OrderItem, error)
	RemoveItem(ctx context.Context, orderID, itemID uuid.UUID) error
}

type service struct {
	repo Repository
	tx   txRunner
}

// NewService builds the order service with the required dependencies.
func NewService(repo Repository, tx txRunner) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("orders repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	return &service{repo: repo, tx: tx}, nil
}

// takeStock performs the guarded decrement and converts a miss into either a
// not-found or a structured insufficient-stock error.
func takeStock(ctx context.Context, repo Repository, productID uuid.UUID, qty int) error {
	affected, err := repo.DecrementStockGuarded(ctx, productID, qty)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decrement stock")
	}
	if affected > 0 {
		return nil
	}

	// The guard did not match: either the product vanished mid-transaction
	// or it is short on stock. Re-read to tell the two apart.
	available, err := repo.GetStock(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "read stock")
	}
	return pkgerrors.New(pkgerrors.CodeInsufficientStock, "insufficient stock for product").
		WithDetails(map[string]any{
			"product_id": productID,
			"requested":  qty,
			"available":  available,
		})
}

func (s *service) CreateOrder(ctx context.Context, input CreateOrderInput) (*models.Order, error) {
	if input.CustomerID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "customer id required")
	}
	if len(input.Items) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order requires at least one item")
	}
	for _, item := range input.Items {
		if item.Quantity < 1 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be at least 1")
		}
	}

	var created *models.Order
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		exists, err := repo.CustomerExists(ctx, input.CustomerID)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "check customer")
		}
		if !exists {
			return pkgerrors.New(pkgerrors.CodeNotFound, "customer not found")
		}

		order := &models.Order{
			ID:          uuid.New(),
			CustomerID:  input.CustomerID,
			TotalAmount: decimal.Zero,
			Status:      enums.OrderStatusPending,
		}

		// Items are processed one at a time in request order. The first
		// failure aborts the transaction; earlier decrements roll back.
		items := make([]models.OrderItem, 0, len(input.Items))
		total := decimal.Zero
		for _, line := range input.Items {
			product, err := repo.FindProduct(ctx, line.ProductID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
				}
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
			}

			if err := takeStock(ctx, repo, product.ID, line.Quantity); err != nil {
				return err
			}

			items = append(items, models.OrderItem{
				ID:           uuid.New(),
				OrderID:      order.ID,
				ProductID:    product.ID,
				Quantity:     line.Quantity,
				PriceAtOrder: product.Price,
			})
			total = total.Add(product.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
		}

		order.TotalAmount = total
		if _, err := repo.CreateOrder(ctx, order); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create order")
		}
		if err := repo.CreateOrderItems(ctx, items); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create order items")
		}

		// Callers get the order with customer and per-line product attached.
		created, err = repo.FindOrderWithItems(ctx, order.ID)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "reload order")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *service) GetOrder(ctx context.Context, orderID uuid.UUID) (*models.Order, error) {
	if orderID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order id required")
	}
	order, err := s.repo.FindOrderWithItems(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order")
	}
	return order, nil
}

func (s *service) ListOrders(ctx context.Context, params pagination.Params, filters OrderFilters) (*OrderList, error) {
	list, err := s.repo.ListOrders(ctx, params, filters)
	if err != nil {
		if errors.Is(err, pagination.ErrInvalidCursor) {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid cursor")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list orders")
	}
	return list, nil
}

func (s *service) UpdateOrder(ctx context.Context, orderID uuid.UUID, input UpdateOrderInput) (*models.Order, error) {
	if orderID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order id required")
	}

	updates := map[string]any{}
	if input.Status != nil {
		status, err := enums.ParseOrderStatus(*input.Status)
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid order status")
		}
		updates["status"] = status
	}

	var updated *models.Order
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		order, err := repo.FindOrder(ctx, orderID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
			}
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order")
		}

		if input.CustomerID != nil {
			exists, err := repo.CustomerExists(ctx, *input.CustomerID)
			if err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "check customer")
			}
			if !exists {
				return pkgerrors.New(pkgerrors.CodeNotFound, "customer not found")
			}
			updates["customer_id"] = *input.CustomerID
		}

		if err := repo.UpdateOrder(ctx, order.ID, updates); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update order")
		}

		updated, err = repo.FindOrderWithItems(ctx, order.ID)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "reload order")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *service) DeleteOrder(ctx context.Context, orderID uuid.UUID) error {
	if orderID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "order id required")
	}

	return s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		order, err := repo.FindOrder(ctx, orderID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
			}
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order")
		}

		items, err := repo.FindOrderItemsByOrder(ctx, order.ID)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order items")
		}

		// Return every unit the order was holding. Products deleted since
		// the order was placed are skipped.
		for _, item := range items {
			if err := repo.IncrementStock(ctx, item.ProductID, item.Quantity); err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "return stock")
			}
		}

		if err := repo.DeleteOrderItemsByOrder(ctx, order.ID); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete order items")
		}
		if err := repo.DeleteOrder(ctx, order.ID); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete order")
		}
		return nil
	})
}

func (s *service) AddItem(ctx context.Context, orderID uuid.UUID, input AddItemInput) (*models.OrderItem, error) {
	if orderID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order id required")
	}
	if input.Quantity < 1 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be at least 1")
	}

	var created *models.OrderItem
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		order, err := repo.FindOrder(ctx, orderID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
			}
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order")
		}

		product, err := repo.FindProduct(ctx, input.ProductID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
			}
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
		}

		if err := takeStock(ctx, repo, product.ID, input.Quantity); err != nil {
			return err
		}

		item := &models.OrderItem{
			ID:           uuid.New(),
			OrderID:      order.ID,
			ProductID:    product.ID,
			Quantity:     input.Quantity,
			PriceAtOrder: product.Price,
		}
		if err := repo.CreateOrderItems(ctx, []models.OrderItem{*item}); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create order item")
		}

		lineTotal := product.Price.Mul(decimal.NewFromInt(int64(input.Quantity)))
		newTotal := order.TotalAmount.Add(lineTotal)
		if err := repo.UpdateOrder(ctx, order.ID, map[string]any{"total_amount": newTotal}); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update order total")
		}

		item.Product = product
		created = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *service) GetItem(ctx context.Context, orderID, itemID uuid.UUID) (*models.OrderItem, error) {
	if orderID == uuid.Nil || itemID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order id and item id required")
	}

	if _, err := s.repo.FindOrder(ctx, orderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order")
	}

	item, err := s.repo.FindOrderItemWithProduct(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order item not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order item")
	}
	if item.OrderID != orderID {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order item not found")
	}
	return item, nil
}

func (s *service) ListItems(ctx context.Context, orderID uuid.UUID) ([]models.OrderItem, error) {
	if orderID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order id required")
	}

	if _, err := s.repo.FindOrder(ctx, orderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order")
	}

	items, err := s.repo.FindOrderItemsWithProduct(ctx, orderID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list order items")
	}
	return items, nil
}

func (s *service) UpdateItemQuantity(ctx context.Context, orderID, itemID uuid.UUID, quantity int) (*models.OrderItem, error) {
	if orderID == uuid.Nil || itemID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order id and item id required")
	}
	if quantity < 1 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be at least 1")
	}

	var updated *models.OrderItem
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		item, err := loadOrderItem(ctx, repo, orderID, itemID)
		if err != nil {
			return err
		}

		// Only the delta moves through the stock ledger: growing the line
		// takes more units, shrinking it returns the excess.
		delta := quantity - item.Quantity
		switch {
		case delta > 0:
			if err := takeStock(ctx, repo, item.ProductID, delta); err != nil {
				return err
			}
		case delta < 0:
			if err := repo.IncrementStock(ctx, item.ProductID, -delta); err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "return stock")
			}
		}

		if err := repo.UpdateOrderItem(ctx, item.ID, map[string]any{"quantity": quantity}); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update order item")
		}
		item.Quantity = quantity

		// Quantity edits recompute the total from scratch, which also
		// repairs any drift a previous bug might have left behind.
		if err := recomputeOrderTotal(ctx, repo, orderID); err != nil {
			return err
		}

		updated = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *service) RemoveItem(ctx context.Context, orderID, itemID uuid.UUID) error {
	if orderID == uuid.Nil || itemID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "order id and item id required")
	}

	return s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		item, err := loadOrderItem(ctx, repo, orderID, itemID)
		if err != nil {
			return err
		}

		order, err := repo.FindOrder(ctx, orderID)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order")
		}

		if err := repo.IncrementStock(ctx, item.ProductID, item.Quantity); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "return stock")
		}
		if err := repo.DeleteOrderItem(ctx, item.ID); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete order item")
		}

		lineTotal := item.PriceAtOrder.Mul(decimal.NewFromInt(int64(item.Quantity)))
		newTotal := order.TotalAmount.Sub(lineTotal)
		if err := repo.UpdateOrder(ctx, order.ID, map[string]any{"total_amount": newTotal}); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update order total")
		}
		return nil
	})
}

// loadOrderItem resolves an item and verifies it belongs to the order. The
// order is checked first so a missing order reports as such rather than as a
// missing item.
func loadOrderItem(ctx context.Context, repo Repository, orderID, itemID uuid.UUID) (*models.OrderItem, error) {
	if _, err := repo.FindOrder(ctx, orderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order")
	}

	item, err := repo.FindOrderItem(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order item not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order item")
	}
	if item.OrderID != orderID {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order item not found")
	}
	return item, nil
}

// recomputeOrderTotal rebuilds total_amount from the order's live items.
func recomputeOrderTotal(ctx context.Context, repo Repository, orderID uuid.UUID) error {
	items, err := repo.FindOrderItemsByOrder(ctx, orderID)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "reload order items")
	}

	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.PriceAtOrder.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	if err := repo.UpdateOrder(ctx, orderID, map[string]any{"total_amount": total}); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update order total")
	}
	return nil
}
