package orders

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/storefrontlabs/storefront-backend/pkg/config"
	"github.com/storefrontlabs/storefront-backend/pkg/db"
	"github.com/storefrontlabs/storefront-backend/pkg/db/models"
	"github.com/storefrontlabs/storefront-backend/pkg/enums"
)

func setupOrdersTestDB(t *testing.T) *db.Client {
	t.Helper()

	client, err := db.New(context.Background(), config.DBConfig{
		Driver: "sqlite",
		DSN:    "file:orders_" + uuid.NewString() + "?mode=memory&cache=shared",
	}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	statements := []string{
		`CREATE TABLE IF NOT EXISTS customers (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  email TEXT NOT NULL UNIQUE,
  phone TEXT,
  address TEXT,
  created_at DATETIME,
  updated_at DATETIME
);`,
		`CREATE TABLE IF NOT EXISTS products (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  description TEXT,
  price NUMERIC NOT NULL,
  stock INTEGER NOT NULL DEFAULT 0,
  image_url TEXT,
  category_id TEXT,
  created_at DATETIME,
  updated_at DATETIME
);`,
		`CREATE TABLE IF NOT EXISTS orders (
  id TEXT PRIMARY KEY,
  customer_id TEXT NOT NULL,
  total_amount NUMERIC NOT NULL DEFAULT 0,
  status TEXT NOT NULL DEFAULT 'pending',
  created_at DATETIME,
  updated_at DATETIME
);`,
		`CREATE TABLE IF NOT EXISTS order_items (
  id TEXT PRIMARY KEY,
  order_id TEXT NOT NULL,
  product_id TEXT NOT NULL,
  quantity INTEGER NOT NULL,
  price_at_order NUMERIC NOT NULL,
  created_at DATETIME,
  updated_at DATETIME
);`,
	}
	for _, stmt := range statements {
		require.NoError(t, client.DB().Exec(stmt).Error)
	}
	return client
}

func newTestService(t *testing.T) (Service, Repository, *db.Client) {
	t.Helper()

	client := setupOrdersTestDB(t)
	repo := NewRepository(client.DB())
	svc, err := NewService(repo, client)
	require.NoError(t, err)
	return svc, repo, client
}

func seedCustomer(t *testing.T, client *db.Client) *models.Customer {
	t.Helper()

	customer := &models.Customer{
		ID:    uuid.New(),
		Name:  "Ada Lovelace",
		Email: uuid.NewString() + "@example.com",
	}
	require.NoError(t, client.DB().Create(customer).Error)
	return customer
}

func seedProduct(t *testing.T, client *db.Client, price string, stock int) *models.Product {
	t.Helper()

	product := &models.Product{
		ID:    uuid.New(),
		Name:  "widget-" + uuid.NewString()[:8],
		Price: decimal.RequireFromString(price),
		Stock: stock,
	}
	require.NoError(t, client.DB().Create(product).Error)
	return product
}

func currentStock(t *testing.T, client *db.Client, productID uuid.UUID) int {
	t.Helper()

	var product models.Product
	require.NoError(t, client.DB().Where("id = ?", productID).First(&product).Error)
	return product.Stock
}

func reloadOrder(t *testing.T, client *db.Client, orderID uuid.UUID) *models.Order {
	t.Helper()

	var order models.Order
	require.NoError(t, client.DB().Preload("Items").Where("id = ?", orderID).First(&order).Error)
	return &order
}

func seedPendingOrder(t *testing.T, svc Service, client *db.Client, customerID uuid.UUID, items ...OrderItemInput) *models.Order {
	t.Helper()

	order, err := svc.CreateOrder(context.Background(), CreateOrderInput{
		CustomerID: customerID,
		Items:      items,
	})
	require.NoError(t, err)
	require.Equal(t, enums.OrderStatusPending, order.Status)
	return order
}
