package orders

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storefrontlabs/storefront-backend/pkg/db/models"
	"github.com/storefrontlabs/storefront-backend/pkg/enums"
	pkgerrors "github.com/storefrontlabs/storefront-backend/pkg/errors"
	"github.com/storefrontlabs/storefront-backend/pkg/pagination"
)

func requireCode(t *testing.T, err error, code pkgerrors.Code) *pkgerrors.Error {
	t.Helper()

	var appErr *pkgerrors.Error
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, code, appErr.Code())
	return appErr
}

func TestCreateOrderDecrementsStockAndSetsTotal(t *testing.T) {
	svc, _, client := newTestService(t)
	ctx := context.Background()

	customer := seedCustomer(t, client)
	product := seedProduct(t, client, "5.00", 10)

	order, err := svc.CreateOrder(ctx, CreateOrderInput{
		CustomerID: customer.ID,
		Items:      []OrderItemInput{{ProductID: product.ID, Quantity: 3}},
	})
	require.NoError(t, err)

	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("15.00")),
		"total %s", order.TotalAmount)
	assert.Equal(t, 7, currentStock(t, client, product.ID))
	require.Len(t, order.Items, 1)
	assert.True(t, order.Items[0].PriceAtOrder.Equal(product.Price))
	assert.Equal(t, enums.OrderStatusPending, order.Status)
}

func TestCreateOrderMultipleProducts(t *testing.T) {
	svc, _, client := newTestService(t)
	ctx := context.Background()

	customer := seedCustomer(t, client)
	p1 := seedProduct(t, client, "5.00", 10)
	p2 := seedProduct(t, client, "2.50", 4)

	order, err := svc.CreateOrder(ctx, CreateOrderInput{
		CustomerID: customer.ID,
		Items: []OrderItemInput{
			{ProductID: p1.ID, Quantity: 2},
			{ProductID: p2.ID, Quantity: 4},
		},
	})
	require.NoError(t, err)

	// 2*5.00 + 4*2.50 = 20.00
	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("20.00")))
	assert.Equal(t, 8, currentStock(t, client, p1.ID))
	assert.Equal(t, 0, currentStock(t, client, p2.ID))
}

func TestCreateOrderInsufficientStockRollsBackEverything(t *testing.T) {
	svc, _, client := newTestService(t)
	ctx := context.Background()

	customer := seedCustomer(t, client)
	p1 := seedProduct(t, client, "5.00", 10)
	p2 := seedProduct(t, client, "3.00", 1)

	_, err := svc.CreateOrder(ctx, CreateOrderInput{
		CustomerID: customer.ID,
		Items: []OrderItemInput{
			{ProductID: p1.ID, Quantity: 4},
			{ProductID: p2.ID, Quantity: 2},
		},
	})
	appErr := requireCode(t, err, pkgerrors.CodeInsufficientStock)

	details, ok := appErr.Details().(map[string]any)
	require.True(t, ok)
	assert.Equal(t, p2.ID, details["product_id"])
	assert.Equal(t, 2, details["requested"])
	assert.Equal(t, 1, details["available"])

	// the first line's decrement must have rolled back
	assert.Equal(t, 10, currentStock(t, client, p1.ID))
	assert.Equal(t, 1, currentStock(t, client, p2.ID))

	var count int64
	require.NoError(t, client.DB().Model(&models.Order{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateOrderUnknownCustomer(t *testing.T) {
	svc, _, client := newTestService(t)

	product := seedProduct(t, client, "5.00", 10)
	_, err := svc.CreateOrder(context.Background(), CreateOrderInput{
		CustomerID: uuid.New(),
		Items:      []OrderItemInput{{ProductID: product.ID, Quantity: 1}},
	})
	requireCode(t, err, pkgerrors.CodeNotFound)
	assert.Equal(t, 10, currentStock(t, client, product.ID))
}

func TestCreateOrderUnknownProduct(t *testing.T) {
	svc, _, client := newTestService(t)

	customer := seedCustomer(t, client)
	_, err := svc.CreateOrder(context.Background(), CreateOrderInput{
		CustomerID: customer.ID,
		Items:      []OrderItemInput{{ProductID: uuid.New(), Quantity: 1}},
	})
	requireCode(t, err, pkgerrors.CodeNotFound)
}

func TestCreateOrderRejectsZeroQuantity(t *testing.T) {
	svc, _, client := newTestService(t)

	customer := seedCustomer(t, client)
	product := seedProduct(t, client, "5.00", 10)

	_, err := svc.CreateOrder(context.Background(), CreateOrderInput{
		CustomerID: customer.ID,
		Items:      []OrderItemInput{{ProductID: product.ID, Quantity: 0}},
	})
	requireCode(t, err, pkgerrors.CodeValidation)
}

func TestAddItemInsufficientStockLeavesOrderUntouched(t *testing.T) {
	svc, _, client := newTestService(t)
	ctx := context.Background()

	customer := seedCustomer(t, client)
	product := seedProduct(t, client, "5.00", 10)
	order := seedPendingOrder(t, svc, client, customer.ID,
		OrderItemInput{ProductID: product.ID, Quantity: 3})
	require.Equal(t, 7, currentStock(t, client, product.ID))

	_, err := svc.AddItem(ctx, order.ID, AddItemInput{ProductID: product.ID, Quantity: 8})
	appErr := requireCode(t, err, pkgerrors.CodeInsufficientStock)

	details := appErr.Details().(map[string]any)
	assert.Equal(t, 8, details["requested"])
	assert.Equal(t, 7, details["available"])

	assert.Equal(t, 7, currentStock(t, client, product.ID))
	reloaded := reloadOrder(t, client, order.ID)
	assert.True(t, reloaded.TotalAmount.Equal(decimal.RequireFromString("15.00")))
	assert.Len(t, reloaded.Items, 1)
}

func TestAddItemAppendsLineAndGrowsTotal(t *testing.T) {
	svc, _, client := newTestService(t)
	ctx := context.Background()

	customer := seedCustomer(t, client)
	p1 := seedProduct(t, client, "5.00", 10)
	p2 := seedProduct(t, client, "1.25", 8)
	order := seedPendingOrder(t, svc, client, customer.ID,
		OrderItemInput{ProductID: p1.ID, Quantity: 2})

	item, err := svc.AddItem(ctx, order.ID, AddItemInput{ProductID: p2.ID, Quantity: 4})
	require.NoError(t, err)
	assert.True(t, item.PriceAtOrder.Equal(p2.Price))

	assert.Equal(t, 4, currentStock(t, client, p2.ID))
	reloaded := reloadOrder(t, client, order.ID)
	// 2*5.00 + 4*1.25 = 15.00
	assert.True(t, reloaded.TotalAmount.Equal(decimal.RequireFromString("15.00")))
	assert.Len(t, reloaded.Items, 2)
}

func TestUpdateItemQuantityIncreaseTakesDeltaAndRecomputes(t *testing.T) {
	svc, _, client := newTestService(t)
	ctx := context.Background()

	customer := seedCustomer(t, client)
	product := seedProduct(t, client, "5.00", 10)
	order := seedPendingOrder(t, svc, client, customer.ID,
		OrderItemInput{ProductID: product.ID, Quantity: 3})
	require.Equal(t, 7, currentStock(t, client, product.ID))

	item, err := svc.UpdateItemQuantity(ctx, order.ID, order.Items[0].ID, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, item.Quantity)

	assert.Equal(t, 5, currentStock(t, client, product.ID))
	reloaded := reloadOrder(t, client, order.ID)
	assert.True(t, reloaded.TotalAmount.Equal(decimal.RequireFromString("25.00")))
}

func TestUpdateItemQuantityDecreaseReturnsStock(t *testing.T) {
	svc, _, client := newTestService(t)
	ctx := context.Background()

	customer := seedCustomer(t, client)
	product := seedProduct(t, client, "5.00", 10)
	order := seedPendingOrder(t, svc, client, customer.ID,
		OrderItemInput{ProductID: product.ID, Quantity: 5})
	require.Equal(t, 5, currentStock(t, client, product.ID))

	_, err := svc.UpdateItemQuantity(ctx, order.ID, order.Items[0].ID, 2)
	require.NoError(t, err)

	assert.Equal(t, 8, currentStock(t, client, product.ID))
	reloaded := reloadOrder(t, client, order.ID)
	assert.True(t, reloaded.TotalAmount.Equal(decimal.RequireFromString("10.00")))
}

func TestUpdateItemQuantityInsufficientDelta(t *testing.T) {
	svc, _, client := newTestService(t)
	ctx := context.Background()

	customer := seedCustomer(t, client)
	product := seedProduct(t, client, "5.00", 4)
	order := seedPendingOrder(t, svc, client, customer.ID,
		OrderItemInput{ProductID: product.ID, Quantity: 3})
	require.Equal(t, 1, currentStock(t, client, product.ID))

	// going from 3 to 5 needs 2 more units, only 1 remains
	_, err := svc.UpdateItemQuantity(ctx, order.ID, order.Items[0].ID, 5)
	appErr := requireCode(t, err, pkgerrors.CodeInsufficientStock)

	details := appErr.Details().(map[string]any)
	assert.Equal(t, 2, details["requested"])
	assert.Equal(t, 1, details["available"])

	assert.Equal(t, 1, currentStock(t, client, product.ID))
	reloaded := reloadOrder(t, client, order.ID)
	assert.Equal(t, 3, reloaded.Items[0].Quantity)
}

func TestUpdateItemQuantityRepairsDriftedTotal(t *testing.T) {
	svc, _, client := newTestService(t)
	ctx := context.Background()

	customer := seedCustomer(t, client)
	product := seedProduct(t, client, "5.00", 20)
	order := seedPendingOrder(t, svc, client, customer.ID,
		OrderItemInput{ProductID: product.ID, Quantity: 2})

	// corrupt the stored total behind the service's back
	require.NoError(t, client.DB().Model(&models.Order{}).
		Where("id = ?", order.ID).
		Update("total_amount", decimal.RequireFromString("999.99")).Error)

	_, err := svc.UpdateItemQuantity(ctx, order.ID, order.Items[0].ID, 3)
	require.NoError(t, err)

	reloaded := reloadOrder(t, client, order.ID)
	assert.True(t, reloaded.TotalAmount.Equal(decimal.RequireFromString("15.00")))
}

func TestUpdateItemQuantityPreservesPriceSnapshot(t *testing.T) {
	svc, _, client := newTestService(t)
	ctx := context.Background()

	customer := seedCustomer(t, client)
	product := seedProduct(t, client, "5.00", 20)
	order := seedPendingOrder(t, svc, client, customer.ID,
		OrderItemInput{ProductID: product.ID, Quantity: 2})

	// catalog price changes must not leak into existing items
	require.NoError(t, client.DB().Model(&models.Product{}).
		Where("id = ?", product.ID).
		Update("price", decimal.RequireFromString("9.99")).Error)

	_, err := svc.UpdateItemQuantity(ctx, order.ID, order.Items[0].ID, 4)
	require.NoError(t, err)

	reloaded := reloadOrder(t, client, order.ID)
	assert.True(t, reloaded.Items[0].PriceAtOrder.Equal(decimal.RequireFromString("5.00")))
	assert.True(t, reloaded.TotalAmount.Equal(decimal.RequireFromString("20.00")))
}

func TestRemoveItemReturnsStockAndShrinksTotal(t *testing.T) {
	svc, _, client := newTestService(t)
	ctx := context.Background()

	customer := seedCustomer(t, client)
	p1 := seedProduct(t, client, "5.00", 10)
	p2 := seedProduct(t, client, "2.00", 10)
	order := seedPendingOrder(t, svc, client, customer.ID,
		OrderItemInput{ProductID: p1.ID, Quantity: 5},
		OrderItemInput{ProductID: p2.ID, Quantity: 1})

	var target *models.OrderItem
	for i := range order.Items {
		if order.Items[i].ProductID == p1.ID {
			target = &order.Items[i]
		}
	}
	require.NotNil(t, target)

	require.NoError(t, svc.RemoveItem(ctx, order.ID, target.ID))

	assert.Equal(t, 10, currentStock(t, client, p1.ID))
	reloaded := reloadOrder(t, client, order.ID)
	assert.True(t, reloaded.TotalAmount.Equal(decimal.RequireFromString("2.00")))
	assert.Len(t, reloaded.Items, 1)
}

func TestRemoveItemSkipsStockReturnForDeletedProduct(t *testing.T) {
	svc, _, client := newTestService(t)
	ctx := context.Background()

	customer := seedCustomer(t, client)
	product := seedProduct(t, client, "5.00", 10)
	order := seedPendingOrder(t, svc, client, customer.ID,
		OrderItemInput{ProductID: product.ID, Quantity: 3})

	require.NoError(t, client.DB().Where("id = ?", product.ID).
		Delete(&models.Product{}).Error)

	require.NoError(t, svc.RemoveItem(ctx, order.ID, order.Items[0].ID))

	reloaded := reloadOrder(t, client, order.ID)
	assert.True(t, reloaded.TotalAmount.Equal(decimal.Zero))
	assert.Empty(t, reloaded.Items)
}

func TestRemoveItemUnknownItem(t *testing.T) {
	svc, _, client := newTestService(t)

	customer := seedCustomer(t, client)
	product := seedProduct(t, client, "5.00", 10)
	order := seedPendingOrder(t, svc, client, customer.ID,
		OrderItemInput{ProductID: product.ID, Quantity: 1})

	err := svc.RemoveItem(context.Background(), order.ID, uuid.New())
	requireCode(t, err, pkgerrors.CodeNotFound)
}

func TestRemoveItemRejectsItemFromOtherOrder(t *testing.T) {
	svc, _, client := newTestService(t)
	ctx := context.Background()

	customer := seedCustomer(t, client)
	product := seedProduct(t, client, "5.00", 10)
	orderA := seedPendingOrder(t, svc, client, customer.ID,
		OrderItemInput{ProductID: product.ID, Quantity: 1})
	orderB := seedPendingOrder(t, svc, client, customer.ID,
		OrderItemInput{ProductID: product.ID, Quantity: 1})

	err := svc.RemoveItem(ctx, orderA.ID, orderB.Items[0].ID)
	requireCode(t, err, pkgerrors.CodeNotFound)
	assert.Len(t, reloadOrder(t, client, orderB.ID).Items, 1)
}

func TestDeleteOrderReturnsAllStockAndCascades(t *testing.T) {
	svc, _, client := newTestService(t)
	ctx := context.Background()

	customer := seedCustomer(t, client)
	p1 := seedProduct(t, client, "5.00", 10)
	p2 := seedProduct(t, client, "3.00", 6)
	order := seedPendingOrder(t, svc, client, customer.ID,
		OrderItemInput{ProductID: p1.ID, Quantity: 2},
		OrderItemInput{ProductID: p2.ID, Quantity: 4})
	require.Equal(t, 8, currentStock(t, client, p1.ID))
	require.Equal(t, 2, currentStock(t, client, p2.ID))

	require.NoError(t, svc.DeleteOrder(ctx, order.ID))

	assert.Equal(t, 10, currentStock(t, client, p1.ID))
	assert.Equal(t, 6, currentStock(t, client, p2.ID))

	var orderCount, itemCount int64
	require.NoError(t, client.DB().Model(&models.Order{}).Count(&orderCount).Error)
	require.NoError(t, client.DB().Model(&models.OrderItem{}).Count(&itemCount).Error)
	assert.Zero(t, orderCount)
	assert.Zero(t, itemCount)
}

func TestDeleteOrderUnknownOrder(t *testing.T) {
	svc, _, _ := newTestService(t)
	err := svc.DeleteOrder(context.Background(), uuid.New())
	requireCode(t, err, pkgerrors.CodeNotFound)
}

func TestUpdateOrderStatusAndCustomer(t *testing.T) {
	svc, _, client := newTestService(t)
	ctx := context.Background()

	customer := seedCustomer(t, client)
	other := seedCustomer(t, client)
	product := seedProduct(t, client, "5.00", 10)
	order := seedPendingOrder(t, svc, client, customer.ID,
		OrderItemInput{ProductID: product.ID, Quantity: 1})

	status := "shipped"
	updated, err := svc.UpdateOrder(ctx, order.ID, UpdateOrderInput{
		CustomerID: &other.ID,
		Status:     &status,
	})
	require.NoError(t, err)
	assert.Equal(t, enums.OrderStatusShipped, updated.Status)
	assert.Equal(t, other.ID, updated.CustomerID)
	// totals and items are off limits to field updates
	assert.True(t, updated.TotalAmount.Equal(decimal.RequireFromString("5.00")))
}

func TestUpdateOrderRejectsInvalidStatus(t *testing.T) {
	svc, _, client := newTestService(t)

	customer := seedCustomer(t, client)
	product := seedProduct(t, client, "5.00", 10)
	order := seedPendingOrder(t, svc, client, customer.ID,
		OrderItemInput{ProductID: product.ID, Quantity: 1})

	status := "teleported"
	_, err := svc.UpdateOrder(context.Background(), order.ID, UpdateOrderInput{Status: &status})
	requireCode(t, err, pkgerrors.CodeValidation)
}

func TestUpdateOrderUnknownCustomer(t *testing.T) {
	svc, _, client := newTestService(t)

	customer := seedCustomer(t, client)
	product := seedProduct(t, client, "5.00", 10)
	order := seedPendingOrder(t, svc, client, customer.ID,
		OrderItemInput{ProductID: product.ID, Quantity: 1})

	stranger := uuid.New()
	_, err := svc.UpdateOrder(context.Background(), order.ID, UpdateOrderInput{CustomerID: &stranger})
	requireCode(t, err, pkgerrors.CodeNotFound)
}

func TestStockConservationAcrossLifecycle(t *testing.T) {
	svc, _, client := newTestService(t)
	ctx := context.Background()

	customer := seedCustomer(t, client)
	product := seedProduct(t, client, "4.00", 12)

	order := seedPendingOrder(t, svc, client, customer.ID,
		OrderItemInput{ProductID: product.ID, Quantity: 5})
	_, err := svc.UpdateItemQuantity(ctx, order.ID, order.Items[0].ID, 9)
	require.NoError(t, err)
	_, err = svc.UpdateItemQuantity(ctx, order.ID, order.Items[0].ID, 1)
	require.NoError(t, err)
	require.NoError(t, svc.DeleteOrder(ctx, order.ID))

	// every unit taken was returned
	assert.Equal(t, 12, currentStock(t, client, product.ID))
}

func TestListOrdersFiltersAndPaginates(t *testing.T) {
	svc, _, client := newTestService(t)
	ctx := context.Background()

	customer := seedCustomer(t, client)
	other := seedCustomer(t, client)
	product := seedProduct(t, client, "1.00", 100)

	for range 3 {
		seedPendingOrder(t, svc, client, customer.ID,
			OrderItemInput{ProductID: product.ID, Quantity: 1})
	}
	seedPendingOrder(t, svc, client, other.ID,
		OrderItemInput{ProductID: product.ID, Quantity: 1})

	list, err := svc.ListOrders(ctx, pagination.Params{Limit: 10}, OrderFilters{CustomerID: &customer.ID})
	require.NoError(t, err)
	assert.Len(t, list.Orders, 3)
	assert.Empty(t, list.NextCursor)

	page, err := svc.ListOrders(ctx, pagination.Params{Limit: 2}, OrderFilters{})
	require.NoError(t, err)
	assert.Len(t, page.Orders, 2)
	assert.NotEmpty(t, page.NextCursor)
}

func TestCreateOrderAttachesCustomerAndProducts(t *testing.T) {
	svc, _, client := newTestService(t)
	ctx := context.Background()

	customer := seedCustomer(t, client)
	product := seedProduct(t, client, "5.00", 10)

	order, err := svc.CreateOrder(ctx, CreateOrderInput{
		CustomerID: customer.ID,
		Items:      []OrderItemInput{{ProductID: product.ID, Quantity: 3}},
	})
	require.NoError(t, err)

	require.NotNil(t, order.Customer)
	assert.Equal(t, customer.ID, order.Customer.ID)
	assert.Equal(t, customer.Email, order.Customer.Email)
	require.Len(t, order.Items, 1)
	require.NotNil(t, order.Items[0].Product)
	assert.Equal(t, product.Name, order.Items[0].Product.Name)
}

func TestAddItemReturnsItemWithProduct(t *testing.T) {
	svc, _, client := newTestService(t)
	ctx := context.Background()

	customer := seedCustomer(t, client)
	p1 := seedProduct(t, client, "5.00", 10)
	p2 := seedProduct(t, client, "3.00", 6)
	order := seedPendingOrder(t, svc, client, customer.ID,
		OrderItemInput{ProductID: p1.ID, Quantity: 1})

	item, err := svc.AddItem(ctx, order.ID, AddItemInput{ProductID: p2.ID, Quantity: 2})
	require.NoError(t, err)

	require.NotNil(t, item.Product)
	assert.Equal(t, p2.ID, item.Product.ID)
	assert.Equal(t, p2.Name, item.Product.Name)
}

func TestGetItemReturnsLineWithProduct(t *testing.T) {
	svc, _, client := newTestService(t)
	ctx := context.Background()

	customer := seedCustomer(t, client)
	product := seedProduct(t, client, "5.00", 10)
	order := seedPendingOrder(t, svc, client, customer.ID,
		OrderItemInput{ProductID: product.ID, Quantity: 2})

	item, err := svc.GetItem(ctx, order.ID, order.Items[0].ID)
	require.NoError(t, err)

	assert.Equal(t, order.ID, item.OrderID)
	assert.Equal(t, 2, item.Quantity)
	require.NotNil(t, item.Product)
	assert.Equal(t, product.ID, item.Product.ID)
}

func TestGetItemRejectsItemFromOtherOrder(t *testing.T) {
	svc, _, client := newTestService(t)
	ctx := context.Background()

	customer := seedCustomer(t, client)
	product := seedProduct(t, client, "5.00", 10)
	orderA := seedPendingOrder(t, svc, client, customer.ID,
		OrderItemInput{ProductID: product.ID, Quantity: 1})
	orderB := seedPendingOrder(t, svc, client, customer.ID,
		OrderItemInput{ProductID: product.ID, Quantity: 1})

	_, err := svc.GetItem(ctx, orderA.ID, orderB.Items[0].ID)
	requireCode(t, err, pkgerrors.CodeNotFound)
}

func TestListItemsReturnsLinesWithProducts(t *testing.T) {
	svc, _, client := newTestService(t)
	ctx := context.Background()

	customer := seedCustomer(t, client)
	p1 := seedProduct(t, client, "5.00", 10)
	p2 := seedProduct(t, client, "3.00", 6)
	order := seedPendingOrder(t, svc, client, customer.ID,
		OrderItemInput{ProductID: p1.ID, Quantity: 2},
		OrderItemInput{ProductID: p2.ID, Quantity: 1})

	items, err := svc.ListItems(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	for _, item := range items {
		require.NotNil(t, item.Product)
	}

	_, err = svc.ListItems(ctx, uuid.New())
	requireCode(t, err, pkgerrors.CodeNotFound)
}

func TestUpdateItemQuantityUnchangedKeepsStockAndTotal(t *testing.T) {
	svc, _, client := newTestService(t)
	ctx := context.Background()

	customer := seedCustomer(t, client)
	product := seedProduct(t, client, "5.00", 10)
	order := seedPendingOrder(t, svc, client, customer.ID,
		OrderItemInput{ProductID: product.ID, Quantity: 3})

	item, err := svc.UpdateItemQuantity(ctx, order.ID, order.Items[0].ID, 3)
	require.NoError(t, err)

	assert.Equal(t, 3, item.Quantity)
	assert.Equal(t, 7, currentStock(t, client, product.ID))
	reloaded := reloadOrder(t, client, order.ID)
	assert.True(t, reloaded.TotalAmount.Equal(decimal.RequireFromString("15.00")),
		"total %s", reloaded.TotalAmount)
}

func TestUpdateItemQuantityIncreaseOnDeletedProduct(t *testing.T) {
	svc, _, client := newTestService(t)
	ctx := context.Background()

	customer := seedCustomer(t, client)
	product := seedProduct(t, client, "5.00", 10)
	order := seedPendingOrder(t, svc, client, customer.ID,
		OrderItemInput{ProductID: product.ID, Quantity: 3})

	require.NoError(t, client.DB().Where("id = ?", product.ID).
		Delete(&models.Product{}).Error)

	// A vanished product is a missing resource, not a stock shortfall.
	_, err := svc.UpdateItemQuantity(ctx, order.ID, order.Items[0].ID, 5)
	appErr := requireCode(t, err, pkgerrors.CodeNotFound)
	assert.Equal(t, "product not found", appErr.Message())
}

func TestListOrdersRejectsMalformedCursor(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.ListOrders(context.Background(), pagination.Params{Cursor: "not-a-cursor!!"}, OrderFilters{})
	requireCode(t, err, pkgerrors.CodeValidation)
}
