package products

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storefrontlabs/storefront-backend/pkg/config"
	"github.com/storefrontlabs/storefront-backend/pkg/db"
	"github.com/storefrontlabs/storefront-backend/pkg/db/models"
	pkgerrors "github.com/storefrontlabs/storefront-backend/pkg/errors"
	"github.com/storefrontlabs/storefront-backend/pkg/pagination"
	"github.com/storefrontlabs/storefront-backend/pkg/storage"
)

func setupProductsTestDB(t *testing.T) *db.Client {
	t.Helper()

	client, err := db.New(context.Background(), config.DBConfig{
		Driver: "sqlite",
		DSN:    "file:products_" + uuid.NewString() + "?mode=memory&cache=shared",
	}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	statements := []string{
		`CREATE TABLE IF NOT EXISTS categories (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL UNIQUE,
  description TEXT,
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
	}
	for _, stmt := range statements {
		require.NoError(t, client.DB().Exec(stmt).Error)
	}
	return client
}

func newTestService(t *testing.T) (*Service, *db.Client) {
	t.Helper()

	client := setupProductsTestDB(t)
	store, err := storage.NewLocalStore(context.Background(), config.StorageConfig{
		ProductImageDir: t.TempDir(),
		PublicBaseURL:   "http://localhost:8080",
		MaxUploadMB:     1,
	}, nil)
	require.NoError(t, err)

	svc, err := NewService(NewRepository(client.DB()), store)
	require.NoError(t, err)
	return svc, client
}

func TestCreateAndGetProduct(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateProductInput{
		Name:  "kettle",
		Price: decimal.RequireFromString("34.99"),
		Stock: 12,
	})
	require.NoError(t, err)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "kettle", got.Name)
	assert.Equal(t, 12, got.Stock)
	assert.True(t, got.Price.Equal(decimal.RequireFromString("34.99")))
}

func TestCreateProductRejectsNegatives(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateProductInput{
		Name:  "broken",
		Price: decimal.RequireFromString("-1.00"),
	})
	var appErr *pkgerrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, pkgerrors.CodeValidation, appErr.Code())

	_, err = svc.Create(ctx, CreateProductInput{
		Name:  "broken",
		Price: decimal.RequireFromString("1.00"),
		Stock: -1,
	})
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, pkgerrors.CodeValidation, appErr.Code())
}

func TestCreateProductUnknownCategory(t *testing.T) {
	svc, _ := newTestService(t)

	bogus := uuid.New()
	_, err := svc.Create(context.Background(), CreateProductInput{
		Name:       "lost",
		Price:      decimal.RequireFromString("1.00"),
		CategoryID: &bogus,
	})
	var appErr *pkgerrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, pkgerrors.CodeNotFound, appErr.Code())
}

func TestUpdateProductRestock(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateProductInput{
		Name:  "mug",
		Price: decimal.RequireFromString("8.00"),
		Stock: 2,
	})
	require.NoError(t, err)

	stock := 50
	updated, err := svc.Update(ctx, created.ID, UpdateProductInput{Stock: &stock})
	require.NoError(t, err)
	assert.Equal(t, 50, updated.Stock)
	assert.Equal(t, "mug", updated.Name)
}

func TestUploadAndReplaceImage(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateProductInput{
		Name:  "poster",
		Price: decimal.RequireFromString("3.00"),
	})
	require.NoError(t, err)

	withImage, err := svc.UploadImage(ctx, created.ID, "first.png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	require.NotNil(t, withImage.ImageURL)
	firstURL := *withImage.ImageURL

	replaced, err := svc.UploadImage(ctx, created.ID, "second.jpg", strings.NewReader("jpg-bytes"))
	require.NoError(t, err)
	require.NotNil(t, replaced.ImageURL)
	assert.NotEqual(t, firstURL, *replaced.ImageURL)

	cleared, err := svc.DeleteImage(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, cleared.ImageURL)
}

func TestUploadImageRejectsBadExtension(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateProductInput{
		Name:  "thing",
		Price: decimal.RequireFromString("3.00"),
	})
	require.NoError(t, err)

	_, err = svc.UploadImage(ctx, created.ID, "script.sh", strings.NewReader("#!/bin/sh"))
	var appErr *pkgerrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, pkgerrors.CodeValidation, appErr.Code())
}

func TestDeleteProductKeepsOrderHistoryShape(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateProductInput{
		Name:  "ephemeral",
		Price: decimal.RequireFromString("2.00"),
		Stock: 5,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	var count int64
	require.NoError(t, client.DB().Model(&models.Product{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestListProductsByCategory(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()

	category := &models.Category{ID: uuid.New(), Name: "tools"}
	require.NoError(t, client.DB().Create(category).Error)

	for i := 0; i < 2; i++ {
		_, err := svc.Create(ctx, CreateProductInput{
			Name:       "hammer",
			Price:      decimal.RequireFromString("10.00"),
			CategoryID: &category.ID,
		})
		require.NoError(t, err)
	}
	_, err := svc.Create(ctx, CreateProductInput{
		Name:  "uncategorized",
		Price: decimal.RequireFromString("10.00"),
	})
	require.NoError(t, err)

	list, err := svc.List(ctx, pagination.Params{Limit: 10}, ProductFilters{CategoryID: &category.ID})
	require.NoError(t, err)
	assert.Len(t, list.Products, 2)
}
