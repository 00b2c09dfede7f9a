package products

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/storefrontlabs/storefront-backend/pkg/db/models"
	pkgerrors "github.com/storefrontlabs/storefront-backend/pkg/errors"
	"github.com/storefrontlabs/storefront-backend/pkg/pagination"
)

// ImageStore abstracts where product images live.
type ImageStore interface {
	Save(ctx context.Context, originalName string, body io.Reader) (string, error)
	Delete(ctx context.Context, object string) error
	PublicURL(object string) string
	ObjectFromURL(imageURL string) string
	MaxBytes() int64
}

// CreateProductInput captures everything accepted for a new catalog entry.
type CreateProductInput struct {
	Name        string
	Description *string
	Price       decimal.Decimal
	Stock       int
	CategoryID  *uuid.UUID
}

// UpdateProductInput carries partial-update fields. Nil means untouched.
// Stock here is an absolute restock value set by catalog admins; order flows
// never come through this path.
type UpdateProductInput struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal
	Stock       *int
	CategoryID  *uuid.UUID
}

// ProductFilters describe the inputs supported by the product list.
type ProductFilters struct {
	CategoryID *uuid.UUID
	Query      string
}

// ProductList wraps a page of products plus the next cursor.
type ProductList struct {
	Products   []models.Product `json:"products"`
	NextCursor string           `json:"next_cursor,omitempty"`
}

type Service struct {
	repo   *Repository
	images ImageStore
}

func NewService(repo *Repository, images ImageStore) (*Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("products repository required")
	}
	if images == nil {
		return nil, fmt.Errorf("image store required")
	}
	return &Service{repo: repo, images: images}, nil
}

// MaxImageBytes reports the upload cap for controllers to enforce early.
func (s *Service) MaxImageBytes() int64 {
	return s.images.MaxBytes()
}

func (s *Service) Create(ctx context.Context, input CreateProductInput) (*models.Product, error) {
	if input.Price.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "price cannot be negative")
	}
	if input.Stock < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "stock cannot be negative")
	}
	if input.CategoryID != nil {
		if err := s.requireCategory(ctx, *input.CategoryID); err != nil {
			return nil, err
		}
	}

	product := &models.Product{
		ID:          uuid.New(),
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Stock:       input.Stock,
		CategoryID:  input.CategoryID,
	}
	if _, err := s.repo.Create(ctx, product); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create product")
	}
	return product, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}
	return product, nil
}

func (s *Service) List(ctx context.Context, params pagination.Params, filters ProductFilters) (*ProductList, error) {
	list, err := s.repo.List(ctx, params, filters)
	if err != nil {
		if errors.Is(err, pagination.ErrInvalidCursor) {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid cursor")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list products")
	}
	return list, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateProductInput) (*models.Product, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.Price != nil {
		if input.Price.IsNegative() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "price cannot be negative")
		}
		updates["price"] = *input.Price
	}
	if input.Stock != nil {
		if *input.Stock < 0 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "stock cannot be negative")
		}
		updates["stock"] = *input.Stock
	}
	if input.CategoryID != nil {
		if err := s.requireCategory(ctx, *input.CategoryID); err != nil {
			return nil, err
		}
		updates["category_id"] = *input.CategoryID
	}

	if err := s.repo.Update(ctx, id, updates); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update product")
	}
	return s.Get(ctx, id)
}

// Delete removes the catalog entry and its stored image. Historical order
// items keep their quantity and price snapshot.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	product, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete product")
	}

	if product.ImageURL != nil {
		if object := s.images.ObjectFromURL(*product.ImageURL); object != "" {
			if err := s.images.Delete(ctx, object); err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete product image")
			}
		}
	}
	return nil
}

// UploadImage stores a new image for the product and replaces any previous one.
func (s *Service) UploadImage(ctx context.Context, id uuid.UUID, filename string, body io.Reader) (*models.Product, error) {
	product, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	object, err := s.images.Save(ctx, filename, body)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "store product image")
	}

	imageURL := s.images.PublicURL(object)
	if err := s.repo.Update(ctx, id, map[string]any{"image_url": imageURL}); err != nil {
		// the row update failed, do not leave the new blob orphaned
		_ = s.images.Delete(ctx, object)
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update product image url")
	}

	if product.ImageURL != nil {
		if old := s.images.ObjectFromURL(*product.ImageURL); old != "" {
			_ = s.images.Delete(ctx, old)
		}
	}
	return s.Get(ctx, id)
}

// DeleteImage removes the product's image, if any.
func (s *Service) DeleteImage(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	product, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if product.ImageURL == nil {
		return product, nil
	}

	if err := s.repo.Update(ctx, id, map[string]any{"image_url": nil}); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "clear product image url")
	}
	if object := s.images.ObjectFromURL(*product.ImageURL); object != "" {
		if err := s.images.Delete(ctx, object); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete product image")
		}
	}
	return s.Get(ctx, id)
}

func (s *Service) requireCategory(ctx context.Context, categoryID uuid.UUID) error {
	exists, err := s.repo.CategoryExists(ctx, categoryID)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "check category")
	}
	if !exists {
		return pkgerrors.New(pkgerrors.CodeNotFound, "category not found")
	}
	return nil
}
