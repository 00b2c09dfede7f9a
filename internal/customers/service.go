package customers

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/storefrontlabs/storefront-backend/pkg/db"
	"github.com/storefrontlabs/storefront-backend/pkg/db/models"
	pkgerrors "github.com/storefrontlabs/storefront-backend/pkg/errors"
	"github.com/storefrontlabs/storefront-backend/pkg/pagination"
)

// CreateCustomerInput captures the fields accepted when registering a customer.
type CreateCustomerInput struct {
	Name    string
	Email   string
	Phone   *string
	Address *string
}

// UpdateCustomerInput carries partial-update fields. Nil means untouched.
type UpdateCustomerInput struct {
	Name    *string
	Email   *string
	Phone   *string
	Address *string
}

// CustomerList wraps a page of customers plus the next cursor.
type CustomerList struct {
	Customers  []models.Customer `json:"customers"`
	NextCursor string            `json:"next_cursor,omitempty"`
}

type Service struct {
	repo *Repository
}

func NewService(repo *Repository) (*Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("customers repository required")
	}
	return &Service{repo: repo}, nil
}

func (s *Service) Create(ctx context.Context, input CreateCustomerInput) (*models.Customer, error) {
	customer := &models.Customer{
		ID:      uuid.New(),
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Address: input.Address,
	}
	if _, err := s.repo.Create(ctx, customer); err != nil {
		if db.IsUniqueViolation(err) {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "email already in use")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create customer")
	}
	return customer, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*models.Customer, error) {
	customer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "customer not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load customer")
	}
	return customer, nil
}

func (s *Service) List(ctx context.Context, params pagination.Params) (*CustomerList, error) {
	list, err := s.repo.List(ctx, params)
	if err != nil {
		if errors.Is(err, pagination.ErrInvalidCursor) {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid cursor")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list customers")
	}
	return list, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateCustomerInput) (*models.Customer, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Email != nil {
		updates["email"] = *input.Email
	}
	if input.Phone != nil {
		updates["phone"] = *input.Phone
	}
	if input.Address != nil {
		updates["address"] = *input.Address
	}

	if err := s.repo.Update(ctx, id, updates); err != nil {
		if db.IsUniqueViolation(err) {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "email already in use")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update customer")
	}
	return s.Get(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}

	// Customers with order history cannot be removed; orders keep a hard
	// reference to their customer.
	count, err := s.repo.CountOrders(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count customer orders")
	}
	if count > 0 {
		return pkgerrors.New(pkgerrors.CodeConflict, "customer has existing orders")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete customer")
	}
	return nil
}
