// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrProductNotFound is returned when the catalog has no product with the requested ID.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository is the read-only product catalog.
type ProductRepository interface {
	// FindProductByID retrieves a product by its catalog ID.
	FindProductByID(ctx context.Context, id string) (*entity.Product, error)

	// ListProducts retrieves every product in catalog order.
	ListProducts(ctx context.Context) ([]*entity.Product, error)
}
