package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// ProductView is a product as shown on its card or detail page.
type ProductView struct {
	Product *entity.Product       `json:"product"`
	Name    string                `json:"name"`
	Display entity.ProductDisplay `json:"display"`
}

// CatalogUsecase defines the product listing and detail use cases
type CatalogUsecase interface {
	// ListProducts returns the catalog filtered by a listing tag ("all" keeps everything).
	ListProducts(ctx context.Context, tag, locale string) ([]*ProductView, error)

	// GetProduct loads one product and computes its display projection.
	GetProduct(ctx context.Context, id, locale string) (*ProductView, error)

	// ResolveVariant loads a product and picks the variant with the given wattage,
	// or the first variant when watts is empty.
	ResolveVariant(ctx context.Context, id, watts string) (*entity.Product, *entity.ProductVariant, error)
}
