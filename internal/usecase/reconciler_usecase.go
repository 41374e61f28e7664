package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// ApplyResult is the outcome of a cart or wishlist mutation.
type ApplyResult struct {
	// Applied is false when a precondition was missing and nothing was stored.
	Applied   bool             `json:"applied"`
	Operation entity.Operation `json:"operation"`

	Cart     []entity.CartEntry     `json:"cart,omitempty"`
	Wishlist []entity.WishlistEntry `json:"wishlist,omitempty"`

	// CartCount is the number of units in the cart after the mutation.
	CartCount int `json:"cart_count"`
	// InWishlist is the wishlist membership of the applied product variant after the mutation.
	InWishlist bool `json:"in_wishlist"`
}

// ReconcilerUsecase merges cart and wishlist actions into a device's stored record.
type ReconcilerUsecase interface {
	// Apply adds one unit of the product to the cart, or toggles the product variant in
	// the wishlist. A nil variant resolves to the product's first variant.
	Apply(ctx context.Context, deviceID entity.DeviceID, product *entity.Product, variant *entity.ProductVariant, op entity.Operation) (*ApplyResult, error)

	// IsInWishlist reports whether the device wishlisted the product variant.
	IsInWishlist(ctx context.Context, deviceID entity.DeviceID, productID, variant string) (bool, error)

	// GetUserRecord returns the device's cart and wishlist.
	GetUserRecord(ctx context.Context, deviceID entity.DeviceID) (*entity.UserRecord, error)
}
