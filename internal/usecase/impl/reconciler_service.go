package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type reconcilerService struct {
	userProductRepo repository.UserProductRepository
	publisher       service.EventPublisher
	logger          *slog.Logger
}

// ReconcilerServiceParams holds dependencies for ReconcilerService, injected by Fx.
type ReconcilerServiceParams struct {
	fx.In

	UserProductRepo repository.UserProductRepository
	Publisher       service.EventPublisher
	Logger          *slog.Logger
}

// NewReconcilerService creates a new reconciler service instance
func NewReconcilerService(params ReconcilerServiceParams) usecase.ReconcilerUsecase {
	return &reconcilerService{
		userProductRepo: params.UserProductRepo,
		publisher:       params.Publisher,
		logger:          params.Logger,
	}
}

func (srv *reconcilerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Apply stores a cart add or wishlist toggle. Without a device identity or a loaded
// product it does nothing and reports Applied=false.
func (srv *reconcilerService) Apply(
	ctx context.Context,
	deviceID entity.DeviceID,
	product *entity.Product,
	variant *entity.ProductVariant,
	op entity.Operation,
) (*usecase.ApplyResult, error) {
	if _, ok := entity.ParseOperation(string(op)); !ok {
		return nil, domainerrors.ErrInvalidOperation.WithDetails(string(op))
	}

	if !deviceID.Present() || product == nil || product.ID == "" {
		srv.log(ctx).Debug("Skipping collection update, precondition missing",
			slog.String("operation", string(op)),
			slog.Bool("device_present", deviceID.Present()),
			slog.Bool("product_loaded", product != nil && product.ID != ""),
		)

		return &usecase.ApplyResult{Applied: false, Operation: op}, nil
	}

	if variant == nil && len(product.Variants) > 0 {
		variant = &product.Variants[0]
	}
	variantKey := entity.VariantKey(variant)

	record, err := srv.userProductRepo.MutateRecord(ctx, deviceID, func(record *entity.UserRecord) (entity.Collection, error) {
		switch op {
		case entity.OperationAddToCart:
			record.Cart = addToCart(record.Cart, product, variant)
		case entity.OperationToggleWishlist:
			record.Wishlist = toggleWishlist(record.Wishlist, entity.NewWishlistEntry(product, variant))
		}

		return op.Collection(), nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrTooManyConflicts) {
			return nil, domainerrors.ErrStoreUnavailable.WithDetails("record is being modified concurrently")
		}

		return nil, errors.Wrapf(err, "failed to update %s", op.Collection())
	}

	result := &usecase.ApplyResult{
		Applied:    true,
		Operation:  op,
		Cart:       record.Cart,
		Wishlist:   record.Wishlist,
		CartCount:  record.CartCount(),
		InWishlist: record.InWishlist(product.ID, variantKey),
	}

	srv.publish(ctx, deviceID, product.ID, variantKey, result)

	return result, nil
}

// addToCart increments the product's line, or appends a new line priced at the
// selected variant. The price of an existing line is left as first recorded.
func addToCart(cart []entity.CartEntry, product *entity.Product, variant *entity.ProductVariant) []entity.CartEntry {
	for i := range cart {
		if cart[i].ProductID == product.ID {
			cart[i].Quantity++

			return cart
		}
	}

	price := product.Price
	if variant != nil {
		price = variant.Price
	}

	return append(cart, entity.CartEntry{ProductID: product.ID, Quantity: 1, Price: price})
}

// toggleWishlist removes every entry with the entry's key, or appends the entry when
// none exists.
func toggleWishlist(wishlist []entity.WishlistEntry, entry entity.WishlistEntry) []entity.WishlistEntry {
	kept := make([]entity.WishlistEntry, 0, len(wishlist)+1)
	for _, existing := range wishlist {
		if !existing.Matches(entry.ProductID, entry.Variant) {
			kept = append(kept, existing)
		}
	}
	if len(kept) == len(wishlist) {
		kept = append(kept, entry)
	}

	return kept
}

func (srv *reconcilerService) publish(ctx context.Context, deviceID entity.DeviceID, productID, variant string, result *usecase.ApplyResult) {
	event := &service.CollectionChangedEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		EventID:    uuid.NewString(),
		DeviceID:   deviceID.String(),
		Collection: string(result.Operation.Collection()),
		ProductID:  productID,
		Variant:    variant,
		CartCount:  result.CartCount,
		InWishlist: result.InWishlist,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	}

	if err := srv.publisher.PublishCollectionChanged(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish collection change",
			slog.String("event_id", event.EventID),
			slog.Any("error", err),
		)
	}
}

// IsInWishlist reports whether the device wishlisted the product variant. An empty
// variant means the product has none.
func (srv *reconcilerService) IsInWishlist(ctx context.Context, deviceID entity.DeviceID, productID, variant string) (bool, error) {
	if !deviceID.Present() {
		return false, nil
	}
	if variant == "" {
		variant = entity.UnknownVariant
	}

	record, err := srv.GetUserRecord(ctx, deviceID)
	if err != nil {
		return false, err
	}

	return record.InWishlist(productID, variant), nil
}

// GetUserRecord returns the device's record, empty when the device never stored anything.
func (srv *reconcilerService) GetUserRecord(ctx context.Context, deviceID entity.DeviceID) (*entity.UserRecord, error) {
	if !deviceID.Present() {
		return &entity.UserRecord{}, nil
	}

	record, err := srv.userProductRepo.FindUserRecord(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repository.ErrUserRecordNotFound) {
			return &entity.UserRecord{}, nil
		}

		return nil, errors.Wrap(err, "failed to read user record")
	}

	return record, nil
}
