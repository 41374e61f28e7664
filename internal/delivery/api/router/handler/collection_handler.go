package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/response"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CollectionHandlerParams holds dependencies for CollectionHandler, injected by Fx.
type CollectionHandlerParams struct {
	fx.In

	CatalogUC    usecase.CatalogUsecase
	ReconcilerUC usecase.ReconcilerUsecase
	Logger       *slog.Logger
}

// CollectionHandler serves the cart and wishlist buttons of a product card
type CollectionHandler struct {
	catalogUC    usecase.CatalogUsecase
	reconcilerUC usecase.ReconcilerUsecase
	logger       *slog.Logger
}

// NewCollectionHandler is the constructor for CollectionHandler
func NewCollectionHandler(params CollectionHandlerParams) *CollectionHandler {
	return &CollectionHandler{
		catalogUC:    params.CatalogUC,
		reconcilerUC: params.ReconcilerUC,
		logger:       params.Logger,
	}
}

// CollectionItemRequest names a product and, optionally, one of its variants.
// An empty watts selects the first variant.
type CollectionItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Watts     string `json:"watts"`
}

// WishlistStatusRequest holds the wishlist status query parameters
type WishlistStatusRequest struct {
	ProductID string `query:"product_id" validate:"required"`
	Watts     string `query:"watts"`
}

// WishlistStatusResponse reports wishlist membership of one variant
type WishlistStatusResponse struct {
	ProductID  string `json:"product_id"`
	Watts      string `json:"watts"`
	InWishlist bool   `json:"in_wishlist"`
}

// AddToCart handles POST /cart/items
func (h *CollectionHandler) AddToCart(c echo.Context) error {
	return h.apply(c, entity.OperationAddToCart)
}

// ToggleWishlist handles POST /wishlist/toggle
func (h *CollectionHandler) ToggleWishlist(c echo.Context) error {
	return h.apply(c, entity.OperationToggleWishlist)
}

// WishlistStatus handles GET /wishlist/status
func (h *CollectionHandler) WishlistStatus(c echo.Context) error {
	var req WishlistStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid wishlist status query")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	deviceID := deliverycontext.GetDeviceID(c)
	if !deviceID.Present() {
		return response.Success(c, http.StatusOK, WishlistStatusResponse{
			ProductID:  req.ProductID,
			Watts:      req.Watts,
			InWishlist: false,
		})
	}

	ctx := c.Request().Context()

	watts := req.Watts
	if watts == "" {
		_, variant, err := h.catalogUC.ResolveVariant(ctx, req.ProductID, "")
		if err != nil {
			return response.HandleAppError(c, err)
		}
		watts = entity.VariantKey(variant)
	}

	inWishlist, err := h.reconcilerUC.IsInWishlist(ctx, deviceID, req.ProductID, watts)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, WishlistStatusResponse{
		ProductID:  req.ProductID,
		Watts:      watts,
		InWishlist: inWishlist,
	})
}

// apply runs a cart or wishlist mutation. Without a device identity the mutation is a
// no-op answered with 202 and applied=false, and the catalog is not consulted.
func (h *CollectionHandler) apply(c echo.Context, op entity.Operation) error {
	var req CollectionItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid collection item")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	ctx := c.Request().Context()
	deviceID := deliverycontext.GetDeviceID(c)

	var (
		product *entity.Product
		variant *entity.ProductVariant
	)
	if deviceID.Present() {
		var err error
		product, variant, err = h.catalogUC.ResolveVariant(ctx, req.ProductID, req.Watts)
		if err != nil {
			return response.HandleAppError(c, err)
		}
	}

	result, err := h.reconcilerUC.Apply(ctx, deviceID, product, variant, op)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	status := http.StatusOK
	if !result.Applied {
		status = http.StatusAccepted
	}

	return response.Success(c, status, result)
}
