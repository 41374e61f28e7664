package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/response"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	ReconcilerUC usecase.ReconcilerUsecase
	Logger       *slog.Logger
}

// DeviceHandler issues device identities and returns a device's stored record
type DeviceHandler struct {
	reconcilerUC usecase.ReconcilerUsecase
	logger       *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler
func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		reconcilerUC: params.ReconcilerUC,
		logger:       params.Logger,
	}
}

// DeviceResponse carries a newly issued device id
type DeviceResponse struct {
	DeviceID entity.DeviceID `json:"device_id"`
}

// MeResponse is the caller's cart and wishlist
type MeResponse struct {
	DeviceID  entity.DeviceID        `json:"device_id"`
	Cart      []entity.CartEntry     `json:"cart"`
	Wishlist  []entity.WishlistEntry `json:"wishlist"`
	CartCount int                    `json:"cart_count"`
}

// IssueDevice handles POST /devices for clients that cannot generate their own id.
// A caller that already sent a valid X-Device-Id gets it back unchanged.
func (h *DeviceHandler) IssueDevice(c echo.Context) error {
	if deviceID := deliverycontext.GetDeviceID(c); deviceID.Present() {
		return response.Success(c, http.StatusOK, DeviceResponse{DeviceID: deviceID})
	}

	deviceID, err := entity.NewDeviceID()
	if err != nil {
		return errors.Wrap(err, "failed to generate device id")
	}

	return response.Success(c, http.StatusCreated, DeviceResponse{DeviceID: deviceID})
}

// GetMe handles GET /me
func (h *DeviceHandler) GetMe(c echo.Context) error {
	deviceID := deliverycontext.GetDeviceID(c)

	record, err := h.reconcilerUC.GetUserRecord(c.Request().Context(), deviceID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	cart := record.Cart
	if cart == nil {
		cart = []entity.CartEntry{}
	}
	wishlist := record.Wishlist
	if wishlist == nil {
		wishlist = []entity.WishlistEntry{}
	}

	return response.Success(c, http.StatusOK, MeResponse{
		DeviceID:  deviceID,
		Cart:      cart,
		Wishlist:  wishlist,
		CartCount: record.CartCount(),
	})
}
