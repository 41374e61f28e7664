package middleware

import (
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// DeviceMiddleware resolves the anonymous device identity sent in X-Device-Id.
// A request without the header proceeds with entity.NoDevice; a malformed value is rejected.
type DeviceMiddleware struct{}

// NewDeviceMiddleware creates a new device middleware
func NewDeviceMiddleware() *DeviceMiddleware {
	return &DeviceMiddleware{}
}

// Resolve stores the device id on the echo context and tags the request logger with it.
func (m *DeviceMiddleware) Resolve(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		raw := c.Request().Header.Get(deliverycontext.HeaderXDeviceID)
		if raw == "" {
			deliverycontext.SetDeviceID(c, entity.NoDevice)

			return next(c)
		}

		deviceID, ok := entity.ParseDeviceID(raw)
		if !ok {
			return domainerrors.ErrInvalidDeviceID.WithDetails(raw)
		}
		deliverycontext.SetDeviceID(c, deviceID)

		ctx := c.Request().Context()
		if logger := deliverycontext.GetLoggerOrDefault(ctx, nil); logger != nil {
			ctx = deliverycontext.WithLogger(ctx, logger.With(slog.String("device_id", deviceID.String())))
			c.SetRequest(c.Request().WithContext(ctx))
		}

		return next(c)
	}
}
