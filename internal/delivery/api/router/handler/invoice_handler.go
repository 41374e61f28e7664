package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// InvoiceHandlerParams holds dependencies for InvoiceHandler, injected by Fx.
type InvoiceHandlerParams struct {
	fx.In

	InvoiceUC usecase.InvoiceUsecase
	Logger    *slog.Logger
}

// InvoiceHandler backs the legacy invoice page
type InvoiceHandler struct {
	invoiceUC usecase.InvoiceUsecase
	logger    *slog.Logger
}

// NewInvoiceHandler is the constructor for InvoiceHandler
func NewInvoiceHandler(params InvoiceHandlerParams) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceUC: params.InvoiceUC,
		logger:    params.Logger,
	}
}

// ShareQRRequest names the order to announce
type ShareQRRequest struct {
	OrderID string `json:"orderId" validate:"required"`
}

// Summarize handles POST /invoices/summary
func (h *InvoiceHandler) Summarize(c echo.Context) error {
	var order entity.Order
	if err := c.Bind(&order); err != nil {
		return response.BindingError(c, "Invalid order data")
	}

	if err := c.Validate(&order); err != nil {
		return response.HandleAppError(c, err)
	}

	summary, err := h.invoiceUC.Summarize(c.Request().Context(), &order)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, summary)
}

// GetInvoice handles GET /invoices/:orderId
func (h *InvoiceHandler) GetInvoice(c echo.Context) error {
	summary, err := h.invoiceUC.GetInvoice(c.Request().Context(), c.Param("orderId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, summary)
}

// ShareQR handles POST /invoices/share-qr and answers with a PNG image
func (h *InvoiceHandler) ShareQR(c echo.Context) error {
	var req ShareQRRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid share request")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.invoiceUC.ShareLinkQR(req.OrderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set("X-Share-Link", h.invoiceUC.ShareLink(req.OrderID))

	return c.Blob(http.StatusOK, "image/png", png)
}
