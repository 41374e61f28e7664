package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// ProductHandler serves the product listing and product detail pages
type ProductHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// ListProductsRequest holds the listing query parameters
type ListProductsRequest struct {
	Tag    string `query:"tag" validate:"listing_tag"`
	Locale string `query:"locale" validate:"omitempty,oneof=en ar"`
}

// ListProductsResponse is the filtered listing
type ListProductsResponse struct {
	Tag      string                 `json:"tag"`
	Count    int                    `json:"count"`
	Products []*usecase.ProductView `json:"products"`
}

// ListProducts handles GET /products
func (h *ProductHandler) ListProducts(c echo.Context) error {
	var req ListProductsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid listing query")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	products, err := h.catalogUC.ListProducts(c.Request().Context(), req.Tag, req.Locale)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	tag := req.Tag
	if tag == "" {
		tag = "all"
	}

	return response.Success(c, http.StatusOK, ListProductsResponse{
		Tag:      tag,
		Count:    len(products),
		Products: products,
	})
}

// GetProduct handles GET /products/:id
func (h *ProductHandler) GetProduct(c echo.Context) error {
	view, err := h.catalogUC.GetProduct(c.Request().Context(), c.Param("id"), c.QueryParam("locale"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}
