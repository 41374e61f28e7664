// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ProductHandler    *handler.ProductHandler
	DeviceHandler     *handler.DeviceHandler
	CollectionHandler *handler.CollectionHandler
	InvoiceHandler    *handler.InvoiceHandler
	DeviceMiddleware  *middleware.DeviceMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	productHandler    *handler.ProductHandler
	deviceHandler     *handler.DeviceHandler
	collectionHandler *handler.CollectionHandler
	invoiceHandler    *handler.InvoiceHandler
	deviceMiddleware  *middleware.DeviceMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		productHandler:    params.ProductHandler,
		deviceHandler:     params.DeviceHandler,
		collectionHandler: params.CollectionHandler,
		invoiceHandler:    params.InvoiceHandler,
		deviceMiddleware:  params.DeviceMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.deviceMiddleware.Resolve)

	productsGroup := apiV1.Group("/products")
	{
		productsGroup.GET("", r.productHandler.ListProducts)
		productsGroup.GET("/:id", r.productHandler.GetProduct)
	}

	apiV1.POST("/devices", r.deviceHandler.IssueDevice)
	apiV1.GET("/me", r.deviceHandler.GetMe)

	apiV1.POST("/cart/items", r.collectionHandler.AddToCart)

	wishlistGroup := apiV1.Group("/wishlist")
	{
		wishlistGroup.POST("/toggle", r.collectionHandler.ToggleWishlist)
		wishlistGroup.GET("/status", r.collectionHandler.WishlistStatus)
	}

	invoicesGroup := apiV1.Group("/invoices")
	{
		invoicesGroup.POST("/summary", r.invoiceHandler.Summarize)
		invoicesGroup.POST("/share-qr", r.invoiceHandler.ShareQR)
		invoicesGroup.GET("/:orderId", r.invoiceHandler.GetInvoice)
	}
}
