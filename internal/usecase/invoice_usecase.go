package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// InvoiceUsecase backs the legacy invoice page.
type InvoiceUsecase interface {
	// Summarize renders the order summary and archives it.
	Summarize(ctx context.Context, order *entity.Order) (*entity.InvoiceSummary, error)

	// GetInvoice returns a previously archived summary.
	GetInvoice(ctx context.Context, orderID string) (*entity.InvoiceSummary, error)

	// ShareLink returns the WhatsApp link announcing the order.
	ShareLink(orderID string) string

	// ShareLinkQR renders the share link as a PNG QR code.
	ShareLinkQR(orderID string) ([]byte, error)
}
