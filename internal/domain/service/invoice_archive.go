package service

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrInvoiceNotFound is returned when no summary was archived for an order.
var ErrInvoiceNotFound = errors.New("invoice not found")

// InvoiceArchive keeps a copy of every rendered invoice summary.
type InvoiceArchive interface {
	// SaveInvoice stores the summary under its order ID, replacing an earlier copy.
	SaveInvoice(ctx context.Context, summary *entity.InvoiceSummary) error

	// LoadInvoice reads a stored summary back.
	LoadInvoice(ctx context.Context, orderID string) (*entity.InvoiceSummary, error)
}
