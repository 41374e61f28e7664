package impl

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"unicode"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const whatsappBaseURL = "https://wa.me/+"

type invoiceService struct {
	cfg     *config.InvoiceConfig
	archive service.InvoiceArchive
	qrcode  service.QRCodeService
	logger  *slog.Logger
}

// InvoiceServiceParams holds dependencies for InvoiceService, injected by Fx.
type InvoiceServiceParams struct {
	fx.In

	Config  *config.Config
	Archive service.InvoiceArchive
	QRCode  service.QRCodeService
	Logger  *slog.Logger
}

// NewInvoiceService creates a new invoice service instance
func NewInvoiceService(params InvoiceServiceParams) usecase.InvoiceUsecase {
	cfg := params.Config.Invoice
	if cfg == nil {
		cfg = &config.InvoiceConfig{}
	}

	return &invoiceService{
		cfg:     cfg,
		archive: params.Archive,
		qrcode:  params.QRCode,
		logger:  params.Logger,
	}
}

// Summarize renders one row per order line and sums the line prices. Line prices are
// already totals, so quantity is shown but not multiplied. Archiving is best effort.
func (srv *invoiceService) Summarize(ctx context.Context, order *entity.Order) (*entity.InvoiceSummary, error) {
	if order == nil || strings.TrimSpace(order.OrderID) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("order id is required")
	}

	summary := &entity.InvoiceSummary{
		OrderID:   order.OrderID,
		Currency:  srv.cfg.Currency,
		Lines:     make([]entity.InvoiceLine, 0, len(order.Data)),
		ShareLink: srv.ShareLink(order.OrderID),
	}
	for _, line := range order.Data {
		summary.Lines = append(summary.Lines, entity.InvoiceLine{
			Description: describeLine(line),
			Quantity:    line.Quantity,
			Amount:      line.Price,
		})
		summary.Subtotal += line.Price
	}
	summary.Total = summary.Subtotal

	if err := srv.archive.SaveInvoice(ctx, summary); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Warn("Failed to archive invoice",
			slog.String("order_id", order.OrderID),
			slog.Any("error", err),
		)
	}

	return summary, nil
}

func describeLine(line entity.OrderLine) string {
	if line.Label == "" {
		return line.ProductTitle
	}

	return fmt.Sprintf("(%s) %s", line.Label, line.ProductTitle)
}

// GetInvoice returns an archived summary.
func (srv *invoiceService) GetInvoice(ctx context.Context, orderID string) (*entity.InvoiceSummary, error) {
	summary, err := srv.archive.LoadInvoice(ctx, orderID)
	if err != nil {
		if errors.Is(err, service.ErrInvoiceNotFound) {
			return nil, domainerrors.ErrInvoiceNotFound.WithDetails(orderID)
		}

		return nil, errors.Wrap(err, "failed to load invoice")
	}

	return summary, nil
}

// ShareLink builds the WhatsApp chat link that announces the order to the store.
func (srv *invoiceService) ShareLink(orderID string) string {
	storeName := srv.cfg.StoreName
	if storeName == "" {
		storeName = "our store"
	}
	message := fmt.Sprintf("Hi, an order from %s\nOrder ID: %s\n", storeName, orderID)

	return whatsappBaseURL + digitsOnly(srv.cfg.WhatsAppNumber) + "?text=" + url.QueryEscape(message)
}

// ShareLinkQR renders the order's share link as a QR code.
func (srv *invoiceService) ShareLinkQR(orderID string) ([]byte, error) {
	if strings.TrimSpace(orderID) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("order id is required")
	}

	png, err := srv.qrcode.GenerateLinkQR(srv.ShareLink(orderID))
	if err != nil {
		return nil, errors.Wrap(err, "failed to render share link QR")
	}

	return png, nil
}

func digitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}

		return -1
	}, s)
}
