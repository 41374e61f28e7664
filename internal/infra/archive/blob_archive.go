// Package archive stores rendered invoice summaries in a blob bucket.
package archive

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/url"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	"gocloud.dev/gcerrors"
)

const invoicePrefix = "invoices/"

type blobArchive struct {
	bucket *blob.Bucket
	logger *slog.Logger
}

// NewBlobArchive wraps an open bucket.
func NewBlobArchive(bucket *blob.Bucket, logger *slog.Logger) service.InvoiceArchive {
	return &blobArchive{
		bucket: bucket,
		logger: logger,
	}
}

func invoiceKey(orderID string) string {
	return invoicePrefix + url.PathEscape(orderID) + ".json"
}

// SaveInvoice writes the summary as JSON under invoices/{orderId}.json.
func (a *blobArchive) SaveInvoice(ctx context.Context, summary *entity.InvoiceSummary) error {
	data, err := json.Marshal(summary)
	if err != nil {
		return errors.WithStack(err)
	}

	key := invoiceKey(summary.OrderID)
	if err := a.bucket.WriteAll(ctx, key, data, &blob.WriterOptions{ContentType: "application/json"}); err != nil {
		return errors.Wrapf(err, "failed to archive invoice %s", summary.OrderID)
	}

	a.logger.Debug("Invoice archived", slog.String("key", key))

	return nil
}

// LoadInvoice reads an archived summary back.
func (a *blobArchive) LoadInvoice(ctx context.Context, orderID string) (*entity.InvoiceSummary, error) {
	data, err := a.bucket.ReadAll(ctx, invoiceKey(orderID))
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, service.ErrInvoiceNotFound
		}

		return nil, errors.Wrapf(err, "failed to read invoice %s", orderID)
	}

	var summary entity.InvoiceSummary
	if err := json.Unmarshal(data, &summary); err != nil {
		return nil, errors.Wrapf(err, "archived invoice %s is corrupt", orderID)
	}

	return &summary, nil
}

// disabledArchive is used when no archive bucket is configured.
type disabledArchive struct{}

func (disabledArchive) SaveInvoice(context.Context, *entity.InvoiceSummary) error {
	return nil
}

func (disabledArchive) LoadInvoice(context.Context, string) (*entity.InvoiceSummary, error) {
	return nil, service.ErrInvoiceNotFound
}

// Params holds dependencies for the invoice archive, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New opens the bucket named by invoice.archiveUrl.
func New(params Params) (service.InvoiceArchive, error) {
	cfg := params.Config.Invoice
	if cfg == nil || cfg.ArchiveURL == "" {
		params.Logger.Info("Invoice archive not configured, summaries are not stored")

		return disabledArchive{}, nil
	}

	bucket, err := blob.OpenBucket(params.Ctx, cfg.ArchiveURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open invoice archive %s", cfg.ArchiveURL)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	params.Logger.Info("Invoice archive opened", slog.String("url", cfg.ArchiveURL))

	return NewBlobArchive(bucket, params.Logger), nil
}
