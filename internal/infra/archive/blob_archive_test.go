package archive

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	"gocloud.dev/blob/memblob"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestBlobArchive_SaveAndLoad(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	archive := NewBlobArchive(bucket, newDiscardLogger())
	summary := &entity.InvoiceSummary{
		OrderID:  "A-100/2",
		Currency: "EGP",
		Lines: []entity.InvoiceLine{
			{Description: "(Living room) Panel Light", Quantity: 2, Amount: 240},
		},
		Subtotal: 240,
		Total:    240,
	}

	require.NoError(t, archive.SaveInvoice(context.Background(), summary))

	exists, err := bucket.Exists(context.Background(), "invoices/A-100%2F2.json")
	require.NoError(t, err)
	assert.True(t, exists)

	loaded, err := archive.LoadInvoice(context.Background(), "A-100/2")
	require.NoError(t, err)
	assert.Equal(t, summary, loaded)
}

func TestBlobArchive_LoadMissing(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	_, err := NewBlobArchive(bucket, newDiscardLogger()).LoadInvoice(context.Background(), "nope")
	assert.ErrorIs(t, err, service.ErrInvoiceNotFound)
}

func TestNew(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		archive, err := New(Params{
			Lc:     fxtest.NewLifecycle(t),
			Ctx:    context.Background(),
			Config: &config.Config{Invoice: &config.InvoiceConfig{}},
			Logger: newDiscardLogger(),
		})
		require.NoError(t, err)
		require.NoError(t, archive.SaveInvoice(context.Background(), &entity.InvoiceSummary{OrderID: "x"}))

		_, err = archive.LoadInvoice(context.Background(), "x")
		assert.ErrorIs(t, err, service.ErrInvoiceNotFound)
	})

	t.Run("mem bucket", func(t *testing.T) {
		archive, err := New(Params{
			Lc:     fxtest.NewLifecycle(t),
			Ctx:    context.Background(),
			Config: &config.Config{Invoice: &config.InvoiceConfig{ArchiveURL: "mem://"}},
			Logger: newDiscardLogger(),
		})
		require.NoError(t, err)
		require.NoError(t, archive.SaveInvoice(context.Background(), &entity.InvoiceSummary{OrderID: "x", Total: 1}))

		loaded, err := archive.LoadInvoice(context.Background(), "x")
		require.NoError(t, err)
		assert.Equal(t, 1.0, loaded.Total)
	})

	t.Run("unknown scheme", func(t *testing.T) {
		_, err := New(Params{
			Lc:     fxtest.NewLifecycle(t),
			Ctx:    context.Background(),
			Config: &config.Config{Invoice: &config.InvoiceConfig{ArchiveURL: "nope://bucket"}},
			Logger: newDiscardLogger(),
		})
		assert.Error(t, err)
	})
}
