package impl

import (
	"io"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/entity"
)

const testDevice entity.DeviceID = "0b7e3c52-5b7a-4c1e-9a55-3c8f0e2d4b61"

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Invoice: &config.InvoiceConfig{
			StoreName:      "Sort LED Online Store",
			WhatsAppNumber: "+91 9074430171",
			Currency:       "₹",
		},
	}
}

func newPanelLight() *entity.Product {
	return &entity.Product{
		ID:       "p1",
		Name:     entity.LocalizedName{EN: "Panel Light", AR: "ضوء اللوحة"},
		Images:   []string{"https://cdn/p1-a.jpg", "https://cdn/p1-b.jpg"},
		Price:    120,
		OldPrice: 150,
		Variants: []entity.ProductVariant{
			{Watts: "12", Price: 100, OldPrice: 130},
			{Watts: "18", Price: 140, OldPrice: 0},
		},
		Tags: []string{"sale", "new"},
	}
}

func newPlainBulb() *entity.Product {
	return &entity.Product{
		ID:    "p2",
		Name:  entity.LocalizedName{EN: "Bulb"},
		Price: 10,
		Tags:  []string{"trending"},
	}
}
