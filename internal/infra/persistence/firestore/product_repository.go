// Package firestore reads the product catalog from Cloud Firestore documents at products/{id}.
package firestore

import (
	"context"
	"log/slog"

	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// productDocument mirrors the stored document. Prices and wattages are written by
// hand in the console, so they are decoded weakly (numbers or strings).
type productDocument struct {
	Name        string               `mapstructure:"name"`
	NameAR      string               `mapstructure:"namea"`
	Images      []string             `mapstructure:"images"`
	Price       float64              `mapstructure:"price"`
	OldPrice    float64              `mapstructure:"oldPrice"`
	WattOptions []wattOptionDocument `mapstructure:"wattOptions"`
	Tags        []string             `mapstructure:"tags"`
}

type wattOptionDocument struct {
	Watts    string  `mapstructure:"watts"`
	Price    float64 `mapstructure:"price"`
	OldPrice float64 `mapstructure:"oldprice"`
}

type productRepository struct {
	client *firestore.Client
	logger *slog.Logger
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(client *firestore.Client, logger *slog.Logger) repository.ProductRepository {
	return &productRepository{
		client: client,
		logger: logger,
	}
}

// FindProductByID retrieves a product document by ID.
func (repo *productRepository) FindProductByID(ctx context.Context, id string) (*entity.Product, error) {
	snap, err := repo.client.Collection(constants.ProductsCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrProductNotFound
		}

		return nil, domainerrors.NewStoreExecuteError(err, "failed to get product document")
	}

	return productFromData(snap.Ref.ID, snap.Data())
}

// ListProducts retrieves every product document. Documents that cannot be decoded are
// skipped and logged.
func (repo *productRepository) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	snaps, err := repo.client.Collection(constants.ProductsCollection).Documents(ctx).GetAll()
	if err != nil {
		return nil, domainerrors.NewStoreExecuteError(err, "failed to list product documents")
	}

	products := make([]*entity.Product, 0, len(snaps))
	for _, snap := range snaps {
		product, err := productFromData(snap.Ref.ID, snap.Data())
		if err != nil {
			repo.logger.Warn("Skipping malformed product document",
				slog.String("product_id", snap.Ref.ID),
				slog.Any("error", err),
			)

			continue
		}
		products = append(products, product)
	}

	return products, nil
}

// productFromData maps a raw document onto the domain product.
func productFromData(id string, data map[string]any) (*entity.Product, error) {
	var doc productDocument
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &doc,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if err := decoder.Decode(data); err != nil {
		return nil, errors.Wrapf(err, "failed to decode product %s", id)
	}

	product := &entity.Product{
		ID:       id,
		Name:     entity.LocalizedName{EN: doc.Name, AR: doc.NameAR},
		Images:   doc.Images,
		Price:    doc.Price,
		OldPrice: doc.OldPrice,
		Tags:     doc.Tags,
	}
	for _, option := range doc.WattOptions {
		product.Variants = append(product.Variants, entity.ProductVariant{
			Watts:    option.Watts,
			Price:    option.Price,
			OldPrice: option.OldPrice,
		})
	}

	return product, nil
}
