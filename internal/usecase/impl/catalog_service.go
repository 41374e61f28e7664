package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type catalogService struct {
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

// FilterProductsByTag returns the products labelled with tag, in their original order.
// The "all" tag returns products itself.
func FilterProductsByTag(products []*entity.Product, tag string) []*entity.Product {
	if tag == constants.TagAll {
		return products
	}

	filtered := make([]*entity.Product, 0, len(products))
	for _, product := range products {
		if product.HasTag(tag) {
			filtered = append(filtered, product)
		}
	}

	return filtered
}

func newProductView(product *entity.Product, locale string) *usecase.ProductView {
	return &usecase.ProductView{
		Product: product,
		Name:    product.Name.In(locale),
		Display: product.Display(),
	}
}

// ListProducts loads the catalog and keeps the products of one listing tab.
// An empty tag lists everything.
func (srv *catalogService) ListProducts(ctx context.Context, tag, locale string) ([]*usecase.ProductView, error) {
	if tag == "" {
		tag = constants.TagAll
	}

	products, err := srv.productRepo.ListProducts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	filtered := FilterProductsByTag(products, tag)
	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Debug("Catalog listed",
		slog.String("tag", tag),
		slog.Int("total", len(products)),
		slog.Int("matched", len(filtered)),
	)

	views := make([]*usecase.ProductView, len(filtered))
	for i, product := range filtered {
		views[i] = newProductView(product, locale)
	}

	return views, nil
}

// GetProduct loads a product with its display projection.
func (srv *catalogService) GetProduct(ctx context.Context, id, locale string) (*usecase.ProductView, error) {
	product, err := srv.findProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	return newProductView(product, locale), nil
}

// ResolveVariant loads a product and picks the requested variant.
func (srv *catalogService) ResolveVariant(ctx context.Context, id, watts string) (*entity.Product, *entity.ProductVariant, error) {
	product, err := srv.findProduct(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	if watts == "" {
		if len(product.Variants) == 0 {
			return product, nil, nil
		}

		return product, &product.Variants[0], nil
	}

	variant := product.FindVariant(watts)
	if variant == nil {
		return nil, nil, domainerrors.ErrVariantNotFound.WithDetails(watts)
	}

	return product, variant, nil
}

func (srv *catalogService) findProduct(ctx context.Context, id string) (*entity.Product, error) {
	product, err := srv.productRepo.FindProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound.WithDetails(id)
		}

		return nil, errors.Wrap(err, "failed to load product")
	}

	return product, nil
}
