package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// FindProductByID retrieves a product by its catalog ID.
func (repo *productRepository) FindProductByID(ctx context.Context, id string) (*entity.Product, error) {
	var productM model.ProductModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).Take(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, domainerrors.NewStoreExecuteError(err, "failed to query product")
	}

	return toProductDomain(&productM), nil
}

// ListProducts retrieves the whole catalog in display order.
func (repo *productRepository) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	var productModels []*model.ProductModel
	if err := repo.db.WithContext(ctx).Order("position ASC").Order("id ASC").Find(&productModels).Error; err != nil {
		return nil, domainerrors.NewStoreExecuteError(err, "failed to list products")
	}

	products := make([]*entity.Product, len(productModels))
	for i, productM := range productModels {
		products[i] = toProductDomain(productM)
	}

	return products, nil
}

func toProductDomain(data *model.ProductModel) *entity.Product {
	product := &entity.Product{
		ID:       data.ID,
		Name:     entity.LocalizedName{EN: data.NameEN, AR: data.NameAR},
		Images:   []string(data.Images),
		Price:    data.Price,
		OldPrice: data.OldPrice,
		Tags:     []string(data.Tags),
	}
	for _, variant := range data.Variants {
		product.Variants = append(product.Variants, entity.ProductVariant{
			Watts:    variant.Watts,
			Price:    variant.Price,
			OldPrice: variant.OldPrice,
		})
	}

	return product
}
