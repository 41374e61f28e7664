package main

import (
	"context"
	"log/slog"
	"os"

	"storefront/config"
	"storefront/internal/delivery"
	"storefront/internal/delivery/api"
	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/router/handler"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/infra/archive"
	"storefront/internal/infra/firebase"
	logs "storefront/internal/infra/log"
	"storefront/internal/infra/persistence/firestore"
	"storefront/internal/infra/persistence/memory"
	"storefront/internal/infra/persistence/postgres"
	"storefront/internal/infra/persistence/rtdb"
	"storefront/internal/infra/pubsub"
	"storefront/internal/infra/qrcode"
	"storefront/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		firebase.NewLazyApp,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			newProductRepository,
			newUserProductRepository,
		),
	)
}

type storeParams struct {
	fx.In

	Lc       fx.Lifecycle
	Config   *config.Config
	Logger   *slog.Logger
	Firebase *firebase.LazyApp
}

// newProductRepository opens the catalog backend named by catalog.provider.
func newProductRepository(params storeParams) (repository.ProductRepository, error) {
	switch params.Config.Catalog.Provider {
	case constants.CatalogProviderFirestore:
		client, err := params.Firebase.Firestore()
		if err != nil {
			return nil, err
		}

		return firestore.NewProductRepository(client, params.Logger), nil

	case constants.CatalogProviderPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lc,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return nil, err
		}

		return postgres.NewProductRepository(db), nil

	default:
		return nil, errors.Errorf("unknown catalog provider: %s", params.Config.Catalog.Provider)
	}
}

// newUserProductRepository opens the cart/wishlist store named by userStore.provider.
func newUserProductRepository(params storeParams) (repository.UserProductRepository, error) {
	switch params.Config.UserStore.Provider {
	case constants.UserStoreProviderFirebase:
		client, err := params.Firebase.Database()
		if err != nil {
			return nil, err
		}

		return rtdb.NewUserProductRepository(client, params.Logger), nil

	case constants.UserStoreProviderMemory:
		params.Logger.Warn("Using in-memory user store, carts and wishlists are lost on restart")

		return memory.NewUserProductRepository(params.Logger), nil

	default:
		return nil, errors.Errorf("unknown user store provider: %s", params.Config.UserStore.Provider)
	}
}

func injectService() fx.Option {
	return fx.Options(
		pubsub.Module,
		fx.Provide(
			newQRCodeService,
			archive.New,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCatalogService,
			impl.NewReconcilerService,
			impl.NewInvoiceService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewDeviceMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewProductHandler,
			handler.NewDeviceHandler,
			handler.NewCollectionHandler,
			handler.NewInvoiceHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
