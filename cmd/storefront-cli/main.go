// Command storefront-cli drives the storefront use cases from a terminal, acting as the
// product card of one device. The device identity lives in identity.storagePath.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"storefront/config"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/infra/archive"
	"storefront/internal/infra/firebase"
	"storefront/internal/infra/identity"
	"storefront/internal/infra/localstore"
	logs "storefront/internal/infra/log"
	"storefront/internal/infra/persistence/firestore"
	"storefront/internal/infra/persistence/memory"
	"storefront/internal/infra/persistence/postgres"
	"storefront/internal/infra/persistence/rtdb"
	"storefront/internal/infra/pubsub"
	"storefront/internal/infra/qrcode"
	"storefront/internal/usecase"
	"storefront/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var cmds *commands
	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			firebase.NewLazyApp,
			newProductRepository,
			newUserProductRepository,
			newQRCodeService,
			newIdentityProvider,
			archive.New,
			impl.NewCatalogService,
			impl.NewReconcilerService,
			impl.NewInvoiceService,
			newCommands,
		),
		pubsub.Module,
		fx.Populate(&cmds),
	)

	ctx := context.Background()
	if err := app.Start(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "startup failed:", err)
		os.Exit(1)
	}

	runErr := cmds.run(ctx, os.Args[1], os.Args[2:])

	if err := app.Stop(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "shutdown failed:", err)
	}
	if runErr != nil {
		fmt.Fprintln(os.Stderr, runErr)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: storefront-cli <command> [flags]

commands:
  device           print this device's identity
  list             list products (-tag, -locale)
  show             show one product (-id, -locale)
  add-to-cart      add one unit to the cart (-id, -watts)
  toggle-wishlist  add or remove a wishlist entry (-id, -watts)
  me               print the cart and wishlist
  invoice          summarize an order file (-file, -qr)`)
}

type storeParams struct {
	fx.In

	Lc       fx.Lifecycle
	Config   *config.Config
	Logger   *slog.Logger
	Firebase *firebase.LazyApp
}

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

func newUserProductRepository(params storeParams) (repository.UserProductRepository, error) {
	switch params.Config.UserStore.Provider {
	case constants.UserStoreProviderFirebase:
		client, err := params.Firebase.Database()
		if err != nil {
			return nil, err
		}

		return rtdb.NewUserProductRepository(client, params.Logger), nil

	case constants.UserStoreProviderMemory:
		return memory.NewUserProductRepository(params.Logger), nil

	default:
		return nil, errors.Errorf("unknown user store provider: %s", params.Config.UserStore.Provider)
	}
}

func newQRCodeService(cfg *config.Config) service.QRCodeService {
	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func newIdentityProvider(cfg *config.Config, logger *slog.Logger) service.IdentityProvider {
	return identity.NewProvider(localstore.NewFileStore(cfg.Identity.StoragePath), logger)
}

type commandsParams struct {
	fx.In

	CatalogUC    usecase.CatalogUsecase
	ReconcilerUC usecase.ReconcilerUsecase
	InvoiceUC    usecase.InvoiceUsecase
	Identity     service.IdentityProvider
}

func newCommands(params commandsParams) *commands {
	return &commands{
		catalogUC:    params.CatalogUC,
		reconcilerUC: params.ReconcilerUC,
		invoiceUC:    params.InvoiceUC,
		identity:     params.Identity,
		out:          os.Stdout,
	}
}
