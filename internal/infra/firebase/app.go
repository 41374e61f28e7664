// Package firebase bootstraps the Firebase app shared by the realtime user store and the
// Firestore catalog.
package firebase

import (
	"context"
	"log/slog"
	"sync"

	"storefront/config"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/db"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// Params holds dependencies for the Firebase clients, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewApp initializes the Firebase app. Without a credentials path the application
// default credentials are used.
func NewApp(params Params) (*firebase.App, error) {
	cfg := params.Config.Firebase
	if cfg == nil {
		return nil, errors.New("firebase configuration is required")
	}

	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	app, err := firebase.NewApp(params.Ctx, &firebase.Config{
		ProjectID:   cfg.ProjectID,
		DatabaseURL: cfg.DatabaseURL,
	}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	params.Logger.Info("Firebase app initialized",
		slog.String("project_id", cfg.ProjectID),
		slog.Bool("realtime_database", cfg.DatabaseURL != ""),
	)

	return app, nil
}

// NewDatabaseClient returns the Realtime Database client holding users/{deviceId}.
func NewDatabaseClient(params Params, app *firebase.App) (*db.Client, error) {
	if params.Config.Firebase == nil || params.Config.Firebase.DatabaseURL == "" {
		return nil, errors.New("firebase.databaseUrl is required for the firebase user store")
	}

	client, err := app.Database(params.Ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get realtime database client")
	}

	return client, nil
}

// NewFirestoreClient returns the Firestore client holding products/{id}.
func NewFirestoreClient(params Params, app *firebase.App) (*firestore.Client, error) {
	client, err := app.Firestore(params.Ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get firestore client")
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return errors.WithStack(client.Close())
		},
	})

	return client, nil
}

// LazyApp initializes the Firebase app on first use, so that deployments serving the
// catalog from PostgreSQL and carts from memory never need Firebase credentials.
type LazyApp struct {
	params Params
	once   sync.Once
	app    *firebase.App
	err    error
}

// NewLazyApp creates a LazyApp.
func NewLazyApp(params Params) *LazyApp {
	return &LazyApp{params: params}
}

// Get returns the shared app, initializing it once.
func (l *LazyApp) Get() (*firebase.App, error) {
	l.once.Do(func() {
		l.app, l.err = NewApp(l.params)
	})

	return l.app, l.err
}

// Firestore returns a Firestore client bound to the shared app.
func (l *LazyApp) Firestore() (*firestore.Client, error) {
	app, err := l.Get()
	if err != nil {
		return nil, err
	}

	return NewFirestoreClient(l.params, app)
}

// Database returns a Realtime Database client bound to the shared app.
func (l *LazyApp) Database() (*db.Client, error) {
	app, err := l.Get()
	if err != nil {
		return nil, err
	}

	return NewDatabaseClient(l.params, app)
}
