// Package constants holds provider names and other fixed identifiers read from configuration.
package constants

// Pub/Sub providers.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Product catalog providers.
const (
	CatalogProviderFirestore = "firestore"
	CatalogProviderPostgres  = "postgres"
)

// User-product store providers.
const (
	UserStoreProviderFirebase = "firebase"
	UserStoreProviderMemory   = "memory"
)

// Listing tabs. TagAll disables filtering.
const (
	TagAll      = "all"
	TagNew      = "new"
	TagFeatured = "featured"
	TagSale     = "sale"
	TagTrending = "trending"
)

// Remote store paths.
const (
	ProductsCollection = "products"
	UsersPath          = "users"
)

// DeviceIDStorageKey is the local storage key holding the device identity.
const DeviceIDStorageKey = "deviceId"
