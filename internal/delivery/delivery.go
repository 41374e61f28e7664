// Package delivery defines the front doors that expose the storefront use cases.
package delivery

import "context"

// Delivery is a long-running server started by the application lifecycle.
type Delivery interface {
	// Serve blocks until the server stops.
	Serve(ctx context.Context) error
}
