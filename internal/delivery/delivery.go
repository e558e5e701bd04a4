// Package delivery defines the contract every transport (HTTP, worker, ...) satisfies.
package delivery

import "context"

// Delivery is a serving surface started by the application entrypoint.
type Delivery interface {
	Serve(ctx context.Context) error
}
