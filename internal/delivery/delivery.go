// Package delivery defines the contract every transport entrypoint satisfies.
package delivery

import "context"

// Delivery is a long-running entrypoint (e.g. the HTTP server). Serve blocks
// until the delivery stops or fails; shutdown is handled via fx lifecycle hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}
