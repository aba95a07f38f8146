// Package delivery defines the contract every transport front end fulfills.
package delivery

import "context"

// Delivery is a serving surface (HTTP today). Serve blocks until the
// surface stops; shutdown is driven through the application lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
