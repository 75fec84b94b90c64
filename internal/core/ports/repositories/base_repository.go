package repositories

import "context"

// HealthChecker reports whether the underlying store is reachable.
type HealthChecker interface {
	// Ping verifies the connection to the store.
	Ping(ctx context.Context) error
}
