package database

import "context"

// Counter exposes the health-probe surface of the record store.
type Counter interface {
	Count(ctx context.Context, collection string) (int64, error)
	Ping(ctx context.Context) error
}
