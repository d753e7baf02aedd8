package database

import "context"

// Remover clears whole collections. Used by seeding tooling only; there is
// no per-record delete in the public API.
type Remover interface {
	Clear(ctx context.Context, collection string) (int64, error)
}
