package broker

import "context"

// Publisher announces newly stored records to downstream consumers.
type Publisher interface {
	Publish(ctx context.Context, kind, id string) error
}
