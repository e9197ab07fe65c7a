package realtime

import "context"

// Bus fans SSE messages out across backend instances. Publish pushes a message
// to every instance; StartForwarder delivers messages from other instances to
// the local hub.
type Bus interface {
	Publish(ctx context.Context, msg SSEMessage) error
	StartForwarder(ctx context.Context, onMsg func(m SSEMessage)) error
	Close() error
}
