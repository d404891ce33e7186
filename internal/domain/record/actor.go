package record

import "context"

type actorKey struct{}

// WithActor returns a context carrying the id of the user performing writes.
func WithActor(ctx context.Context, userID uint) context.Context {
	return context.WithValue(ctx, actorKey{}, userID)
}

// ActorFrom returns the acting user id, if one was attached.
func ActorFrom(ctx context.Context) (uint, bool) {
	id, ok := ctx.Value(actorKey{}).(uint)
	return id, ok && id != 0
}
