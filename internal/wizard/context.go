package wizard

import (
	"context"
	"errors"
)

// ErrNoStore is the panic value of FromContext when no store is in scope.
var ErrNoStore = errors.New("wizard: store accessed outside of a session scope")

type storeKey struct{}

// NewContext returns a copy of ctx carrying store.
func NewContext(ctx context.Context, store *Store) context.Context {
	return context.WithValue(ctx, storeKey{}, store)
}

// FromContext returns the store carried by ctx. Reaching for the store outside
// a session scope is a programming error, so it panics rather than returning nil.
func FromContext(ctx context.Context) *Store {
	store, ok := ctx.Value(storeKey{}).(*Store)
	if !ok || store == nil {
		panic(ErrNoStore)
	}
	return store
}
