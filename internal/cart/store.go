package cart

import "context"

// StorageKey is the fixed key the cart snapshot lives under.
const StorageKey = "ramen-bar-cart"

// Store persists the cart's line items as an opaque serialized snapshot.
// Service depends ONLY on this interface: it writes after every mutation and
// reads once at startup.
type Store interface {
	// Save replaces the stored snapshot.
	Save(ctx context.Context, snapshot []byte) error
	// Load returns the stored snapshot, or nil when nothing was saved yet.
	Load(ctx context.Context) ([]byte, error)
}
