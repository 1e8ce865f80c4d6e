// Package session is a per-session key-value store. Each HTTP session gets
// an id (cookie or X-Session-ID header) and values live under that id until
// the session TTL runs out or the key is forgotten.
package session

import "context"

type Store interface {
	// Get unmarshals the value under (sid, key) into dest.
	// Returns false when the key does not exist.
	Get(ctx context.Context, sid, key string, dest any) (bool, error)
	Put(ctx context.Context, sid, key string, val any) error
	Forget(ctx context.Context, sid, key string) error
}
