// Package store provides the key-value persistence port used by the
// gamification engines. Absence of a key is a valid empty state, not an
// error.
package store

// KV is a minimal get/set/delete contract over fixed string keys holding
// opaque (typically JSON-encoded) values.
type KV interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Delete(key string) error
	Close() error
}
