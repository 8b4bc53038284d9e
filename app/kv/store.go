// Package kv provides the flat key-value store backing the record
// collections. Each collection is read and replaced as a whole value under a
// single key.
//
// Access is plain read-modify-write with no cross-process isolation: two
// processes (or two instances) mutating the same backend can lose updates.
// The service targets local single-user operation, so no locking is layered
// on top.
package kv

import "errors"

// ErrKeyNotFound is returned by Get when no value exists under the key.
var ErrKeyNotFound = errors.New("key not found")

type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
}
