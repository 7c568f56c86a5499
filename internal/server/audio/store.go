// Package audio stores synthesized speech artifacts by caller-chosen
// filename. The store performs no overwrite protection; callers are
// responsible for collision avoidance via sufficiently distinguishing names.
package audio

import "context"

type Store interface {
	Put(ctx context.Context, filename string, data []byte) error
	// Get returns the artifact bytes, or common.ErrorNotFound when absent.
	Get(ctx context.Context, filename string) ([]byte, error)
}
