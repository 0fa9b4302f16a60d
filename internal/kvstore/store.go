package kvstore

import "context"

// Store is the persisted key-value storage the progression state lives in.
// A missing key is reported with found=false and a nil error.
type Store interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Clear(ctx context.Context) error
}
