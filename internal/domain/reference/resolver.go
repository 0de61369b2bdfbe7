package reference

import (
	"context"

	"github.com/rescue-ops/backend/internal/domain/shared"
)

// Resolver confirms that an identifier of one kind currently exists.
//
// Resolve returns nil when the entity is found, an error matching
// shared.ErrNotFound when it definitely does not exist, and any other error
// when existence could not be determined.
type Resolver interface {
	Resolve(ctx context.Context, id int64) error
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(ctx context.Context, id int64) error

// Resolve calls f(ctx, id).
func (f ResolverFunc) Resolve(ctx context.Context, id int64) error {
	return f(ctx, id)
}

// ExistsFunc is the existence probe exposed by every local store.
type ExistsFunc func(ctx context.Context, id int64) (bool, error)

// StoreResolver resolves identifiers against a local persistent store.
func StoreResolver(resource string, exists ExistsFunc) Resolver {
	return ResolverFunc(func(ctx context.Context, id int64) error {
		ok, err := exists(ctx, id)
		if err != nil {
			return err
		}
		if !ok {
			return shared.NewNotFound(resource, id)
		}
		return nil
	})
}
