package reference

import (
	"context"
	"errors"
	"fmt"

	"github.com/rescue-ops/backend/internal/domain/shared"
)

// Outcome is the transient result of a validation pass.
type Outcome struct {
	Accepted bool
	Field    string
	Kind     Kind
	Reason   string
}

// Accept is the accepted outcome.
func Accept() Outcome {
	return Outcome{Accepted: true}
}

// Reject builds a rejected outcome for the key.
func Reject(key Key, reason string) Outcome {
	return Outcome{Field: key.Field, Kind: key.Kind, Reason: reason}
}

// Err converts a rejected outcome into a VALIDATION_REJECTED error.
// It returns nil for accepted outcomes.
func (o Outcome) Err() error {
	if o.Accepted {
		return nil
	}
	return shared.NewValidationRejected(o.Field, o.Reason)
}

// Validator resolves logical foreign keys before a write is allowed.
// It holds no request-scoped state; once wired it is safe for concurrent use.
type Validator struct {
	resolvers map[Kind]Resolver
}

// NewValidator creates a validator with the given resolvers.
func NewValidator(resolvers map[Kind]Resolver) *Validator {
	v := &Validator{resolvers: make(map[Kind]Resolver, len(resolvers))}
	for kind, r := range resolvers {
		v.resolvers[kind] = r
	}
	return v
}

// Register adds or replaces the resolver for a kind. Call it during wiring only.
func (v *Validator) Register(kind Kind, r Resolver) *Validator {
	v.resolvers[kind] = r
	return v
}

// Validate checks keys for a new entity. Required keys are evaluated first in
// declaration order, then optional keys that are present. The first failing
// key rejects the whole pass.
func (v *Validator) Validate(ctx context.Context, keys []Key) Outcome {
	return v.run(ctx, keys, true)
}

// ValidateSupplied checks only the keys that carry a value, as on a partial
// update. A required key that is absent here keeps its stored value and is
// not re-checked.
func (v *Validator) ValidateSupplied(ctx context.Context, keys []Key) Outcome {
	return v.run(ctx, keys, false)
}

func (v *Validator) run(ctx context.Context, keys []Key, requireAll bool) Outcome {
	for _, key := range keys {
		if !key.Required {
			continue
		}
		if !key.Present() {
			if requireAll {
				return Reject(key, "is required")
			}
			continue
		}
		if out := v.resolve(ctx, key); !out.Accepted {
			return out
		}
	}

	for _, key := range keys {
		if key.Required || !key.Present() {
			continue
		}
		if out := v.resolve(ctx, key); !out.Accepted {
			return out
		}
	}

	return Accept()
}

func (v *Validator) resolve(ctx context.Context, key Key) Outcome {
	r, ok := v.resolvers[key.Kind]
	if !ok {
		return Reject(key, fmt.Sprintf("no resolver registered for %s", key.Kind))
	}

	err := r.Resolve(ctx, *key.ID)
	switch {
	case err == nil:
		return Accept()
	case errors.Is(err, shared.ErrNotFound):
		return Reject(key, fmt.Sprintf("%s %d does not exist", key.Kind, *key.ID))
	default:
		return Reject(key, fmt.Sprintf("%s %d could not be verified: %v", key.Kind, *key.ID, err))
	}
}
