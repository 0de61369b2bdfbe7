// Package reference validates logical foreign keys: identifiers that point at
// entities owned by another service or another local store, with no
// database-enforced relation behind them.
package reference

// Kind names the owning entity kind of a logical foreign key.
type Kind string

// Externally owned kinds, resolved through remote clients.
const (
	KindStatus  Kind = "status"
	KindAddress Kind = "address"
	KindPhoto   Kind = "photo"
	KindCitizen Kind = "citizen"
	// KindRemoteUser and KindRemoteTeam are users and teams looked up in
	// their owning service rather than the local store.
	KindRemoteUser Kind = "remote_user"
	KindRemoteTeam Kind = "remote_team"
)

// Locally owned kinds, resolved through a persistent store.
const (
	KindUserType Kind = "user_type"
	KindTeamType Kind = "team_type"
	KindCompany  Kind = "company"
	KindTeam     Kind = "team"
	KindUser     Kind = "user"
	KindMessage  Kind = "message"
)

// KeySpec declares one logical foreign key carried by an aggregate.
type KeySpec struct {
	Field    string
	Kind     Kind
	Required bool
}

// Key is a KeySpec bound to the value an entity or an input currently holds.
// A nil or non-positive ID means the key is absent.
type Key struct {
	KeySpec
	ID *int64
}

// Present reports whether the key carries a usable identifier.
func (k Key) Present() bool {
	return k.ID != nil && *k.ID > 0
}

// Bind pairs specs with values positionally. Specs without a value are bound
// as absent.
func Bind(specs []KeySpec, values ...*int64) []Key {
	keys := make([]Key, len(specs))
	for i, spec := range specs {
		keys[i] = Key{KeySpec: spec}
		if i < len(values) {
			keys[i].ID = values[i]
		}
	}
	return keys
}

// ID returns a pointer to id, or nil when id is not positive.
func ID(id int64) *int64 {
	if id <= 0 {
		return nil
	}
	return &id
}
