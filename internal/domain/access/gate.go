package access

import (
	"context"

	"creative-edge/internal/domain/users"
	"creative-edge/internal/infra/store"
)

type RecordReader interface {
	Get(ctx context.Context, collection, id string) (store.Record, bool, error)
}

// Gate answers whether an identity may use the admin area. Every call reads
// the role record again; nothing is cached.
type Gate struct {
	records RecordReader
}

func NewGate(records RecordReader) *Gate {
	return &Gate{records: records}
}

// IsAdmin is true iff a users record exists for identityID and its role is
// exactly "admin". A missing record is not an error.
func (g *Gate) IsAdmin(ctx context.Context, identityID string) (bool, error) {
	rec, found, err := g.records.Get(ctx, users.Collection, identityID)
	if err != nil {
		return false, err
	}
	if !found {
		return false, nil
	}

	role, err := users.RoleFromRecord(rec)
	if err != nil {
		// a role record that is not an object grants nothing
		return false, nil
	}
	return role.IsAdmin(), nil
}
