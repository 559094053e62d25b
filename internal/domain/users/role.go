package users

import (
	"creative-edge/internal/domain/docfields"
	"creative-edge/internal/infra/store"
)

// Collection holds one record per identity, keyed by the identity provider's
// subject id. Records are provisioned outside this service.
const Collection = "users"

const RoleAdmin = "admin"

type UserRole struct {
	ID   string
	Role string
}

func RoleFromRecord(rec store.Record) (UserRole, error) {
	var doc map[string]any
	if err := rec.Decode(&doc); err != nil {
		return UserRole{}, err
	}
	return UserRole{ID: rec.ID, Role: docfields.String(doc, "role")}, nil
}

func (r UserRole) IsAdmin() bool {
	return r.Role == RoleAdmin
}
