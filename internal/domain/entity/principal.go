package entity

import "github.com/google/uuid"

// Principal is the verified identity of the caller. The delivery layer builds it from
// the bearer token and hands it to every use case explicitly.
type Principal struct {
	UserID uuid.UUID
	Role   Role
}

// IsZero reports whether the principal carries no identity.
func (p Principal) IsZero() bool {
	return p.UserID == uuid.Nil
}
