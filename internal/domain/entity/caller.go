package entity

import "github.com/google/uuid"

// CallerIdentity is the canonical identity of whoever issued the current request.
// It is resolved once at the HTTP boundary and passed to usecases explicitly.
type CallerIdentity struct {
	UserID uuid.UUID
	Email  string
	Name   string
	Role   Role
}

// IsAnonymous reports whether no account is attached to the request.
func (c *CallerIdentity) IsAnonymous() bool {
	return c == nil || c.UserID == uuid.Nil
}

// Owns reports whether the caller is the given owner.
func (c *CallerIdentity) Owns(ownerID uuid.UUID) bool {
	return !c.IsAnonymous() && c.UserID == ownerID
}

// IsAdmin reports whether the caller carries the admin role.
func (c *CallerIdentity) IsAdmin() bool {
	return !c.IsAnonymous() && c.Role == RoleAdmin
}
