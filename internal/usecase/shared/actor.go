package shared

import (
	"vehicle-rental/internal/domain/user"

	"github.com/google/uuid"
)

// Actor is the authenticated caller as asserted by the identity provider.
type Actor struct {
	UserID uuid.UUID
	Role   user.Role
}

func (a Actor) IsAdmin() bool {
	return a.Role.IsAdmin()
}

// Tag is what audit fields record for this actor.
func (a Actor) Tag() string {
	return a.Role.String()
}
