//go:build unit || e2e

package builder

import (
	"vehicle-rental/internal/domain/user"
	"vehicle-rental/internal/usecase/shared"

	"github.com/google/uuid"
)

func Member() shared.Actor {
	return shared.Actor{UserID: uuid.New(), Role: user.RoleMember}
}

func Admin() shared.Actor {
	return shared.Actor{UserID: uuid.New(), Role: user.RoleAdmin}
}
