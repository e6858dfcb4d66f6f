//go:build unit

package api_test

import (
	"net/http"
	"time"

	"vehicle-rental/internal/domain/user"
	"vehicle-rental/internal/handler/middleware"
	"vehicle-rental/internal/usecase/queries"
	"vehicle-rental/internal/usecase/shared"
	"vehicle-rental/tests/common/builder"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// fakeAuth trusts the bearer value as a role so tests can switch callers per request.
func fakeAuth(userID uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("Authorization")
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		role := user.RoleMember
		if token == "Bearer admin" {
			role = user.RoleAdmin
		}
		middleware.SetActor(c, shared.Actor{UserID: userID, Role: role})
		c.Next()
	}
}

func rentalView(userID uuid.UUID) *queries.RentalView {
	r := builder.NewRentalBuilder().With(func(b *builder.RentalBuilder) {
		b.UserID = userID
	}).MustBuildDomain()
	return queries.ToRentalView(r)
}

func vehicleView() *queries.VehicleView {
	return queries.ToVehicleView(builder.NewVehicleBuilder().MustBuildDomain())
}

func rfc3339(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
