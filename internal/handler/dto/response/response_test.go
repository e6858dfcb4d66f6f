//go:build unit

package response_test

import (
	"testing"
	"time"

	resdto "vehicle-rental/internal/handler/dto/response"
	"vehicle-rental/internal/usecase/queries"
	"vehicle-rental/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromRentalView(t *testing.T) {
	r := builder.NewRentalBuilder().MustBuildActive()
	view := queries.ToRentalView(r)

	got := resdto.FromRentalView(view)

	assert.Equal(t, view.ID, got.ID)
	assert.Equal(t, view.VehicleID, got.VehicleID)
	assert.Equal(t, "APPROVED", got.ApprovalStatus)
	assert.Equal(t, "ACTIVE", got.BookingStatus)
	assert.Equal(t, int64(2000), got.TotalCents)
	require.NotNil(t, got.IssuedAt)
	assert.True(t, got.IssuedAt.Equal(builder.FixedNow))
	assert.Nil(t, got.CancelledAt)
}

func TestFromAvailableVehicles(t *testing.T) {
	photo := "https://example.com/a.jpg"
	views := []*queries.VehicleView{
		{Plate: "AAA-0001", Model: "Corolla", Type: "SEDAN", Mileage: 1234, HourlyRateCents: 500, PhotoURL: &photo, CreatedAt: time.Now()},
		{Plate: "AAA-0002", Model: "Civic", Type: "SEDAN"},
	}

	got := resdto.FromAvailableVehicles(views)

	require.Len(t, got, 2)
	assert.Equal(t, "AAA-0001", got[0].Plate)
	assert.Equal(t, int64(500), got[0].HourlyRateCents)
	require.NotNil(t, got[0].PhotoURL)
	assert.Equal(t, photo, *got[0].PhotoURL)
	assert.Equal(t, "Civic", got[1].Model)
}
