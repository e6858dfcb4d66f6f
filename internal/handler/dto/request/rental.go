package request

import (
	"time"

	"vehicle-rental/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateRentalRequest struct {
	VehicleID uuid.UUID `json:"vehicle_id" binding:"required"`
	Start     time.Time `json:"start" binding:"required"`
	End       time.Time `json:"end" binding:"required"`
}

func (r CreateRentalRequest) ToCommand() commands.CreateRentalRequest {
	return commands.CreateRentalRequest{
		VehicleID: r.VehicleID,
		Start:     r.Start,
		End:       r.End,
	}
}

type CancelRentalRequest struct {
	Reason string `json:"reason" binding:"max=500"`
}

type ReviewRentalRequest struct {
	Approve *bool  `json:"approve" binding:"required"`
	Reason  string `json:"reason" binding:"max=500"`
}

type CompleteRentalRequest struct {
	EndMileage     *float64 `json:"end_mileage" binding:"required,gte=0"`
	SurchargeCents int64    `json:"surcharge_cents" binding:"gte=0"`
	PaymentMethod  string   `json:"payment_method" binding:"required"`
}

func (r CompleteRentalRequest) ToCommand() commands.CompleteRentalRequest {
	return commands.CompleteRentalRequest{
		EndMileage:     *r.EndMileage,
		SurchargeCents: r.SurchargeCents,
		PaymentMethod:  r.PaymentMethod,
	}
}
