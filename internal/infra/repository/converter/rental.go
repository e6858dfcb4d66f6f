package converter

import (
	"vehicle-rental/internal/domain/rental"
	"vehicle-rental/internal/infra/sqlc"
	"vehicle-rental/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func RentalToInfra(r *rental.Rental) sqlc.Rentals {
	s := r.Snapshot()
	row := sqlc.Rentals{
		ID:              s.ID,
		VehicleID:       s.VehicleID,
		UserID:          s.UserID,
		StartAt:         s.StartAt,
		EndAt:           s.EndAt,
		ApprovalStatus:  s.ApprovalStatus.String(),
		BookingStatus:   s.BookingStatus.String(),
		BaseCents:       s.BaseCents,
		SurchargeCents:  s.SurchargeCents,
		TotalCents:      s.TotalCents,
		EndingMileage:   pgconv.Float64PtrToPgtype(s.EndingMileage),
		RejectionReason: pgconv.StringPtrToPgtype(s.RejectionReason),
		CancelledAt:     pgconv.TimePtrToPgtype(s.CancelledAt),
		CancelledBy:     pgconv.StringPtrToPgtype(s.CancelledBy),
		CancelReason:    pgconv.StringPtrToPgtype(s.CancelReason),
		IssuedAt:        pgconv.TimePtrToPgtype(s.IssuedAt),
		CompletedAt:     pgconv.TimePtrToPgtype(s.CompletedAt),
		PaidAt:          pgconv.TimePtrToPgtype(s.PaidAt),
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
	if s.PaymentMethod != nil {
		row.PaymentMethod = pgtype.Text{String: s.PaymentMethod.String(), Valid: true}
	}
	return row
}

func RentalToDomain(row sqlc.Rentals) *rental.Rental {
	s := rental.Snapshot{
		ID:              row.ID,
		VehicleID:       row.VehicleID,
		UserID:          row.UserID,
		StartAt:         row.StartAt.UTC(),
		EndAt:           row.EndAt.UTC(),
		ApprovalStatus:  rental.ApprovalStatus(row.ApprovalStatus),
		BookingStatus:   rental.BookingStatus(row.BookingStatus),
		BaseCents:       row.BaseCents,
		SurchargeCents:  row.SurchargeCents,
		TotalCents:      row.TotalCents,
		EndingMileage:   pgconv.Float64PtrFromPgtype(row.EndingMileage),
		RejectionReason: pgconv.StringPtrFromPgtype(row.RejectionReason),
		CancelledAt:     pgconv.TimePtrFromPgtype(row.CancelledAt),
		CancelledBy:     pgconv.StringPtrFromPgtype(row.CancelledBy),
		CancelReason:    pgconv.StringPtrFromPgtype(row.CancelReason),
		IssuedAt:        pgconv.TimePtrFromPgtype(row.IssuedAt),
		CompletedAt:     pgconv.TimePtrFromPgtype(row.CompletedAt),
		PaidAt:          pgconv.TimePtrFromPgtype(row.PaidAt),
		CreatedAt:       row.CreatedAt.UTC(),
		UpdatedAt:       row.UpdatedAt.UTC(),
	}
	if row.PaymentMethod.Valid {
		method := rental.PaymentMethod(row.PaymentMethod.String)
		s.PaymentMethod = &method
	}
	return rental.Reconstruct(s)
}

func RentalsToDomain(rows []sqlc.Rentals) []*rental.Rental {
	out := make([]*rental.Rental, 0, len(rows))
	for _, row := range rows {
		out = append(out, RentalToDomain(row))
	}
	return out
}
