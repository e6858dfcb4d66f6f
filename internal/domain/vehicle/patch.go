package vehicle

import "vehicle-rental/internal/pkg/patch"

// Patch enumerates the fields an administrator may change. Nil means "keep".
// Mileage is deliberately absent: it only advances through rental completion.
type Patch struct {
	Model            *string
	Type             *Type
	Year             *int
	MileageThreshold *float64
	MinRentHours     *int
	MaxRentHours     *int
	HourlyRateCents  *int64
	// empty string clears the photo
	PhotoURL *string
}

func (p Patch) IsEmpty() bool {
	return p.Model == nil && p.Type == nil && p.Year == nil && p.MileageThreshold == nil &&
		p.MinRentHours == nil && p.MaxRentHours == nil && p.HourlyRateCents == nil && p.PhotoURL == nil
}

func coalesce(ptr *int, fallback int) int {
	return patch.Coalesce(ptr, fallback)
}
