//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"vehicle-rental/internal/domain/vehicle"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// InsertVehicle writes v directly, bypassing the use cases.
func InsertVehicle(t *testing.T, db DBLike, v *vehicle.Vehicle) {
	t.Helper()

	s := v.Snapshot()
	_, err := db.Exec(context.Background(), `
		INSERT INTO vehicles (id, plate, model, vehicle_type, year, mileage, mileage_threshold,
		                      min_rent_hours, max_rent_hours, hourly_rate_cents, photo_url, deleted,
		                      created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		s.ID, s.Plate, s.Model, string(s.Type), s.Year, s.Mileage, s.MileageThreshold,
		s.MinRentHours, s.MaxRentHours, s.HourlyRateCents, s.PhotoURL, s.Deleted,
		s.CreatedAt, s.UpdatedAt)
	require.NoError(t, err)
}

// CountRentals counts rows for a vehicle, optionally restricted to blocking ones.
func CountRentals(t *testing.T, db DBLike, vehicleID uuid.UUID, blockingOnly bool) int {
	t.Helper()

	query := `SELECT COUNT(*) FROM rentals WHERE vehicle_id = $1`
	if blockingOnly {
		query += ` AND approval_status IN ('PENDING', 'APPROVED') AND booking_status IN ('REQUESTED', 'ACTIVE')`
	}
	var n int
	require.NoError(t, db.QueryRow(context.Background(), query, vehicleID).Scan(&n))
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables except the migration ledger
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
