package sessions

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/geoattend/internal/common"
	"github.com/dmitrijs2005/geoattend/internal/dbx"
	"github.com/dmitrijs2005/geoattend/internal/server/models"
)

const selectColumns = `SELECT id, employee_id, session_type, day,
	clock_in_time, clock_in_latitude, clock_in_longitude, clock_in_location_id, clock_in_geofence_distance,
	biometric_checked, biometric_distance,
	clock_out_time, clock_out_latitude, clock_out_longitude, clock_out_location_id, clock_out_geofence_distance,
	version, created_at
	FROM attendance_sessions`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Get(ctx context.Context, employeeID string, sessionType models.SessionType, day models.Day) (*models.AttendanceSession, error) {
	query := selectColumns + `
		WHERE employee_id = $1 AND session_type = $2 AND day = $3`

	s, err := scanSession(r.db.QueryRowContext(ctx, query, employeeID, string(sessionType), day.String()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return s, nil
}

func (r *PostgresRepository) Insert(ctx context.Context, s *models.AttendanceSession) error {
	query :=
		`INSERT INTO attendance_sessions (id, employee_id, session_type, day,
			clock_in_time, clock_in_latitude, clock_in_longitude, clock_in_location_id, clock_in_geofence_distance,
			biometric_checked, biometric_distance, version, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, 1, $12)
		 ON CONFLICT (employee_id, session_type, day) DO NOTHING
		 `

	lat, lon := coordinateArgs(s.ClockInLocation)

	res, err := r.db.ExecContext(ctx, query,
		s.ID, s.EmployeeID, string(s.SessionType), s.Day.String(),
		s.ClockInTime, lat, lon, s.ClockInLocationID, s.ClockInGeofenceDistance,
		s.BiometricChecked, s.BiometricDistance, s.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	if err := dbx.ExpectOne(res, common.ErrVersionConflict); err != nil {
		return err
	}
	s.Version = 1
	return nil
}

func (r *PostgresRepository) UpdateClockOut(ctx context.Context, s *models.AttendanceSession) error {
	query :=
		`UPDATE attendance_sessions
		 SET clock_out_time = $3, clock_out_latitude = $4, clock_out_longitude = $5,
			clock_out_location_id = $6, clock_out_geofence_distance = $7, version = version + 1
		 WHERE id = $1 AND version = $2 AND clock_out_time IS NULL
		 `

	lat, lon := coordinateArgs(s.ClockOutLocation)

	res, err := r.db.ExecContext(ctx, query,
		s.ID, s.Version,
		s.ClockOutTime, lat, lon, s.ClockOutLocationID, s.ClockOutGeofenceDistance,
	)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	if err := dbx.ExpectOne(res, common.ErrVersionConflict); err != nil {
		return err
	}
	s.Version++
	return nil
}

func (r *PostgresRepository) ListByEmployeeDay(ctx context.Context, employeeID string, day models.Day) ([]*models.AttendanceSession, error) {
	query := selectColumns + `
		WHERE employee_id = $1 AND day = $2
		ORDER BY created_at`
	return r.list(ctx, query, employeeID, day.String())
}

func (r *PostgresRepository) ListByEmployee(ctx context.Context, employeeID string, limit int) ([]*models.AttendanceSession, error) {
	query := selectColumns + `
		WHERE employee_id = $1
		ORDER BY day DESC, created_at DESC
		LIMIT $2`
	return r.list(ctx, query, employeeID, limit)
}

func (r *PostgresRepository) ListAll(ctx context.Context, limit int) ([]*models.AttendanceSession, error) {
	query := selectColumns + `
		ORDER BY day DESC, created_at DESC
		LIMIT $1`
	return r.list(ctx, query, limit)
}

func (r *PostgresRepository) ListByDay(ctx context.Context, day models.Day) ([]*models.AttendanceSession, error) {
	query := selectColumns + `
		WHERE day = $1
		ORDER BY employee_id, created_at`
	return r.list(ctx, query, day.String())
}

func (r *PostgresRepository) list(ctx context.Context, query string, args ...any) ([]*models.AttendanceSession, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.AttendanceSession, 0)
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSession(sc scanner) (*models.AttendanceSession, error) {
	var (
		s           models.AttendanceSession
		sessionType string
		day         time.Time

		inTime, outTime              sql.NullTime
		inLat, inLon, outLat, outLon sql.NullFloat64
		inLocID, outLocID            sql.NullInt64
		inDist, outDist, bioDist     sql.NullFloat64
	)

	err := sc.Scan(
		&s.ID, &s.EmployeeID, &sessionType, &day,
		&inTime, &inLat, &inLon, &inLocID, &inDist,
		&s.BiometricChecked, &bioDist,
		&outTime, &outLat, &outLon, &outLocID, &outDist,
		&s.Version, &s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	s.SessionType = models.SessionType(sessionType)
	s.Day = models.Day(day.Format(common.DayLayout))

	s.ClockInTime = timePtr(inTime)
	s.ClockInLocation = coordinatePtr(inLat, inLon)
	s.ClockInLocationID = int64Ptr(inLocID)
	s.ClockInGeofenceDistance = floatPtr(inDist)
	s.BiometricDistance = floatPtr(bioDist)

	s.ClockOutTime = timePtr(outTime)
	s.ClockOutLocation = coordinatePtr(outLat, outLon)
	s.ClockOutLocationID = int64Ptr(outLocID)
	s.ClockOutGeofenceDistance = floatPtr(outDist)

	return &s, nil
}

func coordinateArgs(c *models.Coordinate) (lat, lon sql.NullFloat64) {
	if c == nil {
		return
	}
	return sql.NullFloat64{Float64: c.Latitude, Valid: true}, sql.NullFloat64{Float64: c.Longitude, Valid: true}
}

func coordinatePtr(lat, lon sql.NullFloat64) *models.Coordinate {
	if !lat.Valid || !lon.Valid {
		return nil
	}
	return &models.Coordinate{Latitude: lat.Float64, Longitude: lon.Float64}
}

func timePtr(v sql.NullTime) *time.Time {
	if !v.Valid {
		return nil
	}
	t := v.Time
	return &t
}

func floatPtr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

func int64Ptr(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	i := v.Int64
	return &i
}
