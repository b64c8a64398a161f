// Package sessions persists attendance sessions. Writes are conditional so
// that concurrent writers on different server instances cannot overwrite
// each other: a lost race surfaces as common.ErrVersionConflict.
package sessions

import (
	"context"

	"github.com/dmitrijs2005/geoattend/internal/server/models"
)

type Repository interface {
	// Get returns the session for the key or common.ErrorNotFound.
	Get(ctx context.Context, employeeID string, sessionType models.SessionType, day models.Day) (*models.AttendanceSession, error)
	// Insert creates a clocked-in session; it fails with ErrVersionConflict
	// if a row for the same key already exists.
	Insert(ctx context.Context, s *models.AttendanceSession) error
	// UpdateClockOut records the clock-out if the stored version still
	// matches s.Version and the session is open, and bumps s.Version.
	UpdateClockOut(ctx context.Context, s *models.AttendanceSession) error

	ListByEmployeeDay(ctx context.Context, employeeID string, day models.Day) ([]*models.AttendanceSession, error)
	ListByEmployee(ctx context.Context, employeeID string, limit int) ([]*models.AttendanceSession, error)
	ListAll(ctx context.Context, limit int) ([]*models.AttendanceSession, error)
	ListByDay(ctx context.Context, day models.Day) ([]*models.AttendanceSession, error)
}
