package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/geoattend/internal/common"
	"github.com/dmitrijs2005/geoattend/internal/server/config"
	"github.com/dmitrijs2005/geoattend/internal/server/models"
	"github.com/dmitrijs2005/geoattend/internal/server/repositories/repomanager"
)

// maxListLimit caps caller-provided page sizes.
const maxListLimit = 1000

// StatusService answers read-only questions about recorded attendance.
// It never writes.
type StatusService struct {
	db             *sql.DB
	repomanager    repomanager.RepositoryManager
	location       *time.Location
	storageTimeout time.Duration
	historyLimit   int
	listAllLimit   int
	now            func() time.Time
}

func NewStatusService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *StatusService {
	return &StatusService{
		db:             db,
		repomanager:    m,
		location:       cfg.Location(),
		storageTimeout: cfg.StorageTimeout,
		historyLimit:   cfg.HistoryLimit,
		listAllLimit:   cfg.ListAllLimit,
		now:            time.Now,
	}
}

// GetStatus reports every session type for the employee on day, or today
// when day is nil. Session types without a record are reported as not
// clocked in.
func (s *StatusService) GetStatus(ctx context.Context, employeeID string, day *models.Day) (*models.EmployeeStatus, error) {
	if strings.TrimSpace(employeeID) == "" {
		return nil, common.Validationf("employee id is required")
	}

	d := models.DayOf(s.now(), s.location)
	if day != nil {
		parsed, err := models.ParseDay(day.String())
		if err != nil {
			return nil, err
		}
		d = parsed
	}

	var employee *models.Employee
	err := s.read(ctx, "get employee", func(ctx context.Context) error {
		var err error
		employee, err = s.repomanager.Employees(s.db).Get(ctx, employeeID)
		return err
	})
	if err != nil {
		return nil, err
	}

	var recs []*models.AttendanceSession
	err = s.read(ctx, "list sessions", func(ctx context.Context) error {
		var err error
		recs, err = s.repomanager.Sessions(s.db).ListByEmployeeDay(ctx, employeeID, d)
		return err
	})
	if err != nil {
		return nil, err
	}

	status := &models.EmployeeStatus{
		EmployeeID:   employee.EmployeeID,
		EmployeeName: employee.Name,
		Day:          d,
		Sessions:     make(map[models.SessionType]models.SessionStatus, len(models.SessionTypes())),
	}
	for _, t := range models.SessionTypes() {
		status.Sessions[t] = models.SessionStatus{}
	}
	for _, r := range recs {
		if _, known := status.Sessions[r.SessionType]; !known {
			continue
		}
		status.Sessions[r.SessionType] = models.SessionStatus{
			ClockedIn:    r.ClockedIn(),
			ClockedOut:   r.ClockedOut(),
			ClockInTime:  r.ClockInTime,
			ClockOutTime: r.ClockOutTime,
		}
	}

	return status, nil
}

// History returns the employee's sessions, newest first. An unknown
// employee simply has no history.
func (s *StatusService) History(ctx context.Context, employeeID string, limit int) ([]*models.AttendanceSession, error) {
	if strings.TrimSpace(employeeID) == "" {
		return nil, common.Validationf("employee id is required")
	}

	var recs []*models.AttendanceSession
	err := s.read(ctx, "list history", func(ctx context.Context) error {
		var err error
		recs, err = s.repomanager.Sessions(s.db).ListByEmployee(ctx, employeeID, clampLimit(limit, s.historyLimit))
		return err
	})
	return recs, err
}

// ListAll returns sessions across all employees, newest first.
func (s *StatusService) ListAll(ctx context.Context, limit int) ([]*models.AttendanceSession, error) {
	var recs []*models.AttendanceSession
	err := s.read(ctx, "list sessions", func(ctx context.Context) error {
		var err error
		recs, err = s.repomanager.Sessions(s.db).ListAll(ctx, clampLimit(limit, s.listAllLimit))
		return err
	})
	return recs, err
}

func clampLimit(limit, def int) int {
	switch {
	case limit <= 0:
		return def
	case limit > maxListLimit:
		return maxListLimit
	default:
		return limit
	}
}

// read runs fn bounded by the storage timeout.
func (s *StatusService) read(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(ctx, s.storageTimeout)
	defer cancel()
	return readError(op, fn(ctx))
}

func readError(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, common.ErrorNotFound):
		return err
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%s: %w", op, common.ErrStorageTimeout)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
