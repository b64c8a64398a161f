// Package services contains server-side business logic. This file holds the
// attendance verification engine: it checks a clock event against the
// session state, the geofences and the enrolled face descriptor, and
// commits at most one session write per accepted event.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/geoattend/internal/biometric"
	"github.com/dmitrijs2005/geoattend/internal/common"
	"github.com/dmitrijs2005/geoattend/internal/geo"
	"github.com/dmitrijs2005/geoattend/internal/logging"
	"github.com/dmitrijs2005/geoattend/internal/server/config"
	"github.com/dmitrijs2005/geoattend/internal/server/models"
	"github.com/dmitrijs2005/geoattend/internal/server/notify"
	"github.com/dmitrijs2005/geoattend/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/geoattend/internal/session"
	"github.com/google/uuid"
)

// maxCommitAttempts bounds how often a clock event is re-evaluated after
// losing a write race.
const maxCommitAttempts = 2

type ClockInRequest struct {
	EmployeeID  string
	SessionType models.SessionType
	// Location is nil when the device could not produce a position.
	Location *models.Coordinate
	// Descriptor is the face captured at the device, if any.
	Descriptor biometric.Descriptor
}

type ClockOutRequest struct {
	EmployeeID  string
	SessionType models.SessionType
	Location    *models.Coordinate
}

// ClockResult is returned for accepted events.
type ClockResult struct {
	Session      *models.AttendanceSession
	Verification models.Verification
}

type AttendanceService struct {
	db                *sql.DB
	repomanager       repomanager.RepositoryManager
	matcher           *biometric.Matcher
	locker            *session.Locker
	notifier          notify.Notifier
	logger            logging.Logger
	location          *time.Location
	storageTimeout    time.Duration
	biometricRequired bool

	now   func() time.Time
	newID func() string
}

func NewAttendanceService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config,
	n notify.Notifier, logger logging.Logger) (*AttendanceService, error) {

	matcher, err := biometric.NewMatcher(cfg.MatchThreshold)
	if err != nil {
		return nil, err
	}
	if n == nil {
		n = notify.Nop{}
	}

	return &AttendanceService{
		db:                db,
		repomanager:       m,
		matcher:           matcher,
		locker:            session.NewLocker(),
		notifier:          n,
		logger:            logger.With("module", "attendance"),
		location:          cfg.Location(),
		storageTimeout:    cfg.StorageTimeout,
		biometricRequired: cfg.BiometricRequired,
		now:               time.Now,
		newID:             func() string { return uuid.NewString() },
	}, nil
}

// ClockIn verifies and records the start of a session.
func (s *AttendanceService) ClockIn(ctx context.Context, req ClockInRequest) (*ClockResult, error) {
	if err := validateClockRequest(req.EmployeeID, req.SessionType, req.Location); err != nil {
		return nil, err
	}
	if len(req.Descriptor) > 0 {
		if err := req.Descriptor.Validate(); err != nil {
			return nil, err
		}
	}

	employee, err := s.getEmployee(ctx, req.EmployeeID)
	if err != nil {
		return nil, err
	}

	// One reading of the clock keys the session and stamps the event, so a
	// request that straddles midnight cannot land on two days.
	now := s.now()
	key := session.Key{EmployeeID: req.EmployeeID, SessionType: req.SessionType, Day: models.DayOf(now, s.location)}
	res, err := s.serialize(ctx, key, func() (*ClockResult, error) {
		return s.clockIn(ctx, key, employee, req, now)
	})
	s.notifyRejection(ctx, notify.EventClockIn, employee, key, now, err)
	return res, err
}

// ClockOut verifies and records the end of an open session.
func (s *AttendanceService) ClockOut(ctx context.Context, req ClockOutRequest) (*ClockResult, error) {
	if err := validateClockRequest(req.EmployeeID, req.SessionType, req.Location); err != nil {
		return nil, err
	}

	employee, err := s.getEmployee(ctx, req.EmployeeID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	key := session.Key{EmployeeID: req.EmployeeID, SessionType: req.SessionType, Day: models.DayOf(now, s.location)}
	res, err := s.serialize(ctx, key, func() (*ClockResult, error) {
		return s.clockOut(ctx, key, employee, req, now)
	})
	s.notifyRejection(ctx, notify.EventClockOut, employee, key, now, err)
	return res, err
}

// serialize runs attempt under the key lock and re-runs it once if the
// store reports that another writer got there first.
func (s *AttendanceService) serialize(ctx context.Context, key session.Key, attempt func() (*ClockResult, error)) (*ClockResult, error) {
	unlock, err := s.locker.Lock(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("acquire session lock: %w", err)
	}
	defer unlock()

	for i := 0; i < maxCommitAttempts; i++ {
		res, err := attempt()
		if !errors.Is(err, common.ErrVersionConflict) {
			s.logOutcome(ctx, key, res, err)
			return res, err
		}
		s.logger.Warn(ctx, "session write conflict", "employee_id", key.EmployeeID,
			"session_type", key.SessionType, "day", key.Day, "attempt", i+1)
	}

	s.logger.Error(ctx, "session write conflict persisted", "employee_id", key.EmployeeID,
		"session_type", key.SessionType, "day", key.Day)
	return nil, common.ErrConcurrentModification
}

func (s *AttendanceService) clockIn(ctx context.Context, key session.Key, employee *models.Employee, req ClockInRequest,
	now time.Time) (*ClockResult, error) {

	existing, err := s.getSession(ctx, key)
	if err != nil {
		return nil, err
	}
	if _, err := session.StateOf(existing).ClockIn(); err != nil {
		return nil, err
	}

	var v models.Verification
	fence, err := s.checkGeofence(ctx, *req.Location, &v)
	if err != nil {
		return nil, err
	}

	switch {
	case employee.Enrolled() && len(req.Descriptor) > 0:
		res, err := s.matcher.Compare(employee.Descriptor, req.Descriptor)
		if err != nil {
			return nil, fmt.Errorf("compare descriptors for %s: %w", employee.EmployeeID, err)
		}
		distance := res.Distance
		v.Biometric = models.BiometricCheck{Performed: true, Passed: res.IsMatch, Distance: &distance}
		if !res.IsMatch {
			reject := common.NewReject(common.ReasonBiometricRejected,
				"face does not match enrolled descriptor (distance %.4f)", distance)
			reject.BiometricDistance = &distance
			return nil, reject
		}
	case employee.Enrolled() && s.biometricRequired:
		return nil, common.NewReject(common.ReasonBiometricRequired, "face capture is required for enrolled employees")
	}

	location := *req.Location
	rec := &models.AttendanceSession{
		ID:                      s.newID(),
		EmployeeID:              key.EmployeeID,
		SessionType:             key.SessionType,
		Day:                     key.Day,
		ClockInTime:             &now,
		ClockInLocation:         &location,
		ClockInLocationID:       fence.BestMatch,
		ClockInGeofenceDistance: &fence.DistanceMeters,
		BiometricChecked:        v.Biometric.Performed,
		BiometricDistance:       v.Biometric.Distance,
		CreatedAt:               now,
	}

	err = s.commit(ctx, func(ctx context.Context) error {
		return s.repomanager.Sessions(s.db).Insert(ctx, rec)
	})
	if err != nil {
		return nil, err
	}

	v.Decision = models.DecisionAccept
	s.notify(ctx, notify.Event{
		Kind:         notify.EventClockIn,
		EmployeeID:   employee.EmployeeID,
		EmployeeName: employee.Name,
		SessionType:  rec.SessionType,
		Day:          rec.Day,
		Time:         now,
		LocationID:   fence.BestMatch,
	})
	return &ClockResult{Session: rec, Verification: v}, nil
}

func (s *AttendanceService) clockOut(ctx context.Context, key session.Key, employee *models.Employee, req ClockOutRequest,
	now time.Time) (*ClockResult, error) {

	existing, err := s.getSession(ctx, key)
	if err != nil {
		return nil, err
	}
	if _, err := session.StateOf(existing).ClockOut(); err != nil {
		return nil, err
	}

	if !now.After(*existing.ClockInTime) {
		return nil, common.Validationf("clock-out at %s is not after clock-in at %s",
			now.Format(time.RFC3339Nano), existing.ClockInTime.Format(time.RFC3339Nano))
	}

	var v models.Verification
	fence, err := s.checkGeofence(ctx, *req.Location, &v)
	if err != nil {
		return nil, err
	}

	rec := *existing
	location := *req.Location
	rec.ClockOutTime = &now
	rec.ClockOutLocation = &location
	rec.ClockOutLocationID = fence.BestMatch
	rec.ClockOutGeofenceDistance = &fence.DistanceMeters

	err = s.commit(ctx, func(ctx context.Context) error {
		return s.repomanager.Sessions(s.db).UpdateClockOut(ctx, &rec)
	})
	if err != nil {
		return nil, err
	}

	v.Decision = models.DecisionAccept
	s.notify(ctx, notify.Event{
		Kind:         notify.EventClockOut,
		EmployeeID:   employee.EmployeeID,
		EmployeeName: employee.Name,
		SessionType:  rec.SessionType,
		Day:          rec.Day,
		Time:         now,
		LocationID:   fence.BestMatch,
	})
	return &ClockResult{Session: &rec, Verification: v}, nil
}

// checkGeofence validates p against the active locations and records the
// outcome in v. A point outside every fence is rejected.
func (s *AttendanceService) checkGeofence(ctx context.Context, p models.Coordinate, v *models.Verification) (geo.Result, error) {
	var active []*models.AuthorizedLocation
	err := s.storage(ctx, "list active locations", func(ctx context.Context) error {
		var err error
		active, err = s.repomanager.Locations(s.db).ListActive(ctx)
		return err
	})
	if err != nil {
		return geo.Result{}, err
	}

	fences := make([]geo.Fence, 0, len(active))
	for _, l := range active {
		fences = append(fences, geo.Fence{
			ID:           l.ID,
			Center:       geo.Point{Latitude: l.Latitude, Longitude: l.Longitude},
			RadiusMeters: l.RadiusMeters,
		})
	}

	res := geo.Validate(geo.Point{Latitude: p.Latitude, Longitude: p.Longitude}, fences)
	v.Geofence = models.GeofenceCheck{Passed: res.Matched, DistanceMeters: res.DistanceMeters, LocationID: res.BestMatch}
	if res.Matched {
		return res, nil
	}

	var reject *common.RejectError
	if res.Nearest == nil {
		reject = common.NewReject(common.ReasonLocationRejected, "no active authorized locations")
	} else {
		distance := res.DistanceMeters
		reject = common.NewReject(common.ReasonLocationRejected,
			"outside every authorized location, nearest is #%d at %.1f m", *res.Nearest, distance)
		reject.DistanceMeters = &distance
		reject.NearestLocationID = res.Nearest
	}
	return res, reject
}

func (s *AttendanceService) getEmployee(ctx context.Context, employeeID string) (*models.Employee, error) {
	var e *models.Employee
	err := s.storage(ctx, "get employee", func(ctx context.Context) error {
		var err error
		e, err = s.repomanager.Employees(s.db).Get(ctx, employeeID)
		return err
	})
	return e, err
}

// getSession returns the stored session for key or nil if there is none.
func (s *AttendanceService) getSession(ctx context.Context, key session.Key) (*models.AttendanceSession, error) {
	var rec *models.AttendanceSession
	err := s.storage(ctx, "get session", func(ctx context.Context) error {
		var err error
		rec, err = s.repomanager.Sessions(s.db).Get(ctx, key.EmployeeID, key.SessionType, key.Day)
		return err
	})
	if errors.Is(err, common.ErrorNotFound) {
		return nil, nil
	}
	return rec, err
}

// storage runs a read bounded by the storage timeout.
func (s *AttendanceService) storage(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(ctx, s.storageTimeout)
	defer cancel()
	return storageError(op, fn(ctx))
}

// commit runs the single session write. The write is detached from caller
// cancellation so a client that goes away mid-request leaves either a full
// commit or nothing; only the storage timeout bounds it.
func (s *AttendanceService) commit(ctx context.Context, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.storageTimeout)
	defer cancel()
	return storageError("save session", fn(ctx))
}

func storageError(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, common.ErrorNotFound), errors.Is(err, common.ErrVersionConflict):
		return err
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%s: %w", op, common.ErrStorageTimeout)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

func (s *AttendanceService) notify(ctx context.Context, e notify.Event) {
	if err := s.notifier.Notify(ctx, e); err != nil {
		s.logger.Warn(ctx, "notification failed", "error", err, "employee_id", e.EmployeeID)
	}
}

// notifyRejection reports err when it is a domain rejection; other errors
// are left to the caller.
func (s *AttendanceService) notifyRejection(ctx context.Context, kind notify.EventKind, e *models.Employee,
	key session.Key, at time.Time, err error) {

	reject, ok := common.AsReject(err)
	if !ok {
		return
	}
	s.notify(ctx, notify.Event{
		Kind:         kind,
		EmployeeID:   e.EmployeeID,
		EmployeeName: e.Name,
		SessionType:  key.SessionType,
		Day:          key.Day,
		Time:         at,
		LocationID:   reject.NearestLocationID,
		Rejection:    reject.Reason,
	})
}

func (s *AttendanceService) logOutcome(ctx context.Context, key session.Key, res *ClockResult, err error) {
	args := []any{"employee_id", key.EmployeeID, "session_type", key.SessionType, "day", key.Day}

	if err == nil {
		s.logger.Info(ctx, "clock event accepted", append(args,
			"session_id", res.Session.ID, "closed", res.Session.ClockedOut())...)
		return
	}

	if reject, ok := common.AsReject(err); ok {
		s.logger.Warn(ctx, "clock event rejected", append(args, "reason", reject.Reason)...)
		return
	}

	if errors.Is(err, common.ErrInfrastructure) || errors.Is(err, common.ErrDescriptorShape) {
		s.logger.Error(ctx, "clock event failed", append(args, "error", err)...)
		return
	}
	s.logger.Debug(ctx, "clock event failed", append(args, "error", err)...)
}

func validateClockRequest(employeeID string, sessionType models.SessionType, loc *models.Coordinate) error {
	if strings.TrimSpace(employeeID) == "" {
		return common.Validationf("employee id is required")
	}
	if _, err := models.ParseSessionType(string(sessionType)); err != nil {
		return err
	}
	if loc == nil {
		return fmt.Errorf("no position fix: %w", common.ErrLocationUnavailable)
	}
	return geo.Point{Latitude: loc.Latitude, Longitude: loc.Longitude}.Validate()
}
