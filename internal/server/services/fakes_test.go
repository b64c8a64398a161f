package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/dmitrijs2005/geoattend/internal/biometric"
	"github.com/dmitrijs2005/geoattend/internal/common"
	"github.com/dmitrijs2005/geoattend/internal/dbx"
	"github.com/dmitrijs2005/geoattend/internal/server/models"
	"github.com/dmitrijs2005/geoattend/internal/server/notify"
	"github.com/dmitrijs2005/geoattend/internal/server/repositories/employees"
	"github.com/dmitrijs2005/geoattend/internal/server/repositories/locations"
	"github.com/dmitrijs2005/geoattend/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/geoattend/internal/server/repositories/sessions"
)

// -------- employees --------

type fakeEmployeesRepo struct {
	employees.Repository
	mu        sync.Mutex
	byID      map[string]*models.Employee
	getErr    error
	createErr error
	setErr    error
}

func newFakeEmployees(list ...*models.Employee) *fakeEmployeesRepo {
	f := &fakeEmployeesRepo{byID: map[string]*models.Employee{}}
	for _, e := range list {
		f.byID[e.EmployeeID] = e
	}
	return f
}

func (f *fakeEmployeesRepo) Get(ctx context.Context, id string) (*models.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	e, ok := f.byID[id]
	if !ok {
		return nil, common.ErrEmployeeNotFound
	}
	cp := *e
	return &cp, nil
}

func (f *fakeEmployeesRepo) Create(ctx context.Context, e *models.Employee) (*models.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return nil, f.createErr
	}
	if _, ok := f.byID[e.EmployeeID]; ok {
		return nil, common.ErrAlreadyExists
	}
	e.CreatedAt = time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	f.byID[e.EmployeeID] = e
	return e, nil
}

func (f *fakeEmployeesRepo) List(ctx context.Context) ([]*models.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	out := make([]*models.Employee, 0, len(f.byID))
	for _, e := range f.byID {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EmployeeID < out[j].EmployeeID })
	return out, nil
}

func (f *fakeEmployeesRepo) SetDescriptor(ctx context.Context, id string, d biometric.Descriptor) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.setErr != nil {
		return f.setErr
	}
	e, ok := f.byID[id]
	if !ok || e.Enrolled() {
		return common.ErrVersionConflict
	}
	e.Descriptor = d
	return nil
}

// -------- locations --------

type fakeLocationsRepo struct {
	locations.Repository
	mu      sync.Mutex
	list    []*models.AuthorizedLocation
	err     error
	updated []*models.AuthorizedLocation
}

func (f *fakeLocationsRepo) ListActive(ctx context.Context) ([]*models.AuthorizedLocation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*models.AuthorizedLocation, 0, len(f.list))
	for _, l := range f.list {
		if l.Active {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeLocationsRepo) List(ctx context.Context) ([]*models.AuthorizedLocation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.list, f.err
}

func (f *fakeLocationsRepo) Create(ctx context.Context, l *models.AuthorizedLocation) (*models.AuthorizedLocation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	l.ID = int64(len(f.list) + 1)
	f.list = append(f.list, l)
	return l, nil
}

func (f *fakeLocationsRepo) Get(ctx context.Context, id int64) (*models.AuthorizedLocation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, l := range f.list {
		if l.ID == id {
			cp := *l
			return &cp, nil
		}
	}
	return nil, common.ErrLocationNotFound
}

func (f *fakeLocationsRepo) Update(ctx context.Context, l *models.AuthorizedLocation) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updated = append(f.updated, l)
	return f.err
}

func (f *fakeLocationsRepo) SetActive(ctx context.Context, id int64, active bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, l := range f.list {
		if l.ID == id {
			l.Active = active
			return nil
		}
	}
	return common.ErrLocationNotFound
}

// -------- sessions --------

type sessionKey struct {
	employeeID  string
	sessionType models.SessionType
	day         models.Day
}

// fakeSessionsRepo mimics the conditional writes of the Postgres
// repository. Hooks run before the write is applied.
type fakeSessionsRepo struct {
	sessions.Repository
	mu     sync.Mutex
	rows   map[sessionKey]*models.AttendanceSession
	writes int

	getErr     error
	blockReads bool
	blockWrite bool

	beforeInsert func(s *models.AttendanceSession) error
	beforeUpdate func(s *models.AttendanceSession) error
	writeCtxErr  error

	listErr  error
	lastList int
}

func newFakeSessions() *fakeSessionsRepo {
	return &fakeSessionsRepo{rows: map[sessionKey]*models.AttendanceSession{}}
}

func keyOf(s *models.AttendanceSession) sessionKey {
	return sessionKey{s.EmployeeID, s.SessionType, s.Day}
}

func (f *fakeSessionsRepo) Get(ctx context.Context, employeeID string, st models.SessionType, day models.Day) (*models.AttendanceSession, error) {
	if f.blockReads {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	s, ok := f.rows[sessionKey{employeeID, st, day}]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *s
	return &cp, nil
}

func (f *fakeSessionsRepo) Insert(ctx context.Context, s *models.AttendanceSession) error {
	if f.beforeInsert != nil {
		if err := f.beforeInsert(s); err != nil {
			return err
		}
	}
	if f.blockWrite {
		<-ctx.Done()
		return ctx.Err()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writeCtxErr = ctx.Err()
	if _, ok := f.rows[keyOf(s)]; ok {
		return common.ErrVersionConflict
	}
	s.Version = 1
	cp := *s
	f.rows[keyOf(s)] = &cp
	f.writes++
	return nil
}

func (f *fakeSessionsRepo) UpdateClockOut(ctx context.Context, s *models.AttendanceSession) error {
	if f.beforeUpdate != nil {
		if err := f.beforeUpdate(s); err != nil {
			return err
		}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writeCtxErr = ctx.Err()
	cur, ok := f.rows[keyOf(s)]
	if !ok || cur.Version != s.Version || cur.ClockOutTime != nil {
		return common.ErrVersionConflict
	}
	s.Version++
	cp := *s
	f.rows[keyOf(s)] = &cp
	f.writes++
	return nil
}

func (f *fakeSessionsRepo) put(s *models.AttendanceSession) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *s
	f.rows[keyOf(s)] = &cp
}

func (f *fakeSessionsRepo) get(employeeID string, st models.SessionType, day models.Day) *models.AttendanceSession {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.rows[sessionKey{employeeID, st, day}]
}

func (f *fakeSessionsRepo) writeCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.writes
}

func (f *fakeSessionsRepo) sorted(filter func(*models.AttendanceSession) bool) []*models.AttendanceSession {
	out := make([]*models.AttendanceSession, 0)
	for _, s := range f.rows {
		if filter(s) {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Day != out[j].Day {
			return out[i].Day > out[j].Day
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func (f *fakeSessionsRepo) ListByEmployeeDay(ctx context.Context, employeeID string, day models.Day) ([]*models.AttendanceSession, error) {
	if f.blockReads {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.sorted(func(s *models.AttendanceSession) bool { return s.EmployeeID == employeeID && s.Day == day }), nil
}

func (f *fakeSessionsRepo) ListByEmployee(ctx context.Context, employeeID string, limit int) ([]*models.AttendanceSession, error) {
	if f.blockReads {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastList = limit
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := f.sorted(func(s *models.AttendanceSession) bool { return s.EmployeeID == employeeID })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeSessionsRepo) ListAll(ctx context.Context, limit int) ([]*models.AttendanceSession, error) {
	if f.blockReads {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastList = limit
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := f.sorted(func(*models.AttendanceSession) bool { return true })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeSessionsRepo) ListByDay(ctx context.Context, day models.Day) ([]*models.AttendanceSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.sorted(func(s *models.AttendanceSession) bool { return s.Day == day }), nil
}

// -------- manager --------

type fakeRepoManager struct {
	repomanager.RepositoryManager
	e *fakeEmployeesRepo
	l *fakeLocationsRepo
	s *fakeSessionsRepo
}

func (m *fakeRepoManager) Employees(dbx.DBTX) employees.Repository { return m.e }
func (m *fakeRepoManager) Locations(dbx.DBTX) locations.Repository { return m.l }
func (m *fakeRepoManager) Sessions(dbx.DBTX) sessions.Repository   { return m.s }

// -------- notifier --------

type recordingNotifier struct {
	mu     sync.Mutex
	events []notify.Event
	err    error
}

func (n *recordingNotifier) Notify(ctx context.Context, e notify.Event) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, e)
	return n.err
}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.events)
}

type errBoom struct{}

func (errBoom) Error() string { return "boom" }
