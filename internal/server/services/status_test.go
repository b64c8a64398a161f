package services

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/geoattend/internal/common"
	"github.com/dmitrijs2005/geoattend/internal/server/config"
	"github.com/dmitrijs2005/geoattend/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStatusFixture(t *testing.T, mutate ...func(*config.Config)) (*StatusService, *fakeSessionsRepo, *fakeEmployeesRepo) {
	t.Helper()
	cfg := &config.Config{}
	cfg.LoadDefaults()
	for _, m := range mutate {
		m(cfg)
	}

	emp := newFakeEmployees(&models.Employee{EmployeeID: "E1001", Name: "Ada"})
	sess := newFakeSessions()
	svc := NewStatusService(nil, &fakeRepoManager{e: emp, s: sess}, cfg)
	svc.now = func() time.Time { return morning }
	return svc, sess, emp
}

func TestGetStatus_ReportsEverySessionType(t *testing.T) {
	svc, sess, _ := newStatusFixture(t)
	in := morning
	out := morning.Add(3 * time.Hour)
	sess.put(&models.AttendanceSession{ID: "a", EmployeeID: "E1001", SessionType: models.SessionMorning, Day: today, ClockInTime: &in, ClockOutTime: &out, Version: 2})
	lunch := morning.Add(4 * time.Hour)
	sess.put(&models.AttendanceSession{ID: "b", EmployeeID: "E1001", SessionType: models.SessionLunch, Day: today, ClockInTime: &lunch, Version: 1})

	st, err := svc.GetStatus(context.Background(), "E1001", nil)
	require.NoError(t, err)

	assert.Equal(t, today, st.Day)
	assert.Equal(t, "Ada", st.EmployeeName)
	require.Len(t, st.Sessions, 4)
	assert.Equal(t, models.SessionStatus{ClockedIn: true, ClockedOut: true, ClockInTime: &in, ClockOutTime: &out}, st.Sessions[models.SessionMorning])
	assert.True(t, st.Sessions[models.SessionLunch].ClockedIn)
	assert.False(t, st.Sessions[models.SessionLunch].ClockedOut)
	assert.Equal(t, models.SessionStatus{}, st.Sessions[models.SessionAfternoon])
	assert.Equal(t, models.SessionStatus{}, st.Sessions[models.SessionEvening])
}

func TestGetStatus_ExplicitDay(t *testing.T) {
	svc, sess, _ := newStatusFixture(t)
	in := morning.AddDate(0, 0, -1)
	sess.put(&models.AttendanceSession{ID: "a", EmployeeID: "E1001", SessionType: models.SessionEvening, Day: "2026-10-14", ClockInTime: &in, Version: 1})

	day := models.Day("2026-10-14")
	st, err := svc.GetStatus(context.Background(), "E1001", &day)
	require.NoError(t, err)
	assert.True(t, st.Sessions[models.SessionEvening].ClockedIn)

	st, err = svc.GetStatus(context.Background(), "E1001", nil)
	require.NoError(t, err)
	assert.False(t, st.Sessions[models.SessionEvening].ClockedIn)
}

func TestGetStatus_Errors(t *testing.T) {
	svc, sess, emp := newStatusFixture(t)
	ctx := context.Background()

	_, err := svc.GetStatus(ctx, " ", nil)
	assert.ErrorIs(t, err, common.ErrValidation)

	bad := models.Day("yesterday")
	_, err = svc.GetStatus(ctx, "E1001", &bad)
	assert.ErrorIs(t, err, common.ErrValidation)

	_, err = svc.GetStatus(ctx, "E404", nil)
	assert.ErrorIs(t, err, common.ErrEmployeeNotFound)

	sess.listErr = context.DeadlineExceeded
	_, err = svc.GetStatus(ctx, "E1001", nil)
	assert.ErrorIs(t, err, common.ErrStorageTimeout)

	emp.getErr = errBoom{}
	_, err = svc.GetStatus(ctx, "E1001", nil)
	assert.EqualError(t, err, "get employee: boom")
}

func TestHistory(t *testing.T) {
	svc, sess, _ := newStatusFixture(t)
	for i, d := range []models.Day{"2026-10-13", "2026-10-15", "2026-10-14"} {
		ts := d.Time().Add(8 * time.Hour)
		sess.put(&models.AttendanceSession{ID: string(rune('a' + i)), EmployeeID: "E1001", SessionType: models.SessionMorning, Day: d, ClockInTime: &ts, CreatedAt: ts, Version: 1})
	}

	recs, err := svc.History(context.Background(), "E1001", 2)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, models.Day("2026-10-15"), recs[0].Day)
	assert.Equal(t, models.Day("2026-10-14"), recs[1].Day)

	recs, err = svc.History(context.Background(), "E404", 0)
	require.NoError(t, err)
	assert.Empty(t, recs)
	assert.Equal(t, 50, sess.lastList)

	_, err = svc.History(context.Background(), "", 10)
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestListAll_ClampsLimit(t *testing.T) {
	svc, sess, _ := newStatusFixture(t)

	_, err := svc.ListAll(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, 100, sess.lastList)

	_, err = svc.ListAll(context.Background(), 5000)
	require.NoError(t, err)
	assert.Equal(t, maxListLimit, sess.lastList)

	sess.listErr = errBoom{}
	_, err = svc.ListAll(context.Background(), 10)
	assert.EqualError(t, err, "list sessions: boom")
}

func TestStatusReads_StorageTimeout(t *testing.T) {
	svc, sess, _ := newStatusFixture(t, func(c *config.Config) { c.StorageTimeout = 20 * time.Millisecond })
	sess.blockReads = true
	ctx := context.Background()

	_, err := svc.GetStatus(ctx, "E1001", nil)
	assert.ErrorIs(t, err, common.ErrStorageTimeout)
	assert.ErrorContains(t, err, "list sessions")

	_, err = svc.History(ctx, "E1001", 10)
	assert.ErrorIs(t, err, common.ErrStorageTimeout)
	assert.ErrorContains(t, err, "list history")

	_, err = svc.ListAll(ctx, 10)
	assert.ErrorIs(t, err, common.ErrStorageTimeout)
}

func TestClampLimit(t *testing.T) {
	assert.Equal(t, 7, clampLimit(-1, 7))
	assert.Equal(t, 7, clampLimit(0, 7))
	assert.Equal(t, 12, clampLimit(12, 7))
	assert.Equal(t, maxListLimit, clampLimit(maxListLimit+1, 7))
}
