package models

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/geoattend/internal/common"
)

// SessionType is one of the fixed daily attendance windows.
type SessionType string

const (
	SessionMorning   SessionType = "morning"
	SessionLunch     SessionType = "lunch"
	SessionAfternoon SessionType = "afternoon"
	SessionEvening   SessionType = "evening"
)

var sessionTypes = []SessionType{SessionMorning, SessionLunch, SessionAfternoon, SessionEvening}

// SessionTypes returns every defined session type in day order.
func SessionTypes() []SessionType {
	out := make([]SessionType, len(sessionTypes))
	copy(out, sessionTypes)
	return out
}

// ParseSessionType validates s against the defined session types.
func ParseSessionType(s string) (SessionType, error) {
	for _, t := range sessionTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", common.Validationf("unknown session type %q", s)
}

// Day is a calendar day in the service's reference timezone, formatted
// as YYYY-MM-DD.
type Day string

// DayOf returns the calendar day of t in loc.
func DayOf(t time.Time, loc *time.Location) Day {
	return Day(t.In(loc).Format(common.DayLayout))
}

// ParseDay validates s as a YYYY-MM-DD day.
func ParseDay(s string) (Day, error) {
	t, err := time.Parse(common.DayLayout, s)
	if err != nil {
		return "", common.Validationf("invalid day %q", s)
	}
	return Day(t.Format(common.DayLayout)), nil
}

// Time returns midnight of the day in UTC, suitable for DATE columns.
func (d Day) Time() time.Time {
	t, _ := time.Parse(common.DayLayout, string(d))
	return t
}

func (d Day) String() string { return string(d) }

// AttendanceSession is one (employee, session type, day) row. It is created
// on the first successful clock-in of the day and sealed by clock-out.
type AttendanceSession struct {
	ID          string
	EmployeeID  string
	SessionType SessionType
	Day         Day

	ClockInTime             *time.Time
	ClockInLocation         *Coordinate
	ClockInLocationID       *int64
	ClockInGeofenceDistance *float64
	BiometricChecked        bool
	BiometricDistance       *float64

	ClockOutTime             *time.Time
	ClockOutLocation         *Coordinate
	ClockOutLocationID       *int64
	ClockOutGeofenceDistance *float64

	// Version is bumped on every write and guards conditional updates.
	Version   int64
	CreatedAt time.Time
}

// ClockedIn reports whether a clock-in has been recorded.
func (s *AttendanceSession) ClockedIn() bool { return s != nil && s.ClockInTime != nil }

// ClockedOut reports whether a clock-out has been recorded.
func (s *AttendanceSession) ClockedOut() bool { return s != nil && s.ClockOutTime != nil }

// CheckInvariants verifies the clock-in / clock-out ordering rules.
func (s *AttendanceSession) CheckInvariants() error {
	if s.ClockOutTime == nil {
		return nil
	}
	if s.ClockInTime == nil {
		return fmt.Errorf("%w: clock-out without clock-in", common.ErrValidation)
	}
	if !s.ClockOutTime.After(*s.ClockInTime) {
		return fmt.Errorf("%w: clock-out must be after clock-in", common.ErrValidation)
	}
	return nil
}
