package models

import "time"

// SessionStatus is the read-only projection of one session for a day.
type SessionStatus struct {
	ClockedIn    bool
	ClockedOut   bool
	ClockInTime  *time.Time
	ClockOutTime *time.Time
}

// EmployeeStatus lists the status of every session type for a day.
type EmployeeStatus struct {
	EmployeeID   string
	EmployeeName string
	Day          Day
	Sessions     map[SessionType]SessionStatus
}
