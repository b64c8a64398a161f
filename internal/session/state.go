// Package session implements the per-day attendance session state machine
// and the keyed lock table that serializes requests for the same session.
//
// Each (employee, session type, day) moves NotStarted -> ClockedIn ->
// ClockedOut. ClockedOut is terminal; a new day starts at NotStarted again.
package session

import (
	"github.com/dmitrijs2005/geoattend/internal/common"
	"github.com/dmitrijs2005/geoattend/internal/server/models"
)

// State is the lifecycle position of a session.
type State int

const (
	NotStarted State = iota
	ClockedIn
	ClockedOut
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "NotStarted"
	case ClockedIn:
		return "ClockedIn"
	case ClockedOut:
		return "ClockedOut"
	default:
		return "Unknown"
	}
}

// StateOf derives the state of a stored session. A nil session is NotStarted.
func StateOf(s *models.AttendanceSession) State {
	switch {
	case s.ClockedOut():
		return ClockedOut
	case s.ClockedIn():
		return ClockedIn
	default:
		return NotStarted
	}
}

// ClockIn returns the state after a clock-in, or the rejection if the
// transition is illegal.
func (s State) ClockIn() (State, error) {
	switch s {
	case NotStarted:
		return ClockedIn, nil
	case ClockedIn:
		return s, common.NewReject(common.ReasonAlreadyClockedIn, "already clocked in for this session today")
	default:
		return s, common.NewReject(common.ReasonSessionAlreadyComplete, "session already completed today")
	}
}

// ClockOut returns the state after a clock-out, or the rejection if the
// transition is illegal.
func (s State) ClockOut() (State, error) {
	switch s {
	case ClockedIn:
		return ClockedOut, nil
	case NotStarted:
		return s, common.NewReject(common.ReasonNotYetClockedIn, "no active clock-in for this session today")
	default:
		return s, common.NewReject(common.ReasonSessionAlreadyComplete, "session already completed today")
	}
}
