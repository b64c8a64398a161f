package api

import (
	"github.com/dmitrijs2005/geoattend/internal/server/models"
)

func coordinate(c *models.Coordinate) *Coordinate {
	if c == nil {
		return nil
	}
	return &Coordinate{Latitude: c.Latitude, Longitude: c.Longitude}
}

// Model converts a wire coordinate; nil stays nil.
func (c *Coordinate) Model() *models.Coordinate {
	if c == nil {
		return nil
	}
	return &models.Coordinate{Latitude: c.Latitude, Longitude: c.Longitude}
}

func FromSession(s *models.AttendanceSession) *Session {
	if s == nil {
		return nil
	}
	return &Session{
		ID:                       s.ID,
		EmployeeID:               s.EmployeeID,
		SessionType:              string(s.SessionType),
		Day:                      s.Day.String(),
		ClockInTime:              s.ClockInTime,
		ClockInLocation:          coordinate(s.ClockInLocation),
		ClockInLocationID:        s.ClockInLocationID,
		ClockInGeofenceDistance:  s.ClockInGeofenceDistance,
		BiometricChecked:         s.BiometricChecked,
		BiometricDistance:        s.BiometricDistance,
		ClockOutTime:             s.ClockOutTime,
		ClockOutLocation:         coordinate(s.ClockOutLocation),
		ClockOutLocationID:       s.ClockOutLocationID,
		ClockOutGeofenceDistance: s.ClockOutGeofenceDistance,
		Version:                  s.Version,
		CreatedAt:                s.CreatedAt,
	}
}

func FromSessions(list []*models.AttendanceSession) *SessionsResponse {
	out := &SessionsResponse{Sessions: make([]*Session, 0, len(list))}
	for _, s := range list {
		out.Sessions = append(out.Sessions, FromSession(s))
	}
	return out
}

func FromVerification(v models.Verification) Verification {
	return Verification{
		GeofencePassed:     v.Geofence.Passed,
		DistanceMeters:     v.Geofence.DistanceMeters,
		LocationID:         v.Geofence.LocationID,
		BiometricPerformed: v.Biometric.Performed,
		BiometricPassed:    v.Biometric.Passed,
		BiometricDistance:  v.Biometric.Distance,
		Decision:           string(v.Decision),
	}
}

func FromStatus(st *models.EmployeeStatus) *StatusResponse {
	out := &StatusResponse{
		EmployeeID:   st.EmployeeID,
		EmployeeName: st.EmployeeName,
		Day:          st.Day.String(),
		Sessions:     make(map[string]SessionStatus, len(st.Sessions)),
	}
	for t, s := range st.Sessions {
		out.Sessions[string(t)] = SessionStatus{
			ClockedIn:    s.ClockedIn,
			ClockedOut:   s.ClockedOut,
			ClockInTime:  s.ClockInTime,
			ClockOutTime: s.ClockOutTime,
		}
	}
	return out
}

func FromEmployee(e *models.Employee) *Employee {
	return &Employee{
		EmployeeID: e.EmployeeID,
		Name:       e.Name,
		Email:      e.Email,
		Enrolled:   e.Enrolled(),
		CreatedAt:  e.CreatedAt,
	}
}

func FromEmployees(list []*models.Employee) *EmployeesResponse {
	out := &EmployeesResponse{Employees: make([]*Employee, 0, len(list))}
	for _, e := range list {
		out.Employees = append(out.Employees, FromEmployee(e))
	}
	return out
}

func FromLocation(l *models.AuthorizedLocation) *Location {
	return &Location{
		ID:           l.ID,
		Name:         l.Name,
		Latitude:     l.Latitude,
		Longitude:    l.Longitude,
		RadiusMeters: l.RadiusMeters,
		Active:       l.Active,
		CreatedAt:    l.CreatedAt,
	}
}

func FromLocations(list []*models.AuthorizedLocation) *LocationsResponse {
	out := &LocationsResponse{Locations: make([]*Location, 0, len(list))}
	for _, l := range list {
		out.Locations = append(out.Locations, FromLocation(l))
	}
	return out
}
