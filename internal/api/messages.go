package api

import "time"

type PingRequest struct{}

type PingResponse struct {
	Status string `json:"status"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

type Empty struct{}

type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ClockInRequest carries a clock-in event. Location is omitted when the
// device has no position fix; Descriptor is omitted when no face was
// captured.
type ClockInRequest struct {
	EmployeeID  string      `json:"employee_id"`
	SessionType string      `json:"session_type"`
	Location    *Coordinate `json:"location,omitempty"`
	Descriptor  []float64   `json:"descriptor,omitempty"`
}

type ClockOutRequest struct {
	EmployeeID  string      `json:"employee_id"`
	SessionType string      `json:"session_type"`
	Location    *Coordinate `json:"location,omitempty"`
}

type Session struct {
	ID          string `json:"id"`
	EmployeeID  string `json:"employee_id"`
	SessionType string `json:"session_type"`
	Day         string `json:"day"`

	ClockInTime             *time.Time  `json:"clock_in_time,omitempty"`
	ClockInLocation         *Coordinate `json:"clock_in_location,omitempty"`
	ClockInLocationID       *int64      `json:"clock_in_location_id,omitempty"`
	ClockInGeofenceDistance *float64    `json:"clock_in_geofence_distance,omitempty"`
	BiometricChecked        bool        `json:"biometric_checked"`
	BiometricDistance       *float64    `json:"biometric_distance,omitempty"`

	ClockOutTime             *time.Time  `json:"clock_out_time,omitempty"`
	ClockOutLocation         *Coordinate `json:"clock_out_location,omitempty"`
	ClockOutLocationID       *int64      `json:"clock_out_location_id,omitempty"`
	ClockOutGeofenceDistance *float64    `json:"clock_out_geofence_distance,omitempty"`

	Version   int64     `json:"version"`
	CreatedAt time.Time `json:"created_at"`
}

type Verification struct {
	GeofencePassed     bool     `json:"geofence_passed"`
	DistanceMeters     float64  `json:"distance_meters"`
	LocationID         *int64   `json:"location_id,omitempty"`
	BiometricPerformed bool     `json:"biometric_performed"`
	BiometricPassed    bool     `json:"biometric_passed"`
	BiometricDistance  *float64 `json:"biometric_distance,omitempty"`
	Decision           string   `json:"decision"`
}

type ClockResponse struct {
	Session      *Session     `json:"session"`
	Verification Verification `json:"verification"`
}

type GetStatusRequest struct {
	EmployeeID string `json:"employee_id"`
	// Day is YYYY-MM-DD; empty means today.
	Day string `json:"day,omitempty"`
}

type SessionStatus struct {
	ClockedIn    bool       `json:"clocked_in"`
	ClockedOut   bool       `json:"clocked_out"`
	ClockInTime  *time.Time `json:"clock_in_time,omitempty"`
	ClockOutTime *time.Time `json:"clock_out_time,omitempty"`
}

type StatusResponse struct {
	EmployeeID   string                   `json:"employee_id"`
	EmployeeName string                   `json:"employee_name"`
	Day          string                   `json:"day"`
	Sessions     map[string]SessionStatus `json:"sessions"`
}

type GetHistoryRequest struct {
	EmployeeID string `json:"employee_id"`
	Limit      int    `json:"limit,omitempty"`
}

type ListAttendanceRequest struct {
	Limit int `json:"limit,omitempty"`
}

type SessionsResponse struct {
	Sessions []*Session `json:"sessions"`
}

type Employee struct {
	EmployeeID string    `json:"employee_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email,omitempty"`
	Enrolled   bool      `json:"enrolled"`
	CreatedAt  time.Time `json:"created_at"`
}

type CreateEmployeeRequest struct {
	EmployeeID string    `json:"employee_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email,omitempty"`
	Descriptor []float64 `json:"descriptor,omitempty"`
}

type GetEmployeeRequest struct {
	EmployeeID string `json:"employee_id"`
}

type ListEmployeesRequest struct{}

type EmployeesResponse struct {
	Employees []*Employee `json:"employees"`
}

type EnrollDescriptorRequest struct {
	EmployeeID string    `json:"employee_id"`
	Descriptor []float64 `json:"descriptor"`
}

type Location struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	RadiusMeters float64   `json:"radius_meters"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
}

// LocationInput is the editable part of a location. A zero radius selects
// the default; a missing active flag means active on create and unchanged
// on update.
type LocationInput struct {
	Name         string  `json:"name"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	RadiusMeters float64 `json:"radius_meters,omitempty"`
	Active       *bool   `json:"active,omitempty"`
}

type CreateLocationRequest struct {
	Location LocationInput `json:"location"`
}

type UpdateLocationRequest struct {
	ID       int64         `json:"id"`
	Location LocationInput `json:"location"`
}

type SetLocationActiveRequest struct {
	ID     int64 `json:"id"`
	Active bool  `json:"active"`
}

type ListLocationsRequest struct{}

type LocationsResponse struct {
	Locations []*Location `json:"locations"`
}

type ExportDayRequest struct {
	Day string `json:"day"`
}

type ExportDayResponse struct {
	Key      string `json:"key"`
	URL      string `json:"url"`
	Sessions int    `json:"sessions"`
}

// Rejection is the structured detail attached to rejected clock events.
type Rejection struct {
	Reason            string   `json:"reason"`
	Message           string   `json:"message,omitempty"`
	DistanceMeters    *float64 `json:"distance_meters,omitempty"`
	NearestLocationID *int64   `json:"nearest_location_id,omitempty"`
	BiometricDistance *float64 `json:"biometric_distance,omitempty"`
}
