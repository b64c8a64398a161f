package models

// Decision is the final verdict on a clock event.
type Decision string

const (
	DecisionAccept Decision = "accept"
	DecisionReject Decision = "reject"
)

// GeofenceCheck is the geofence part of a verification.
type GeofenceCheck struct {
	Passed         bool
	DistanceMeters float64
	LocationID     *int64
}

// BiometricCheck is the biometric part of a verification. Performed is false
// when the check was skipped.
type BiometricCheck struct {
	Performed bool
	Passed    bool
	Distance  *float64
}

// Verification is the transient outcome of verifying a clock event.
type Verification struct {
	Geofence  GeofenceCheck
	Biometric BiometricCheck
	Decision  Decision
	Reason    string
}
