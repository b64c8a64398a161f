package common

import (
	"errors"
	"fmt"
)

// ErrRejected matches every *RejectError.
var ErrRejected = errors.New("rejected")

// RejectReason is an expected domain outcome returned to the caller as data.
type RejectReason string

const (
	ReasonLocationRejected       RejectReason = "LocationRejected"
	ReasonBiometricRejected      RejectReason = "BiometricRejected"
	ReasonBiometricRequired      RejectReason = "BiometricRequired"
	ReasonAlreadyClockedIn       RejectReason = "AlreadyClockedIn"
	ReasonNotYetClockedIn        RejectReason = "NotYetClockedIn"
	ReasonSessionAlreadyComplete RejectReason = "SessionAlreadyComplete"
)

// RejectError is a domain rejection of a clock event. Optional fields are set
// depending on the reason.
type RejectError struct {
	Reason  RejectReason
	Message string

	// DistanceMeters and NearestLocationID describe the closest authorized
	// location for LocationRejected.
	DistanceMeters    *float64
	NearestLocationID *int64

	// BiometricDistance is set for BiometricRejected.
	BiometricDistance *float64
}

func (e *RejectError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Reason, e.Message)
	}
	return string(e.Reason)
}

// Is reports whether target is ErrRejected or a RejectError with the same reason.
func (e *RejectError) Is(target error) bool {
	if target == ErrRejected {
		return true
	}
	var other *RejectError
	if errors.As(target, &other) {
		return other.Reason == e.Reason
	}
	return false
}

// NewReject builds a RejectError with a formatted message.
func NewReject(reason RejectReason, format string, args ...any) *RejectError {
	return &RejectError{Reason: reason, Message: fmt.Sprintf(format, args...)}
}

// AsReject extracts a *RejectError from err.
func AsReject(err error) (*RejectError, bool) {
	var r *RejectError
	if errors.As(err, &r) {
		return r, true
	}
	return nil, false
}
