package client

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/geoattend/internal/api"
)

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrInvalid      = errors.New("invalid request")
)

// RejectedError is returned when the server refused a clock event.
type RejectedError struct {
	Rejection *api.Rejection
}

func (e *RejectedError) Error() string {
	if e.Rejection.Message != "" {
		return fmt.Sprintf("rejected: %s: %s", e.Rejection.Reason, e.Rejection.Message)
	}
	return "rejected: " + e.Rejection.Reason
}
