package models

import (
	"time"

	"github.com/dmitrijs2005/geoattend/internal/biometric"
)

// Employee is a registered employee. EmployeeID is externally assigned and
// immutable; Descriptor is nil until enrolled and is set only once.
type Employee struct {
	EmployeeID string
	Name       string
	Email      string
	Descriptor biometric.Descriptor
	CreatedAt  time.Time
}

// Enrolled reports whether a biometric descriptor is on file.
func (e *Employee) Enrolled() bool {
	return len(e.Descriptor) > 0
}
