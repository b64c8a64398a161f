// Package notify delivers attendance events, accepted and rejected, to
// out-of-band channels. Delivery is best effort and never affects the clock result.
package notify

import (
	"context"
	"time"

	"github.com/dmitrijs2005/geoattend/internal/common"
	"github.com/dmitrijs2005/geoattend/internal/server/models"
)

type EventKind string

const (
	EventClockIn  EventKind = "clock_in"
	EventClockOut EventKind = "clock_out"
)

// Event describes one clock event. Rejection is empty for committed events.
type Event struct {
	Kind         EventKind
	EmployeeID   string
	EmployeeName string
	SessionType  models.SessionType
	Day          models.Day
	Time         time.Time
	LocationID   *int64
	Rejection    common.RejectReason
}

type Notifier interface {
	Notify(ctx context.Context, e Event) error
}

// Nop drops every event.
type Nop struct{}

func (Nop) Notify(context.Context, Event) error { return nil }
