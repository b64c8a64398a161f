package client

import (
	"context"

	"github.com/dmitrijs2005/geoattend/internal/api"
)

type Client interface {
	Close() error
	Ping(ctx context.Context) error
	Login(ctx context.Context, username, password string) (string, error)
	SetToken(token string)

	ClockIn(ctx context.Context, req *api.ClockInRequest) (*api.ClockResponse, error)
	ClockOut(ctx context.Context, req *api.ClockOutRequest) (*api.ClockResponse, error)
	Status(ctx context.Context, employeeID, day string) (*api.StatusResponse, error)
	History(ctx context.Context, employeeID string, limit int) ([]*api.Session, error)
	ListAttendance(ctx context.Context, limit int) ([]*api.Session, error)

	Employee(ctx context.Context, employeeID string) (*api.Employee, error)
	Employees(ctx context.Context) ([]*api.Employee, error)
	CreateEmployee(ctx context.Context, req *api.CreateEmployeeRequest) (*api.Employee, error)
	EnrollDescriptor(ctx context.Context, employeeID string, descriptor []float64) error

	Locations(ctx context.Context) ([]*api.Location, error)
	CreateLocation(ctx context.Context, in api.LocationInput) (*api.Location, error)
	UpdateLocation(ctx context.Context, id int64, in api.LocationInput) (*api.Location, error)
	SetLocationActive(ctx context.Context, id int64, active bool) error

	ExportDay(ctx context.Context, day string) (*api.ExportDayResponse, error)
}
