// Package grpc exposes the attendance services over gRPC using the JSON
// wire contract from internal/api.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/geoattend/internal/api"
	"github.com/dmitrijs2005/geoattend/internal/biometric"
	"github.com/dmitrijs2005/geoattend/internal/logging"
	"github.com/dmitrijs2005/geoattend/internal/server/models"
	"github.com/dmitrijs2005/geoattend/internal/server/services"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type attendanceSvc interface {
	ClockIn(ctx context.Context, req services.ClockInRequest) (*services.ClockResult, error)
	ClockOut(ctx context.Context, req services.ClockOutRequest) (*services.ClockResult, error)
}

type statusSvc interface {
	GetStatus(ctx context.Context, employeeID string, day *models.Day) (*models.EmployeeStatus, error)
	History(ctx context.Context, employeeID string, limit int) ([]*models.AttendanceSession, error)
	ListAll(ctx context.Context, limit int) ([]*models.AttendanceSession, error)
}

type employeeSvc interface {
	Create(ctx context.Context, e *models.Employee) (*models.Employee, error)
	Get(ctx context.Context, employeeID string) (*models.Employee, error)
	List(ctx context.Context) ([]*models.Employee, error)
	EnrollDescriptor(ctx context.Context, employeeID string, d biometric.Descriptor) error
}

type locationSvc interface {
	Create(ctx context.Context, in services.LocationInput) (*models.AuthorizedLocation, error)
	Update(ctx context.Context, id int64, in services.LocationInput) (*models.AuthorizedLocation, error)
	SetActive(ctx context.Context, id int64, active bool) error
	List(ctx context.Context) ([]*models.AuthorizedLocation, error)
}

type reportSvc interface {
	ExportDay(ctx context.Context, day models.Day) (*services.ExportResult, error)
}

type authSvc interface {
	Login(ctx context.Context, user, password string) (string, error)
	Authorize(token string) (string, error)
}

// Services groups the business services served over gRPC.
type Services struct {
	Attendance attendanceSvc
	Status     statusSvc
	Employees  employeeSvc
	Locations  locationSvc
	Reports    reportSvc
	Auth       authSvc
}

type GRPCServer struct {
	api.UnimplementedAttendanceServiceServer
	address    string
	attendance attendanceSvc
	status     statusSvc
	employees  employeeSvc
	locations  locationSvc
	reports    reportSvc
	auth       authSvc
	health     *health.Server
	logger     logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, svc Services) *GRPCServer {
	return &GRPCServer{
		address:    a,
		logger:     l.With("module", "grpc_server"),
		attendance: svc.Attendance,
		status:     svc.Status,
		employees:  svc.Employees,
		locations:  svc.Locations,
		reports:    svc.Reports,
		auth:       svc.Auth,
		health:     health.NewServer(),
	}
}

func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.accessTokenInterceptor))

	api.RegisterAttendanceServiceServer(srv, s)
	healthpb.RegisterHealthServer(srv, s.health)
	s.health.SetServingStatus(api.ServiceName, healthpb.HealthCheckResponse_SERVING)

	return srv
}

func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.serve(ctx, listen)
}

func (s *GRPCServer) serve(ctx context.Context, listen net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		s.health.Shutdown()
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil {
		return err
	}
	return nil
}
