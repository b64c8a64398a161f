package grpc

import (
	"context"

	"github.com/dmitrijs2005/geoattend/internal/api"
	"github.com/dmitrijs2005/geoattend/internal/biometric"
	"github.com/dmitrijs2005/geoattend/internal/server/models"
	"github.com/dmitrijs2005/geoattend/internal/server/services"
)

func (s *GRPCServer) Ping(ctx context.Context, req *api.PingRequest) (*api.PingResponse, error) {
	return &api.PingResponse{Status: "OK"}, nil
}

func (s *GRPCServer) AdminLogin(ctx context.Context, req *api.LoginRequest) (*api.LoginResponse, error) {
	token, err := s.auth.Login(ctx, req.Username, req.Password)
	if err != nil {
		return nil, s.toStatus(ctx, "AdminLogin", err)
	}
	return &api.LoginResponse{AccessToken: token}, nil
}

func (s *GRPCServer) ClockIn(ctx context.Context, req *api.ClockInRequest) (*api.ClockResponse, error) {
	res, err := s.attendance.ClockIn(ctx, services.ClockInRequest{
		EmployeeID:  req.EmployeeID,
		SessionType: models.SessionType(req.SessionType),
		Location:    req.Location.Model(),
		Descriptor:  biometric.Descriptor(req.Descriptor),
	})
	if err != nil {
		return nil, s.toStatus(ctx, "ClockIn", err)
	}
	return &api.ClockResponse{Session: api.FromSession(res.Session), Verification: api.FromVerification(res.Verification)}, nil
}

func (s *GRPCServer) ClockOut(ctx context.Context, req *api.ClockOutRequest) (*api.ClockResponse, error) {
	res, err := s.attendance.ClockOut(ctx, services.ClockOutRequest{
		EmployeeID:  req.EmployeeID,
		SessionType: models.SessionType(req.SessionType),
		Location:    req.Location.Model(),
	})
	if err != nil {
		return nil, s.toStatus(ctx, "ClockOut", err)
	}
	return &api.ClockResponse{Session: api.FromSession(res.Session), Verification: api.FromVerification(res.Verification)}, nil
}

func (s *GRPCServer) GetStatus(ctx context.Context, req *api.GetStatusRequest) (*api.StatusResponse, error) {
	var day *models.Day
	if req.Day != "" {
		d := models.Day(req.Day)
		day = &d
	}

	st, err := s.status.GetStatus(ctx, req.EmployeeID, day)
	if err != nil {
		return nil, s.toStatus(ctx, "GetStatus", err)
	}
	return api.FromStatus(st), nil
}

func (s *GRPCServer) GetHistory(ctx context.Context, req *api.GetHistoryRequest) (*api.SessionsResponse, error) {
	list, err := s.status.History(ctx, req.EmployeeID, req.Limit)
	if err != nil {
		return nil, s.toStatus(ctx, "GetHistory", err)
	}
	return api.FromSessions(list), nil
}

func (s *GRPCServer) ListAttendance(ctx context.Context, req *api.ListAttendanceRequest) (*api.SessionsResponse, error) {
	list, err := s.status.ListAll(ctx, req.Limit)
	if err != nil {
		return nil, s.toStatus(ctx, "ListAttendance", err)
	}
	return api.FromSessions(list), nil
}

func (s *GRPCServer) CreateEmployee(ctx context.Context, req *api.CreateEmployeeRequest) (*api.Employee, error) {
	e, err := s.employees.Create(ctx, &models.Employee{
		EmployeeID: req.EmployeeID,
		Name:       req.Name,
		Email:      req.Email,
		Descriptor: biometric.Descriptor(req.Descriptor),
	})
	if err != nil {
		return nil, s.toStatus(ctx, "CreateEmployee", err)
	}

	s.logger.Info(ctx, "Employee created", "employee_id", e.EmployeeID, "admin", ctx.Value(AdminKey))
	return api.FromEmployee(e), nil
}

func (s *GRPCServer) GetEmployee(ctx context.Context, req *api.GetEmployeeRequest) (*api.Employee, error) {
	e, err := s.employees.Get(ctx, req.EmployeeID)
	if err != nil {
		return nil, s.toStatus(ctx, "GetEmployee", err)
	}
	return api.FromEmployee(e), nil
}

func (s *GRPCServer) ListEmployees(ctx context.Context, req *api.ListEmployeesRequest) (*api.EmployeesResponse, error) {
	list, err := s.employees.List(ctx)
	if err != nil {
		return nil, s.toStatus(ctx, "ListEmployees", err)
	}
	return api.FromEmployees(list), nil
}

func (s *GRPCServer) EnrollDescriptor(ctx context.Context, req *api.EnrollDescriptorRequest) (*api.Empty, error) {
	if err := s.employees.EnrollDescriptor(ctx, req.EmployeeID, biometric.Descriptor(req.Descriptor)); err != nil {
		return nil, s.toStatus(ctx, "EnrollDescriptor", err)
	}

	s.logger.Info(ctx, "Descriptor enrolled", "employee_id", req.EmployeeID, "admin", ctx.Value(AdminKey))
	return &api.Empty{}, nil
}

func locationInput(in api.LocationInput) services.LocationInput {
	return services.LocationInput{
		Name:         in.Name,
		Latitude:     in.Latitude,
		Longitude:    in.Longitude,
		RadiusMeters: in.RadiusMeters,
		Active:       in.Active,
	}
}

func (s *GRPCServer) CreateLocation(ctx context.Context, req *api.CreateLocationRequest) (*api.Location, error) {
	l, err := s.locations.Create(ctx, locationInput(req.Location))
	if err != nil {
		return nil, s.toStatus(ctx, "CreateLocation", err)
	}
	return api.FromLocation(l), nil
}

func (s *GRPCServer) UpdateLocation(ctx context.Context, req *api.UpdateLocationRequest) (*api.Location, error) {
	l, err := s.locations.Update(ctx, req.ID, locationInput(req.Location))
	if err != nil {
		return nil, s.toStatus(ctx, "UpdateLocation", err)
	}
	return api.FromLocation(l), nil
}

func (s *GRPCServer) SetLocationActive(ctx context.Context, req *api.SetLocationActiveRequest) (*api.Empty, error) {
	if err := s.locations.SetActive(ctx, req.ID, req.Active); err != nil {
		return nil, s.toStatus(ctx, "SetLocationActive", err)
	}
	return &api.Empty{}, nil
}

func (s *GRPCServer) ListLocations(ctx context.Context, req *api.ListLocationsRequest) (*api.LocationsResponse, error) {
	list, err := s.locations.List(ctx)
	if err != nil {
		return nil, s.toStatus(ctx, "ListLocations", err)
	}
	return api.FromLocations(list), nil
}

func (s *GRPCServer) ExportDay(ctx context.Context, req *api.ExportDayRequest) (*api.ExportDayResponse, error) {
	res, err := s.reports.ExportDay(ctx, models.Day(req.Day))
	if err != nil {
		return nil, s.toStatus(ctx, "ExportDay", err)
	}
	return &api.ExportDayResponse{Key: res.Key, URL: res.URL, Sessions: res.Sessions}, nil
}
