package client

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/geoattend/internal/api"
	"github.com/dmitrijs2005/geoattend/internal/common"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      api.AttendanceServiceClient
	accessToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if s.accessToken != "" {
		ctx = withAccessToken(ctx, s.accessToken)
	}
	return invoker(ctx, method, req, reply, cc, opts...)
}

// NewGRPCClient dials endpointURL lazily; no traffic is sent until the
// first call.
func NewGRPCClient(endpointURL, token string) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, accessToken: token}

	conn, err := grpc.NewClient(endpointURL,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(c.accessTokenInterceptor))
	if err != nil {
		return nil, err
	}
	c.conn = conn
	c.client = api.NewAttendanceServiceClient(conn)
	return c, nil
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func (s *GRPCClient) SetToken(token string) {
	s.accessToken = token
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	resp, err := s.client.Ping(ctx, &api.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}
	if resp.Status != "OK" {
		return ErrUnavailable
	}
	return nil
}

// Login exchanges admin credentials for an access token and keeps it for
// subsequent calls.
func (s *GRPCClient) Login(ctx context.Context, username, password string) (string, error) {
	resp, err := s.client.AdminLogin(ctx, &api.LoginRequest{Username: username, Password: password})
	if err != nil {
		return "", s.mapError(err)
	}
	s.accessToken = resp.AccessToken
	return resp.AccessToken, nil
}

func (s *GRPCClient) ClockIn(ctx context.Context, req *api.ClockInRequest) (*api.ClockResponse, error) {
	resp, err := s.client.ClockIn(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) ClockOut(ctx context.Context, req *api.ClockOutRequest) (*api.ClockResponse, error) {
	resp, err := s.client.ClockOut(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) Status(ctx context.Context, employeeID, day string) (*api.StatusResponse, error) {
	resp, err := s.client.GetStatus(ctx, &api.GetStatusRequest{EmployeeID: employeeID, Day: day})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) History(ctx context.Context, employeeID string, limit int) ([]*api.Session, error) {
	resp, err := s.client.GetHistory(ctx, &api.GetHistoryRequest{EmployeeID: employeeID, Limit: limit})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Sessions, nil
}

func (s *GRPCClient) ListAttendance(ctx context.Context, limit int) ([]*api.Session, error) {
	resp, err := s.client.ListAttendance(ctx, &api.ListAttendanceRequest{Limit: limit})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Sessions, nil
}

func (s *GRPCClient) Employee(ctx context.Context, employeeID string) (*api.Employee, error) {
	resp, err := s.client.GetEmployee(ctx, &api.GetEmployeeRequest{EmployeeID: employeeID})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) Employees(ctx context.Context) ([]*api.Employee, error) {
	resp, err := s.client.ListEmployees(ctx, &api.ListEmployeesRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Employees, nil
}

func (s *GRPCClient) CreateEmployee(ctx context.Context, req *api.CreateEmployeeRequest) (*api.Employee, error) {
	resp, err := s.client.CreateEmployee(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) EnrollDescriptor(ctx context.Context, employeeID string, descriptor []float64) error {
	_, err := s.client.EnrollDescriptor(ctx, &api.EnrollDescriptorRequest{EmployeeID: employeeID, Descriptor: descriptor})
	return s.mapError(err)
}

func (s *GRPCClient) Locations(ctx context.Context) ([]*api.Location, error) {
	resp, err := s.client.ListLocations(ctx, &api.ListLocationsRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Locations, nil
}

func (s *GRPCClient) CreateLocation(ctx context.Context, in api.LocationInput) (*api.Location, error) {
	resp, err := s.client.CreateLocation(ctx, &api.CreateLocationRequest{Location: in})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) UpdateLocation(ctx context.Context, id int64, in api.LocationInput) (*api.Location, error) {
	resp, err := s.client.UpdateLocation(ctx, &api.UpdateLocationRequest{ID: id, Location: in})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) SetLocationActive(ctx context.Context, id int64, active bool) error {
	_, err := s.client.SetLocationActive(ctx, &api.SetLocationActiveRequest{ID: id, Active: active})
	return s.mapError(err)
}

func (s *GRPCClient) ExportDay(ctx context.Context, day string) (*api.ExportDayResponse, error) {
	resp, err := s.client.ExportDay(ctx, &api.ExportDayRequest{Day: day})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	if r, ok := api.RejectionFromError(err); ok {
		return &RejectedError{Rejection: r}
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return fmt.Errorf("%w: %s", ErrUnauthorized, st.Message())
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.NotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, st.Message())
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", ErrInvalid, st.Message())
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
