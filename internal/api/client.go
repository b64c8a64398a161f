package api

import (
	"context"

	"google.golang.org/grpc"
)

// AttendanceServiceClient is the client API for the attendance service.
type AttendanceServiceClient interface {
	Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error)
	AdminLogin(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error)
	ClockIn(ctx context.Context, in *ClockInRequest, opts ...grpc.CallOption) (*ClockResponse, error)
	ClockOut(ctx context.Context, in *ClockOutRequest, opts ...grpc.CallOption) (*ClockResponse, error)
	GetStatus(ctx context.Context, in *GetStatusRequest, opts ...grpc.CallOption) (*StatusResponse, error)
	GetHistory(ctx context.Context, in *GetHistoryRequest, opts ...grpc.CallOption) (*SessionsResponse, error)
	ListAttendance(ctx context.Context, in *ListAttendanceRequest, opts ...grpc.CallOption) (*SessionsResponse, error)
	CreateEmployee(ctx context.Context, in *CreateEmployeeRequest, opts ...grpc.CallOption) (*Employee, error)
	GetEmployee(ctx context.Context, in *GetEmployeeRequest, opts ...grpc.CallOption) (*Employee, error)
	ListEmployees(ctx context.Context, in *ListEmployeesRequest, opts ...grpc.CallOption) (*EmployeesResponse, error)
	EnrollDescriptor(ctx context.Context, in *EnrollDescriptorRequest, opts ...grpc.CallOption) (*Empty, error)
	CreateLocation(ctx context.Context, in *CreateLocationRequest, opts ...grpc.CallOption) (*Location, error)
	UpdateLocation(ctx context.Context, in *UpdateLocationRequest, opts ...grpc.CallOption) (*Location, error)
	SetLocationActive(ctx context.Context, in *SetLocationActiveRequest, opts ...grpc.CallOption) (*Empty, error)
	ListLocations(ctx context.Context, in *ListLocationsRequest, opts ...grpc.CallOption) (*LocationsResponse, error)
	ExportDay(ctx context.Context, in *ExportDayRequest, opts ...grpc.CallOption) (*ExportDayResponse, error)
}

type attendanceServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewAttendanceServiceClient returns a client that sends every call with
// the JSON content-subtype.
func NewAttendanceServiceClient(cc grpc.ClientConnInterface) AttendanceServiceClient {
	return &attendanceServiceClient{cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *attendanceServiceClient) Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error) {
	return invoke[PingResponse](ctx, c.cc, AttendanceService_Ping_FullMethodName, in, opts)
}

func (c *attendanceServiceClient) AdminLogin(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error) {
	return invoke[LoginResponse](ctx, c.cc, AttendanceService_AdminLogin_FullMethodName, in, opts)
}

func (c *attendanceServiceClient) ClockIn(ctx context.Context, in *ClockInRequest, opts ...grpc.CallOption) (*ClockResponse, error) {
	return invoke[ClockResponse](ctx, c.cc, AttendanceService_ClockIn_FullMethodName, in, opts)
}

func (c *attendanceServiceClient) ClockOut(ctx context.Context, in *ClockOutRequest, opts ...grpc.CallOption) (*ClockResponse, error) {
	return invoke[ClockResponse](ctx, c.cc, AttendanceService_ClockOut_FullMethodName, in, opts)
}

func (c *attendanceServiceClient) GetStatus(ctx context.Context, in *GetStatusRequest, opts ...grpc.CallOption) (*StatusResponse, error) {
	return invoke[StatusResponse](ctx, c.cc, AttendanceService_GetStatus_FullMethodName, in, opts)
}

func (c *attendanceServiceClient) GetHistory(ctx context.Context, in *GetHistoryRequest, opts ...grpc.CallOption) (*SessionsResponse, error) {
	return invoke[SessionsResponse](ctx, c.cc, AttendanceService_GetHistory_FullMethodName, in, opts)
}

func (c *attendanceServiceClient) ListAttendance(ctx context.Context, in *ListAttendanceRequest, opts ...grpc.CallOption) (*SessionsResponse, error) {
	return invoke[SessionsResponse](ctx, c.cc, AttendanceService_ListAttendance_FullMethodName, in, opts)
}

func (c *attendanceServiceClient) CreateEmployee(ctx context.Context, in *CreateEmployeeRequest, opts ...grpc.CallOption) (*Employee, error) {
	return invoke[Employee](ctx, c.cc, AttendanceService_CreateEmployee_FullMethodName, in, opts)
}

func (c *attendanceServiceClient) GetEmployee(ctx context.Context, in *GetEmployeeRequest, opts ...grpc.CallOption) (*Employee, error) {
	return invoke[Employee](ctx, c.cc, AttendanceService_GetEmployee_FullMethodName, in, opts)
}

func (c *attendanceServiceClient) ListEmployees(ctx context.Context, in *ListEmployeesRequest, opts ...grpc.CallOption) (*EmployeesResponse, error) {
	return invoke[EmployeesResponse](ctx, c.cc, AttendanceService_ListEmployees_FullMethodName, in, opts)
}

func (c *attendanceServiceClient) EnrollDescriptor(ctx context.Context, in *EnrollDescriptorRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, AttendanceService_EnrollDescriptor_FullMethodName, in, opts)
}

func (c *attendanceServiceClient) CreateLocation(ctx context.Context, in *CreateLocationRequest, opts ...grpc.CallOption) (*Location, error) {
	return invoke[Location](ctx, c.cc, AttendanceService_CreateLocation_FullMethodName, in, opts)
}

func (c *attendanceServiceClient) UpdateLocation(ctx context.Context, in *UpdateLocationRequest, opts ...grpc.CallOption) (*Location, error) {
	return invoke[Location](ctx, c.cc, AttendanceService_UpdateLocation_FullMethodName, in, opts)
}

func (c *attendanceServiceClient) SetLocationActive(ctx context.Context, in *SetLocationActiveRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, AttendanceService_SetLocationActive_FullMethodName, in, opts)
}

func (c *attendanceServiceClient) ListLocations(ctx context.Context, in *ListLocationsRequest, opts ...grpc.CallOption) (*LocationsResponse, error) {
	return invoke[LocationsResponse](ctx, c.cc, AttendanceService_ListLocations_FullMethodName, in, opts)
}

func (c *attendanceServiceClient) ExportDay(ctx context.Context, in *ExportDayRequest, opts ...grpc.CallOption) (*ExportDayResponse, error) {
	return invoke[ExportDayResponse](ctx, c.cc, AttendanceService_ExportDay_FullMethodName, in, opts)
}
