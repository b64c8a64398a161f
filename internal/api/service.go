package api

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const ServiceName = "geoattend.v1.AttendanceService"

const (
	AttendanceService_Ping_FullMethodName              = "/geoattend.v1.AttendanceService/Ping"
	AttendanceService_AdminLogin_FullMethodName        = "/geoattend.v1.AttendanceService/AdminLogin"
	AttendanceService_ClockIn_FullMethodName           = "/geoattend.v1.AttendanceService/ClockIn"
	AttendanceService_ClockOut_FullMethodName          = "/geoattend.v1.AttendanceService/ClockOut"
	AttendanceService_GetStatus_FullMethodName         = "/geoattend.v1.AttendanceService/GetStatus"
	AttendanceService_GetHistory_FullMethodName        = "/geoattend.v1.AttendanceService/GetHistory"
	AttendanceService_ListAttendance_FullMethodName    = "/geoattend.v1.AttendanceService/ListAttendance"
	AttendanceService_CreateEmployee_FullMethodName    = "/geoattend.v1.AttendanceService/CreateEmployee"
	AttendanceService_GetEmployee_FullMethodName       = "/geoattend.v1.AttendanceService/GetEmployee"
	AttendanceService_ListEmployees_FullMethodName     = "/geoattend.v1.AttendanceService/ListEmployees"
	AttendanceService_EnrollDescriptor_FullMethodName  = "/geoattend.v1.AttendanceService/EnrollDescriptor"
	AttendanceService_CreateLocation_FullMethodName    = "/geoattend.v1.AttendanceService/CreateLocation"
	AttendanceService_UpdateLocation_FullMethodName    = "/geoattend.v1.AttendanceService/UpdateLocation"
	AttendanceService_SetLocationActive_FullMethodName = "/geoattend.v1.AttendanceService/SetLocationActive"
	AttendanceService_ListLocations_FullMethodName     = "/geoattend.v1.AttendanceService/ListLocations"
	AttendanceService_ExportDay_FullMethodName         = "/geoattend.v1.AttendanceService/ExportDay"
)

// AttendanceServiceServer is the server API for the attendance service.
type AttendanceServiceServer interface {
	Ping(context.Context, *PingRequest) (*PingResponse, error)
	AdminLogin(context.Context, *LoginRequest) (*LoginResponse, error)
	ClockIn(context.Context, *ClockInRequest) (*ClockResponse, error)
	ClockOut(context.Context, *ClockOutRequest) (*ClockResponse, error)
	GetStatus(context.Context, *GetStatusRequest) (*StatusResponse, error)
	GetHistory(context.Context, *GetHistoryRequest) (*SessionsResponse, error)
	ListAttendance(context.Context, *ListAttendanceRequest) (*SessionsResponse, error)
	CreateEmployee(context.Context, *CreateEmployeeRequest) (*Employee, error)
	GetEmployee(context.Context, *GetEmployeeRequest) (*Employee, error)
	ListEmployees(context.Context, *ListEmployeesRequest) (*EmployeesResponse, error)
	EnrollDescriptor(context.Context, *EnrollDescriptorRequest) (*Empty, error)
	CreateLocation(context.Context, *CreateLocationRequest) (*Location, error)
	UpdateLocation(context.Context, *UpdateLocationRequest) (*Location, error)
	SetLocationActive(context.Context, *SetLocationActiveRequest) (*Empty, error)
	ListLocations(context.Context, *ListLocationsRequest) (*LocationsResponse, error)
	ExportDay(context.Context, *ExportDayRequest) (*ExportDayResponse, error)
}

// UnimplementedAttendanceServiceServer can be embedded to have forward
// compatible implementations.
type UnimplementedAttendanceServiceServer struct{}

func unimplemented(method string) error {
	return status.Errorf(codes.Unimplemented, "method %s not implemented", method)
}

func (UnimplementedAttendanceServiceServer) Ping(context.Context, *PingRequest) (*PingResponse, error) {
	return nil, unimplemented("Ping")
}
func (UnimplementedAttendanceServiceServer) AdminLogin(context.Context, *LoginRequest) (*LoginResponse, error) {
	return nil, unimplemented("AdminLogin")
}
func (UnimplementedAttendanceServiceServer) ClockIn(context.Context, *ClockInRequest) (*ClockResponse, error) {
	return nil, unimplemented("ClockIn")
}
func (UnimplementedAttendanceServiceServer) ClockOut(context.Context, *ClockOutRequest) (*ClockResponse, error) {
	return nil, unimplemented("ClockOut")
}
func (UnimplementedAttendanceServiceServer) GetStatus(context.Context, *GetStatusRequest) (*StatusResponse, error) {
	return nil, unimplemented("GetStatus")
}
func (UnimplementedAttendanceServiceServer) GetHistory(context.Context, *GetHistoryRequest) (*SessionsResponse, error) {
	return nil, unimplemented("GetHistory")
}
func (UnimplementedAttendanceServiceServer) ListAttendance(context.Context, *ListAttendanceRequest) (*SessionsResponse, error) {
	return nil, unimplemented("ListAttendance")
}
func (UnimplementedAttendanceServiceServer) CreateEmployee(context.Context, *CreateEmployeeRequest) (*Employee, error) {
	return nil, unimplemented("CreateEmployee")
}
func (UnimplementedAttendanceServiceServer) GetEmployee(context.Context, *GetEmployeeRequest) (*Employee, error) {
	return nil, unimplemented("GetEmployee")
}
func (UnimplementedAttendanceServiceServer) ListEmployees(context.Context, *ListEmployeesRequest) (*EmployeesResponse, error) {
	return nil, unimplemented("ListEmployees")
}
func (UnimplementedAttendanceServiceServer) EnrollDescriptor(context.Context, *EnrollDescriptorRequest) (*Empty, error) {
	return nil, unimplemented("EnrollDescriptor")
}
func (UnimplementedAttendanceServiceServer) CreateLocation(context.Context, *CreateLocationRequest) (*Location, error) {
	return nil, unimplemented("CreateLocation")
}
func (UnimplementedAttendanceServiceServer) UpdateLocation(context.Context, *UpdateLocationRequest) (*Location, error) {
	return nil, unimplemented("UpdateLocation")
}
func (UnimplementedAttendanceServiceServer) SetLocationActive(context.Context, *SetLocationActiveRequest) (*Empty, error) {
	return nil, unimplemented("SetLocationActive")
}
func (UnimplementedAttendanceServiceServer) ListLocations(context.Context, *ListLocationsRequest) (*LocationsResponse, error) {
	return nil, unimplemented("ListLocations")
}
func (UnimplementedAttendanceServiceServer) ExportDay(context.Context, *ExportDayRequest) (*ExportDayResponse, error) {
	return nil, unimplemented("ExportDay")
}

func RegisterAttendanceServiceServer(s grpc.ServiceRegistrar, srv AttendanceServiceServer) {
	s.RegisterService(&AttendanceService_ServiceDesc, srv)
}

// unaryHandler adapts a typed server method to grpc.MethodHandler.
func unaryHandler[Req, Resp any](fullMethod string, call func(AttendanceServiceServer, context.Context, *Req) (*Resp, error)) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(AttendanceServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(AttendanceServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// AttendanceService_ServiceDesc is the grpc.ServiceDesc for the attendance
// service.
var AttendanceService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*AttendanceServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Ping", Handler: unaryHandler(AttendanceService_Ping_FullMethodName, AttendanceServiceServer.Ping)},
		{MethodName: "AdminLogin", Handler: unaryHandler(AttendanceService_AdminLogin_FullMethodName, AttendanceServiceServer.AdminLogin)},
		{MethodName: "ClockIn", Handler: unaryHandler(AttendanceService_ClockIn_FullMethodName, AttendanceServiceServer.ClockIn)},
		{MethodName: "ClockOut", Handler: unaryHandler(AttendanceService_ClockOut_FullMethodName, AttendanceServiceServer.ClockOut)},
		{MethodName: "GetStatus", Handler: unaryHandler(AttendanceService_GetStatus_FullMethodName, AttendanceServiceServer.GetStatus)},
		{MethodName: "GetHistory", Handler: unaryHandler(AttendanceService_GetHistory_FullMethodName, AttendanceServiceServer.GetHistory)},
		{MethodName: "ListAttendance", Handler: unaryHandler(AttendanceService_ListAttendance_FullMethodName, AttendanceServiceServer.ListAttendance)},
		{MethodName: "CreateEmployee", Handler: unaryHandler(AttendanceService_CreateEmployee_FullMethodName, AttendanceServiceServer.CreateEmployee)},
		{MethodName: "GetEmployee", Handler: unaryHandler(AttendanceService_GetEmployee_FullMethodName, AttendanceServiceServer.GetEmployee)},
		{MethodName: "ListEmployees", Handler: unaryHandler(AttendanceService_ListEmployees_FullMethodName, AttendanceServiceServer.ListEmployees)},
		{MethodName: "EnrollDescriptor", Handler: unaryHandler(AttendanceService_EnrollDescriptor_FullMethodName, AttendanceServiceServer.EnrollDescriptor)},
		{MethodName: "CreateLocation", Handler: unaryHandler(AttendanceService_CreateLocation_FullMethodName, AttendanceServiceServer.CreateLocation)},
		{MethodName: "UpdateLocation", Handler: unaryHandler(AttendanceService_UpdateLocation_FullMethodName, AttendanceServiceServer.UpdateLocation)},
		{MethodName: "SetLocationActive", Handler: unaryHandler(AttendanceService_SetLocationActive_FullMethodName, AttendanceServiceServer.SetLocationActive)},
		{MethodName: "ListLocations", Handler: unaryHandler(AttendanceService_ListLocations_FullMethodName, AttendanceServiceServer.ListLocations)},
		{MethodName: "ExportDay", Handler: unaryHandler(AttendanceService_ExportDay_FullMethodName, AttendanceServiceServer.ExportDay)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "geoattend/v1/attendance",
}
