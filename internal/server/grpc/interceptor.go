package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/geoattend/internal/api"
	"github.com/dmitrijs2005/geoattend/internal/common"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

// AdminKey holds the authenticated admin subject in the request context.
const AdminKey ctxKey = "admin"

// adminMethods require an admin access token.
var adminMethods = map[string]bool{
	api.AttendanceService_ListAttendance_FullMethodName:    true,
	api.AttendanceService_CreateEmployee_FullMethodName:    true,
	api.AttendanceService_EnrollDescriptor_FullMethodName:  true,
	api.AttendanceService_CreateLocation_FullMethodName:    true,
	api.AttendanceService_UpdateLocation_FullMethodName:    true,
	api.AttendanceService_SetLocationActive_FullMethodName: true,
	api.AttendanceService_ExportDay_FullMethodName:         true,
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if !adminMethods[info.FullMethod] {
		return handler(ctx, req)
	}

	var accessToken string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		values := md.Get(common.AccessTokenHeaderName)
		if len(values) > 0 {
			accessToken = values[0]
		}
	}
	if len(accessToken) == 0 {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	admin, err := s.auth.Authorize(accessToken)
	switch {
	case errors.Is(err, common.ErrTokenExpired):
		return nil, status.Error(codes.Unauthenticated, "token expired")
	case errors.Is(err, common.ErrorUnauthorized):
		return nil, status.Error(codes.PermissionDenied, "admin access required")
	case err != nil:
		return nil, status.Error(codes.Unauthenticated, "invalid token")
	}

	ctx = context.WithValue(ctx, AdminKey, admin)
	return handler(ctx, req)
}
