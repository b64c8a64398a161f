package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/geoattend/internal/api"
	"github.com/dmitrijs2005/geoattend/internal/common"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// toStatus translates service errors into gRPC status errors. Rejections
// carry an api.Rejection detail.
func (s *GRPCServer) toStatus(ctx context.Context, method string, err error) error {
	if reject, ok := common.AsReject(err); ok {
		return rejectStatus(reject)
	}

	var code codes.Code
	switch {
	case errors.Is(err, common.ErrValidation):
		code = codes.InvalidArgument
	case errors.Is(err, common.ErrorNotFound):
		code = codes.NotFound
	case errors.Is(err, common.ErrAlreadyExists):
		code = codes.AlreadyExists
	case errors.Is(err, common.ErrorUnauthorized), errors.Is(err, common.ErrInvalidToken):
		code = codes.Unauthenticated
	case errors.Is(err, common.ErrLocationUnavailable):
		code = codes.FailedPrecondition
	case errors.Is(err, common.ErrStorageTimeout), errors.Is(err, context.DeadlineExceeded):
		code = codes.DeadlineExceeded
	case errors.Is(err, common.ErrConcurrentModification):
		code = codes.Aborted
	case errors.Is(err, context.Canceled):
		code = codes.Canceled
	case errors.Is(err, common.ErrDescriptorShape):
		s.logger.Error(ctx, "request failed", "method", method, "error", err)
		return status.Error(codes.Internal, common.ErrDescriptorShape.Error())
	default:
		s.logger.Error(ctx, "request failed", "method", method, "error", err)
		return status.Error(codes.Internal, "internal error")
	}

	if code == codes.DeadlineExceeded || code == codes.Aborted {
		s.logger.Error(ctx, "request failed", "method", method, "error", err)
	}
	return status.Error(code, err.Error())
}

func rejectStatus(r *common.RejectError) error {
	st := status.New(codes.FailedPrecondition, r.Error())

	detail, err := (&api.Rejection{
		Reason:            string(r.Reason),
		Message:           r.Message,
		DistanceMeters:    r.DistanceMeters,
		NearestLocationID: r.NearestLocationID,
		BiometricDistance: r.BiometricDistance,
	}).Struct()
	if err != nil {
		return st.Err()
	}

	withDetail, err := st.WithDetails(detail)
	if err != nil {
		return st.Err()
	}
	return withDetail.Err()
}
