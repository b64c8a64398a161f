package httpapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/geoattend/internal/api"
	"github.com/dmitrijs2005/geoattend/internal/common"
	"github.com/gin-gonic/gin"
)

type errorBody struct {
	Error     string         `json:"error"`
	Rejection *api.Rejection `json:"rejection,omitempty"`
}

func httpStatus(err error) int {
	switch {
	case errors.Is(err, common.ErrRejected):
		return http.StatusBadRequest
	case errors.Is(err, common.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, common.ErrorNotFound):
		return http.StatusNotFound
	case errors.Is(err, common.ErrAlreadyExists), errors.Is(err, common.ErrConcurrentModification):
		return http.StatusConflict
	case errors.Is(err, common.ErrorUnauthorized), errors.Is(err, common.ErrInvalidToken):
		return http.StatusUnauthorized
	case errors.Is(err, common.ErrLocationUnavailable):
		return http.StatusUnprocessableEntity
	case errors.Is(err, common.ErrStorageTimeout), errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders err with the status matching its category. Internal
// failures are logged and reported without detail.
func (s *Server) writeError(c *gin.Context, err error) {
	code := httpStatus(err)
	if code >= http.StatusInternalServerError {
		s.logger.Error(c.Request.Context(), "request failed", "path", c.FullPath(), "error", err)
	}
	if code == http.StatusInternalServerError {
		msg := "internal error"
		if errors.Is(err, common.ErrDescriptorShape) {
			msg = common.ErrDescriptorShape.Error()
		}
		c.JSON(code, errorBody{Error: msg})
		return
	}

	body := errorBody{Error: err.Error()}
	if r, ok := common.AsReject(err); ok {
		body.Rejection = &api.Rejection{
			Reason:            string(r.Reason),
			Message:           r.Message,
			DistanceMeters:    r.DistanceMeters,
			NearestLocationID: r.NearestLocationID,
			BiometricDistance: r.BiometricDistance,
		}
	}
	c.JSON(code, body)
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, errorBody{Error: "invalid body: " + err.Error()})
}
