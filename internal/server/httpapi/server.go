// Package httpapi serves the attendance services as a JSON REST API built
// on gin. Request and response bodies reuse the wire types of internal/api.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/geoattend/internal/biometric"
	"github.com/dmitrijs2005/geoattend/internal/logging"
	"github.com/dmitrijs2005/geoattend/internal/server/models"
	"github.com/dmitrijs2005/geoattend/internal/server/services"
	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 5 * time.Second

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

// Services groups the business services served over HTTP.
type Services struct {
	Attendance attendanceSvc
	Status     statusSvc
	Employees  employeeSvc
	Locations  locationSvc
	Reports    reportSvc
	Auth       authSvc
}

type Server struct {
	address    string
	attendance attendanceSvc
	status     statusSvc
	employees  employeeSvc
	locations  locationSvc
	reports    reportSvc
	auth       authSvc
	router     *gin.Engine
	logger     logging.Logger
}

func NewServer(a string, l logging.Logger, svc Services) *Server {
	s := &Server{
		address:    a,
		logger:     l.With("module", "http_server"),
		attendance: svc.Attendance,
		status:     svc.Status,
		employees:  svc.Employees,
		locations:  svc.Locations,
		reports:    svc.Reports,
		auth:       svc.Auth,
	}
	s.router = s.routes()
	return s
}

// Handler returns the configured router.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())

	r.GET("/", s.root)
	r.GET("/health", s.health)
	r.POST("/auth/login", s.login)

	admin := s.adminRequired()

	r.POST("/employees", admin, s.createEmployee)
	r.GET("/employees", s.listEmployees)
	r.GET("/employees/:id", s.getEmployee)
	r.PUT("/employees/:id/descriptor", admin, s.enrollDescriptor)

	r.POST("/locations", admin, s.createLocation)
	r.GET("/locations", s.listLocations)
	r.PUT("/locations/:id", admin, s.updateLocation)
	r.PUT("/locations/:id/active", admin, s.setLocationActive)

	attendance := r.Group("/attendance")
	{
		attendance.POST("/clock-in", s.clockIn)
		attendance.POST("/clock-out", s.clockOut)
		attendance.GET("/status/:id", s.getStatus)
		attendance.GET("/history/:id", s.history)
		attendance.GET("/all", admin, s.listAll)
	}

	r.POST("/reports/:day", admin, s.exportDay)

	return r
}

func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Debug(c.Request.Context(), "http request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration", time.Since(start))
	}
}
