package httpapi

import (
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/geoattend/internal/api"
	"github.com/dmitrijs2005/geoattend/internal/biometric"
	"github.com/dmitrijs2005/geoattend/internal/common"
	"github.com/dmitrijs2005/geoattend/internal/server/models"
	"github.com/dmitrijs2005/geoattend/internal/server/services"
	"github.com/gin-gonic/gin"
)

func (s *Server) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"service": "geoattend", "status": "ok"})
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

func (s *Server) login(c *gin.Context) {
	var req api.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	token, err := s.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.LoginResponse{AccessToken: token})
}

// ---- attendance ----

func (s *Server) clockIn(c *gin.Context) {
	var req api.ClockInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	res, err := s.attendance.ClockIn(c.Request.Context(), services.ClockInRequest{
		EmployeeID:  req.EmployeeID,
		SessionType: models.SessionType(req.SessionType),
		Location:    req.Location.Model(),
		Descriptor:  biometric.Descriptor(req.Descriptor),
	})
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.ClockResponse{Session: api.FromSession(res.Session), Verification: api.FromVerification(res.Verification)})
}

func (s *Server) clockOut(c *gin.Context) {
	var req api.ClockOutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	res, err := s.attendance.ClockOut(c.Request.Context(), services.ClockOutRequest{
		EmployeeID:  req.EmployeeID,
		SessionType: models.SessionType(req.SessionType),
		Location:    req.Location.Model(),
	})
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.ClockResponse{Session: api.FromSession(res.Session), Verification: api.FromVerification(res.Verification)})
}

func (s *Server) getStatus(c *gin.Context) {
	var day *models.Day
	if q := c.Query("day"); q != "" {
		d := models.Day(q)
		day = &d
	}

	st, err := s.status.GetStatus(c.Request.Context(), c.Param("id"), day)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.FromStatus(st))
}

func (s *Server) history(c *gin.Context) {
	limit, ok := queryLimit(c)
	if !ok {
		return
	}

	list, err := s.status.History(c.Request.Context(), c.Param("id"), limit)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.FromSessions(list))
}

func (s *Server) listAll(c *gin.Context) {
	limit, ok := queryLimit(c)
	if !ok {
		return
	}

	list, err := s.status.ListAll(c.Request.Context(), limit)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.FromSessions(list))
}

// queryLimit parses the optional limit parameter; 0 selects the default.
func queryLimit(c *gin.Context) (int, bool) {
	q := c.Query("limit")
	if q == "" {
		return 0, true
	}
	limit, err := strconv.Atoi(q)
	if err != nil || limit < 0 {
		c.JSON(http.StatusBadRequest, errorBody{Error: "limit must be a non-negative integer"})
		return 0, false
	}
	return limit, true
}

// ---- employees ----

func (s *Server) createEmployee(c *gin.Context) {
	var req api.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	e, err := s.employees.Create(c.Request.Context(), &models.Employee{
		EmployeeID: req.EmployeeID,
		Name:       req.Name,
		Email:      req.Email,
		Descriptor: biometric.Descriptor(req.Descriptor),
	})
	if err != nil {
		s.writeError(c, err)
		return
	}

	s.logger.Info(c.Request.Context(), "Employee created", "employee_id", e.EmployeeID, "admin", c.GetString(adminKey))
	c.JSON(http.StatusCreated, api.FromEmployee(e))
}

func (s *Server) listEmployees(c *gin.Context) {
	list, err := s.employees.List(c.Request.Context())
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.FromEmployees(list))
}

func (s *Server) getEmployee(c *gin.Context) {
	e, err := s.employees.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.FromEmployee(e))
}

func (s *Server) enrollDescriptor(c *gin.Context) {
	var req api.EnrollDescriptorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	if err := s.employees.EnrollDescriptor(c.Request.Context(), c.Param("id"), biometric.Descriptor(req.Descriptor)); err != nil {
		s.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ---- locations ----

func locationInput(in api.LocationInput) services.LocationInput {
	return services.LocationInput{
		Name:         in.Name,
		Latitude:     in.Latitude,
		Longitude:    in.Longitude,
		RadiusMeters: in.RadiusMeters,
		Active:       in.Active,
	}
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorBody{Error: common.Validationf("invalid location id %q", c.Param("id")).Error()})
		return 0, false
	}
	return id, true
}

func (s *Server) createLocation(c *gin.Context) {
	var req api.LocationInput
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	l, err := s.locations.Create(c.Request.Context(), locationInput(req))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, api.FromLocation(l))
}

func (s *Server) listLocations(c *gin.Context) {
	list, err := s.locations.List(c.Request.Context())
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.FromLocations(list))
}

func (s *Server) updateLocation(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req api.LocationInput
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	l, err := s.locations.Update(c.Request.Context(), id, locationInput(req))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.FromLocation(l))
}

func (s *Server) setLocationActive(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req struct {
		Active *bool `json:"active" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	if err := s.locations.SetActive(c.Request.Context(), id, *req.Active); err != nil {
		s.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ---- reports ----

func (s *Server) exportDay(c *gin.Context) {
	res, err := s.reports.ExportDay(c.Request.Context(), models.Day(c.Param("day")))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.ExportDayResponse{Key: res.Key, URL: res.URL, Sessions: res.Sessions})
}
