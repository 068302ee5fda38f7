package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/crime_reporting_system/internal/config"
	"github.com/shenikar/crime_reporting_system/internal/models"
	"github.com/shenikar/crime_reporting_system/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	reportService service.ReportService
	authService   service.AuthService
	logger        *logrus.Logger
	validate      *validator.Validate
	cfg           *config.Config
}

func NewHandler(reportService service.ReportService, authService service.AuthService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		reportService: reportService,
		authService:   authService,
		logger:        logger,
		validate:      validator.New(),
		cfg:           cfg,
	}
}

// @Summary Submit a crime report
// @Description Submit a new anonymous crime report. Accepts form or JSON fields.
// @Tags Reports
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce json
// @Param report body SubmitReportRequest true "Report submission"
// @Success 201 {object} ReportResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /report [post]
func (h *Handler) submitReport(c *gin.Context) {
	var input SubmitReportRequest
	log := h.logger.WithField("method", "submitReport")

	if err := c.ShouldBind(&input); err != nil {
		log.WithError(err).Warn("Failed to bind report submission")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Error submitting report. Please try again."})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Error submitting report. Please try again."})
		return
	}

	report := &models.CrimeReport{
		Title:         input.Title,
		Description:   input.Description,
		CrimeType:     input.CrimeType,
		Latitude:      input.Latitude,
		Longitude:     input.Longitude,
		Address:       input.Address,
		ReporterPhone: input.ReporterPhone,
	}

	if err := h.reportService.SubmitReport(c.Request.Context(), report); err != nil {
		log.WithError(err).Error("Failed to submit report in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error submitting report. Please try again."})
		return
	}

	c.JSON(http.StatusCreated, ModelToReportResponse(report))
}

// @Summary Verified crime feed
// @Description Paginated list of verified and investigating reports, newest first. Admin only.
// @Tags Reports
// @Produce json
// @Param page query int false "Page number" default(1)
// @Success 200 {object} ReportListResponse
// @Failure 302 "Redirect to login"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /feed [get]
func (h *Handler) crimeFeed(c *gin.Context) {
	log := h.logger.WithField("method", "crimeFeed")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	reports, err := h.reportService.PublicFeed(c.Request.Context(), page)
	if err != nil {
		log.WithError(err).Error("Failed to list feed from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ReportListResponse{
		Reports: ModelsToReportResponses(reports),
		Page:    page,
	})
}

// @Summary Public crime listing
// @Description All verified and investigating reports with public-safe fields. Backs the map view.
// @Tags Public
// @Produce json
// @Success 200 {array} PublicCrimeResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/crimes [get]
func (h *Handler) apiCrimes(c *gin.Context) {
	log := h.logger.WithField("method", "apiCrimes")

	reports, err := h.reportService.PublicReports(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list public reports from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToPublicCrimeResponses(reports))
}

// @Summary Crime type catalog
// @Description The seeded crime-type catalog.
// @Tags Public
// @Produce json
// @Success 200 {array} CrimeTypeResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/crime-types [get]
func (h *Handler) apiCrimeTypes(c *gin.Context) {
	log := h.logger.WithField("method", "apiCrimeTypes")

	types, err := h.reportService.ListCrimeTypes(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list crime types from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToCrimeTypeResponses(types))
}

// @Summary Admin login
// @Description Check credentials and establish the admin session cookie.
// @Tags Admin
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce json
// @Param credentials body LoginRequest true "Credentials"
// @Success 302 "Redirect to dashboard"
// @Failure 401 {object} map[string]string "Invalid credentials or insufficient permissions"
// @Router /admin/login [post]
func (h *Handler) login(c *gin.Context) {
	var input LoginRequest
	log := h.logger.WithField("method", "login")

	if err := c.ShouldBind(&input); err != nil {
		log.WithError(err).Warn("Failed to bind login form")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, _, err := h.authService.Login(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": service.ErrInvalidCredentials.Error()})
			return
		}
		log.WithError(err).Error("Failed to log in via service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.SetCookie(sessionCookieName, token, int(h.cfg.SessionTTL.Seconds()), "/", "", false, true)
	c.Redirect(http.StatusFound, "/admin")
}

// @Summary Admin logout
// @Description Clear the admin session cookie.
// @Tags Admin
// @Success 302 "Redirect to intake form"
// @Router /admin/logout [get]
func (h *Handler) logout(c *gin.Context) {
	c.SetCookie(sessionCookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}

// @Summary Admin dashboard
// @Description Paginated report listing filtered by status (default pending), newest first.
// @Tags Admin
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param status query string false "Status filter" default(pending)
// @Success 200 {object} ReportListResponse
// @Failure 302 "Redirect to login"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin [get]
func (h *Handler) adminDashboard(c *gin.Context) {
	log := h.logger.WithField("method", "adminDashboard")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	status := c.DefaultQuery("status", models.StatusPending)

	reports, err := h.reportService.ListByStatus(c.Request.Context(), status, page)
	if err != nil {
		log.WithError(err).Error("Failed to list reports from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ReportListResponse{
		Reports: ModelsToReportResponses(reports),
		Page:    page,
		Status:  status,
	})
}

// @Summary Report detail
// @Description One report plus its full notification history, newest first.
// @Tags Admin
// @Produce json
// @Param id path string true "Report ID"
// @Success 200 {object} ReportDetailResponse
// @Failure 400 {object} map[string]string "Invalid report ID"
// @Failure 404 {object} map[string]string "Report not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/report/{id} [get]
func (h *Handler) reportDetail(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report ID"})
		return
	}
	log := h.logger.WithField("method", "reportDetail").WithField("id", id)

	report, smsLogs, err := h.reportService.GetReportDetail(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrReportNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "report not found"})
			return
		}
		log.WithError(err).Error("Failed to get report detail from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ReportDetailResponse{
		Report:  ModelToReportResponse(report),
		SMSLogs: ModelsToSMSLogResponses(smsLogs),
	})
}

// @Summary Verify a report
// @Description Verify a report, optionally opening an investigation, and notify the reporter.
// @Tags Admin
// @Produce json
// @Param id path string true "Report ID"
// @Param investigation query bool false "Start an investigation" default(false)
// @Success 200 {object} ReportResponse
// @Failure 400 {object} map[string]string "Invalid report ID"
// @Failure 404 {object} map[string]string "Report not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/verify/{id} [get]
func (h *Handler) verifyReport(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report ID"})
		return
	}
	log := h.logger.WithField("method", "verifyReport").WithField("id", id)

	investigation, _ := strconv.ParseBool(c.DefaultQuery("investigation", "false"))
	adminID := c.MustGet(ctxAdminIDKey).(uuid.UUID)

	report, err := h.reportService.VerifyReport(c.Request.Context(), id, adminID, investigation)
	if err != nil {
		if errors.Is(err, service.ErrReportNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "report not found"})
			return
		}
		log.WithError(err).Error("Failed to verify report in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelToReportResponse(report))
}

// @Summary Reject a report
// @Description Reject a report regardless of its current status and notify the reporter.
// @Tags Admin
// @Produce json
// @Param id path string true "Report ID"
// @Success 200 {object} ReportResponse
// @Failure 400 {object} map[string]string "Invalid report ID"
// @Failure 404 {object} map[string]string "Report not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/reject/{id} [get]
func (h *Handler) rejectReport(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report ID"})
		return
	}
	log := h.logger.WithField("method", "rejectReport").WithField("id", id)

	report, err := h.reportService.RejectReport(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrReportNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "report not found"})
			return
		}
		log.WithError(err).Error("Failed to reject report in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelToReportResponse(report))
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /api/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
