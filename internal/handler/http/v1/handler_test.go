package v1

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/crime_reporting_system/internal/config"
	"github.com/shenikar/crime_reporting_system/internal/handler/http/v1/mocks"
	"github.com/shenikar/crime_reporting_system/internal/models"
	"github.com/shenikar/crime_reporting_system/internal/service"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testSessionToken = "session-token"

// newTestHandler wires the handler with mocked services onto a test router.
func newTestHandler(t *testing.T) (*gin.Engine, *mocks.MockReportService, *mocks.MockAuthService) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	reportMock := mocks.NewMockReportService(ctrl)
	authMock := mocks.NewMockAuthService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{SessionTTL: 12 * time.Hour}

	h := NewHandler(reportMock, authMock, logger, cfg)
	r := gin.New()
	h.RegisterRoutes(r)
	return r, reportMock, authMock
}

func makeRequest(r *gin.Engine, method, path string, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// expectValidSession arms the auth mock for one authenticated admin request.
func expectValidSession(authMock *mocks.MockAuthService, adminID uuid.UUID) {
	authMock.EXPECT().
		ValidateSession(testSessionToken).
		Return(&service.SessionClaims{UserID: adminID, Username: "admin"}, nil).
		Times(1)
}

func sessionHeaders() map[string]string {
	return map[string]string{"Cookie": sessionCookieName + "=" + testSessionToken}
}

func TestSubmitReport_FormSuccess(t *testing.T) {
	r, reportMock, _ := newTestHandler(t)
	reportID := uuid.New()

	reportMock.EXPECT().
		SubmitReport(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, report *models.CrimeReport) error {
			assert.Equal(t, "Stolen bicycle", report.Title)
			assert.Equal(t, "theft", report.CrimeType)
			assert.InDelta(t, 12.97, report.Latitude, 0.001)
			report.ID = reportID
			report.Status = models.StatusPending
			report.Priority = models.PriorityMedium
			report.ReporterName = models.AnonymousReporter
			return nil
		}).Times(1)

	form := url.Values{
		"title":          {"Stolen bicycle"},
		"description":    {"Bicycle stolen from the market"},
		"crime_type":     {"theft"},
		"latitude":       {"12.97"},
		"longitude":      {"77.59"},
		"address":        {"Market street 5"},
		"reporter_phone": {"9876543210"},
	}
	w := makeRequest(r, http.MethodPost, "/report", form.Encode(),
		map[string]string{"Content-Type": "application/x-www-form-urlencoded"})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), reportID.String())
	assert.Contains(t, w.Body.String(), models.StatusPending)
}

func TestSubmitReport_NonNumericLatitude(t *testing.T) {
	r, _, _ := newTestHandler(t)

	form := url.Values{
		"title":          {"Stolen bicycle"},
		"description":    {"Bicycle stolen from the market"},
		"crime_type":     {"theft"},
		"latitude":       {"north"},
		"longitude":      {"77.59"},
		"address":        {"Market street 5"},
		"reporter_phone": {"9876543210"},
	}
	w := makeRequest(r, http.MethodPost, "/report", form.Encode(),
		map[string]string{"Content-Type": "application/x-www-form-urlencoded"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error submitting report. Please try again.")
}

func TestSubmitReport_MissingRequiredFields(t *testing.T) {
	r, _, _ := newTestHandler(t)

	w := makeRequest(r, http.MethodPost, "/report", `{"title":"x"}`,
		map[string]string{"Content-Type": "application/json"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error submitting report. Please try again.")
}

func TestSubmitReport_ServiceError(t *testing.T) {
	r, reportMock, _ := newTestHandler(t)

	reportMock.EXPECT().
		SubmitReport(gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("service: could not submit crime report: db down")).
		Times(1)

	body := `{"title":"Stolen bicycle","description":"d","crime_type":"theft","latitude":12.97,"longitude":77.59,"address":"Market street 5","reporter_phone":"9876543210"}`
	w := makeRequest(r, http.MethodPost, "/report", body,
		map[string]string{"Content-Type": "application/json"})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Error submitting report. Please try again.")
}

func TestAPICrimes_OmitsReporterFields(t *testing.T) {
	r, reportMock, _ := newTestHandler(t)

	reports := []*models.CrimeReport{{
		ID:            uuid.New(),
		Title:         "Stolen bicycle",
		Status:        models.StatusVerified,
		ReporterName:  models.AnonymousReporter,
		ReporterPhone: "+919876543210",
	}}
	reportMock.EXPECT().PublicReports(gomock.Any()).Return(reports, nil).Times(1)

	w := makeRequest(r, http.MethodGet, "/api/crimes", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Stolen bicycle")
	assert.NotContains(t, w.Body.String(), "reporter_phone")
	assert.NotContains(t, w.Body.String(), "+919876543210")
	assert.NotContains(t, w.Body.String(), "reporter_name")
}

func TestAPICrimeTypes(t *testing.T) {
	r, reportMock, _ := newTestHandler(t)

	types := []*models.CrimeType{
		{ID: 1, Name: "theft", Severity: models.PriorityMedium, Description: "Theft and burglary"},
	}
	reportMock.EXPECT().ListCrimeTypes(gomock.Any()).Return(types, nil).Times(1)

	w := makeRequest(r, http.MethodGet, "/api/crime-types", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "theft")
}

func TestHealthCheck(t *testing.T) {
	r, _, _ := newTestHandler(t)

	w := makeRequest(r, http.MethodGet, "/api/health", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}

func TestLogin_SetsSessionCookieAndRedirects(t *testing.T) {
	r, _, authMock := newTestHandler(t)
	adminID := uuid.New()

	authMock.EXPECT().
		Login(gomock.Any(), "admin", "admin123").
		Return(testSessionToken, &models.User{ID: adminID, Username: "admin", IsAdmin: true}, nil).
		Times(1)

	form := url.Values{"username": {"admin"}, "password": {"admin123"}}
	w := makeRequest(r, http.MethodPost, "/admin/login", form.Encode(),
		map[string]string{"Content-Type": "application/x-www-form-urlencoded"})

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin", w.Header().Get("Location"))

	cookie := w.Header().Get("Set-Cookie")
	assert.Contains(t, cookie, sessionCookieName+"="+testSessionToken)
	assert.Contains(t, cookie, "HttpOnly")
}

func TestLogin_InvalidCredentials(t *testing.T) {
	r, _, authMock := newTestHandler(t)

	authMock.EXPECT().
		Login(gomock.Any(), "admin", "wrong").
		Return("", nil, service.ErrInvalidCredentials).
		Times(1)

	form := url.Values{"username": {"admin"}, "password": {"wrong"}}
	w := makeRequest(r, http.MethodPost, "/admin/login", form.Encode(),
		map[string]string{"Content-Type": "application/x-www-form-urlencoded"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogin_MissingFields(t *testing.T) {
	r, _, _ := newTestHandler(t)

	form := url.Values{"username": {"admin"}}
	w := makeRequest(r, http.MethodPost, "/admin/login", form.Encode(),
		map[string]string{"Content-Type": "application/x-www-form-urlencoded"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFeed_UnauthenticatedRedirectsToLogin(t *testing.T) {
	r, _, _ := newTestHandler(t)

	w := makeRequest(r, http.MethodGet, "/feed", "", nil)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/login", w.Header().Get("Location"))
}

func TestFeed_InvalidSessionRedirectsToLogin(t *testing.T) {
	r, _, authMock := newTestHandler(t)

	authMock.EXPECT().
		ValidateSession("stale").
		Return(nil, fmt.Errorf("service: invalid session token")).
		Times(1)

	w := makeRequest(r, http.MethodGet, "/feed", "",
		map[string]string{"Cookie": sessionCookieName + "=stale"})

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/login", w.Header().Get("Location"))
}

func TestFeed_Authenticated(t *testing.T) {
	r, reportMock, authMock := newTestHandler(t)
	adminID := uuid.New()
	expectValidSession(authMock, adminID)

	reports := []*models.CrimeReport{{ID: uuid.New(), Title: "Verified crime", Status: models.StatusVerified}}
	reportMock.EXPECT().PublicFeed(gomock.Any(), 2).Return(reports, nil).Times(1)

	w := makeRequest(r, http.MethodGet, "/feed?page=2", "", sessionHeaders())

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Verified crime")
	assert.Contains(t, w.Body.String(), `"page":2`)
}

func TestFeed_BearerTokenFallback(t *testing.T) {
	r, reportMock, authMock := newTestHandler(t)
	expectValidSession(authMock, uuid.New())

	reportMock.EXPECT().PublicFeed(gomock.Any(), 1).Return([]*models.CrimeReport{}, nil).Times(1)

	w := makeRequest(r, http.MethodGet, "/feed", "",
		map[string]string{"Authorization": "Bearer " + testSessionToken})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminDashboard_DefaultsToPending(t *testing.T) {
	r, reportMock, authMock := newTestHandler(t)
	expectValidSession(authMock, uuid.New())

	reports := []*models.CrimeReport{{ID: uuid.New(), Title: "Pending report", Status: models.StatusPending}}
	reportMock.EXPECT().
		ListByStatus(gomock.Any(), models.StatusPending, 1).
		Return(reports, nil).
		Times(1)

	w := makeRequest(r, http.MethodGet, "/admin", "", sessionHeaders())

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Pending report")
	assert.Contains(t, w.Body.String(), `"status":"pending"`)
}

func TestAdminDashboard_StatusFilter(t *testing.T) {
	r, reportMock, authMock := newTestHandler(t)
	expectValidSession(authMock, uuid.New())

	reportMock.EXPECT().
		ListByStatus(gomock.Any(), models.StatusRejected, 3).
		Return([]*models.CrimeReport{}, nil).
		Times(1)

	w := makeRequest(r, http.MethodGet, "/admin?status=rejected&page=3", "", sessionHeaders())

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"page":3`)
}

func TestReportDetail_Success(t *testing.T) {
	r, reportMock, authMock := newTestHandler(t)
	expectValidSession(authMock, uuid.New())
	reportID := uuid.New()

	report := &models.CrimeReport{ID: reportID, Title: "Detailed report", Status: models.StatusVerified}
	smsLogs := []*models.SMSLog{{ID: 1, PhoneNumber: "+919876543210", Status: models.SMSStatusSimulated, SentAt: time.Now()}}
	reportMock.EXPECT().GetReportDetail(gomock.Any(), reportID).Return(report, smsLogs, nil).Times(1)

	w := makeRequest(r, http.MethodGet, "/admin/report/"+reportID.String(), "", sessionHeaders())

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Detailed report")
	assert.Contains(t, w.Body.String(), models.SMSStatusSimulated)
}

func TestReportDetail_NotFound(t *testing.T) {
	r, reportMock, authMock := newTestHandler(t)
	expectValidSession(authMock, uuid.New())
	reportID := uuid.New()

	reportMock.EXPECT().
		GetReportDetail(gomock.Any(), reportID).
		Return(nil, nil, fmt.Errorf("service: could not get crime report: %w", service.ErrReportNotFound)).
		Times(1)

	w := makeRequest(r, http.MethodGet, "/admin/report/"+reportID.String(), "", sessionHeaders())

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "report not found")
}

func TestReportDetail_MalformedID(t *testing.T) {
	r, _, authMock := newTestHandler(t)
	expectValidSession(authMock, uuid.New())

	w := makeRequest(r, http.MethodGet, "/admin/report/not-a-uuid", "", sessionHeaders())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid report ID")
}

func TestVerifyReport_PassesAdminIDFromSession(t *testing.T) {
	r, reportMock, authMock := newTestHandler(t)
	adminID := uuid.New()
	expectValidSession(authMock, adminID)
	reportID := uuid.New()

	verified := &models.CrimeReport{ID: reportID, Status: models.StatusVerified, VerifiedBy: &adminID}
	reportMock.EXPECT().
		VerifyReport(gomock.Any(), reportID, adminID, false).
		Return(verified, nil).
		Times(1)

	w := makeRequest(r, http.MethodGet, "/admin/verify/"+reportID.String(), "", sessionHeaders())

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), models.StatusVerified)
}

func TestVerifyReport_WithInvestigationFlag(t *testing.T) {
	r, reportMock, authMock := newTestHandler(t)
	adminID := uuid.New()
	expectValidSession(authMock, adminID)
	reportID := uuid.New()

	investigating := &models.CrimeReport{ID: reportID, Status: models.StatusInvestigating}
	reportMock.EXPECT().
		VerifyReport(gomock.Any(), reportID, adminID, true).
		Return(investigating, nil).
		Times(1)

	w := makeRequest(r, http.MethodGet, "/admin/verify/"+reportID.String()+"?investigation=true", "", sessionHeaders())

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), models.StatusInvestigating)
}

func TestVerifyReport_NotFound(t *testing.T) {
	r, reportMock, authMock := newTestHandler(t)
	adminID := uuid.New()
	expectValidSession(authMock, adminID)
	reportID := uuid.New()

	reportMock.EXPECT().
		VerifyReport(gomock.Any(), reportID, adminID, false).
		Return(nil, fmt.Errorf("service: could not get crime report for verification: %w", service.ErrReportNotFound)).
		Times(1)

	w := makeRequest(r, http.MethodGet, "/admin/verify/"+reportID.String(), "", sessionHeaders())

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRejectReport_Success(t *testing.T) {
	r, reportMock, authMock := newTestHandler(t)
	expectValidSession(authMock, uuid.New())
	reportID := uuid.New()

	rejected := &models.CrimeReport{ID: reportID, Status: models.StatusRejected}
	reportMock.EXPECT().RejectReport(gomock.Any(), reportID).Return(rejected, nil).Times(1)

	w := makeRequest(r, http.MethodGet, "/admin/reject/"+reportID.String(), "", sessionHeaders())

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), models.StatusRejected)
}

func TestLogout_ClearsSessionCookie(t *testing.T) {
	r, _, authMock := newTestHandler(t)
	expectValidSession(authMock, uuid.New())

	w := makeRequest(r, http.MethodGet, "/admin/logout", "", sessionHeaders())

	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
	assert.Contains(t, w.Header().Get("Set-Cookie"), sessionCookieName+"=")
}

func TestRootRedirectsToIntakeForm(t *testing.T) {
	r, _, _ := newTestHandler(t)

	w := makeRequest(r, http.MethodGet, "/", "", nil)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/report", w.Header().Get("Location"))
}
