package v1

import (
	"time"

	"github.com/google/uuid"
)

// SubmitReportRequest carries the anonymous intake form. Latitude/longitude
// are coerced during binding; non-numeric input fails the whole submission.
type SubmitReportRequest struct {
	Title         string  `form:"title" json:"title" validate:"required,min=2,max=200"`
	Description   string  `form:"description" json:"description" validate:"required"`
	CrimeType     string  `form:"crime_type" json:"crime_type" validate:"required,max=100"`
	Latitude      float64 `form:"latitude" json:"latitude" validate:"required,latitude"`
	Longitude     float64 `form:"longitude" json:"longitude" validate:"required,longitude"`
	Address       string  `form:"address" json:"address" validate:"required,max=300"`
	ReporterPhone string  `form:"reporter_phone" json:"reporter_phone" validate:"required,min=7,max=20"`
}

// LoginRequest carries the admin credential form.
type LoginRequest struct {
	Username string `form:"username" json:"username" validate:"required"`
	Password string `form:"password" json:"password" validate:"required"`
}

// ReportResponse is the admin-facing view of a report.
type ReportResponse struct {
	ID            uuid.UUID  `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	CrimeType     string     `json:"crime_type"`
	IncidentDate  time.Time  `json:"incident_date"`
	Latitude      float64    `json:"latitude"`
	Longitude     float64    `json:"longitude"`
	Address       string     `json:"address"`
	ReporterName  string     `json:"reporter_name"`
	ReporterPhone string     `json:"reporter_phone"`
	Priority      string     `json:"priority"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	VerifiedAt    *time.Time `json:"verified_at,omitempty"`
	VerifiedBy    *uuid.UUID `json:"verified_by,omitempty"`
	AdminNotes    string     `json:"admin_notes,omitempty"`
}

// PublicCrimeResponse is the public-safe view: no reporter fields at all.
type PublicCrimeResponse struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	CrimeType   string     `json:"crime_type"`
	Latitude    float64    `json:"latitude"`
	Longitude   float64    `json:"longitude"`
	Address     string     `json:"address"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	CreatedAt   time.Time  `json:"created_at"`
	VerifiedAt  *time.Time `json:"verified_at"`
}

// SMSLogResponse is one entry of a report's notification history.
type SMSLogResponse struct {
	ID          int64     `json:"id"`
	PhoneNumber string    `json:"phone_number"`
	Message     string    `json:"message"`
	Status      string    `json:"status"`
	SentAt      time.Time `json:"sent_at"`
	ProviderSID string    `json:"provider_sid,omitempty"`
}

// ReportDetailResponse combines a report with its notification history.
type ReportDetailResponse struct {
	Report  *ReportResponse   `json:"report"`
	SMSLogs []*SMSLogResponse `json:"sms_logs"`
}

// ReportListResponse is a paginated listing (dashboard and feed).
type ReportListResponse struct {
	Reports []*ReportResponse `json:"reports"`
	Page    int               `json:"page"`
	Status  string            `json:"status,omitempty"`
}

// CrimeTypeResponse is one catalog entry.
type CrimeTypeResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Severity    string `json:"severity"`
	Description string `json:"description"`
}
