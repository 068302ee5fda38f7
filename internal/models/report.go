package models

import (
	"time"

	"github.com/google/uuid"
)

// Report statuses. Transitions are not guarded: verify/reject overwrite
// whatever status the report currently has (see service layer).
const (
	StatusPending       = "pending"
	StatusVerified      = "verified"
	StatusInvestigating = "investigating"
	StatusRejected      = "rejected"
)

// Priorities and crime-type severities share the same scale.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// AnonymousReporter is the placeholder name stored for every intake;
// the public form collects no identity beyond a phone number.
const AnonymousReporter = "Anonymous Reporter"

type CrimeReport struct {
	ID            uuid.UUID  `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	CrimeType     string     `json:"crime_type"`
	IncidentDate  time.Time  `json:"incident_date"`
	Latitude      float64    `json:"latitude"`
	Longitude     float64    `json:"longitude"`
	Address       string     `json:"address"`
	Landmark      string     `json:"landmark"`
	ReporterName  string     `json:"reporter_name"`
	ReporterPhone string     `json:"reporter_phone"`
	ReporterEmail string     `json:"reporter_email"`
	IsAnonymous   bool       `json:"is_anonymous"`
	Witnesses     string     `json:"witnesses"`
	Evidence      string     `json:"evidence_description"`
	Priority      string     `json:"priority"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	VerifiedAt    *time.Time `json:"verified_at,omitempty"`
	VerifiedBy    *uuid.UUID `json:"verified_by,omitempty"`
	AdminNotes    string     `json:"admin_notes"`
}
