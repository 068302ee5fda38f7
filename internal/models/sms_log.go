package models

import (
	"time"

	"github.com/google/uuid"
)

// SMS delivery outcomes. A log row is inserted once with its final status;
// rows are never updated afterwards.
const (
	SMSStatusSent      = "sent"
	SMSStatusSimulated = "simulated"
	SMSStatusFailed    = "failed"
)

type SMSLog struct {
	ID            int64      `json:"id"`
	PhoneNumber   string     `json:"phone_number"`
	Message       string     `json:"message"`
	Status        string     `json:"status"`
	CrimeReportID *uuid.UUID `json:"crime_report_id,omitempty"`
	SentAt        time.Time  `json:"sent_at"`
	ProviderSID   string     `json:"provider_sid,omitempty"`
}
