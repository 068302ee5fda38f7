package v1

import "github.com/shenikar/crime_reporting_system/internal/models"

// ModelToReportResponse maps a domain report to the admin-facing DTO.
func ModelToReportResponse(model *models.CrimeReport) *ReportResponse {
	return &ReportResponse{
		ID:            model.ID,
		Title:         model.Title,
		Description:   model.Description,
		CrimeType:     model.CrimeType,
		IncidentDate:  model.IncidentDate,
		Latitude:      model.Latitude,
		Longitude:     model.Longitude,
		Address:       model.Address,
		ReporterName:  model.ReporterName,
		ReporterPhone: model.ReporterPhone,
		Priority:      model.Priority,
		Status:        model.Status,
		CreatedAt:     model.CreatedAt,
		VerifiedAt:    model.VerifiedAt,
		VerifiedBy:    model.VerifiedBy,
		AdminNotes:    model.AdminNotes,
	}
}

// ModelsToReportResponses maps a slice of reports to admin DTOs.
func ModelsToReportResponses(reports []*models.CrimeReport) []*ReportResponse {
	responses := make([]*ReportResponse, len(reports))
	for i, report := range reports {
		responses[i] = ModelToReportResponse(report)
	}
	return responses
}

// ModelToPublicCrimeResponse maps a report to its public-safe view. The
// reporter name and phone are never exposed here.
func ModelToPublicCrimeResponse(model *models.CrimeReport) *PublicCrimeResponse {
	return &PublicCrimeResponse{
		ID:          model.ID,
		Title:       model.Title,
		Description: model.Description,
		CrimeType:   model.CrimeType,
		Latitude:    model.Latitude,
		Longitude:   model.Longitude,
		Address:     model.Address,
		Status:      model.Status,
		Priority:    model.Priority,
		CreatedAt:   model.CreatedAt,
		VerifiedAt:  model.VerifiedAt,
	}
}

// ModelsToPublicCrimeResponses maps a slice of reports to public DTOs.
func ModelsToPublicCrimeResponses(reports []*models.CrimeReport) []*PublicCrimeResponse {
	responses := make([]*PublicCrimeResponse, len(reports))
	for i, report := range reports {
		responses[i] = ModelToPublicCrimeResponse(report)
	}
	return responses
}

// ModelsToSMSLogResponses maps a notification history to DTOs.
func ModelsToSMSLogResponses(logs []*models.SMSLog) []*SMSLogResponse {
	responses := make([]*SMSLogResponse, len(logs))
	for i, log := range logs {
		responses[i] = &SMSLogResponse{
			ID:          log.ID,
			PhoneNumber: log.PhoneNumber,
			Message:     log.Message,
			Status:      log.Status,
			SentAt:      log.SentAt,
			ProviderSID: log.ProviderSID,
		}
	}
	return responses
}

// ModelsToCrimeTypeResponses maps the catalog to DTOs.
func ModelsToCrimeTypeResponses(types []*models.CrimeType) []*CrimeTypeResponse {
	responses := make([]*CrimeTypeResponse, len(types))
	for i, ct := range types {
		responses[i] = &CrimeTypeResponse{
			ID:          ct.ID,
			Name:        ct.Name,
			Severity:    ct.Severity,
			Description: ct.Description,
		}
	}
	return responses
}
