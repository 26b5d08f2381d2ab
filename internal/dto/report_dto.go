package dto

import (
	"time"

	"github.com/basmahq/moderation-api/internal/models"
)

// ReportUpdateRequest carries the admin-editable fields of a report.
// report_code and reported_at are fixed at submission; the console sends them
// back on save and they are ignored here rather than rejected.
type ReportUpdateRequest struct {
	ReportTypeID       FlexID    `json:"report_type_id"`
	NameAr             string    `json:"name_ar"`
	DescriptionAr      *string   `json:"description_ar"`
	Note               *string   `json:"note"`
	ImageBeforeURL     *string   `json:"image_before_url"`
	ImageAfterURL      *string   `json:"image_after_url"`
	StatusID           FlexID    `json:"status_id"`
	AdoptedByAccountID *FlexID   `json:"adopted_by_account_id"`
	GovernmentID       *FlexID   `json:"government_id"`
	DistrictID         *FlexID   `json:"district_id"`
	AreaID             *FlexID   `json:"area_id"`
	LocationID         *FlexID   `json:"location_id"`
	IsActive           *FlexBool `json:"is_active"`
}

// ReportResponse is a report joined with lookup display names. The names are
// resolved at read time and fall back to the raw id when the referenced row
// is gone, so a stale foreign key still renders.
type ReportResponse struct {
	ID                 uint      `json:"id"`
	ReportCode         string    `json:"report_code"`
	ReportTypeID       uint      `json:"report_type_id"`
	NameAr             string    `json:"name_ar"`
	DescriptionAr      string    `json:"description_ar"`
	Note               *string   `json:"note"`
	ImageBeforeURL     string    `json:"image_before_url"`
	ImageAfterURL      *string   `json:"image_after_url"`
	StatusID           uint      `json:"status_id"`
	ReportedAt         time.Time `json:"reported_at"`
	AdoptedByAccountID *uint     `json:"adopted_by_account_id"`
	GovernmentID       *uint     `json:"government_id"`
	DistrictID         *uint     `json:"district_id"`
	AreaID             *uint     `json:"area_id"`
	LocationID         *uint     `json:"location_id"`
	UserID             *uint     `json:"user_id"`
	ReportedByName     *string   `json:"reported_by_name"`
	IsActive           bool      `json:"is_active"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`

	ReportTypeNameAr    string  `json:"report_type_name_ar"`
	StatusNameAr        string  `json:"status_name_ar"`
	GovernmentNameAr    *string `json:"government_name_ar"`
	DistrictNameAr      *string `json:"district_name_ar"`
	AreaNameAr          *string `json:"area_name_ar"`
	LocationNameAr      *string `json:"location_name_ar"`
	AdoptedByAccount    *string `json:"adopted_by_account_name"`
}

type ReportListResponse struct {
	Reports []ReportResponse `json:"reports"`
	Total   int64            `json:"total"`
	Limit   int              `json:"limit"`
	Offset  int              `json:"offset"`
}

// NewReportResponse copies the stored report; display names are filled in by
// the report service.
func NewReportResponse(r *models.Report) ReportResponse {
	return ReportResponse{
		ID:                 r.ID,
		ReportCode:         r.ReportCode,
		ReportTypeID:       r.ReportTypeID,
		NameAr:             r.NameAr,
		DescriptionAr:      r.DescriptionAr,
		Note:               r.Note,
		ImageBeforeURL:     r.ImageBeforeURL,
		ImageAfterURL:      r.ImageAfterURL,
		StatusID:           r.StatusID,
		ReportedAt:         r.ReportedAt,
		AdoptedByAccountID: r.AdoptedByAccountID,
		GovernmentID:       r.GovernmentID,
		DistrictID:         r.DistrictID,
		AreaID:             r.AreaID,
		LocationID:         r.LocationID,
		UserID:             r.UserID,
		ReportedByName:     r.ReportedByName,
		IsActive:           r.IsActive,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}
}
