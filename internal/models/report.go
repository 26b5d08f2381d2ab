package models

import "time"

// Report statuses with semantics owned by the lifecycle. Every other status id
// is an organization-specific state reachable only through direct update.
const (
	StatusPending  = 1
	StatusApproved = 2
)

// Report is a citizen-submitted issue. ReportCode and ReportedAt are assigned
// at submission and never change afterwards.
type Report struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	ReportCode         string    `gorm:"size:100;not null;uniqueIndex" json:"report_code"`
	ReportTypeID       uint      `gorm:"not null;index" json:"report_type_id"`
	NameAr             string    `gorm:"size:200;not null" json:"name_ar"`
	DescriptionAr      string    `gorm:"type:text" json:"description_ar"`
	Note               *string   `gorm:"type:text" json:"note"`
	ImageBeforeURL     string    `gorm:"size:500" json:"image_before_url"`
	ImageAfterURL      *string   `gorm:"size:500" json:"image_after_url"`
	StatusID           uint      `gorm:"not null;index" json:"status_id"`
	ReportedAt         time.Time `gorm:"not null;index" json:"reported_at"`
	AdoptedByAccountID *uint     `gorm:"index" json:"adopted_by_account_id"`
	GovernmentID       *uint     `gorm:"index" json:"government_id"`
	DistrictID         *uint     `gorm:"index" json:"district_id"`
	AreaID             *uint     `gorm:"index" json:"area_id"`
	LocationID         *uint     `gorm:"index" json:"location_id"`
	UserID             *uint     `json:"user_id"`
	ReportedByName     *string   `gorm:"size:200" json:"reported_by_name"`
	IsActive           bool      `gorm:"not null" json:"is_active"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func (Report) TableName() string {
	return "reports"
}
