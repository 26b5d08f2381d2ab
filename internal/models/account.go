package models

import "time"

// Account is an organizational account (initiative, municipality, company)
// that can adopt reports.
type Account struct {
	ID                    uint      `gorm:"primaryKey" json:"id"`
	AccountTypeID         uint      `gorm:"not null;index" json:"account_type_id"`
	NameAr                string    `gorm:"size:200;not null" json:"name_ar"`
	NameEn                string    `gorm:"size:200;not null" json:"name_en"`
	MobileNumber          string    `gorm:"size:20;not null;uniqueIndex" json:"mobile_number"`
	GovernmentID          uint      `gorm:"not null;index" json:"government_id"`
	LogoURL               *string   `gorm:"size:500" json:"logo_url"`
	JoinFormLink          *string   `gorm:"size:500" json:"join_form_link"`
	ReportsCompletedCount uint      `gorm:"not null;default:0" json:"reports_completed_count"`
	IsActive              bool      `gorm:"not null" json:"is_active"`
	ShowDetails           bool      `gorm:"not null" json:"show_details"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

func (Account) TableName() string {
	return "accounts"
}
