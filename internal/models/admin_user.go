package models

import "time"

// Admin user types.
const (
	UserTypeAdmin    = 1
	UserTypeStandard = 2
)

// AdminUser is a console login. Admins (user_type=1, no account) manage the
// whole platform; standard users (user_type=2) belong to an organizational
// account.
type AdminUser struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"size:150;not null;uniqueIndex" json:"username"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	UserType     int       `gorm:"not null;default:2" json:"user_type"`
	IsActive     bool      `gorm:"not null" json:"is_active"`
	AccountID    *uint     `gorm:"index" json:"account_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (AdminUser) TableName() string {
	return "users"
}
