package models

import "time"

// Session is a server-side login record. The bearer token presented by the
// console is a JWT whose sid claim names this row; revoking the row kills the
// token even before its exp.
type Session struct {
	ID          string    `gorm:"size:36;primaryKey" json:"id"`
	AdminUserID uint      `gorm:"not null;index" json:"admin_user_id"`
	IssuedAt    time.Time `gorm:"not null" json:"issued_at"`
	ExpiresAt   time.Time `gorm:"not null" json:"expires_at"`
	Revoked     bool      `gorm:"not null" json:"revoked"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Session) TableName() string {
	return "sessions"
}
