package services

import (
	"testing"
	"time"

	"github.com/basmahq/moderation-api/internal/config"
	"github.com/basmahq/moderation-api/internal/database"
	"github.com/basmahq/moderation-api/internal/models"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory database. A single connection keeps
// sqlite happy under the concurrency tests.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	seedLookups(t, db)
	return db
}

func seedLookups(t *testing.T, db *gorm.DB) {
	t.Helper()

	statuses := []models.ReportStatus{
		{ID: 1, Code: "under_review", NameAr: "قيد المراجعة", NameEn: "Pending"},
		{ID: 2, Code: "open", NameAr: "جديد", NameEn: "Approved"},
		{ID: 3, Code: "in_progress", NameAr: "قيد التنفيذ", NameEn: "In progress"},
		{ID: 4, Code: "completed", NameAr: "مكتمل", NameEn: "Completed"},
	}
	require.NoError(t, db.Create(&statuses).Error)

	types := []models.ReportType{
		{ID: 1, Code: "pothole", NameAr: "حفرة", NameEn: "Pothole"},
		{ID: 2, Code: "lighting", NameAr: "إنارة", NameEn: "Lighting"},
	}
	require.NoError(t, db.Create(&types).Error)

	accountTypes := []models.AccountType{
		{ID: 1, NameAr: "مبادرة", NameEn: "Initiative"},
		{ID: 2, NameAr: "بلدية", NameEn: "Municipality"},
	}
	require.NoError(t, db.Create(&accountTypes).Error)

	governments := []models.Government{
		{ID: 1, NameAr: "بغداد", NameEn: "Baghdad", IsActive: true},
		{ID: 2, NameAr: "البصرة", NameEn: "Basra", IsActive: true},
	}
	require.NoError(t, db.Create(&governments).Error)
}

func newTestConfig() *config.Config {
	return &config.Config{
		JWTSecret:      "test-secret",
		SessionTTL:     time.Hour,
		LookupCacheTTL: time.Minute,
	}
}

func newLookups(db *gorm.DB) *LookupService {
	return NewLookupService(db, time.Minute)
}

func seedAdmin(t *testing.T, db *gorm.DB, username, password string) *models.AdminUser {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.AdminUser{
		Username:     username,
		PasswordHash: string(hash),
		UserType:     models.UserTypeAdmin,
		IsActive:     true,
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func seedReport(t *testing.T, db *gorm.DB, code string, statusID uint, reportedAt time.Time) *models.Report {
	t.Helper()

	gov := uint(1)
	report := models.Report{
		ReportCode:     code,
		ReportTypeID:   1,
		NameAr:         "تجمع نفايات",
		DescriptionAr:  "وصف البلاغ",
		ImageBeforeURL: "https://cdn.example.com/before.jpg",
		StatusID:       statusID,
		ReportedAt:     reportedAt,
		GovernmentID:   &gov,
		IsActive:       true,
	}
	require.NoError(t, db.Create(&report).Error)
	return &report
}
