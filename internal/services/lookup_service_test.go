package services

import (
	"testing"
	"time"

	"github.com/basmahq/moderation-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveFoundAndSoftMiss(t *testing.T) {
	db := newTestDB(t)
	svc := newLookups(db)

	found := svc.Resolve(KindGovernment, 1)
	assert.True(t, found.Found)
	assert.Equal(t, "بغداد", found.String())

	missing := svc.Resolve(KindGovernment, 999)
	assert.False(t, missing.Found)
	assert.Equal(t, "999", missing.String(), "a stale id renders as the raw id, not an error")

	assert.Equal(t, "999", svc.NameOf(KindGovernment, 999))
}

func TestNameOfUnknownKind(t *testing.T) {
	db := newTestDB(t)
	svc := newLookups(db)

	assert.Equal(t, "7", svc.NameOf(LookupKind("bogus"), 7))
}

func TestCacheServesStaleUntilInvalidated(t *testing.T) {
	db := newTestDB(t)
	svc := NewLookupService(db, time.Hour)

	// Prime the cache, then change the table behind its back.
	assert.Equal(t, "بغداد", svc.NameOf(KindGovernment, 1))
	require.NoError(t, db.Model(&models.Government{}).Where("id = ?", 1).Update("name_ar", "تم التعديل").Error)

	assert.Equal(t, "بغداد", svc.NameOf(KindGovernment, 1), "bounded staleness: cached name is still served")

	svc.Invalidate(KindGovernment)
	assert.Equal(t, "تم التعديل", svc.NameOf(KindGovernment, 1))
}

func TestCacheExpiresAfterTTL(t *testing.T) {
	db := newTestDB(t)
	svc := NewLookupService(db, time.Millisecond)

	assert.Equal(t, "بغداد", svc.NameOf(KindGovernment, 1))
	require.NoError(t, db.Model(&models.Government{}).Where("id = ?", 1).Update("name_ar", "تم التعديل").Error)

	time.Sleep(5 * time.Millisecond)
	assert.Equal(t, "تم التعديل", svc.NameOf(KindGovernment, 1))
}

func TestListsAreOrderedByID(t *testing.T) {
	db := newTestDB(t)
	svc := newLookups(db)

	statuses, err := svc.ReportStatuses()
	require.NoError(t, err)
	require.Len(t, statuses, 4)
	assert.Equal(t, uint(1), statuses[0].ID)
	assert.Equal(t, "under_review", statuses[0].Code)

	governments, err := svc.Governments()
	require.NoError(t, err)
	require.Len(t, governments, 2)
	assert.Equal(t, uint(1), governments[0].ID)
}

func TestAccountOptionsActiveOnlyOrderedByName(t *testing.T) {
	db := newTestDB(t)
	svc := newLookups(db)

	inactive := false
	accounts := []models.Account{
		{AccountTypeID: 1, NameAr: "ج جمعية", NameEn: "C", MobileNumber: "1", GovernmentID: 1, IsActive: true},
		{AccountTypeID: 1, NameAr: "أ مبادرة", NameEn: "A", MobileNumber: "2", GovernmentID: 1, IsActive: true},
		{AccountTypeID: 1, NameAr: "ب بلدية", NameEn: "B", MobileNumber: "3", GovernmentID: 1, IsActive: inactive},
	}
	require.NoError(t, db.Create(&accounts).Error)

	options, err := svc.AccountOptions()
	require.NoError(t, err)
	require.Len(t, options, 2)
	assert.Equal(t, "أ مبادرة", options[0].NameAr)
	assert.Equal(t, "ج جمعية", options[1].NameAr)
}
