package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/basmahq/moderation-api/internal/dto"
	"github.com/basmahq/moderation-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApproveMovesPendingToApproved(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db, newLookups(db))
	report := seedReport(t, db, "UF-2026-01-01-1001", models.StatusPending, time.Now())

	resp, err := svc.Approve(report.ID)
	require.NoError(t, err)
	assert.Equal(t, uint(models.StatusApproved), resp.StatusID)
	assert.Equal(t, "جديد", resp.StatusNameAr)
}

func TestApproveIsNotIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db, newLookups(db))
	report := seedReport(t, db, "UF-2026-01-01-1002", models.StatusPending, time.Now())

	_, err := svc.Approve(report.ID)
	require.NoError(t, err)

	_, err = svc.Approve(report.ID)
	require.ErrorIs(t, err, ErrInvalidTransition)

	var stored models.Report
	require.NoError(t, db.First(&stored, report.ID).Error)
	assert.Equal(t, uint(models.StatusApproved), stored.StatusID)
}

func TestApproveRejectsNonPending(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db, newLookups(db))

	for _, statusID := range []uint{models.StatusApproved, 3, 4} {
		report := seedReport(t, db, fmt.Sprintf("UF-NP-%d", statusID), statusID, time.Now())

		_, err := svc.Approve(report.ID)
		require.ErrorIs(t, err, ErrInvalidTransition)

		var stored models.Report
		require.NoError(t, db.First(&stored, report.ID).Error)
		assert.Equal(t, statusID, stored.StatusID, "approve must never mutate a non-pending report")
	}
}

func TestApproveNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db, newLookups(db))

	_, err := svc.Approve(9999)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestApproveConcurrentSingleWinner(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db, newLookups(db))
	report := seedReport(t, db, "UF-2026-01-01-1003", models.StatusPending, time.Now())

	const callers = 8
	results := make(chan error, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Approve(report.ID)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var wins, rejections int
	for err := range results {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, ErrInvalidTransition):
			rejections++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, wins)
	assert.Equal(t, callers-1, rejections)
}

func TestUpdateIgnoresImmutableFields(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db, newLookups(db))
	reportedAt := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
	report := seedReport(t, db, "UF-2026-01-15-1004", models.StatusPending, reportedAt)

	// The console sends the whole form back, report_code included.
	payload := []byte(`{
		"report_code": "HACKED",
		"reported_at": "1999-01-01T00:00:00Z",
		"name_ar": "اسم محدث",
		"report_type_id": "2",
		"status_id": 3
	}`)
	var req dto.ReportUpdateRequest
	require.NoError(t, json.Unmarshal(payload, &req))

	resp, err := svc.Update(report.ID, &req)
	require.NoError(t, err)
	assert.Equal(t, "UF-2026-01-15-1004", resp.ReportCode)
	assert.True(t, resp.ReportedAt.Equal(reportedAt))
	assert.Equal(t, "اسم محدث", resp.NameAr)
	assert.Equal(t, uint(2), resp.ReportTypeID)
	assert.Equal(t, uint(3), resp.StatusID)
}

func TestUpdateAllowsArbitraryStatus(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db, newLookups(db))
	report := seedReport(t, db, "UF-2026-01-15-1005", models.StatusApproved, time.Now())

	req := dto.ReportUpdateRequest{
		NameAr:       report.NameAr,
		ReportTypeID: dto.FlexID(report.ReportTypeID),
		StatusID:     dto.FlexID(4),
	}
	resp, err := svc.Update(report.ID, &req)
	require.NoError(t, err)
	assert.Equal(t, uint(4), resp.StatusID)
}

func TestUpdateValidatesRequiredFields(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db, newLookups(db))
	report := seedReport(t, db, "UF-2026-01-15-1006", models.StatusPending, time.Now())

	cases := []struct {
		field string
		req   dto.ReportUpdateRequest
	}{
		{"name_ar", dto.ReportUpdateRequest{ReportTypeID: 1, StatusID: 1}},
		{"report_type_id", dto.ReportUpdateRequest{NameAr: "x", StatusID: 1}},
		{"status_id", dto.ReportUpdateRequest{NameAr: "x", ReportTypeID: 1}},
	}
	for _, tc := range cases {
		_, err := svc.Update(report.ID, &tc.req)
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr, tc.field)
		assert.Equal(t, tc.field, vErr.Field)
	}
}

func TestUpdateReportNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db, newLookups(db))

	req := dto.ReportUpdateRequest{NameAr: "x", ReportTypeID: 1, StatusID: 1}
	_, err := svc.Update(424242, &req)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestListNewestFirstWithStableTieBreak(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db, newLookups(db))

	at := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	older := seedReport(t, db, "UF-A", models.StatusPending, at.Add(-time.Hour))
	first := seedReport(t, db, "UF-B", models.StatusPending, at)
	second := seedReport(t, db, "UF-C", models.StatusPending, at)

	out, total, err := svc.List(ReportFilter{Limit: 10})
	require.NoError(t, err)
	require.EqualValues(t, 3, total)
	require.Len(t, out, 3)
	// Same reported_at: higher id first.
	assert.Equal(t, second.ID, out[0].ID)
	assert.Equal(t, first.ID, out[1].ID)
	assert.Equal(t, older.ID, out[2].ID)
}

func TestListStatusFilterIsSubsetOfUnfiltered(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db, newLookups(db))

	seedReport(t, db, "UF-1", models.StatusPending, time.Now())
	seedReport(t, db, "UF-2", models.StatusApproved, time.Now())
	seedReport(t, db, "UF-3", models.StatusPending, time.Now())

	all, _, err := svc.List(ReportFilter{Limit: 100})
	require.NoError(t, err)

	pending, _, err := svc.List(ReportFilter{StatusID: models.StatusPending, Limit: 100})
	require.NoError(t, err)

	ids := make(map[uint]uint, len(all))
	for _, r := range all {
		ids[r.ID] = r.StatusID
	}
	require.Len(t, pending, 2)
	for _, r := range pending {
		statusID, ok := ids[r.ID]
		assert.True(t, ok, "filtered result missing from unfiltered list")
		assert.Equal(t, uint(models.StatusPending), statusID)
	}
}

func TestListSearchMatchesCodeAndName(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db, newLookups(db))

	match := seedReport(t, db, "UF-2026-03-01-7777", models.StatusPending, time.Now())
	seedReport(t, db, "UF-2026-03-01-1111", models.StatusPending, time.Now())

	out, _, err := svc.List(ReportFilter{Query: "7777", Limit: 10})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, match.ID, out[0].ID)

	out, _, err = svc.List(ReportFilter{Query: "نفايات", Limit: 10})
	require.NoError(t, err)
	assert.Len(t, out, 2)
}

func TestGetResolvesDanglingAdoptionToRawID(t *testing.T) {
	db := newTestDB(t)
	lookups := newLookups(db)
	reports := NewReportService(db, lookups)
	accounts := NewAccountService(db, lookups)

	account, err := accounts.Create(&dto.AccountCreateRequest{
		AccountTypeID: 1,
		NameAr:        "مبادرة النظافة",
		NameEn:        "Cleanup Initiative",
		MobileNumber:  "07700000001",
		GovernmentID:  1,
	})
	require.NoError(t, err)

	report := seedReport(t, db, "UF-ADOPT", models.StatusApproved, time.Now())
	require.NoError(t, db.Model(&models.Report{}).
		Where("id = ?", report.ID).
		Update("adopted_by_account_id", account.ID).Error)

	resp, err := reports.Get(report.ID)
	require.NoError(t, err)
	require.NotNil(t, resp.AdoptedByAccount)
	assert.Equal(t, "مبادرة النظافة", *resp.AdoptedByAccount)

	require.NoError(t, accounts.Delete(account.ID))

	resp, err = reports.Get(report.ID)
	require.NoError(t, err)
	require.NotNil(t, resp.AdoptedByAccount)
	assert.Equal(t, "1", *resp.AdoptedByAccount, "deleted account renders as its raw id")
}

func TestDeleteNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db, newLookups(db))

	require.ErrorIs(t, svc.Delete(55555), ErrNotFound)

	report := seedReport(t, db, "UF-DEL", models.StatusPending, time.Now())
	require.NoError(t, svc.Delete(report.ID))
	_, err := svc.Get(report.ID)
	require.ErrorIs(t, err, ErrNotFound)
}
