package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/basmahq/moderation-api/internal/dto"
	"github.com/basmahq/moderation-api/internal/models"
	"gorm.io/gorm"
)

// ReportService stores reports and runs the moderation lifecycle. The only
// guarded transition is Approve (pending -> approved); direct updates may set
// any status, since post-approval triage is owned by the organizations.
type ReportService struct {
	db      *gorm.DB
	lookups *LookupService
}

func NewReportService(db *gorm.DB, lookups *LookupService) *ReportService {
	return &ReportService{db: db, lookups: lookups}
}

// ReportFilter narrows List. Zero values mean "no filter".
type ReportFilter struct {
	StatusID uint
	Query    string
	Limit    int
	Offset   int
}

// List returns reports newest first (reported_at desc, id desc as the tie
// break, so paging is stable) with lookup names resolved for display.
func (s *ReportService) List(filter ReportFilter) ([]dto.ReportResponse, int64, error) {
	query := s.db.Model(&models.Report{})
	if filter.StatusID != 0 {
		query = query.Where("status_id = ?", filter.StatusID)
	}
	if q := strings.TrimSpace(filter.Query); q != "" {
		pattern := "%" + q + "%"
		query = query.Where("report_code LIKE ? OR name_ar LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reports []models.Report
	err := query.Order("reported_at DESC, id DESC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&reports).Error
	if err != nil {
		return nil, 0, err
	}

	out := make([]dto.ReportResponse, len(reports))
	for i := range reports {
		out[i] = s.decorate(&reports[i])
	}
	return out, total, nil
}

func (s *ReportService) Get(id uint) (*dto.ReportResponse, error) {
	report, err := s.find(id)
	if err != nil {
		return nil, err
	}
	resp := s.decorate(report)
	return &resp, nil
}

// Update edits the admin-editable fields. report_code and reported_at are not
// part of the editable set and keep their stored values no matter what the
// request carried. status_id may move to any lookup value here.
func (s *ReportService) Update(id uint, req *dto.ReportUpdateRequest) (*dto.ReportResponse, error) {
	report, err := s.find(id)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(req.NameAr) == "" {
		return nil, validation("name_ar", "name_ar is required")
	}
	if req.ReportTypeID.Uint() == 0 {
		return nil, validation("report_type_id", "report_type_id is required")
	}
	if req.StatusID.Uint() == 0 {
		return nil, validation("status_id", "status_id is required")
	}

	updates := map[string]interface{}{
		"report_type_id": req.ReportTypeID.Uint(),
		"name_ar":        req.NameAr,
		"status_id":      req.StatusID.Uint(),
	}
	if req.DescriptionAr != nil {
		updates["description_ar"] = *req.DescriptionAr
	}
	if req.Note != nil {
		updates["note"] = req.Note
	}
	if req.ImageBeforeURL != nil {
		updates["image_before_url"] = *req.ImageBeforeURL
	}
	if req.ImageAfterURL != nil {
		updates["image_after_url"] = req.ImageAfterURL
	}
	if req.AdoptedByAccountID != nil {
		updates["adopted_by_account_id"] = dto.UintPtr(req.AdoptedByAccountID)
	}
	if req.GovernmentID != nil {
		updates["government_id"] = dto.UintPtr(req.GovernmentID)
	}
	if req.DistrictID != nil {
		updates["district_id"] = dto.UintPtr(req.DistrictID)
	}
	if req.AreaID != nil {
		updates["area_id"] = dto.UintPtr(req.AreaID)
	}
	if req.LocationID != nil {
		updates["location_id"] = dto.UintPtr(req.LocationID)
	}
	if req.IsActive != nil {
		updates["is_active"] = req.IsActive.Bool()
	}

	if err := s.db.Model(report).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update report: %w", err)
	}

	return s.Get(id)
}

func (s *ReportService) Delete(id uint) error {
	result := s.db.Delete(&models.Report{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Approve moves a pending report to approved. The status check and the write
// are a single compare-and-set, so of two concurrent callers exactly one wins
// and the other gets ErrInvalidTransition. Approval is deliberately not
// idempotent: a second approve is a duplicate action the console should hear
// about, not a no-op.
func (s *ReportService) Approve(id uint) (*dto.ReportResponse, error) {
	if _, err := s.find(id); err != nil {
		return nil, err
	}

	result := s.db.Model(&models.Report{}).
		Where("id = ? AND status_id = ?", id, models.StatusPending).
		Update("status_id", models.StatusApproved)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrInvalidTransition
	}

	return s.Get(id)
}

func (s *ReportService) find(id uint) (*models.Report, error) {
	var report models.Report
	if err := s.db.First(&report, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &report, nil
}

// decorate attaches display names. The stored row holds only ids; names come
// from the lookup cache and fall back to the raw id on a miss.
func (s *ReportService) decorate(r *models.Report) dto.ReportResponse {
	resp := dto.NewReportResponse(r)
	resp.ReportTypeNameAr = s.lookups.NameOf(KindReportType, r.ReportTypeID)
	resp.StatusNameAr = s.lookups.NameOf(KindReportStatus, r.StatusID)
	resp.GovernmentNameAr = s.resolveOptional(KindGovernment, r.GovernmentID)
	resp.DistrictNameAr = s.resolveOptional(KindDistrict, r.DistrictID)
	resp.AreaNameAr = s.resolveOptional(KindArea, r.AreaID)
	resp.LocationNameAr = s.resolveOptional(KindLocation, r.LocationID)
	resp.AdoptedByAccount = s.resolveOptional(KindAccount, r.AdoptedByAccountID)
	return resp
}

func (s *ReportService) resolveOptional(kind LookupKind, id *uint) *string {
	if id == nil {
		return nil
	}
	name := s.lookups.NameOf(kind, *id)
	return &name
}
