package services

import (
	"strconv"
	"sync"
	"time"

	"github.com/basmahq/moderation-api/internal/dto"
	"github.com/basmahq/moderation-api/internal/models"
	"gorm.io/gorm"
)

// LookupKind names a reference table for name resolution.
type LookupKind string

const (
	KindAccountType  LookupKind = "account_type"
	KindReportType   LookupKind = "report_type"
	KindReportStatus LookupKind = "report_status"
	KindGovernment   LookupKind = "government"
	KindDistrict     LookupKind = "district"
	KindArea         LookupKind = "area"
	KindLocation     LookupKind = "location"
	KindAccount      LookupKind = "account"
)

// Resolution is the result of a lookup by id. A missing row is not an error:
// it renders as the raw id so reports pointing at deleted rows still display.
type Resolution struct {
	ID    uint
	Name  string
	Found bool
}

func (r Resolution) String() string {
	if r.Found {
		return r.Name
	}
	return strconv.FormatUint(uint64(r.ID), 10)
}

type lookupCacheEntry struct {
	names     map[uint]string
	fetchedAt time.Time
}

// LookupService serves reference data. Name maps are cached process-wide with
// a bounded staleness window; the tables are maintained elsewhere and change
// rarely.
type LookupService struct {
	db  *gorm.DB
	ttl time.Duration

	mu    sync.RWMutex
	cache map[LookupKind]lookupCacheEntry
}

func NewLookupService(db *gorm.DB, ttl time.Duration) *LookupService {
	return &LookupService{
		db:    db,
		ttl:   ttl,
		cache: make(map[LookupKind]lookupCacheEntry),
	}
}

func (s *LookupService) AccountTypes() ([]models.AccountType, error) {
	var rows []models.AccountType
	err := s.db.Order("id").Find(&rows).Error
	return rows, err
}

func (s *LookupService) ReportTypes() ([]models.ReportType, error) {
	var rows []models.ReportType
	err := s.db.Order("id").Find(&rows).Error
	return rows, err
}

func (s *LookupService) ReportStatuses() ([]models.ReportStatus, error) {
	var rows []models.ReportStatus
	err := s.db.Order("id").Find(&rows).Error
	return rows, err
}

func (s *LookupService) Governments() ([]models.Government, error) {
	var rows []models.Government
	err := s.db.Order("id").Find(&rows).Error
	return rows, err
}

func (s *LookupService) Districts() ([]models.District, error) {
	var rows []models.District
	err := s.db.Order("id").Find(&rows).Error
	return rows, err
}

func (s *LookupService) Areas() ([]models.Area, error) {
	var rows []models.Area
	err := s.db.Order("id").Find(&rows).Error
	return rows, err
}

// AccountOptions lists active accounts for adoption dropdowns.
func (s *LookupService) AccountOptions() ([]dto.AccountOption, error) {
	var rows []dto.AccountOption
	err := s.db.Model(&models.Account{}).
		Select("id", "name_ar").
		Where("is_active = ?", true).
		Order("name_ar").
		Scan(&rows).Error
	return rows, err
}

// Resolve looks up the display name for an id, serving from the cache when it
// is fresh enough.
func (s *LookupService) Resolve(kind LookupKind, id uint) Resolution {
	names, err := s.names(kind)
	if err != nil {
		return Resolution{ID: id}
	}
	name, ok := names[id]
	return Resolution{ID: id, Name: name, Found: ok}
}

// NameOf renders Resolve directly to a display string.
func (s *LookupService) NameOf(kind LookupKind, id uint) string {
	return s.Resolve(kind, id).String()
}

// Invalidate drops the cached name map for a kind. Callers that mutate rows a
// kind is built from (account delete, for one) use it to shorten staleness.
func (s *LookupService) Invalidate(kind LookupKind) {
	s.mu.Lock()
	delete(s.cache, kind)
	s.mu.Unlock()
}

func (s *LookupService) names(kind LookupKind) (map[uint]string, error) {
	s.mu.RLock()
	entry, ok := s.cache[kind]
	s.mu.RUnlock()
	if ok && time.Since(entry.fetchedAt) < s.ttl {
		return entry.names, nil
	}

	names, err := s.load(kind)
	if err != nil {
		// Serve the stale map rather than fail display logic.
		if ok {
			return entry.names, nil
		}
		return nil, err
	}

	s.mu.Lock()
	s.cache[kind] = lookupCacheEntry{names: names, fetchedAt: time.Now()}
	s.mu.Unlock()
	return names, nil
}

func (s *LookupService) load(kind LookupKind) (map[uint]string, error) {
	var rows []struct {
		ID     uint
		NameAr string
	}

	query := s.db.Select("id", "name_ar")
	switch kind {
	case KindAccountType:
		query = query.Model(&models.AccountType{})
	case KindReportType:
		query = query.Model(&models.ReportType{})
	case KindReportStatus:
		query = query.Model(&models.ReportStatus{})
	case KindGovernment:
		query = query.Model(&models.Government{})
	case KindDistrict:
		query = query.Model(&models.District{})
	case KindArea:
		query = query.Model(&models.Area{})
	case KindLocation:
		query = query.Model(&models.Location{})
	case KindAccount:
		query = query.Model(&models.Account{})
	default:
		return map[uint]string{}, nil
	}

	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}

	names := make(map[uint]string, len(rows))
	for _, row := range rows {
		names[row.ID] = row.NameAr
	}
	return names, nil
}
