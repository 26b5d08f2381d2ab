package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/basmahq/moderation-api/internal/dto"
	"github.com/basmahq/moderation-api/internal/models"
	"gorm.io/gorm"
)

// AccountService is CRUD over organizational accounts.
type AccountService struct {
	db      *gorm.DB
	lookups *LookupService
}

func NewAccountService(db *gorm.DB, lookups *LookupService) *AccountService {
	return &AccountService{db: db, lookups: lookups}
}

// AccountFilter narrows List. Zero values mean "no filter".
type AccountFilter struct {
	AccountTypeID uint
	Query         string
}

// List returns accounts in insertion order, optionally narrowed by type and a
// case-insensitive name search.
func (s *AccountService) List(filter AccountFilter) ([]models.Account, error) {
	query := s.db.Model(&models.Account{})
	if filter.AccountTypeID != 0 {
		query = query.Where("account_type_id = ?", filter.AccountTypeID)
	}
	if q := strings.TrimSpace(filter.Query); q != "" {
		pattern := "%" + strings.ToLower(q) + "%"
		query = query.Where("LOWER(name_ar) LIKE ? OR LOWER(name_en) LIKE ?", pattern, pattern)
	}

	var accounts []models.Account
	if err := query.Order("id").Find(&accounts).Error; err != nil {
		return nil, err
	}
	return accounts, nil
}

func (s *AccountService) Get(id uint) (*models.Account, error) {
	var account models.Account
	if err := s.db.First(&account, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &account, nil
}

// Create persists an account and, when username and password are both given,
// a linked standard console user in the same transaction. A failure anywhere
// rolls the whole thing back; no orphaned accounts.
func (s *AccountService) Create(req *dto.AccountCreateRequest) (*models.Account, error) {
	if err := validateAccountFields(req.NameAr, req.NameEn, req.MobileNumber, req.AccountTypeID.Uint(), req.GovernmentID.Uint()); err != nil {
		return nil, err
	}

	account := models.Account{
		AccountTypeID: req.AccountTypeID.Uint(),
		NameAr:        req.NameAr,
		NameEn:        req.NameEn,
		MobileNumber:  req.MobileNumber,
		GovernmentID:  req.GovernmentID.Uint(),
		LogoURL:       req.LogoURL,
		JoinFormLink:  req.JoinFormLink,
		IsActive:      boolOrDefault(req.IsActive, true),
		ShowDetails:   boolOrDefault(req.ShowDetails, true),
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		tx.Model(&models.Account{}).Where("mobile_number = ?", req.MobileNumber).Count(&count)
		if count > 0 {
			return validation("mobile_number", "mobile number already in use")
		}

		if err := tx.Create(&account).Error; err != nil {
			return fmt.Errorf("failed to create account: %w", err)
		}

		if req.Username != "" && req.Password != "" {
			tx.Model(&models.AdminUser{}).Where("username = ?", req.Username).Count(&count)
			if count > 0 {
				return validation("username", "username already in use")
			}

			hash, err := HashPassword(req.Password)
			if err != nil {
				return err
			}
			user := models.AdminUser{
				Username:     req.Username,
				PasswordHash: hash,
				UserType:     models.UserTypeStandard,
				IsActive:     true,
				AccountID:    &account.ID,
			}
			if err := tx.Create(&user).Error; err != nil {
				return fmt.Errorf("failed to create account user: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.lookups.Invalidate(KindAccount)
	return &account, nil
}

// Update edits account fields. Linked user credentials are never touched here.
func (s *AccountService) Update(id uint, req *dto.AccountUpdateRequest) (*models.Account, error) {
	account, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if err := validateAccountFields(req.NameAr, req.NameEn, req.MobileNumber, req.AccountTypeID.Uint(), req.GovernmentID.Uint()); err != nil {
		return nil, err
	}

	var count int64
	s.db.Model(&models.Account{}).
		Where("mobile_number = ? AND id <> ?", req.MobileNumber, id).
		Count(&count)
	if count > 0 {
		return nil, validation("mobile_number", "mobile number already in use")
	}

	account.AccountTypeID = req.AccountTypeID.Uint()
	account.NameAr = req.NameAr
	account.NameEn = req.NameEn
	account.MobileNumber = req.MobileNumber
	account.GovernmentID = req.GovernmentID.Uint()
	account.LogoURL = req.LogoURL
	account.JoinFormLink = req.JoinFormLink
	account.IsActive = boolOrDefault(req.IsActive, account.IsActive)
	account.ShowDetails = boolOrDefault(req.ShowDetails, account.ShowDetails)

	if err := s.db.Save(account).Error; err != nil {
		return nil, fmt.Errorf("failed to update account: %w", err)
	}

	s.lookups.Invalidate(KindAccount)
	return account, nil
}

// Delete removes an account. Reports adopted by it keep their reference; the
// lookup soft miss renders those as the raw id afterwards.
func (s *AccountService) Delete(id uint) error {
	result := s.db.Delete(&models.Account{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	s.lookups.Invalidate(KindAccount)
	return nil
}

func validateAccountFields(nameAr, nameEn, mobile string, accountTypeID, governmentID uint) error {
	if strings.TrimSpace(nameAr) == "" {
		return validation("name_ar", "name_ar is required")
	}
	if strings.TrimSpace(nameEn) == "" {
		return validation("name_en", "name_en is required")
	}
	if strings.TrimSpace(mobile) == "" {
		return validation("mobile_number", "mobile_number is required")
	}
	if accountTypeID == 0 {
		return validation("account_type_id", "account_type_id is required")
	}
	if governmentID == 0 {
		return validation("government_id", "government_id is required")
	}
	return nil
}

func boolOrDefault(v *dto.FlexBool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return v.Bool()
}
