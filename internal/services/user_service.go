package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/basmahq/moderation-api/internal/dto"
	"github.com/basmahq/moderation-api/internal/models"
	"gorm.io/gorm"
)

// AdminUserService is CRUD over console users.
type AdminUserService struct {
	db *gorm.DB
}

func NewAdminUserService(db *gorm.DB) *AdminUserService {
	return &AdminUserService{db: db}
}

func (s *AdminUserService) List(q string) ([]models.AdminUser, error) {
	query := s.db.Model(&models.AdminUser{})
	if q = strings.TrimSpace(q); q != "" {
		query = query.Where("username LIKE ?", "%"+q+"%")
	}

	var users []models.AdminUser
	if err := query.Order("id DESC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *AdminUserService) Get(id uint) (*models.AdminUser, error) {
	var user models.AdminUser
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *AdminUserService) Create(req *dto.UserCreateRequest) (*models.AdminUser, error) {
	if strings.TrimSpace(req.Username) == "" {
		return nil, validation("username", "username is required")
	}
	if len(req.Password) < 6 {
		return nil, validation("password", "password must be at least 6 characters")
	}

	var count int64
	s.db.Model(&models.AdminUser{}).Where("username = ?", req.Username).Count(&count)
	if count > 0 {
		return nil, validation("username", "username already in use")
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	userType := models.UserTypeStandard
	if req.UserType != nil {
		userType = int(req.UserType.Uint())
	}

	user := models.AdminUser{
		Username:     req.Username,
		PasswordHash: hash,
		UserType:     userType,
		IsActive:     boolOrDefault(req.IsActive, true),
		AccountID:    dto.UintPtr(req.AccountID),
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &user, nil
}

func (s *AdminUserService) Update(id uint, req *dto.UserUpdateRequest) (*models.AdminUser, error) {
	user, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if req.Username != "" {
		var count int64
		s.db.Model(&models.AdminUser{}).
			Where("username = ? AND id <> ?", req.Username, id).
			Count(&count)
		if count > 0 {
			return nil, validation("username", "username already in use")
		}
		user.Username = req.Username
	}
	if req.Password != "" {
		if len(req.Password) < 6 {
			return nil, validation("password", "password must be at least 6 characters")
		}
		hash, err := HashPassword(req.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}
	if req.UserType != nil {
		user.UserType = int(req.UserType.Uint())
	}
	if req.IsActive != nil {
		user.IsActive = req.IsActive.Bool()
	}
	if req.AccountID != nil {
		user.AccountID = dto.UintPtr(req.AccountID)
	}

	if err := s.db.Save(user).Error; err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

// Delete removes a user together with their sessions so no dangling
// credential can keep authenticating.
func (s *AdminUserService) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.AdminUser{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.Where("admin_user_id = ?", id).Delete(&models.Session{}).Error
	})
}
