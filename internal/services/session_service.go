package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/basmahq/moderation-api/internal/config"
	"github.com/basmahq/moderation-api/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Burned on login attempts against unknown usernames so the response time
// matches a real bcrypt comparison.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// SessionService authenticates console admins and owns the sessions table.
type SessionService struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewSessionService(db *gorm.DB, cfg *config.Config) *SessionService {
	return &SessionService{db: db, cfg: cfg}
}

// Login validates credentials and issues a new session with a fixed TTL.
// Unknown username, wrong password and inactive user all surface as the same
// ErrInvalidCredentials so the response does not reveal which one happened.
func (s *SessionService) Login(username, password string) (string, *models.AdminUser, error) {
	var user models.AdminUser
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return "", nil, ErrInvalidCredentials
	}

	// Console access is for platform admins only; account-linked users sign
	// in through the organization app instead.
	if user.UserType != models.UserTypeAdmin || user.AccountID != nil {
		return "", nil, ErrNotAdmin
	}

	now := time.Now()
	session := models.Session{
		ID:          uuid.NewString(),
		AdminUserID: user.ID,
		IssuedAt:    now,
		ExpiresAt:   now.Add(s.cfg.SessionTTL),
	}
	if err := s.db.Create(&session).Error; err != nil {
		return "", nil, fmt.Errorf("failed to create session: %w", err)
	}

	token, err := s.signToken(&session, &user)
	if err != nil {
		return "", nil, err
	}
	return token, &user, nil
}

// Authenticate resolves a session id from a validated token to its admin
// user. Revoked, expired and unknown sessions are indistinguishable.
func (s *SessionService) Authenticate(sessionID string) (*models.AdminUser, error) {
	var session models.Session
	if err := s.db.Where("id = ?", sessionID).First(&session).Error; err != nil {
		return nil, ErrSessionExpired
	}
	if session.Revoked || time.Now().After(session.ExpiresAt) {
		return nil, ErrSessionExpired
	}

	var user models.AdminUser
	if err := s.db.First(&user, session.AdminUserID).Error; err != nil {
		return nil, ErrSessionExpired
	}
	if !user.IsActive {
		return nil, ErrSessionExpired
	}
	return &user, nil
}

// Logout revokes the session; the token stops working even before its exp.
func (s *SessionService) Logout(sessionID string) error {
	return s.db.Model(&models.Session{}).
		Where("id = ?", sessionID).
		Update("revoked", true).Error
}

// PurgeExpired removes sessions past their deadline. Called from the
// retention cleanup loop.
func (s *SessionService) PurgeExpired() (int64, error) {
	result := s.db.Where("expires_at < ?", time.Now()).Delete(&models.Session{})
	return result.RowsAffected, result.Error
}

func (s *SessionService) signToken(session *models.Session, user *models.AdminUser) (string, error) {
	claims := jwt.MapClaims{
		"sub": fmt.Sprintf("%d", user.ID),
		"sid": session.ID,
		"iat": session.IssuedAt.Unix(),
		"exp": session.ExpiresAt.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

// SessionIDFromClaims pulls the sid claim out of a parsed token.
func SessionIDFromClaims(claims jwt.MapClaims) (string, error) {
	sid, ok := claims["sid"].(string)
	if !ok || sid == "" {
		return "", errors.New("missing sid claim")
	}
	return sid, nil
}

// HashPassword wraps bcrypt for the account and user services.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}
