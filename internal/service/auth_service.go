package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/BTulkas/Foster-Finder/internal/apperrors"
	"github.com/BTulkas/Foster-Finder/internal/models"
	"github.com/BTulkas/Foster-Finder/internal/phone"
	"github.com/BTulkas/Foster-Finder/internal/repository"
	"github.com/BTulkas/Foster-Finder/pkg/utils"

	"go.uber.org/zap"
)

type AuthService struct {
	clinicRepo *repository.ClinicRepository
	phoneRepo  *repository.PhoneRepository
	lookupRepo *repository.LookupRepository
	auditRepo  *repository.AuditRepository
	mailer     Mailer
	logger     *zap.SugaredLogger
}

func NewAuthService(
	clinicRepo *repository.ClinicRepository,
	phoneRepo *repository.PhoneRepository,
	lookupRepo *repository.LookupRepository,
	auditRepo *repository.AuditRepository,
	mailer Mailer,
	logger *zap.SugaredLogger,
) *AuthService {
	return &AuthService{
		clinicRepo: clinicRepo,
		phoneRepo:  phoneRepo,
		lookupRepo: lookupRepo,
		auditRepo:  auditRepo,
		mailer:     mailer,
		logger:     logger,
	}
}

// RegisterInput carries a clinic registration submission
type RegisterInput struct {
	Email           string
	Name            string
	Password        string
	Area            string
	MainNumber      phone.Input
	EmergencyNumber phone.Input
}

// LoginResponse represents the response structure for login
type LoginResponse struct {
	AccessToken  string         `json:"access_token"`
	RefreshToken string         `json:"refresh_token"`
	Clinic       ClinicResponse `json:"clinic"`
}

type ClinicResponse struct {
	ID    uint    `json:"id"`
	Email string  `json:"email"`
	Name  string  `json:"name"`
	Area  *string `json:"area,omitempty"`
	Admin bool    `json:"admin"`
}

// Register creates a new clinic account with its phone numbers.
// The main number is required and stored as the primary contact.
func (s *AuthService) Register(input RegisterInput) (*LoginResponse, error) {
	if _, err := s.clinicRepo.FindByEmail(input.Email); err == nil {
		return nil, apperrors.NewConflictError("email", "this email has already been registered")
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	if _, err := s.clinicRepo.FindByName(input.Name); err == nil {
		return nil, apperrors.NewConflictError("name", "this clinic name has already been registered")
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	var areaName *string
	if input.Area != "" {
		missing, err := s.lookupRepo.MissingAreas([]string{input.Area})
		if err != nil {
			return nil, err
		}
		if len(missing) > 0 {
			return nil, apperrors.NewValidationError("area", "unknown area")
		}
		areaName = &input.Area
	}

	// Clinic slots have fixed roles regardless of submitted flags
	input.MainNumber.Primary = true
	input.EmergencyNumber.Primary = false

	owner := models.ClinicOwner(0)
	plan, err := phone.BuildPlan(owner, nil, input.MainNumber, input.EmergencyNumber, true)
	if err != nil {
		return nil, err
	}
	if err := checkDuplicatePairs(s.phoneRepo, owner, plan); err != nil {
		return nil, err
	}

	passwordHash, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	clinic := &models.Clinic{
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: passwordHash,
		AreaName:     areaName,
	}

	if err := s.clinicRepo.CreateWithPhones(clinic, plan); err != nil {
		return nil, fmt.Errorf("failed to create clinic: %w", err)
	}

	clinicIDPtr := &clinic.ID
	_ = s.auditRepo.CreateAuditLog(clinicIDPtr, "clinic_registration", fmt.Sprintf("Clinic %s registered", clinic.Name))

	return s.issueTokens(clinic)
}

// Login authenticates a clinic and returns tokens
func (s *AuthService) Login(email, password string) (*LoginResponse, error) {
	clinic, err := s.clinicRepo.FindByEmail(email)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !utils.ComparePassword(clinic.PasswordHash, password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	clinicIDPtr := &clinic.ID
	_ = s.auditRepo.CreateAuditLog(clinicIDPtr, "clinic_login", fmt.Sprintf("Clinic %s logged in", clinic.Name))

	return s.issueTokens(clinic)
}

// RefreshAccessToken generates a new access token from a refresh token
func (s *AuthService) RefreshAccessToken(refreshToken string) (string, error) {
	tokenHash := utils.HashRefreshToken(refreshToken)

	token, err := s.clinicRepo.FindRefreshTokenByHash(tokenHash)
	if err != nil {
		return "", errors.New("invalid or revoked refresh token")
	}

	if time.Now().After(token.ExpiresAt) {
		return "", errors.New("refresh token expired")
	}

	accessToken, err := utils.GenerateAccessToken(token.Clinic.ID, token.Clinic.Admin)
	if err != nil {
		return "", fmt.Errorf("failed to generate access token: %w", err)
	}

	return accessToken, nil
}

// Logout revokes a refresh token
func (s *AuthService) Logout(refreshToken string) error {
	tokenHash := utils.HashRefreshToken(refreshToken)

	if err := s.clinicRepo.RevokeRefreshTokenByHash(tokenHash); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	return nil
}

// RequestPasswordReset issues a reset token and hands it to the mailer.
// An unknown email is not reported to the caller.
func (s *AuthService) RequestPasswordReset(email string) error {
	clinic, err := s.clinicRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.logger.Infow("password reset requested for unknown email", "email", email)
			return nil
		}
		return err
	}

	token, err := utils.GeneratePasswordResetToken(clinic.ID)
	if err != nil {
		return fmt.Errorf("failed to generate reset token: %w", err)
	}

	return s.mailer.SendPasswordReset(clinic.Email, token)
}

// ResetPassword sets a new password from a valid reset token
func (s *AuthService) ResetPassword(token, password string) error {
	claims, err := utils.ValidatePasswordResetToken(token)
	if err != nil {
		return apperrors.NewValidationError("token", "invalid or expired reset token")
	}

	passwordHash, err := utils.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.clinicRepo.UpdatePassword(claims.ClinicID, passwordHash); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	clinicID := claims.ClinicID
	_ = s.auditRepo.CreateAuditLog(&clinicID, "password_reset", "Password reset via email token")

	return nil
}

func (s *AuthService) issueTokens(clinic *models.Clinic) (*LoginResponse, error) {
	accessToken, err := utils.GenerateAccessToken(clinic.ID, clinic.Admin)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := utils.GenerateRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	tokenHash := utils.HashRefreshToken(refreshToken)
	refreshTokenModel := &models.RefreshToken{
		ClinicID:  clinic.ID,
		TokenHash: tokenHash,
		ExpiresAt: time.Now().Add(utils.GetRefreshTokenExpiry()),
	}

	if err := s.clinicRepo.CreateRefreshToken(refreshTokenModel); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Clinic: ClinicResponse{
			ID:    clinic.ID,
			Email: clinic.Email,
			Name:  clinic.Name,
			Area:  clinic.AreaName,
			Admin: clinic.Admin,
		},
	}, nil
}
