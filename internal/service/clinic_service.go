package service

import (
	"errors"
	"fmt"

	"github.com/BTulkas/Foster-Finder/internal/apperrors"
	"github.com/BTulkas/Foster-Finder/internal/models"
	"github.com/BTulkas/Foster-Finder/internal/phone"
	"github.com/BTulkas/Foster-Finder/internal/repository"

	"go.uber.org/zap"
)

type ClinicService struct {
	clinicRepo *repository.ClinicRepository
	phoneRepo  *repository.PhoneRepository
	lookupRepo *repository.LookupRepository
	auditRepo  *repository.AuditRepository
	logger     *zap.SugaredLogger
}

func NewClinicService(
	clinicRepo *repository.ClinicRepository,
	phoneRepo *repository.PhoneRepository,
	lookupRepo *repository.LookupRepository,
	auditRepo *repository.AuditRepository,
	logger *zap.SugaredLogger,
) *ClinicService {
	return &ClinicService{
		clinicRepo: clinicRepo,
		phoneRepo:  phoneRepo,
		lookupRepo: lookupRepo,
		auditRepo:  auditRepo,
		logger:     logger,
	}
}

// UpdateClinicInput carries an edit-profile submission. Email and password
// are changed through dedicated flows, not here.
type UpdateClinicInput struct {
	Name            string
	Area            string
	MainNumber      phone.Input
	EmergencyNumber phone.Input
}

// GetProfile retrieves a clinic with its phone numbers
func (s *ClinicService) GetProfile(clinicID uint) (*models.Clinic, error) {
	return s.clinicRepo.FindByID(clinicID)
}

// UpdateProfile saves a clinic's name, area and reconciled phone numbers.
// A clinic must always keep at least one number, stored as primary.
func (s *ClinicService) UpdateProfile(clinicID uint, input UpdateClinicInput) (*models.Clinic, error) {
	clinic, err := s.clinicRepo.FindByID(clinicID)
	if err != nil {
		return nil, err
	}

	if input.Name != clinic.Name {
		other, err := s.clinicRepo.FindByName(input.Name)
		if err == nil && other.ID != clinicID {
			return nil, apperrors.NewConflictError("name", "this clinic name has already been registered")
		} else if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
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

	owner := models.ClinicOwner(clinicID)
	existing, err := s.phoneRepo.FindByOwner(owner)
	if err != nil {
		return nil, err
	}

	plan, err := phone.BuildPlan(owner, existing, input.MainNumber, input.EmergencyNumber, true)
	if err != nil {
		return nil, err
	}
	if err := checkDuplicatePairs(s.phoneRepo, owner, plan); err != nil {
		return nil, err
	}

	updated := &models.Clinic{
		ID:       clinicID,
		Name:     input.Name,
		AreaName: areaName,
	}
	if err := s.clinicRepo.UpdateProfileWithPhones(updated, plan); err != nil {
		return nil, fmt.Errorf("failed to update clinic: %w", err)
	}

	_ = s.auditRepo.CreateAuditLog(&clinicID, "clinic_update", fmt.Sprintf("Clinic %s updated profile", input.Name))

	return s.clinicRepo.FindByID(clinicID)
}

// SearchClinics returns one page of clinics. An exact phone match takes
// precedence; name/email matching runs only when the phone query finds
// nothing. Blank terms match every clinic.
func (s *ClinicService) SearchClinics(name, email, dialCode, number string, page int) (*repository.Page[models.Clinic], error) {
	if dialCode != "" && number != "" {
		byPhone, err := s.clinicRepo.SearchByPhone(dialCode, number, page, searchPageSize)
		if err != nil {
			return nil, err
		}
		if byPhone.Total > 0 {
			return byPhone, nil
		}
	}

	return s.clinicRepo.SearchByNameOrEmail(name, email, page, searchPageSize)
}
