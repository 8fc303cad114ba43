package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/BTulkas/Foster-Finder/internal/apperrors"
	"github.com/BTulkas/Foster-Finder/internal/models"
	"github.com/BTulkas/Foster-Finder/internal/phone"
	"github.com/BTulkas/Foster-Finder/internal/repository"

	"go.uber.org/zap"
)

const (
	// The rotation view surfaces one volunteer at a time: the next to call.
	rotationPageSize = 1
	searchPageSize   = 10
)

type VolunteerService struct {
	volunteerRepo *repository.VolunteerRepository
	phoneRepo     *repository.PhoneRepository
	lookupRepo    *repository.LookupRepository
	auditRepo     *repository.AuditRepository
	logger        *zap.SugaredLogger
}

func NewVolunteerService(
	volunteerRepo *repository.VolunteerRepository,
	phoneRepo *repository.PhoneRepository,
	lookupRepo *repository.LookupRepository,
	auditRepo *repository.AuditRepository,
	logger *zap.SugaredLogger,
) *VolunteerService {
	return &VolunteerService{
		volunteerRepo: volunteerRepo,
		phoneRepo:     phoneRepo,
		lookupRepo:    lookupRepo,
		auditRepo:     auditRepo,
		logger:        logger,
	}
}

// AddVolunteerInput carries a new-volunteer submission
type AddVolunteerInput struct {
	FirstName string
	LastName  string
	Areas     []string
	Species   []string
	Phone1    phone.Input
	Phone2    phone.Input
}

// EditVolunteerInput carries an edit-volunteer submission
type EditVolunteerInput struct {
	FirstName   string
	LastName    string
	Notes       string
	Active      bool
	BlackListed bool
	Areas       []string
	Species     []string
	Phone1      phone.Input
	Phone2      phone.Input
}

// RotationPage is one page of the rotation listing plus the effective
// filters, which callers round-trip through next/prev navigation.
type RotationPage struct {
	*repository.Page[models.Volunteer]
	Areas   []string `json:"areas"`
	Species []string `json:"species"`
}

// GetVolunteer retrieves a volunteer with memberships and phones loaded
func (s *VolunteerService) GetVolunteer(id uint) (*models.Volunteer, error) {
	return s.volunteerRepo.FindByID(id)
}

// AddVolunteer creates a volunteer with area/species memberships and up to
// two phone numbers. Phones are optional on creation.
func (s *VolunteerService) AddVolunteer(input AddVolunteerInput, actorID uint) (*models.Volunteer, error) {
	if err := s.validateMemberships(input.Areas, input.Species); err != nil {
		return nil, err
	}

	owner := models.VolunteerOwner(0)
	plan, err := phone.BuildPlan(owner, nil, input.Phone1, input.Phone2, false)
	if err != nil {
		return nil, err
	}
	if err := checkDuplicatePairs(s.phoneRepo, owner, plan); err != nil {
		return nil, err
	}

	volunteer := &models.Volunteer{
		FirstName:     input.FirstName,
		LastName:      input.LastName,
		Active:        true,
		LastContacted: time.Now().UTC(),
	}

	if err := s.volunteerRepo.CreateWithPhones(volunteer, input.Areas, input.Species, plan); err != nil {
		return nil, fmt.Errorf("failed to create volunteer: %w", err)
	}

	_ = s.auditRepo.CreateAuditLog(&actorID, "volunteer_create",
		fmt.Sprintf("Added volunteer %s %s", volunteer.FirstName, volunteer.LastName))

	return s.volunteerRepo.FindByID(volunteer.ID)
}

// EditVolunteer saves a volunteer's fields, replaces its memberships and
// reconciles its phone numbers. An edited volunteer must keep at least one
// number.
func (s *VolunteerService) EditVolunteer(id uint, input EditVolunteerInput, actorID uint) (*models.Volunteer, error) {
	if _, err := s.volunteerRepo.FindByID(id); err != nil {
		return nil, err
	}

	if err := s.validateMemberships(input.Areas, input.Species); err != nil {
		return nil, err
	}

	owner := models.VolunteerOwner(id)
	existing, err := s.phoneRepo.FindByOwner(owner)
	if err != nil {
		return nil, err
	}

	plan, err := phone.BuildPlan(owner, existing, input.Phone1, input.Phone2, true)
	if err != nil {
		return nil, err
	}
	if err := checkDuplicatePairs(s.phoneRepo, owner, plan); err != nil {
		return nil, err
	}

	updated := &models.Volunteer{
		ID:          id,
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		Notes:       input.Notes,
		Active:      input.Active,
		BlackListed: input.BlackListed,
	}
	if err := s.volunteerRepo.UpdateWithPhones(updated, input.Areas, input.Species, plan); err != nil {
		return nil, fmt.Errorf("failed to update volunteer: %w", err)
	}

	_ = s.auditRepo.CreateAuditLog(&actorID, "volunteer_update",
		fmt.Sprintf("Updated volunteer %s %s (ID: %d)", input.FirstName, input.LastName, id))

	return s.volunteerRepo.FindByID(id)
}

// Cycle re-stamps the volunteer's last-contacted time to now, moving it to
// the back of the rotation. Cycling twice simply re-stamps.
func (s *VolunteerService) Cycle(id uint, actorID uint) error {
	if err := s.volunteerRepo.StampLastContacted(id, time.Now().UTC()); err != nil {
		return err
	}

	_ = s.auditRepo.CreateAuditLog(&actorID, "volunteer_cycle", fmt.Sprintf("Cycled volunteer ID %d", id))

	return nil
}

// ListRotation returns one page of the contact rotation for the given
// filters. Species defaults to all known species; areas default to the
// requesting clinic's own area, or all areas when it has none.
func (s *VolunteerService) ListRotation(clinic *models.Clinic, areas, species []string, page int) (*RotationPage, error) {
	if len(species) == 0 {
		all, err := s.lookupRepo.SpeciesNames()
		if err != nil {
			return nil, err
		}
		species = all
	}

	if len(areas) == 0 {
		if clinic.AreaName != nil {
			areas = []string{*clinic.AreaName}
		} else {
			all, err := s.lookupRepo.AreaNames()
			if err != nil {
				return nil, err
			}
			areas = all
		}
	}

	result, err := s.volunteerRepo.FindForRotation(areas, species, page, rotationPageSize)
	if err != nil {
		return nil, err
	}

	return &RotationPage{Page: result, Areas: areas, Species: species}, nil
}

// SearchVolunteers returns one page of volunteers. An exact phone match
// takes precedence; name matching runs only when the phone query finds
// nothing.
func (s *VolunteerService) SearchVolunteers(firstName, lastName, dialCode, number string, page int) (*repository.Page[models.Volunteer], error) {
	if dialCode != "" && number != "" {
		byPhone, err := s.volunteerRepo.SearchByPhone(dialCode, number, page, searchPageSize)
		if err != nil {
			return nil, err
		}
		if byPhone.Total > 0 {
			return byPhone, nil
		}
	}

	return s.volunteerRepo.SearchByName(firstName, lastName, page, searchPageSize)
}

func (s *VolunteerService) validateMemberships(areas, species []string) error {
	if len(areas) == 0 {
		return apperrors.NewValidationError("areas", "select at least one area")
	}
	if len(species) == 0 {
		return apperrors.NewValidationError("species", "select at least one species")
	}

	missing, err := s.lookupRepo.MissingAreas(areas)
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		return apperrors.NewValidationError("areas", "unknown areas: "+strings.Join(missing, ", "))
	}

	missing, err = s.lookupRepo.MissingSpecies(species)
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		return apperrors.NewValidationError("species", "unknown species: "+strings.Join(missing, ", "))
	}

	return nil
}
