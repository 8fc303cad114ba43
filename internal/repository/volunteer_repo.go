package repository

import (
	"errors"
	"strings"
	"time"

	"github.com/BTulkas/Foster-Finder/internal/apperrors"
	"github.com/BTulkas/Foster-Finder/internal/models"
	"github.com/BTulkas/Foster-Finder/internal/phone"

	"gorm.io/gorm"
)

type VolunteerRepository struct {
	db *gorm.DB
}

func NewVolunteerRepo(db *gorm.DB) *VolunteerRepository {
	return &VolunteerRepository{db: db}
}

// FindByID retrieves a volunteer with areas, species and phone numbers loaded
func (r *VolunteerRepository) FindByID(id uint) (*models.Volunteer, error) {
	var volunteer models.Volunteer
	err := r.db.
		Preload("Areas").
		Preload("Species").
		Preload("PhoneNumbers").
		First(&volunteer, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &volunteer, nil
}

// FindForRotation returns one page of active, non-blacklisted volunteers
// matching at least one of the given areas and one of the given species,
// least-recently-contacted first. Membership is checked through the join
// tables so a volunteer matching several filters still appears once.
func (r *VolunteerRepository) FindForRotation(areas, species []string, page, perPage int) (*Page[models.Volunteer], error) {
	areaMembers := r.db.Table("areas_volunteers").
		Select("volunteer_id").
		Where("area_name IN ?", areas)
	speciesMembers := r.db.Table("volunteers_species").
		Select("volunteer_id").
		Where("species_name IN ?", species)

	query := r.db.Model(&models.Volunteer{}).
		Where("id IN (?)", areaMembers).
		Where("id IN (?)", speciesMembers).
		Where("active = ?", true).
		Where("black_listed = ?", false).
		Order("last_contacted ASC").
		Preload("Areas").
		Preload("Species").
		Preload("PhoneNumbers")

	return paginate[models.Volunteer](query, page, perPage)
}

// SearchByPhone returns volunteers holding the exact (dial code, number) pair
func (r *VolunteerRepository) SearchByPhone(dialCode, number string, page, perPage int) (*Page[models.Volunteer], error) {
	holders := r.db.Model(&models.PhoneNumber{}).
		Select("volunteer_id").
		Where("dial_code = ? AND number = ?", dialCode, number).
		Where("volunteer_id IS NOT NULL")

	query := r.db.Model(&models.Volunteer{}).
		Where("id IN (?)", holders).
		Order("last_name ASC, first_name ASC").
		Preload("PhoneNumbers")

	return paginate[models.Volunteer](query, page, perPage)
}

// SearchByName returns volunteers matching the given names
// case-insensitively. With one name given either field may match; with both
// given, both must.
func (r *VolunteerRepository) SearchByName(firstName, lastName string, page, perPage int) (*Page[models.Volunteer], error) {
	query := r.db.Model(&models.Volunteer{}).
		Order("last_name ASC, first_name ASC").
		Preload("PhoneNumbers")

	switch {
	case firstName != "" && lastName != "":
		query = query.
			Where("LOWER(first_name) LIKE ?", contains(firstName)).
			Where("LOWER(last_name) LIKE ?", contains(lastName))
	case firstName != "":
		query = query.Where("LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ?",
			contains(firstName), contains(firstName))
	case lastName != "":
		query = query.Where("LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ?",
			contains(lastName), contains(lastName))
	default:
		return EmptyPage[models.Volunteer](page, perPage), nil
	}

	return paginate[models.Volunteer](query, page, perPage)
}

// CreateWithPhones inserts the volunteer, its area and species memberships
// and its planned phone rows in one transaction. The plan's owner is pointed
// at the new volunteer once its id is assigned.
func (r *VolunteerRepository) CreateWithPhones(volunteer *models.Volunteer, areas, species []string, plan *phone.Plan) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		volunteer.Areas = areaRefs(areas)
		volunteer.Species = speciesRefs(species)
		if err := tx.Create(volunteer).Error; err != nil {
			return err
		}

		plan.SetOwner(models.VolunteerOwner(volunteer.ID))
		return applyPhonePlan(tx, plan)
	})
}

// UpdateWithPhones saves the volunteer's fields, replaces its area and
// species memberships and applies the phone plan in one transaction.
func (r *VolunteerRepository) UpdateWithPhones(volunteer *models.Volunteer, areas, species []string, plan *phone.Plan) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&models.Volunteer{ID: volunteer.ID}).
			Select("first_name", "last_name", "notes", "active", "black_listed").
			Updates(volunteer).Error
		if err != nil {
			return err
		}

		if err := tx.Model(volunteer).Association("Areas").Replace(areaRefs(areas)); err != nil {
			return err
		}
		if err := tx.Model(volunteer).Association("Species").Replace(speciesRefs(species)); err != nil {
			return err
		}

		return applyPhonePlan(tx, plan)
	})
}

// StampLastContacted sets the volunteer's last-contacted time, moving it to
// the back of the rotation
func (r *VolunteerRepository) StampLastContacted(id uint, at time.Time) error {
	result := r.db.Model(&models.Volunteer{}).
		Where("id = ?", id).
		Update("last_contacted", at)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func areaRefs(names []string) []models.Area {
	refs := make([]models.Area, 0, len(names))
	for _, name := range names {
		refs = append(refs, models.Area{Area: name})
	}
	return refs
}

func speciesRefs(names []string) []models.FosterSpecies {
	refs := make([]models.FosterSpecies, 0, len(names))
	for _, name := range names {
		refs = append(refs, models.FosterSpecies{Species: name})
	}
	return refs
}

func contains(s string) string {
	return "%" + strings.ToLower(s) + "%"
}
