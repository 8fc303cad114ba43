package repository

import (
	"errors"

	"github.com/BTulkas/Foster-Finder/internal/apperrors"
	"github.com/BTulkas/Foster-Finder/internal/models"
	"github.com/BTulkas/Foster-Finder/internal/phone"

	"gorm.io/gorm"
)

type ClinicRepository struct {
	db *gorm.DB
}

func NewClinicRepo(db *gorm.DB) *ClinicRepository {
	return &ClinicRepository{db: db}
}

// FindByID retrieves a clinic with its phone numbers loaded
func (r *ClinicRepository) FindByID(id uint) (*models.Clinic, error) {
	var clinic models.Clinic
	err := r.db.Preload("PhoneNumbers").First(&clinic, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &clinic, nil
}

// FindByEmail retrieves a clinic by its login email
func (r *ClinicRepository) FindByEmail(email string) (*models.Clinic, error) {
	var clinic models.Clinic
	err := r.db.Where("email = ?", email).First(&clinic).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &clinic, nil
}

// FindByName retrieves a clinic by its unique organisation name
func (r *ClinicRepository) FindByName(name string) (*models.Clinic, error) {
	var clinic models.Clinic
	err := r.db.Where("name = ?", name).First(&clinic).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &clinic, nil
}

// CreateWithPhones inserts the clinic and its planned phone rows in one
// transaction. The plan's owner is pointed at the new clinic once its id is
// assigned.
func (r *ClinicRepository) CreateWithPhones(clinic *models.Clinic, plan *phone.Plan) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(clinic).Error; err != nil {
			return err
		}

		plan.SetOwner(models.ClinicOwner(clinic.ID))
		return applyPhonePlan(tx, plan)
	})
}

// UpdateProfileWithPhones saves the clinic's editable profile fields and
// applies the phone plan in one transaction
func (r *ClinicRepository) UpdateProfileWithPhones(clinic *models.Clinic, plan *phone.Plan) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&models.Clinic{ID: clinic.ID}).
			Select("name", "area_name").
			Updates(clinic).Error
		if err != nil {
			return err
		}

		return applyPhonePlan(tx, plan)
	})
}

// UpdatePassword replaces a clinic's password hash
func (r *ClinicRepository) UpdatePassword(id uint, passwordHash string) error {
	return r.db.Model(&models.Clinic{}).
		Where("id = ?", id).
		Update("password_hash", passwordHash).Error
}

// SearchByPhone returns clinics holding the exact (dial code, number) pair
func (r *ClinicRepository) SearchByPhone(dialCode, number string, page, perPage int) (*Page[models.Clinic], error) {
	holders := r.db.Model(&models.PhoneNumber{}).
		Select("clinic_id").
		Where("dial_code = ? AND number = ?", dialCode, number).
		Where("clinic_id IS NOT NULL")

	query := r.db.Model(&models.Clinic{}).
		Where("id IN (?)", holders).
		Order("name ASC").
		Preload("PhoneNumbers")

	return paginate[models.Clinic](query, page, perPage)
}

// SearchByNameOrEmail returns clinics whose name or email contains the given
// terms, case-insensitively. With both terms blank every clinic matches.
func (r *ClinicRepository) SearchByNameOrEmail(name, email string, page, perPage int) (*Page[models.Clinic], error) {
	query := r.db.Model(&models.Clinic{}).
		Order("name ASC").
		Preload("PhoneNumbers")

	switch {
	case name != "" && email != "":
		query = query.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?",
			contains(name), contains(email))
	case name != "":
		query = query.Where("LOWER(name) LIKE ?", contains(name))
	case email != "":
		query = query.Where("LOWER(email) LIKE ?", contains(email))
	}

	return paginate[models.Clinic](query, page, perPage)
}

// CreateRefreshToken creates a new refresh token
func (r *ClinicRepository) CreateRefreshToken(token *models.RefreshToken) error {
	return r.db.Create(token).Error
}

// FindRefreshTokenByHash finds an unrevoked refresh token by its hash
func (r *ClinicRepository) FindRefreshTokenByHash(hash string) (*models.RefreshToken, error) {
	var token models.RefreshToken
	err := r.db.Where("token_hash = ? AND revoked = ?", hash, false).
		Preload("Clinic").
		First(&token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &token, nil
}

// RevokeRefreshTokenByHash marks a refresh token as revoked by its hash
func (r *ClinicRepository) RevokeRefreshTokenByHash(hash string) error {
	return r.db.Model(&models.RefreshToken{}).
		Where("token_hash = ?", hash).
		Update("revoked", true).Error
}
