package repository

import (
	"errors"

	"github.com/BTulkas/Foster-Finder/internal/models"
	"github.com/BTulkas/Foster-Finder/internal/phone"

	"gorm.io/gorm"
)

type PhoneRepository struct {
	db *gorm.DB
}

func NewPhoneRepo(db *gorm.DB) *PhoneRepository {
	return &PhoneRepository{db: db}
}

// FindByOwner retrieves an owner's phone rows, primary first
func (r *PhoneRepository) FindByOwner(owner models.Owner) ([]models.PhoneNumber, error) {
	var numbers []models.PhoneNumber
	query := r.db.Order("primary_contact DESC, id ASC")
	switch owner.Kind {
	case models.OwnerKindClinic:
		query = query.Where("clinic_id = ?", owner.ID)
	case models.OwnerKindVolunteer:
		query = query.Where("volunteer_id = ?", owner.ID)
	}
	err := query.Find(&numbers).Error
	return numbers, err
}

// FindByPair retrieves the phone row holding the given (dial code, number)
// pair, regardless of owner. Returns nil when no such row exists.
func (r *PhoneRepository) FindByPair(dialCode, number string) (*models.PhoneNumber, error) {
	var row models.PhoneNumber
	err := r.db.Where("dial_code = ? AND number = ?", dialCode, number).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

// applyPhonePlan executes a computed phone plan inside the caller's
// transaction. Deletes run first so a freed pair can be reused by an update
// or create in the same plan.
func applyPhonePlan(tx *gorm.DB, plan *phone.Plan) error {
	if plan == nil || plan.IsEmpty() {
		return nil
	}

	if len(plan.DeleteIDs) > 0 {
		if err := tx.Delete(&models.PhoneNumber{}, plan.DeleteIDs).Error; err != nil {
			return err
		}
	}

	for _, row := range plan.Updates {
		err := tx.Model(&models.PhoneNumber{}).
			Where("id = ?", row.ID).
			Select("dial_code", "number", "primary_contact", "clinic_id", "volunteer_id").
			Updates(row).Error
		if err != nil {
			return err
		}
	}

	for i := range plan.Creates {
		if err := tx.Create(&plan.Creates[i]).Error; err != nil {
			return err
		}
	}

	return nil
}
