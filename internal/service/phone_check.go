package service

import (
	"github.com/BTulkas/Foster-Finder/internal/apperrors"
	"github.com/BTulkas/Foster-Finder/internal/models"
	"github.com/BTulkas/Foster-Finder/internal/phone"
	"github.com/BTulkas/Foster-Finder/internal/repository"
)

// checkDuplicatePairs runs the global duplicate-number check: no (dial code,
// number) pair may be stored for two different owners. Runs before any phone
// mutation is applied.
func checkDuplicatePairs(phoneRepo *repository.PhoneRepository, owner models.Owner, plan *phone.Plan) error {
	for _, pair := range plan.Pairs() {
		row, err := phoneRepo.FindByPair(pair.DialCode, pair.Number)
		if err != nil {
			return err
		}
		if row != nil && !row.BelongsTo(owner) {
			return apperrors.NewConflictError("phone_number", "this phone number already exists in the system")
		}
	}
	return nil
}
