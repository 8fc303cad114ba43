// Package phone reconciles an owner's two logical phone slots (main and
// emergency) between what is stored and what was submitted. It computes the
// full set of row operations up front; callers apply the plan in one
// transaction or not at all.
package phone

import (
	"regexp"

	"github.com/BTulkas/Foster-Finder/internal/apperrors"
	"github.com/BTulkas/Foster-Finder/internal/models"
)

var (
	dialCodePattern = regexp.MustCompile(`^[0-9]{2}$|^[0-9]{3}$`)
	numberPattern   = regexp.MustCompile(`^[0-9]{7}$`)
)

// Input is one submitted phone slot. A slot with both parts blank is empty;
// a slot with only one part filled is a validation error.
type Input struct {
	DialCode string `json:"dial_code"`
	Number   string `json:"number"`
	Primary  bool   `json:"primary_contact"`
}

// Empty reports whether both parts of the slot are blank.
func (in Input) Empty() bool {
	return in.DialCode == "" && in.Number == ""
}

// SamePair reports whether two slots carry the identical (dial code, number).
func (in Input) SamePair(other Input) bool {
	return in.DialCode == other.DialCode && in.Number == other.Number
}

// Validate checks the slot's dial code and number patterns. The field name is
// used in the reported error.
func (in Input) Validate(field string) error {
	if in.Empty() {
		return nil
	}
	if in.DialCode == "" || in.Number == "" {
		return apperrors.NewValidationError(field, "must supply both dial code and number or neither")
	}
	if !dialCodePattern.MatchString(in.DialCode) {
		return apperrors.NewValidationError(field, "not a valid dial code")
	}
	if !numberPattern.MatchString(in.Number) {
		return apperrors.NewValidationError(field, "not a valid phone number")
	}
	return nil
}

// Plan is the set of phone row operations needed to converge stored state to
// submitted state for a single owner.
type Plan struct {
	Creates   []models.PhoneNumber
	Updates   []models.PhoneNumber // ID identifies the row, remaining fields are the new values
	DeleteIDs []uint
}

// IsEmpty reports whether the plan carries no operations.
func (p *Plan) IsEmpty() bool {
	return len(p.Creates) == 0 && len(p.Updates) == 0 && len(p.DeleteIDs) == 0
}

// Pairs returns the (dial code, number) pairs the owner will hold after the
// plan is applied. Used for the global duplicate check.
func (p *Plan) Pairs() []Input {
	pairs := make([]Input, 0, len(p.Creates)+len(p.Updates))
	for _, row := range p.Creates {
		pairs = append(pairs, Input{DialCode: row.DialCode, Number: row.Number})
	}
	for _, row := range p.Updates {
		pairs = append(pairs, Input{DialCode: row.DialCode, Number: row.Number})
	}
	return pairs
}

// SetOwner rewrites the owner on every planned row. Needed when the owning
// entity's id is only known after it is inserted.
func (p *Plan) SetOwner(owner models.Owner) {
	for i := range p.Creates {
		p.Creates[i].SetOwner(owner)
	}
	for i := range p.Updates {
		p.Updates[i].SetOwner(owner)
	}
}

// BuildPlan reconciles the submitted main and emergency slots against the
// owner's stored rows. The primary stored row maps to the main slot, the
// first non-primary row to the emergency slot.
//
// Rules, in order: identical submitted pairs collapse into the main slot; an
// owner ending with exactly one number has it marked primary; when both slots
// claim the same primary flag the main slot wins; both slots empty is an
// error when requireOne is set.
func BuildPlan(owner models.Owner, existing []models.PhoneNumber, main, emergency Input, requireOne bool) (*Plan, error) {
	if err := main.Validate("phone1"); err != nil {
		return nil, err
	}
	if err := emergency.Validate("phone2"); err != nil {
		return nil, err
	}

	if !emergency.Empty() && main.SamePair(emergency) {
		emergency = Input{}
	}

	switch {
	case main.Empty() && emergency.Empty():
		if requireOne {
			return nil, apperrors.NewValidationError("phone1", "must have a contact number")
		}
	case emergency.Empty():
		main.Primary = true
	case main.Empty():
		emergency.Primary = true
	default:
		if main.Primary == emergency.Primary {
			main.Primary = true
			emergency.Primary = false
		}
	}

	var storedMain, storedEmergency *models.PhoneNumber
	for i := range existing {
		row := &existing[i]
		switch {
		case row.PrimaryContact && storedMain == nil:
			storedMain = row
		case storedEmergency == nil:
			storedEmergency = row
		case storedMain == nil:
			storedMain = row
		}
	}

	plan := &Plan{}
	plan.applySlot(owner, storedMain, main)
	plan.applySlot(owner, storedEmergency, emergency)
	return plan, nil
}

func (p *Plan) applySlot(owner models.Owner, stored *models.PhoneNumber, submitted Input) {
	switch {
	case !submitted.Empty() && stored != nil:
		row := *stored
		row.DialCode = submitted.DialCode
		row.Number = submitted.Number
		row.PrimaryContact = submitted.Primary
		row.SetOwner(owner)
		p.Updates = append(p.Updates, row)
	case !submitted.Empty():
		p.Creates = append(p.Creates, models.NewPhoneNumber(owner, submitted.DialCode, submitted.Number, submitted.Primary))
	case stored != nil:
		p.DeleteIDs = append(p.DeleteIDs, stored.ID)
	}
}
