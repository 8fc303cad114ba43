package models

// OwnerKind discriminates which entity a phone number belongs to.
type OwnerKind string

const (
	OwnerKindClinic    OwnerKind = "clinic"
	OwnerKindVolunteer OwnerKind = "volunteer"
)

// Owner identifies the clinic or volunteer a PhoneNumber row belongs to.
// The table keeps two nullable foreign keys; Owner is the tagged-union view
// of them, so ownership is fixed at construction instead of by column
// convention.
type Owner struct {
	Kind OwnerKind `json:"kind"`
	ID   uint      `json:"id"`
}

// ClinicOwner returns an Owner pointing at a clinic.
func ClinicOwner(id uint) Owner {
	return Owner{Kind: OwnerKindClinic, ID: id}
}

// VolunteerOwner returns an Owner pointing at a volunteer.
func VolunteerOwner(id uint) Owner {
	return Owner{Kind: OwnerKindVolunteer, ID: id}
}

// PhoneNumber represents the phone_numbers table
// Identity is the surrogate id; (dial_code, number) uniqueness across all
// owners is a separate constraint. Within one owner's set at most one row has
// primary_contact = true.
type PhoneNumber struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	DialCode       string `gorm:"size:3;not null;uniqueIndex:idx_phone_pair" json:"dial_code"`
	Number         string `gorm:"size:7;not null;uniqueIndex:idx_phone_pair" json:"number"`
	PrimaryContact bool   `gorm:"default:false" json:"primary_contact"`
	ClinicID       *uint  `gorm:"index" json:"clinic_id,omitempty"`
	VolunteerID    *uint  `gorm:"index" json:"volunteer_id,omitempty"`
}

// TableName specifies the table name for PhoneNumber model
func (PhoneNumber) TableName() string {
	return "phone_numbers"
}

// NewPhoneNumber builds a phone row owned by the given clinic or volunteer.
func NewPhoneNumber(owner Owner, dialCode, number string, primary bool) PhoneNumber {
	p := PhoneNumber{
		DialCode:       dialCode,
		Number:         number,
		PrimaryContact: primary,
	}
	p.SetOwner(owner)
	return p
}

// SetOwner points the row at the given owner, clearing the other foreign key.
func (p *PhoneNumber) SetOwner(owner Owner) {
	id := owner.ID
	switch owner.Kind {
	case OwnerKindClinic:
		p.ClinicID = &id
		p.VolunteerID = nil
	case OwnerKindVolunteer:
		p.VolunteerID = &id
		p.ClinicID = nil
	}
}

// Owner returns the tagged-union view of the row's foreign keys.
func (p *PhoneNumber) Owner() Owner {
	if p.ClinicID != nil {
		return ClinicOwner(*p.ClinicID)
	}
	if p.VolunteerID != nil {
		return VolunteerOwner(*p.VolunteerID)
	}
	return Owner{}
}

// BelongsTo reports whether the row is owned by the given owner.
func (p *PhoneNumber) BelongsTo(owner Owner) bool {
	return p.Owner() == owner
}
