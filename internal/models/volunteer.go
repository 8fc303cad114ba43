package models

import "time"

// Volunteer represents the volunteers table
// LastContacted drives the contact rotation: the listing orders ascending on
// it, and the cycle operation re-stamps it to move a volunteer to the back.
type Volunteer struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	FirstName     string    `gorm:"size:80;not null" json:"first_name"`
	LastName      string    `gorm:"size:100;not null" json:"last_name"`
	Notes         string    `gorm:"size:500" json:"notes,omitempty"`
	Active        bool      `gorm:"default:true" json:"active"`
	BlackListed   bool      `gorm:"default:false" json:"black_listed"`
	LastContacted time.Time `gorm:"index" json:"last_contacted"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	// Relationships
	PhoneNumbers []PhoneNumber   `gorm:"foreignKey:VolunteerID" json:"phone_numbers,omitempty"`
	Areas        []Area          `gorm:"many2many:areas_volunteers;joinForeignKey:VolunteerID;references:Area;joinReferences:AreaName" json:"areas,omitempty"`
	Species      []FosterSpecies `gorm:"many2many:volunteers_species;joinForeignKey:VolunteerID;references:Species;joinReferences:SpeciesName" json:"species,omitempty"`
}

// TableName specifies the table name for Volunteer model
func (Volunteer) TableName() string {
	return "volunteers"
}
