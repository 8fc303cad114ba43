package models

// Area represents the areas table, keyed by the area name itself.
// Clinics reference one area; volunteers join through areas_volunteers.
type Area struct {
	Area string `gorm:"size:80;primaryKey" json:"area"`
}

// TableName specifies the table name for Area model
func (Area) TableName() string {
	return "areas"
}

// FosterSpecies represents the foster_species table, keyed by the species
// name itself. Volunteers join through volunteers_species.
type FosterSpecies struct {
	Species string `gorm:"size:20;primaryKey" json:"species"`
}

// TableName specifies the table name for FosterSpecies model
func (FosterSpecies) TableName() string {
	return "foster_species"
}
