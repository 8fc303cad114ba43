package models

import "time"

// Clinic represents the clinics table
// A clinic doubles as the login account used by its staff
type Clinic struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"size:120;uniqueIndex;not null" json:"email"`
	Name         string    `gorm:"size:250;uniqueIndex;not null" json:"name"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	AreaName     *string   `gorm:"size:80;index" json:"area,omitempty"`
	Admin        bool      `gorm:"default:false" json:"admin"`
	CreatedAt    time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relationships
	PhoneNumbers []PhoneNumber `gorm:"foreignKey:ClinicID" json:"phone_numbers,omitempty"`
	Area         *Area         `gorm:"foreignKey:AreaName;references:Area" json:"-"`
}

// TableName specifies the table name for Clinic model
func (Clinic) TableName() string {
	return "clinics"
}

// RefreshToken represents the refresh_tokens table
type RefreshToken struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ClinicID  uint      `gorm:"not null;index" json:"clinic_id"`
	TokenHash string    `gorm:"not null;size:255;index" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
	Revoked   bool      `gorm:"default:false" json:"revoked"`
	Clinic    Clinic    `gorm:"foreignKey:ClinicID" json:"clinic,omitempty"`
}

// TableName specifies the table name for RefreshToken model
func (RefreshToken) TableName() string {
	return "refresh_tokens"
}
