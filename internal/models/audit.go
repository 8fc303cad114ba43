package models

import "time"

// AuditLog represents the audit_logs table
// Used for tracking account and record mutations
type AuditLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ClinicID  *uint     `gorm:"index" json:"clinic_id"`
	Action    string    `gorm:"size:100;not null" json:"action"`
	Details   string    `gorm:"type:text" json:"details"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	Clinic    *Clinic   `gorm:"foreignKey:ClinicID" json:"clinic,omitempty"`
}

// TableName specifies the table name for AuditLog model
func (AuditLog) TableName() string {
	return "audit_logs"
}
