package repository

import (
	"github.com/BTulkas/Foster-Finder/internal/models"

	"gorm.io/gorm"
)

type AuditRepository struct {
	db *gorm.DB
}

func NewAuditRepo(db *gorm.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

// CreateAuditLog records an account or record mutation
func (r *AuditRepository) CreateAuditLog(clinicID *uint, action, details string) error {
	log := &models.AuditLog{
		ClinicID: clinicID,
		Action:   action,
		Details:  details,
	}
	return r.db.Create(log).Error
}
