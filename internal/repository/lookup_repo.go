package repository

import (
	"github.com/BTulkas/Foster-Finder/internal/models"

	"gorm.io/gorm"
)

// LookupRepository serves the reference tables: areas and foster species.
type LookupRepository struct {
	db *gorm.DB
}

func NewLookupRepo(db *gorm.DB) *LookupRepository {
	return &LookupRepository{db: db}
}

// GetAllAreas retrieves all areas ordered by name
func (r *LookupRepository) GetAllAreas() ([]models.Area, error) {
	var areas []models.Area
	err := r.db.Order("area ASC").Find(&areas).Error
	return areas, err
}

// GetAllSpecies retrieves all foster species ordered by name
func (r *LookupRepository) GetAllSpecies() ([]models.FosterSpecies, error) {
	var species []models.FosterSpecies
	err := r.db.Order("species ASC").Find(&species).Error
	return species, err
}

// AreaNames retrieves every area name
func (r *LookupRepository) AreaNames() ([]string, error) {
	var names []string
	err := r.db.Model(&models.Area{}).Order("area ASC").Pluck("area", &names).Error
	return names, err
}

// SpeciesNames retrieves every species name
func (r *LookupRepository) SpeciesNames() ([]string, error) {
	var names []string
	err := r.db.Model(&models.FosterSpecies{}).Order("species ASC").Pluck("species", &names).Error
	return names, err
}

// MissingAreas returns the subset of names with no matching area row
func (r *LookupRepository) MissingAreas(names []string) ([]string, error) {
	var found []string
	err := r.db.Model(&models.Area{}).
		Where("area IN ?", names).
		Pluck("area", &found).Error
	if err != nil {
		return nil, err
	}
	return difference(names, found), nil
}

// MissingSpecies returns the subset of names with no matching species row
func (r *LookupRepository) MissingSpecies(names []string) ([]string, error) {
	var found []string
	err := r.db.Model(&models.FosterSpecies{}).
		Where("species IN ?", names).
		Pluck("species", &found).Error
	if err != nil {
		return nil, err
	}
	return difference(names, found), nil
}

func difference(names, found []string) []string {
	present := make(map[string]bool, len(found))
	for _, name := range found {
		present[name] = true
	}

	missing := []string{}
	for _, name := range names {
		if !present[name] {
			missing = append(missing, name)
		}
	}
	return missing
}
